package fileops

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gobwas/glob"

	"trooper/internal/log"
	"trooper/pkg/types"
)

// Engine performs the file operations behind the interactive actions.
// Bulk operations never abort on a single failure; each item reports its
// own OpResult.
type Engine struct {
	register Register
	ignores  []glob.Glob
	mu       sync.Mutex
}

// New creates an engine using the given yank register.
func New(register Register) *Engine {
	return &Engine{register: register}
}

// SetIgnores installs the listing ignore patterns.
func (e *Engine) SetIgnores(globs []glob.Glob) {
	e.ignores = globs
}

// Copy records the paths in the yank register for a later paste.
func (e *Engine) Copy(paths []string) error {
	log.Debug("Yanked paths for copy", len(paths))
	return e.register.Write(paths, Copying)
}

// Cut records the paths in the yank register; each source is removed when
// its paste succeeds.
func (e *Engine) Cut(paths []string) error {
	log.Debug("Yanked paths for cut", len(paths))
	return e.register.Write(paths, Cutting)
}

// Paste copies the registered paths into destDir, renaming around
// collisions. An empty register is a no-op. Per-item failures land in the
// results, not in err.
func (e *Engine) Paste(destDir string) ([]types.OpResult, error) {
	paths, mode, err := e.register.Read()
	if err != nil {
		return nil, fmt.Errorf("reading yank register: %w", err)
	}
	if len(paths) == 0 {
		return nil, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	results := make([]types.OpResult, 0, len(paths))
	for _, src := range paths {
		if src == "" {
			continue
		}
		res := e.pasteOne(src, destDir, mode)
		if res.Error != nil {
			log.Warnf("Paste failed for %s: %v", src, res.Error)
		} else {
			log.Info("Pasted %s -> %s", src, res.Destination)
		}
		results = append(results, res)
	}
	return results, nil
}

func (e *Engine) pasteOne(src, destDir string, mode YankMode) types.OpResult {
	res := types.OpResult{Source: src}

	info, err := os.Stat(src)
	if err != nil {
		res.Error = fmt.Errorf("source file error: %w", err)
		return res
	}

	dest, err := findUniqueDestName(filepath.Join(destDir, filepath.Base(src)), info.IsDir())
	if err != nil {
		res.Error = err
		return res
	}
	res.Destination = dest

	if info.IsDir() {
		err = copyDir(src, dest)
	} else {
		err = copyFile(src, dest)
	}
	if err != nil {
		res.Error = err
		return res
	}

	if mode == Cutting {
		if err := os.RemoveAll(src); err != nil {
			res.Error = fmt.Errorf("copied but failed to remove source: %w", err)
			return res
		}
	}

	res.Done = true
	return res
}

// findUniqueDestName finds a collision-free destination by appending
// " (Copy)" to the name, before the extension for files, until the path is
// free. Gives up after 1000 rewrites.
func findUniqueDestName(dest string, isDir bool) (string, error) {
	for attempt := 0; ; attempt++ {
		_, err := os.Stat(dest)
		if os.IsNotExist(err) {
			return dest, nil
		}
		if err != nil {
			return "", fmt.Errorf("error checking destination %s: %w", dest, err)
		}
		if attempt >= 1000 {
			return "", fmt.Errorf("failed to find unique name for %s after 1000 attempts", dest)
		}

		if isDir {
			dest += " (Copy)"
		} else {
			ext := filepath.Ext(dest)
			dest = strings.TrimSuffix(dest, ext) + " (Copy)" + ext
		}
	}
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("reading source info: %w", err)
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("creating destination: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying data: %w", err)
	}
	return out.Close()
}

// copyDir copies src into dest recursively, merging with anything already
// there.
func copyDir(src, dest string) error {
	if err := os.MkdirAll(dest, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dest, err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", src, err)
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())
		if entry.IsDir() {
			err = copyDir(srcPath, destPath)
		} else {
			err = copyFile(srcPath, destPath)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Delete removes each path, recursively for directories. Failures are
// collected per item and never stop the batch.
func (e *Engine) Delete(paths []string) []types.OpResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	results := make([]types.OpResult, 0, len(paths))
	for _, path := range paths {
		res := types.OpResult{Source: path}

		info, err := os.Stat(path)
		switch {
		case err != nil:
			res.Error = fmt.Errorf("source file error: %w", err)
		case info.IsDir():
			res.Error = os.RemoveAll(path)
		default:
			res.Error = os.Remove(path)
		}

		res.Done = res.Error == nil
		if res.Done {
			log.Info("Deleted %s", path)
		} else {
			log.Warnf("Delete failed for %s: %v", path, res.Error)
		}
		results = append(results, res)
	}
	return results
}

// Move renames src within its directory to newName.
func (e *Engine) Move(src, newName string) error {
	dest := filepath.Join(filepath.Dir(src), newName)
	if err := os.Rename(src, dest); err != nil {
		return fmt.Errorf("failed to rename %s: %w", src, err)
	}
	log.Info("Renamed %s -> %s", src, dest)
	return nil
}

// MakeDirs creates one directory per name under destDir, parents
// included. Empty names are skipped.
func (e *Engine) MakeDirs(destDir string, names []string) []types.OpResult {
	results := make([]types.OpResult, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		path := filepath.Join(destDir, name)
		res := types.OpResult{Source: path, Destination: path}
		res.Error = os.MkdirAll(path, 0755)
		res.Done = res.Error == nil
		if res.Done {
			log.Info("Created directory %s", path)
		} else {
			log.Warnf("mkdir failed for %s: %v", path, res.Error)
		}
		results = append(results, res)
	}
	return results
}
