package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"trooper/pkg/types"
)

// List reads the entries of dir, sorted directories-first and then by
// lowercased full path. Dot-prefixed names are excluded unless showHidden
// is set; names matching an ignore pattern are always excluded.
func (e *Engine) List(dir string, showHidden bool) ([]types.Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	entries := make([]types.Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		name := de.Name()
		if !showHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if e.ignored(name) {
			continue
		}

		info, err := de.Info()
		if err != nil {
			// Entry vanished between ReadDir and Info
			continue
		}
		entries = append(entries, types.Entry{
			Name:    name,
			Path:    filepath.Join(dir, name),
			IsDir:   de.IsDir(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return strings.ToLower(entries[i].Path) < strings.ToLower(entries[j].Path)
	})
	return entries, nil
}

func (e *Engine) ignored(name string) bool {
	for _, g := range e.ignores {
		if g.Match(name) {
			return true
		}
	}
	return false
}
