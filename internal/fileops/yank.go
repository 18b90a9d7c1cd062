// Package fileops performs the filesystem work behind the interactive
// actions: directory listings, the yank register, and copy, cut, paste,
// delete, rename and mkdir operations.
package fileops

import (
	"os"
	"path/filepath"
	"strings"
)

// YankMode says what a paste should do with the registered paths.
type YankMode int

const (
	// None means nothing has been yanked this session.
	None YankMode = iota
	// Copying leaves the sources in place on paste.
	Copying
	// Cutting removes each source after its copy succeeds.
	Cutting
)

// String returns the mode name for logs and the status line.
func (m YankMode) String() string {
	switch m {
	case Copying:
		return "copy"
	case Cutting:
		return "cut"
	default:
		return "none"
	}
}

// Register stores yanked paths between a copy or cut and the paste.
type Register interface {
	Write(paths []string, mode YankMode) error
	Read() ([]string, YankMode, error)
	Clear() error
}

// FileRegister keeps the paths in a scratch file, one absolute path per
// line. The mode lives in memory only; a register file left over from an
// earlier session pastes as a copy.
type FileRegister struct {
	path string
	mode YankMode
}

// NewFileRegister returns a register backed by the file at path.
func NewFileRegister(path string) *FileRegister {
	return &FileRegister{path: path, mode: Copying}
}

// Write replaces the register contents.
func (r *FileRegister) Write(paths []string, mode YankMode) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(r.path, []byte(strings.Join(paths, "\n")), 0644); err != nil {
		return err
	}
	r.mode = mode
	return nil
}

// Read returns the registered paths. A missing or empty register file is
// an empty register, not an error.
func (r *FileRegister) Read() ([]string, YankMode, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, None, nil
		}
		return nil, None, err
	}

	var paths []string
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			paths = append(paths, line)
		}
	}
	if len(paths) == 0 {
		return nil, None, nil
	}
	return paths, r.mode, nil
}

// Clear empties the register.
func (r *FileRegister) Clear() error {
	r.mode = Copying
	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// MemoryRegister is an in-memory Register for tests.
type MemoryRegister struct {
	paths []string
	mode  YankMode
}

// Write replaces the register contents.
func (r *MemoryRegister) Write(paths []string, mode YankMode) error {
	r.paths = append([]string(nil), paths...)
	r.mode = mode
	return nil
}

// Read returns the registered paths.
func (r *MemoryRegister) Read() ([]string, YankMode, error) {
	if len(r.paths) == 0 {
		return nil, None, nil
	}
	return append([]string(nil), r.paths...), r.mode, nil
}

// Clear empties the register.
func (r *MemoryRegister) Clear() error {
	r.paths = nil
	r.mode = None
	return nil
}
