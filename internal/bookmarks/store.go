// Package bookmarks persists the named directory shortcuts shown in the
// bookmark panel.
package bookmarks

import (
	"encoding/json"
	"os"
	"path/filepath"

	"trooper/internal/log"
	"trooper/pkg/types"
)

// Store loads and saves the bookmark list.
type Store interface {
	Load() ([]types.Bookmark, error)
	Save([]types.Bookmark) error
}

// FileStore keeps bookmarks as a JSON array in a single file.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the bookmark file, bootstrapping an empty one on first use.
// Corrupt content degrades to an empty list rather than blocking startup.
func (s *FileStore) Load() ([]types.Bookmark, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := s.Save(nil); err != nil {
				return nil, err
			}
			return []types.Bookmark{}, nil
		}
		return nil, err
	}

	var bookmarks []types.Bookmark
	if err := json.Unmarshal(data, &bookmarks); err != nil {
		log.Warnf("Bookmark file %s is corrupt, starting empty: %v", s.path, err)
		return []types.Bookmark{}, nil
	}
	return bookmarks, nil
}

// Save writes the bookmarks back as a JSON array, creating parent
// directories as needed.
func (s *FileStore) Save(bookmarks []types.Bookmark) error {
	if bookmarks == nil {
		bookmarks = []types.Bookmark{}
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	data, err := json.Marshal(bookmarks)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// MemoryStore is an in-memory Store for tests.
type MemoryStore struct {
	bookmarks []types.Bookmark
}

// Load returns the stored bookmarks.
func (s *MemoryStore) Load() ([]types.Bookmark, error) {
	return append([]types.Bookmark(nil), s.bookmarks...), nil
}

// Save replaces the stored bookmarks.
func (s *MemoryStore) Save(bookmarks []types.Bookmark) error {
	s.bookmarks = append([]types.Bookmark(nil), bookmarks...)
	return nil
}
