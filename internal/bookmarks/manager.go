package bookmarks

import (
	"path/filepath"

	"trooper/pkg/types"
)

// Manager holds the live bookmark list. It loads once at construction and
// persists on Save, typically at shutdown.
type Manager struct {
	store     Store
	bookmarks []types.Bookmark
}

// NewManager loads the bookmarks from store.
func NewManager(store Store) (*Manager, error) {
	bookmarks, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Manager{store: store, bookmarks: bookmarks}, nil
}

// All returns the bookmarks in display order.
func (m *Manager) All() []types.Bookmark {
	return append([]types.Bookmark(nil), m.bookmarks...)
}

// Len returns the number of bookmarks.
func (m *Manager) Len() int {
	return len(m.bookmarks)
}

// At returns the bookmark at index.
func (m *Manager) At(index int) (types.Bookmark, bool) {
	if index < 0 || index >= len(m.bookmarks) {
		return types.Bookmark{}, false
	}
	return m.bookmarks[index], true
}

// Add appends a bookmark for dir under its base name. Duplicates are
// allowed.
func (m *Manager) Add(dir string) {
	m.bookmarks = append(m.bookmarks, types.Bookmark{
		Name: filepath.Base(dir),
		Path: dir,
	})
}

// RemoveAt drops the bookmark at index, a no-op when out of range.
func (m *Manager) RemoveAt(index int) {
	if index < 0 || index >= len(m.bookmarks) {
		return
	}
	m.bookmarks = append(m.bookmarks[:index], m.bookmarks[index+1:]...)
}

// Save persists the current list to the store.
func (m *Manager) Save() error {
	return m.store.Save(m.bookmarks)
}
