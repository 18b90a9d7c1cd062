package bookmarks_test

import (
	"os"
	"path/filepath"
	"testing"

	"trooper/internal/bookmarks"
	"trooper/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreBootstrap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "marks", "bookmarks.txt")
	store := bookmarks.NewFileStore(path)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)

	// First load creates the file with an empty JSON array
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.txt")
	store := bookmarks.NewFileStore(path)

	marks := []types.Bookmark{
		{Name: "docs", Path: "/home/u/docs"},
		{Name: "music", Path: "/home/u/music"},
	}
	require.NoError(t, store.Save(marks))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, marks, loaded)
}

func TestFileStoreCorruptContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.txt")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store := bookmarks.NewFileStore(path)
	loaded, err := store.Load()
	require.NoError(t, err, "corrupt content must not block startup")
	assert.Empty(t, loaded)
}

func TestManagerAddAndRemove(t *testing.T) {
	m, err := bookmarks.NewManager(&bookmarks.MemoryStore{})
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())

	m.Add("/home/u/docs")
	m.Add("/home/u/music")
	// Bookmarking the same directory twice is allowed
	m.Add("/home/u/docs")
	require.Equal(t, 3, m.Len())

	all := m.All()
	assert.Equal(t, types.Bookmark{Name: "docs", Path: "/home/u/docs"}, all[0])
	assert.Equal(t, types.Bookmark{Name: "music", Path: "/home/u/music"}, all[1])
	assert.Equal(t, types.Bookmark{Name: "docs", Path: "/home/u/docs"}, all[2])

	m.RemoveAt(1)
	require.Equal(t, 2, m.Len())
	mark, ok := m.At(1)
	require.True(t, ok)
	assert.Equal(t, "/home/u/docs", mark.Path)

	// Out-of-range removals are no-ops
	m.RemoveAt(-1)
	m.RemoveAt(99)
	assert.Equal(t, 2, m.Len())
}

func TestManagerAt(t *testing.T) {
	m, err := bookmarks.NewManager(&bookmarks.MemoryStore{})
	require.NoError(t, err)
	m.Add("/srv/data")

	mark, ok := m.At(0)
	require.True(t, ok)
	assert.Equal(t, "data", mark.Name)

	_, ok = m.At(1)
	assert.False(t, ok)
}

func TestManagerPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.txt")
	store := bookmarks.NewFileStore(path)

	m, err := bookmarks.NewManager(store)
	require.NoError(t, err)
	m.Add("/home/u/projects")
	require.NoError(t, m.Save())

	// A second manager sees what the first one saved
	again, err := bookmarks.NewManager(store)
	require.NoError(t, err)
	require.Equal(t, 1, again.Len())
	mark, _ := again.At(0)
	assert.Equal(t, "projects", mark.Name)
}
