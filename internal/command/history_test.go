package command_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"trooper/internal/command"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	saved := []string{"mkdir docs", "mv docs archive", "delete"}

	require.NoError(t, command.SaveHistory(path, saved))

	loaded, err := command.LoadHistory(path)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestHistoryMissingFile(t *testing.T) {
	loaded, err := command.LoadHistory(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestHistorySaveCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "dir", "history")
	require.NoError(t, command.SaveHistory(path, []string{"up"}))

	loaded, err := command.LoadHistory(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"up"}, loaded)
}

func TestHistoryCap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	var history []string
	for i := 0; i < 60; i++ {
		history = append(history, fmt.Sprintf("mkdir dir%02d", i))
	}
	require.NoError(t, command.SaveHistory(path, history))

	loaded, err := command.LoadHistory(path)
	require.NoError(t, err)
	require.Len(t, loaded, 50)
	// The newest 50 survive
	assert.Equal(t, "mkdir dir10", loaded[0])
	assert.Equal(t, "mkdir dir59", loaded[49])
}

func TestHistoryKeepsEmptyEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	require.NoError(t, command.SaveHistory(path, []string{"delete", "", "up"}))

	loaded, err := command.LoadHistory(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"delete", "", "up"}, loaded)
}

func TestHistoryEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	loaded, err := command.LoadHistory(path)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
