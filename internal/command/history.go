package command

import (
	"os"
	"path/filepath"
	"strings"
)

// maxHistoryEntries caps how much history is persisted between runs.
const maxHistoryEntries = 50

// LoadHistory reads saved command history from path, oldest first. A
// missing file is an empty history.
func LoadHistory(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	lines := strings.Split(string(data), "\n")
	// Drop the artifact of the trailing newline, not genuine empty entries
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// SaveHistory writes the newest maxHistoryEntries commands to path,
// creating parent directories as needed.
func SaveHistory(path string, history []string) error {
	if len(history) > maxHistoryEntries {
		history = history[len(history)-maxHistoryEntries:]
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	var b strings.Builder
	for _, entry := range history {
		b.WriteString(entry)
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0644)
}
