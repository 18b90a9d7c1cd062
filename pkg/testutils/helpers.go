package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFiles creates files under dir, keyed by relative path with content.
// Parent directories are created as needed.
func WriteFiles(t *testing.T, dir string, files map[string]string) {
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

// MkDirs creates the named subdirectories under dir.
func MkDirs(t *testing.T, dir string, names ...string) {
	for _, name := range names {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, name), 0o755))
	}
}

// StripANSI removes ANSI escape sequences from rendered terminal output.
func StripANSI(str string) string {
	var result []rune
	inEscape := false
	for _, r := range str {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEscape = false
			}
			continue
		}
		result = append(result, r)
	}
	return string(result)
}
