package types

import "time"

// Entry represents a single row of the directory listing.
type Entry struct {
	Name    string
	Path    string
	IsDir   bool
	Size    int64
	ModTime time.Time
}
