package types

// Bookmark is a named directory shortcut shown in the bookmarks panel.
// The list is loaded from the bookmark store at startup and written back
// at shutdown.
type Bookmark struct {
	Name string `json:"name"`
	Path string `json:"path"`
}
