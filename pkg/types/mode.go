package types

// Mode represents the current input mode of the TUI
type Mode int

const (
	// Normal is the default mode for navigation and chord dispatch
	Normal Mode = iota
	// Visual is the mode for contiguous-range selection
	Visual
	// Command is the mode for entering ex-style commands
	Command
)

// String returns the mode name in upper case, as shown in the status bar.
func (m Mode) String() string {
	switch m {
	case Visual:
		return "VISUAL"
	case Command:
		return "COMMAND"
	default:
		return "NORMAL"
	}
}

// Panel identifies one of the two independently navigable lists.
type Panel int

const (
	// PanelMain is the directory listing
	PanelMain Panel = iota
	// PanelBookmarks is the bookmark list
	PanelBookmarks
)

// String returns the panel name for logs and the status bar.
func (p Panel) String() string {
	if p == PanelBookmarks {
		return "bookmarks"
	}
	return "main"
}
