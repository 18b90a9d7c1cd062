package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap carries the help-line hints for the default bindings. Chord
// resolution happens in the keymap engine; these bindings only feed the
// help footer.
type KeyMap struct {
	// Navigation
	Up         key.Binding
	Down       key.Binding
	UpDir      key.Binding
	EnterDir   key.Binding
	GotoTop    key.Binding
	GotoBottom key.Binding

	// File operations
	Yank   key.Binding
	Cut    key.Binding
	Paste  key.Binding
	Visual key.Binding

	// Panels and toggles
	Bookmarks    key.Binding
	ToggleHidden key.Binding

	// Modes
	CommandMode key.Binding

	// General
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the hints matching the built-in binding config.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "down"),
		),
		UpDir: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "parent dir"),
		),
		EnterDir: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "enter dir"),
		),
		GotoTop: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("gg", "top"),
		),
		GotoBottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("yy", "copy"),
		),
		Cut: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("dd", "cut"),
		),
		Paste: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "paste"),
		),
		Visual: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "visual"),
		),
		Bookmarks: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "bookmarks"),
		),
		ToggleHidden: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "hidden"),
		),
		CommandMode: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.UpDir, k.EnterDir, k.CommandMode, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.UpDir, k.EnterDir, k.GotoTop, k.GotoBottom},
		{k.Yank, k.Cut, k.Paste, k.Visual, k.ToggleHidden},
		{k.Bookmarks, k.CommandMode, k.Help, k.Quit},
	}
}
