// Package tui implements the modal file manager interface. A single
// Model owns every piece of interface state; key chords resolve through
// the keymap engine, ex-style commands through the command engine, and
// file operations go through fileops so the interface layer never
// manipulates the filesystem itself.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"trooper/internal/bookmarks"
	"trooper/internal/command"
	"trooper/internal/config"
	apperrors "trooper/internal/errors"
	"trooper/internal/fileops"
	"trooper/internal/keymap"
	"trooper/internal/log"
	"trooper/internal/watch"
	"trooper/pkg/types"
)

// App bundles the engines the model drives. Watcher may be nil when
// filesystem watching is not wanted; everything else is required.
type App struct {
	Config    *config.Config
	Engine    *fileops.Engine
	Bookmarks *bookmarks.Manager
	Tables    *keymap.Tables
	Command   *command.Engine
	Watcher   *watch.Watcher
}

// Model is the bubbletea model for the whole interface.
type Model struct {
	// Engines
	cfg      *config.Config
	engine   *fileops.Engine
	marks    *bookmarks.Manager
	tables   *keymap.Tables
	resolver *keymap.Resolver
	cmdline  *command.Engine
	watcher  *watch.Watcher

	// Interface state
	mode       types.Mode
	panel      types.Panel
	currentDir string
	entries    []types.Entry
	cursor     int
	anchor     int // Visual-mode selection anchor, collapsed onto cursor in Normal
	markCursor int
	showHidden bool

	// Presentation
	keys      types.KeyMap
	help      help.Model
	statusMsg string
	width     int
	height    int
	tick      time.Duration
}

// New builds the model and loads the initial listing. The start
// directory comes from the configuration, falling back to the working
// directory when unset.
func New(app App) (*Model, error) {
	if app.Config == nil || app.Engine == nil || app.Bookmarks == nil ||
		app.Tables == nil || app.Command == nil {
		return nil, apperrors.New("app wiring incomplete")
	}

	startDir := app.Config.Directories.Start
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, apperrors.Wrap(err, "resolving working directory")
		}
		startDir = wd
	}

	m := &Model{
		cfg:        app.Config,
		engine:     app.Engine,
		marks:      app.Bookmarks,
		tables:     app.Tables,
		resolver:   keymap.NewResolver(app.Tables.Normal),
		cmdline:    app.Command,
		watcher:    app.Watcher,
		mode:       types.Normal,
		panel:      types.PanelMain,
		showHidden: app.Config.Settings.ShowHidden,
		keys:       types.DefaultKeyMap(),
		help:       help.New(),
		tick:       time.Duration(app.Config.Settings.TickRate) * time.Millisecond,
	}

	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, apperrors.Wrap(err, "resolving start directory")
	}
	if err := m.changeDir(absDir); err != nil {
		return nil, apperrors.Wrap(err, "listing start directory")
	}
	return m, nil
}

// Init starts the render tick and, when a watcher is attached, the
// change listener.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.tick)}
	if wc := m.watchCmd(); wc != nil {
		cmds = append(cmds, wc)
	}
	return tea.Batch(cmds...)
}

// Mode returns the current input mode.
func (m *Model) Mode() types.Mode {
	return m.mode
}

// ActivePanel returns the panel holding keyboard focus.
func (m *Model) ActivePanel() types.Panel {
	return m.panel
}

// CurrentDir returns the directory backing the main listing.
func (m *Model) CurrentDir() string {
	return m.currentDir
}

// Entries returns the visible listing rows.
func (m *Model) Entries() []types.Entry {
	return m.entries
}

// Cursor returns the main listing cursor position.
func (m *Model) Cursor() int {
	return m.cursor
}

// StatusMessage returns the transient message shown in the status bar.
func (m *Model) StatusMessage() string {
	return m.statusMsg
}

// setMode switches the input mode and swaps the resolver table so a
// half-typed chord never carries across modes. Command mode detaches
// the resolver entirely.
func (m *Model) setMode(mode types.Mode) {
	m.mode = mode
	m.resolver.SetTable(m.tables.ForMode(mode))
}

// changeDir swaps the listing to dir. Cursor and anchor reset to the
// top; callers that restore a position overwrite them afterwards.
func (m *Model) changeDir(dir string) error {
	entries, err := m.engine.List(dir, m.showHidden)
	if err != nil {
		return err
	}
	m.currentDir = dir
	m.entries = entries
	m.cursor = 0
	m.anchor = 0
	if m.watcher != nil {
		if err := m.watcher.Rewatch(dir); err != nil {
			log.Warnf("Could not watch %s: %v", dir, err)
		}
	}
	return nil
}

// refresh re-lists the current directory in place, keeping cursors
// clamped to the new contents.
func (m *Model) refresh() {
	entries, err := m.engine.List(m.currentDir, m.showHidden)
	if err != nil {
		m.setStatus("listing failed: %v", err)
		return
	}
	m.entries = entries
	m.clampCursors()
}

func (m *Model) clampCursors() {
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.anchor >= len(m.entries) {
		m.anchor = len(m.entries) - 1
	}
	if m.anchor < 0 {
		m.anchor = 0
	}
	if m.markCursor >= m.marks.Len() {
		m.markCursor = m.marks.Len() - 1
	}
	if m.markCursor < 0 {
		m.markCursor = 0
	}
}

// cursorEntry returns the entry under the cursor, if any.
func (m *Model) cursorEntry() (types.Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return types.Entry{}, false
	}
	return m.entries[m.cursor], true
}

func (m *Model) setStatus(format string, args ...interface{}) {
	m.statusMsg = fmt.Sprintf(format, args...)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
