package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"trooper/internal/keymap"
	"trooper/internal/log"
	"trooper/pkg/types"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		return m, tickCmd(m.tick)
	case fsChangeMsg:
		log.Debugf("Filesystem change: %s", string(msg))
		m.refresh()
		return m, m.watchCmd()
	}
	return m, nil
}

// handleKey routes a key press by mode. The control keys drive fixed
// operations in every mode and never form part of a chord; everything
// else either extends the command buffer or feeds the chord resolver.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.escPressed()
	case "enter":
		return m.enterPressed()
	case "backspace":
		if m.mode == types.Command {
			m.cmdline.Backspace()
		}
		return m, nil
	case "up":
		if m.mode == types.Command {
			m.cmdline.Up()
		}
		return m, nil
	case "down":
		if m.mode == types.Command {
			m.cmdline.Down()
		}
		return m, nil
	case "tab":
		if m.mode == types.Command {
			m.cmdline.Tab()
		}
		return m, nil
	case "shift+tab":
		if m.mode == types.Command {
			m.cmdline.ShiftTab()
		}
		return m, nil
	}

	if m.mode == types.Command {
		for _, r := range commandRunes(msg) {
			m.cmdline.Append(r)
		}
		return m, nil
	}

	ev, ok := eventFor(msg)
	if !ok {
		// Unrepresentable keys still interrupt a pending chord
		m.resolver.Clear()
		return m, nil
	}
	res := m.resolver.Feed(ev)
	if res.State == keymap.Fired {
		return m.dispatch(res.Action, nil)
	}
	return m, nil
}

// escPressed cancels the innermost thing in progress: a highlighted
// completion, then the command line, then Visual mode, then any pending
// chord.
func (m *Model) escPressed() (tea.Model, tea.Cmd) {
	switch m.mode {
	case types.Command:
		if m.cmdline.Esc() {
			m.setMode(types.Normal)
		}
	case types.Visual:
		m.setMode(types.Normal)
	default:
		m.resolver.Clear()
	}
	return m, nil
}

// enterPressed submits the command line. A highlighted completion is
// accepted into the buffer instead of executing; otherwise the
// submission runs and the mode returns to Normal, known command or not.
func (m *Model) enterPressed() (tea.Model, tea.Cmd) {
	if m.mode != types.Command {
		return m, nil
	}
	sub, submitted := m.cmdline.Enter()
	if !submitted {
		return m, nil
	}
	var cmd tea.Cmd
	if sub.Ok {
		_, cmd = m.dispatch(sub.Action, sub.Args)
	}
	m.setMode(types.Normal)
	return m, cmd
}

// commandRunes extracts the text a key press contributes to the command
// buffer. Alt-modified input contributes nothing.
func commandRunes(msg tea.KeyMsg) []rune {
	if msg.Type == tea.KeySpace {
		return []rune{' '}
	}
	if msg.Type != tea.KeyRunes || msg.Alt {
		return nil
	}
	return msg.Runes
}

// eventFor converts a key press into a chord event. Keys with
// multi-character names (function keys, page movement) have no chord
// representation and report ok false.
func eventFor(msg tea.KeyMsg) (keymap.Event, bool) {
	name := msg.String()
	var mods keymap.Modifier
	if strings.HasPrefix(name, "alt+") {
		mods |= keymap.ModAlt
		name = strings.TrimPrefix(name, "alt+")
	}
	if strings.HasPrefix(name, "ctrl+") {
		mods |= keymap.ModCtrl
		name = strings.TrimPrefix(name, "ctrl+")
	}
	if name == " " || name == "space" {
		return keymap.Event{Rune: ' ', Mods: mods}, true
	}
	runes := []rune(name)
	if len(runes) != 1 {
		return keymap.Event{}, false
	}
	return keymap.Event{Rune: runes[0], Mods: mods}, true
}
