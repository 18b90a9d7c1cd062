package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg drives the periodic re-render so time-sensitive parts of the
// view stay fresh even without input.
type tickMsg time.Time

// fsChangeMsg reports a change under the watched directory. The payload
// is the path fsnotify saw; the model only uses it for logging and
// refreshes the whole listing.
type fsChangeMsg string

func tickCmd(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// watchCmd waits for the next change event from the watcher. Update
// re-arms it after each delivery so exactly one reader drains the
// channel at a time.
func (m *Model) watchCmd() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	changes := m.watcher.Changes()
	return func() tea.Msg {
		path, ok := <-changes
		if !ok {
			return nil
		}
		return fsChangeMsg(path)
	}
}
