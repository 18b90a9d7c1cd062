// Package command implements the ":" command line: buffer editing,
// literal-prefix completion over the registered command names, history
// browsing, and resolution of submitted commands to actions.
package command

import (
	"sort"
	"strings"

	"trooper/pkg/types"
)

// commands is the closed set of registered command words.
var commands = map[string]types.Action{
	"delete":       types.DeleteFile,
	"up":           types.MoveUp,
	"bookmark":     types.CreateBookmark,
	"bm":           types.CreateBookmark,
	"del_bookmark": types.DeleteBookmark,
	"dbm":          types.DeleteBookmark,
	"mv":           types.MoveEntry,
	"mkdir":        types.CreateDir,
}

var commandNames = func() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}()

// Submission is a parsed command ready for dispatch. Ok is false for
// unknown and empty commands, which still enter the history verbatim.
type Submission struct {
	Action types.Action
	Args   []string
	Ok     bool
}

// Engine holds the command line state while command mode is active.
// History outlives individual activations; everything else is transient.
type Engine struct {
	buffer     string
	editingTmp string

	history      []string // oldest first
	historyIndex int      // -1 when not browsing

	matches         []string // current completion cycle, empty when inactive
	completionIndex int      // -1 highlights the restored editingTmp
}

// New returns an engine with empty history.
func New() *Engine {
	return NewWithHistory(nil)
}

// NewWithHistory returns an engine seeded with previously saved history,
// oldest first.
func NewWithHistory(history []string) *Engine {
	e := &Engine{historyIndex: -1, completionIndex: -1}
	e.history = append(e.history, history...)
	return e
}

// Buffer returns the current command line text.
func (e *Engine) Buffer() string {
	return e.buffer
}

// History returns a copy of the history, oldest first.
func (e *Engine) History() []string {
	out := make([]string, len(e.history))
	copy(out, e.history)
	return out
}

// Append adds a typed rune to the buffer. Editing cancels any active
// completion cycle.
func (e *Engine) Append(r rune) {
	e.buffer += string(r)
	e.cancelCompletion()
}

// Backspace removes the last rune, a no-op on an empty buffer. Like
// Append it cancels any active completion cycle.
func (e *Engine) Backspace() {
	if e.buffer == "" {
		return
	}
	runes := []rune(e.buffer)
	e.buffer = string(runes[:len(runes)-1])
	e.cancelCompletion()
}

// Tab advances the completion cycle. The first press snapshots the buffer
// and computes the matches; the cycle has len(matches)+1 positions, with
// the extra position restoring the snapshot.
func (e *Engine) Tab() {
	e.cycle(1)
}

// ShiftTab steps the completion cycle backwards.
func (e *Engine) ShiftTab() {
	e.cycle(-1)
}

func (e *Engine) cycle(delta int) {
	if e.completionIndex == -1 && len(e.matches) == 0 {
		e.editingTmp = e.buffer
		e.matches = matchesFor(e.buffer)
	}

	e.completionIndex += delta
	if e.completionIndex >= len(e.matches) {
		e.completionIndex = -1
	} else if e.completionIndex < -1 {
		e.completionIndex = len(e.matches) - 1
	}

	if e.completionIndex == -1 {
		e.buffer = e.editingTmp
	} else {
		e.buffer = e.matches[e.completionIndex]
	}
}

// matchesFor returns the command names with prefix as a literal prefix,
// sorted. An empty prefix matches every command.
func matchesFor(prefix string) []string {
	matches := make([]string, 0, len(commandNames))
	for _, name := range commandNames {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	return matches
}

// Up walks the history toward older entries, saving the draft buffer on
// first use. Ignored while a completion is highlighted.
func (e *Engine) Up() {
	if e.completionIndex != -1 || len(e.history) == 0 {
		return
	}
	if e.historyIndex == -1 {
		e.editingTmp = e.buffer
	}
	if e.historyIndex < len(e.history)-1 {
		e.historyIndex++
	}
	e.buffer = e.history[len(e.history)-1-e.historyIndex]
}

// Down walks back toward newer entries, restoring the saved draft past
// the newest one. Ignored while a completion is highlighted.
func (e *Engine) Down() {
	if e.completionIndex != -1 || e.historyIndex == -1 {
		return
	}
	e.historyIndex--
	if e.historyIndex == -1 {
		e.buffer = e.editingTmp
		return
	}
	e.buffer = e.history[len(e.history)-1-e.historyIndex]
}

// Esc cancels an active completion, restoring the snapshot. With none
// active it clears the transient state and reports that command mode
// should close.
func (e *Engine) Esc() (exit bool) {
	if e.completionIndex != -1 {
		e.buffer = e.editingTmp
		e.cancelCompletion()
		return false
	}
	e.Reset()
	return true
}

// Enter resolves the buffer into a Submission. When a completion is
// highlighted the match is kept as buffer text instead, the cycle ends and
// submitted is false so the caller stays in command mode. A submission
// always pushes the verbatim buffer to history, known command or not.
func (e *Engine) Enter() (sub Submission, submitted bool) {
	if e.completionIndex != -1 {
		e.cancelCompletion()
		return Submission{}, false
	}

	raw := e.buffer
	e.history = append(e.history, raw)
	e.Reset()

	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return Submission{}, true
	}
	action, ok := commands[fields[0]]
	if !ok {
		return Submission{Args: fields[1:]}, true
	}
	return Submission{Action: action, Args: fields[1:], Ok: true}, true
}

// Reset clears the buffer and all transient state. History survives.
func (e *Engine) Reset() {
	e.buffer = ""
	e.editingTmp = ""
	e.historyIndex = -1
	e.cancelCompletion()
}

func (e *Engine) cancelCompletion() {
	e.matches = nil
	e.completionIndex = -1
	e.editingTmp = ""
}
