package keymap

import (
	"trooper/pkg/types"
)

// Binding pairs a chord with the action it triggers.
type Binding struct {
	Chord  Chord
	Action types.Action
}

// Table holds the chord bindings for a single mode.
type Table struct {
	actions map[string]types.Action
	order   []Chord
}

// NewTable returns an empty binding table.
func NewTable() *Table {
	return &Table{actions: make(map[string]types.Action)}
}

// Bind registers a chord binding, replacing any existing binding for the
// same chord. Empty chords are ignored.
func (t *Table) Bind(c Chord, a types.Action) {
	if len(c) == 0 {
		return
	}
	key := c.String()
	if _, exists := t.actions[key]; !exists {
		t.order = append(t.order, c)
	}
	t.actions[key] = a
}

// Lookup returns the action bound to exactly c.
func (t *Table) Lookup(c Chord) (types.Action, bool) {
	a, ok := t.actions[c.String()]
	return a, ok
}

// HasPrefix reports whether c is a strict prefix of any bound chord, i.e.
// whether more keys could still complete a binding.
func (t *Table) HasPrefix(c Chord) bool {
	for _, bound := range t.order {
		if len(c) < len(bound) && bound.HasPrefix(c) {
			return true
		}
	}
	return false
}

// Len returns the number of bound chords.
func (t *Table) Len() int {
	return len(t.order)
}

// Bindings returns every binding in the order it was first added.
func (t *Table) Bindings() []Binding {
	out := make([]Binding, 0, len(t.order))
	for _, c := range t.order {
		out = append(out, Binding{Chord: c, Action: t.actions[c.String()]})
	}
	return out
}

// Tables groups the per-mode binding tables.
type Tables struct {
	Normal *Table
	Visual *Table
}

// ForMode returns the table consulted in the given mode. Command mode has
// no chord table and returns nil.
func (t *Tables) ForMode(m types.Mode) *Table {
	switch m {
	case types.Visual:
		return t.Visual
	case types.Command:
		return nil
	default:
		return t.Normal
	}
}
