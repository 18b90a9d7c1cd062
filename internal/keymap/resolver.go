package keymap

import (
	"trooper/pkg/types"
)

// State classifies the outcome of feeding one key event to the resolver.
type State int

const (
	// Fired means the buffer matched a bound chord exactly; Result.Action
	// carries the action and the buffer was cleared.
	Fired State = iota
	// Pending means the buffer is a strict prefix of at least one bound
	// chord and was kept for the next event.
	Pending
	// Reset means the buffer matched nothing and was cleared. The event
	// that broke the chord is dropped, not retried.
	Reset
)

// Result is the outcome of a single Feed call.
type Result struct {
	State  State
	Action types.Action
}

// Resolver accumulates key events and matches them against a binding
// table. Matching is greedy-shortest: an exact hit fires immediately even
// when the buffer also prefixes a longer chord.
type Resolver struct {
	table  *Table
	buffer Chord
}

// NewResolver returns a resolver matching against table.
func NewResolver(table *Table) *Resolver {
	return &Resolver{table: table}
}

// SetTable swaps the binding table and clears any pending chord. Mode
// switches go through here so half-typed chords never leak across modes.
func (r *Resolver) SetTable(table *Table) {
	r.table = table
	r.buffer = nil
}

// Feed appends the event to the pending chord and resolves it.
func (r *Resolver) Feed(e Event) Result {
	if r.table == nil {
		return Result{State: Reset}
	}

	r.buffer = append(r.buffer, e)

	if action, ok := r.table.Lookup(r.buffer); ok {
		r.buffer = nil
		return Result{State: Fired, Action: action}
	}
	if r.table.HasPrefix(r.buffer) {
		return Result{State: Pending}
	}

	r.buffer = nil
	return Result{State: Reset}
}

// Pending returns a copy of the in-progress chord for display.
func (r *Resolver) Pending() Chord {
	out := make(Chord, len(r.buffer))
	copy(out, r.buffer)
	return out
}

// Clear drops any in-progress chord.
func (r *Resolver) Clear() {
	r.buffer = nil
}
