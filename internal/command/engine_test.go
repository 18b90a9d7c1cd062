package command_test

import (
	"testing"

	"trooper/internal/command"
	"trooper/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeString(e *command.Engine, s string) {
	for _, r := range s {
		e.Append(r)
	}
}

func submit(t *testing.T, e *command.Engine, s string) command.Submission {
	t.Helper()
	typeString(e, s)
	sub, submitted := e.Enter()
	require.True(t, submitted)
	return sub
}

func TestBufferEditing(t *testing.T) {
	e := command.New()

	typeString(e, "mv notes")
	assert.Equal(t, "mv notes", e.Buffer())

	e.Backspace()
	assert.Equal(t, "mv note", e.Buffer())

	for i := 0; i < 20; i++ {
		e.Backspace()
	}
	assert.Equal(t, "", e.Buffer())

	// Backspace on empty stays empty
	e.Backspace()
	assert.Equal(t, "", e.Buffer())
}

func TestCompletionCycle(t *testing.T) {
	e := command.New()
	typeString(e, "b")

	// "b" prefixes bm and bookmark; the cycle has three positions
	e.Tab()
	assert.Equal(t, "bm", e.Buffer())
	e.Tab()
	assert.Equal(t, "bookmark", e.Buffer())
	e.Tab()
	assert.Equal(t, "b", e.Buffer(), "third position restores the typed prefix")
	e.Tab()
	assert.Equal(t, "bm", e.Buffer(), "cycle wraps around")
}

func TestCompletionReverseCycle(t *testing.T) {
	e := command.New()
	typeString(e, "b")

	// Backwards from fresh lands on the last match
	e.ShiftTab()
	assert.Equal(t, "bookmark", e.Buffer())
	e.ShiftTab()
	assert.Equal(t, "bm", e.Buffer())
	e.ShiftTab()
	assert.Equal(t, "b", e.Buffer())
	e.ShiftTab()
	assert.Equal(t, "bookmark", e.Buffer())
}

func TestCompletionNoMatches(t *testing.T) {
	e := command.New()
	typeString(e, "zzz")

	// No command starts with zzz; cycling in both directions must neither
	// panic nor change the buffer
	for i := 0; i < 3; i++ {
		e.Tab()
		assert.Equal(t, "zzz", e.Buffer())
		e.ShiftTab()
		assert.Equal(t, "zzz", e.Buffer())
	}
}

func TestCompletionEmptyPrefix(t *testing.T) {
	e := command.New()

	// Empty prefix matches every command; first match sorts first
	e.Tab()
	assert.Equal(t, "bm", e.Buffer())
}

func TestCompletionSortedOrder(t *testing.T) {
	e := command.New()
	typeString(e, "d")

	e.Tab()
	assert.Equal(t, "dbm", e.Buffer())
	e.Tab()
	assert.Equal(t, "del_bookmark", e.Buffer())
	e.Tab()
	assert.Equal(t, "delete", e.Buffer())
	e.Tab()
	assert.Equal(t, "d", e.Buffer())
}

func TestTypingCancelsCompletion(t *testing.T) {
	e := command.New()
	typeString(e, "b")
	e.Tab()
	require.Equal(t, "bm", e.Buffer())

	e.Append('x')
	assert.Equal(t, "bmx", e.Buffer())

	// The next Tab starts a fresh cycle from the edited buffer
	e.Tab()
	assert.Equal(t, "bmx", e.Buffer(), "no command matches bmx")
}

func TestEnterAcceptsCompletionWithoutExecuting(t *testing.T) {
	e := command.New()
	typeString(e, "b")
	e.Tab()
	require.Equal(t, "bm", e.Buffer())

	sub, submitted := e.Enter()
	assert.False(t, submitted, "first Enter only accepts the match")
	assert.False(t, sub.Ok)
	assert.Equal(t, "bm", e.Buffer())
	assert.Empty(t, e.History())

	sub, submitted = e.Enter()
	require.True(t, submitted)
	assert.True(t, sub.Ok)
	assert.Equal(t, types.CreateBookmark, sub.Action)
	assert.Equal(t, "", e.Buffer())
	assert.Equal(t, []string{"bm"}, e.History())
}

func TestEscCancelsCompletionFirst(t *testing.T) {
	e := command.New()
	typeString(e, "b")
	e.Tab()
	require.Equal(t, "bm", e.Buffer())

	assert.False(t, e.Esc(), "first Esc only cancels the completion")
	assert.Equal(t, "b", e.Buffer())

	assert.True(t, e.Esc(), "second Esc closes the command line")
	assert.Equal(t, "", e.Buffer())
}

func TestCommandResolution(t *testing.T) {
	tests := []struct {
		input  string
		action types.Action
		args   []string
	}{
		{"delete", types.DeleteFile, nil},
		{"up", types.MoveUp, nil},
		{"bookmark", types.CreateBookmark, nil},
		{"bm", types.CreateBookmark, nil},
		{"del_bookmark", types.DeleteBookmark, nil},
		{"dbm", types.DeleteBookmark, nil},
		{"mv renamed.txt", types.MoveEntry, []string{"renamed.txt"}},
		{"mkdir a b c", types.CreateDir, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e := command.New()
			sub := submit(t, e, tt.input)
			assert.True(t, sub.Ok)
			assert.Equal(t, tt.action, sub.Action)
			if tt.args == nil {
				assert.Empty(t, sub.Args)
			} else {
				assert.Equal(t, tt.args, sub.Args)
			}
		})
	}
}

func TestUnknownCommandStillRecorded(t *testing.T) {
	e := command.New()

	sub := submit(t, e, "frobnicate now")
	assert.False(t, sub.Ok)
	assert.Equal(t, []string{"now"}, sub.Args)

	// The verbatim line lands in history anyway
	assert.Equal(t, []string{"frobnicate now"}, e.History())
}

func TestEmptySubmission(t *testing.T) {
	e := command.New()

	sub, submitted := e.Enter()
	require.True(t, submitted)
	assert.False(t, sub.Ok)
	assert.Equal(t, []string{""}, e.History())
}

func TestHistoryBrowsing(t *testing.T) {
	e := command.New()
	submit(t, e, "abc")
	submit(t, e, "d")
	require.Equal(t, []string{"abc", "d"}, e.History())

	// Up walks newest to oldest and clamps at the oldest entry
	e.Up()
	assert.Equal(t, "d", e.Buffer())
	e.Up()
	assert.Equal(t, "abc", e.Buffer())
	e.Up()
	assert.Equal(t, "abc", e.Buffer())

	// Down walks back and finally restores the draft
	e.Down()
	assert.Equal(t, "d", e.Buffer())
	e.Down()
	assert.Equal(t, "", e.Buffer())
}

func TestHistoryPreservesDraft(t *testing.T) {
	e := command.New()
	submit(t, e, "mkdir stuff")

	typeString(e, "half-ty")
	e.Up()
	assert.Equal(t, "mkdir stuff", e.Buffer())
	e.Down()
	assert.Equal(t, "half-ty", e.Buffer())
}

func TestHistoryIgnoredWhileCompleting(t *testing.T) {
	e := command.New()
	submit(t, e, "delete")

	typeString(e, "b")
	e.Tab()
	require.Equal(t, "bm", e.Buffer())

	e.Up()
	assert.Equal(t, "bm", e.Buffer(), "history must not interrupt an active completion")
	e.Down()
	assert.Equal(t, "bm", e.Buffer())
}

func TestDownWithoutBrowsing(t *testing.T) {
	e := command.New()
	typeString(e, "abc")
	e.Down()
	assert.Equal(t, "abc", e.Buffer())
}

func TestSeededHistory(t *testing.T) {
	e := command.NewWithHistory([]string{"older", "newer"})

	e.Up()
	assert.Equal(t, "newer", e.Buffer())
	e.Up()
	assert.Equal(t, "older", e.Buffer())
}
