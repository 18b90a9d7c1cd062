// Package keymap implements vim-style key chords: parsing chord specs from
// configuration, per-mode binding tables, and the resolver that matches live
// key input against them.
package keymap

import "strings"

// Modifier is a bit set of modifier keys held during a key press.
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModAlt
	ModShift
)

// Event is a single decoded key press. Shifted letters arrive as their
// uppercase rune, so ModShift is only set for keys without a shifted rune
// form.
type Event struct {
	Rune rune
	Mods Modifier
}

// String returns the canonical display form: "a", "C-w", "Space".
func (e Event) String() string {
	name := string(e.Rune)
	if e.Rune == ' ' {
		name = "Space"
	}

	var b strings.Builder
	if e.Mods&ModCtrl != 0 {
		b.WriteString("C-")
	}
	if e.Mods&ModAlt != 0 {
		b.WriteString("A-")
	}
	if e.Mods&ModShift != 0 {
		b.WriteString("S-")
	}
	b.WriteString(name)
	return b.String()
}
