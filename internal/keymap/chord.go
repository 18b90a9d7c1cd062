package keymap

import "strings"

// Chord is an ordered key sequence bound to an action, like "gg" or
// "<C-w><C-h>".
type Chord []Event

// String joins the event forms with spaces. It doubles as the canonical
// binding table key, so equal chords stringify identically.
func (c Chord) String() string {
	parts := make([]string, len(c))
	for i, e := range c {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

// HasPrefix reports whether prefix matches the start of c element-wise.
func (c Chord) HasPrefix(prefix Chord) bool {
	if len(prefix) > len(c) {
		return false
	}
	for i, e := range prefix {
		if c[i] != e {
			return false
		}
	}
	return true
}

// ParseChord decodes a chord spec into its key events. Plain characters
// stand for themselves; bracket tokens encode the rest: <lt> and <gt> for
// the literal angle brackets, <Space> for space, <C-x> for Ctrl plus a key.
// Unrecognized bracket tokens are dropped, an unclosed bracket is kept as a
// literal.
func ParseChord(spec string) Chord {
	var chord Chord
	runes := []rune(spec)
	for i := 0; i < len(runes); {
		if runes[i] != '<' {
			chord = append(chord, Event{Rune: runes[i]})
			i++
			continue
		}

		end := -1
		for j := i + 1; j < len(runes); j++ {
			if runes[j] == '>' {
				end = j
				break
			}
		}
		if end < 0 {
			chord = append(chord, Event{Rune: runes[i]})
			i++
			continue
		}

		if ev, ok := parseToken(runes[i+1 : end]); ok {
			chord = append(chord, ev)
		}
		i = end + 1
	}
	return chord
}

func parseToken(token []rune) (Event, bool) {
	switch strings.ToLower(string(token)) {
	case "lt":
		return Event{Rune: '<'}, true
	case "gt":
		return Event{Rune: '>'}, true
	case "space":
		return Event{Rune: ' '}, true
	}
	if len(token) == 3 && (token[0] == 'C' || token[0] == 'c') && token[1] == '-' {
		return Event{Rune: token[2], Mods: ModCtrl}, true
	}
	return Event{}, false
}
