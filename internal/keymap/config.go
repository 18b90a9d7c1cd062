package keymap

import (
	"os"
	"strings"

	"trooper/internal/errors"
	"trooper/internal/log"
	"trooper/pkg/types"
)

// DefaultBindings is the compiled-in binding configuration. A user file is
// applied on top: an identical chord replaces the default entry, a new
// chord adds to the table.
const DefaultBindings = `[normal]
j = MoveDown
k = MoveUp
h = MoveUpDir
l = EnterDir
q = Quit
gg = MoveToTop
G = MoveToBottom
yy = CopyFiles
dd = CutFiles
p = PasteFiles
: = OpenCommandMode
b = ToggleBookmark
<C-w><C-h> = MoveToLeftPanel
<C-w><C-l> = MoveToRightPanel
<C-h> = MoveToLeftPanel
<C-l> = MoveToRightPanel
z = ToggleHiddenFiles
v = ToggleVisualMode
Y = YankPath
o = OpenEntry
? = ToggleHelp

[visual]
j = MoveDown
k = MoveUp
h = MoveUpDir
l = EnterDir
q = Quit
gg = MoveToTop
G = MoveToBottom
yy = CopyFiles
dd = CutFiles
p = PasteFiles
: = OpenCommandMode
b = ToggleBookmark
<C-w><C-h> = MoveToLeftPanel
<C-w><C-l> = MoveToRightPanel
<C-h> = MoveToLeftPanel
<C-l> = MoveToRightPanel
z = ToggleHiddenFiles
v = ToggleVisualMode
Y = YankPath
o = OpenEntry
? = ToggleHelp
`

// NewTables returns per-mode tables seeded with the default bindings.
func NewTables() *Tables {
	t := &Tables{Normal: NewTable(), Visual: NewTable()}
	applyBindings(t, DefaultBindings)
	return t
}

// LoadBindings builds the binding tables from the defaults plus the user
// file at path. A missing file means no overrides. On a read error the
// defaults are still returned so the caller can warn and keep going.
func LoadBindings(path string) (*Tables, error) {
	tables := NewTables()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return tables, nil
		}
		return tables, errors.Wrap(err, "reading binding file")
	}

	applyBindings(tables, string(data))
	return tables, nil
}

// applyBindings parses INI-format binding text into the tables. Sections
// [normal] and [visual] select the target table; entries are
// "chord-spec = ActionName". Anything unparseable is skipped, never fatal.
func applyBindings(tables *Tables, text string) {
	var current *Table
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section := strings.ToLower(line[1 : len(line)-1])
			switch section {
			case "normal":
				current = tables.Normal
			case "visual":
				current = tables.Visual
			default:
				// Unknown section: skip its entries
				current = nil
				log.Debugf("ignoring unknown binding section %q", section)
			}
			continue
		}
		if current == nil {
			continue
		}

		eq := strings.Index(line, "=")
		if eq < 0 {
			continue
		}
		spec := strings.TrimSpace(line[:eq])
		name := strings.TrimSpace(line[eq+1:])

		action, ok := types.ActionFromName(name)
		if !ok {
			log.Debugf("ignoring binding %q with unknown action %q", spec, name)
			continue
		}
		chord := ParseChord(spec)
		if len(chord) == 0 {
			continue
		}
		current.Bind(chord, action)
	}
}
