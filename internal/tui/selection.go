package tui

import "trooper/pkg/types"

// selectionRange returns the inclusive listing bounds covered by the
// current selection. In Visual mode that is the span between the anchor
// and the cursor in either direction; otherwise it collapses to the
// cursor row. ok is false when the listing is empty.
func (m *Model) selectionRange() (lo, hi int, ok bool) {
	if len(m.entries) == 0 {
		return 0, 0, false
	}
	cursor := min(m.cursor, len(m.entries)-1)
	if m.mode != types.Visual {
		return cursor, cursor, true
	}
	anchor := min(m.anchor, len(m.entries)-1)
	return min(anchor, cursor), max(anchor, cursor), true
}

// selectionPaths returns the paths of the selected entries in listing
// order.
func (m *Model) selectionPaths() []string {
	lo, hi, ok := m.selectionRange()
	if !ok {
		return nil
	}
	paths := make([]string, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		paths = append(paths, m.entries[i].Path)
	}
	return paths
}

// selected reports whether the listing row at index is inside the
// current selection.
func (m *Model) selected(index int) bool {
	lo, hi, ok := m.selectionRange()
	return ok && index >= lo && index <= hi
}
