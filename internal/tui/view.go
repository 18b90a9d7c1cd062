package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"trooper/pkg/types"
)

// View implements tea.Model.
func (m *Model) View() string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	height := m.height
	if height <= 0 {
		height = 24
	}

	header := TitleStyle.Render(truncate(m.currentDir, width-2))
	helpView := m.help.View(m.keys)

	// Header, status and command rows plus the pane border leave this
	// much room for listing rows.
	rows := height - 3 - lipgloss.Height(helpView) - 2
	if rows < 3 {
		rows = 3
	}

	bookmarksW := m.bookmarksWidth()
	detailsW := 28
	listW := width - bookmarksW - detailsW - 6
	showDetails := listW >= 20
	if !showDetails {
		detailsW = 0
		listW = width - bookmarksW - 4
		if listW < 20 {
			listW = 20
		}
	}

	panes := []string{
		m.pane(m.bookmarksContent(rows, bookmarksW-2), bookmarksW, rows, m.panel == types.PanelBookmarks),
		m.pane(m.listingContent(rows, listW-2), listW, rows, m.panel == types.PanelMain),
	}
	if showDetails {
		panes = append(panes, m.pane(m.detailsContent(detailsW-2), detailsW, rows, false))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, panes...),
		m.statusView(),
		m.commandView(),
		helpView,
	)
}

func (m *Model) pane(content string, w, h int, active bool) string {
	style := PaneInactive
	if active {
		style = PaneActive
	}
	return style.Width(w).Height(h).Render(content)
}

// bookmarksWidth sizes the left pane to its longest name, within
// sensible bounds.
func (m *Model) bookmarksWidth() int {
	longest := 0
	for _, b := range m.marks.All() {
		if n := len([]rune(b.Name)); n > longest {
			longest = n
		}
	}
	w := max(17, longest+4)
	return min(w, 30)
}

func (m *Model) bookmarksContent(rows, w int) string {
	marks := m.marks.All()
	if len(marks) == 0 {
		return StatusStyle.Render(truncate("(no bookmarks)", w))
	}
	start, end := visibleWindow(len(marks), m.markCursor, rows)
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		prefix := "  "
		if i == m.markCursor && m.panel == types.PanelBookmarks {
			prefix = "> "
		}
		line := truncate(prefix+marks[i].Name, w)
		if i == m.markCursor && m.panel == types.PanelBookmarks {
			line = CursorStyle.Render(line)
		} else {
			line = FileStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) listingContent(rows, w int) string {
	if len(m.entries) == 0 {
		return StatusStyle.Render("(empty)")
	}
	start, end := visibleWindow(len(m.entries), m.cursor, rows)
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		e := m.entries[i]
		name := e.Name
		if e.IsDir {
			name += "/"
		}
		prefix := "  "
		if i == m.cursor && m.panel == types.PanelMain {
			prefix = "> "
		}
		line := truncate(prefix+name, w)
		switch {
		case i == m.cursor && m.panel == types.PanelMain:
			line = CursorStyle.Render(line)
		case m.mode == types.Visual && m.selected(i):
			line = VisualStyle.Render(line)
		case e.IsDir:
			line = DirectoryStyle.Render(line)
		default:
			line = FileStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) detailsContent(w int) string {
	entry, ok := m.cursorEntry()
	if !ok {
		return StatusStyle.Render("(empty)")
	}
	kind := "file"
	if entry.IsDir {
		kind = "directory"
	}
	lines := []string{
		truncate(entry.Name, w),
		"",
		StatusStyle.Render(truncate("kind   "+kind, w)),
	}
	if !entry.IsDir {
		lines = append(lines, StatusStyle.Render(truncate("size   "+formatSize(entry.Size), w)))
	}
	lines = append(lines, StatusStyle.Render(truncate("mtime  "+entry.ModTime.Format("2006-01-02 15:04"), w)))
	return strings.Join(lines, "\n")
}

func (m *Model) statusView() string {
	badge := ModeNormalStyle
	switch m.mode {
	case types.Visual:
		badge = ModeVisualStyle
	case types.Command:
		badge = ModeCommandStyle
	}
	parts := []string{badge.Render(m.mode.String())}
	if pending := m.resolver.Pending(); len(pending) > 0 {
		parts = append(parts, StatusStyle.Render(pending.String()))
	}
	if m.statusMsg != "" {
		parts = append(parts, StatusStyle.Render(m.statusMsg))
	}
	if len(m.entries) > 0 {
		parts = append(parts, StatusStyle.Render(fmt.Sprintf("%d/%d", m.cursor+1, len(m.entries))))
	}
	return strings.Join(parts, " ")
}

func (m *Model) commandView() string {
	if m.mode != types.Command {
		return ""
	}
	return CommandStyle.Render(":" + m.cmdline.Buffer())
}

// visibleWindow picks the slice of rows to draw so the cursor stays in
// view, centered once the list outgrows the pane.
func visibleWindow(total, cursor, rows int) (start, end int) {
	if total <= rows {
		return 0, total
	}
	start = cursor - rows/2
	if start < 0 {
		start = 0
	}
	if start+rows > total {
		start = total - rows
	}
	return start, start + rows
}

func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= w {
		return s
	}
	if w == 1 {
		return "…"
	}
	return string(runes[:w-1]) + "…"
}

func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
