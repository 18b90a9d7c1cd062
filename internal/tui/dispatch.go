package tui

import (
	"path/filepath"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/skratchdot/open-golang/open"

	"trooper/internal/log"
	"trooper/pkg/types"
)

type panelAction struct {
	panel  types.Panel
	action types.Action
}

// panelHandlers routes actions by the panel holding focus. Actions
// missing for a panel are silent no-ops there.
var panelHandlers = map[panelAction]func(*Model, []string) tea.Cmd{
	{types.PanelMain, types.MoveDown}:          (*Model).listDown,
	{types.PanelMain, types.MoveUp}:            (*Model).listUp,
	{types.PanelMain, types.MoveUpDir}:         (*Model).upDir,
	{types.PanelMain, types.EnterDir}:          (*Model).enterDir,
	{types.PanelMain, types.MoveToTop}:         (*Model).gotoTop,
	{types.PanelMain, types.MoveToBottom}:      (*Model).gotoBottom,
	{types.PanelMain, types.CopyFiles}:         (*Model).copySelection,
	{types.PanelMain, types.CutFiles}:          (*Model).cutSelection,
	{types.PanelMain, types.PasteFiles}:        (*Model).pasteHere,
	{types.PanelMain, types.DeleteFile}:        (*Model).deleteSelection,
	{types.PanelMain, types.OpenCommandMode}:   (*Model).enterCommandMode,
	{types.PanelMain, types.CreateBookmark}:    (*Model).bookmarkCurrentDir,
	{types.PanelMain, types.ToggleBookmark}:    (*Model).focusBookmarks,
	{types.PanelMain, types.MoveToLeftPanel}:   (*Model).focusBookmarks,
	{types.PanelMain, types.MoveEntry}:         (*Model).renameSelection,
	{types.PanelMain, types.ToggleHiddenFiles}: (*Model).toggleHidden,
	{types.PanelMain, types.ToggleVisualMode}:  (*Model).toggleVisual,
	{types.PanelMain, types.YankPath}:          (*Model).yankPathToClipboard,
	{types.PanelMain, types.OpenEntry}:         (*Model).openCursorEntry,
	{types.PanelMain, types.Quit}:              (*Model).quit,

	{types.PanelBookmarks, types.MoveDown}:         (*Model).markDown,
	{types.PanelBookmarks, types.MoveUp}:           (*Model).markUp,
	{types.PanelBookmarks, types.EnterDir}:         (*Model).jumpToBookmark,
	{types.PanelBookmarks, types.DeleteBookmark}:   (*Model).removeBookmark,
	{types.PanelBookmarks, types.ToggleBookmark}:   (*Model).focusMain,
	{types.PanelBookmarks, types.MoveToRightPanel}: (*Model).focusMain,
	{types.PanelBookmarks, types.OpenCommandMode}:  (*Model).enterCommandMode,
	{types.PanelBookmarks, types.Quit}:             (*Model).quit,
}

// sharedHandlers apply whichever panel has focus.
var sharedHandlers = map[types.Action]func(*Model, []string) tea.Cmd{
	types.CreateDir:  (*Model).makeDirs,
	types.ToggleHelp: (*Model).toggleHelp,
}

// dispatch routes a fired action to its panel handler. Visual mode
// always acts on the main listing, whatever panel held focus when the
// mode was entered.
func (m *Model) dispatch(action types.Action, args []string) (tea.Model, tea.Cmd) {
	panel := m.panel
	if m.mode == types.Visual {
		panel = types.PanelMain
	}
	if h, ok := panelHandlers[panelAction{panel, action}]; ok {
		return m, h(m, args)
	}
	if h, ok := sharedHandlers[action]; ok {
		return m, h(m, args)
	}
	log.Debugf("No handler for %s on %s panel", action, panel)
	return m, nil
}

func (m *Model) listDown(_ []string) tea.Cmd {
	if m.cursor < len(m.entries)-1 {
		m.cursor++
	}
	return nil
}

func (m *Model) listUp(_ []string) tea.Cmd {
	if m.cursor > 0 {
		m.cursor--
	}
	return nil
}

// upDir ascends to the parent directory and puts the cursor back on
// the directory just left.
func (m *Model) upDir(_ []string) tea.Cmd {
	parent := filepath.Dir(m.currentDir)
	if parent == m.currentDir {
		return nil
	}
	leaving := filepath.Base(m.currentDir)
	if err := m.changeDir(parent); err != nil {
		m.setStatus("%v", err)
		return nil
	}
	for i, e := range m.entries {
		if e.Name == leaving {
			m.cursor = i
			m.anchor = i
			break
		}
	}
	return nil
}

func (m *Model) enterDir(_ []string) tea.Cmd {
	entry, ok := m.cursorEntry()
	if !ok || !entry.IsDir {
		return nil
	}
	if err := m.changeDir(entry.Path); err != nil {
		m.setStatus("%v", err)
	}
	return nil
}

func (m *Model) gotoTop(_ []string) tea.Cmd {
	m.cursor = 0
	return nil
}

func (m *Model) gotoBottom(_ []string) tea.Cmd {
	if len(m.entries) > 0 {
		m.cursor = len(m.entries) - 1
	}
	return nil
}

func (m *Model) copySelection(_ []string) tea.Cmd {
	paths := m.selectionPaths()
	if len(paths) == 0 {
		return nil
	}
	if err := m.engine.Copy(paths); err != nil {
		m.setStatus("%v", err)
		return nil
	}
	m.setStatus("yanked %d item(s)", len(paths))
	if m.mode == types.Visual {
		m.setMode(types.Normal)
	}
	return nil
}

func (m *Model) cutSelection(_ []string) tea.Cmd {
	paths := m.selectionPaths()
	if len(paths) == 0 {
		return nil
	}
	if err := m.engine.Cut(paths); err != nil {
		m.setStatus("%v", err)
		return nil
	}
	m.setStatus("cut %d item(s)", len(paths))
	if m.mode == types.Visual {
		m.setMode(types.Normal)
	}
	return nil
}

func (m *Model) pasteHere(_ []string) tea.Cmd {
	results, err := m.engine.Paste(m.currentDir)
	if err != nil {
		m.setStatus("%v", err)
		return nil
	}
	if len(results) == 0 {
		m.setStatus("nothing to paste")
		return nil
	}
	m.refresh()
	done := 0
	for _, r := range results {
		if r.Done {
			done++
		}
	}
	m.setStatus("pasted %d of %d", done, len(results))
	return nil
}

// deleteSelection removes the selected entries. Visual mode stays
// active afterwards so a follow-up range can be built immediately.
func (m *Model) deleteSelection(_ []string) tea.Cmd {
	paths := m.selectionPaths()
	if len(paths) == 0 {
		return nil
	}
	results := m.engine.Delete(paths)
	m.refresh()
	done := 0
	for _, r := range results {
		if r.Done {
			done++
		}
	}
	m.setStatus("deleted %d of %d", done, len(results))
	return nil
}

func (m *Model) enterCommandMode(_ []string) tea.Cmd {
	m.cmdline.Reset()
	m.setMode(types.Command)
	return nil
}

func (m *Model) bookmarkCurrentDir(_ []string) tea.Cmd {
	m.marks.Add(m.currentDir)
	m.setStatus("bookmarked %s", filepath.Base(m.currentDir))
	return nil
}

func (m *Model) focusBookmarks(_ []string) tea.Cmd {
	m.panel = types.PanelBookmarks
	return nil
}

func (m *Model) focusMain(_ []string) tea.Cmd {
	m.panel = types.PanelMain
	return nil
}

// renameSelection renames a single selected entry in place. Anything
// other than exactly one selected entry and one argument is ignored.
func (m *Model) renameSelection(args []string) tea.Cmd {
	sel := m.selectionPaths()
	if len(sel) != 1 || len(args) != 1 {
		log.Debugf("Rename needs one entry and one name, got %d and %d", len(sel), len(args))
		return nil
	}
	if err := m.engine.Move(sel[0], args[0]); err != nil {
		m.setStatus("%v", err)
		return nil
	}
	m.refresh()
	m.setStatus("renamed to %s", args[0])
	return nil
}

func (m *Model) toggleHidden(_ []string) tea.Cmd {
	m.showHidden = !m.showHidden
	m.refresh()
	return nil
}

func (m *Model) toggleVisual(_ []string) tea.Cmd {
	if m.mode == types.Visual {
		m.setMode(types.Normal)
		return nil
	}
	m.anchor = m.cursor
	m.setMode(types.Visual)
	return nil
}

func (m *Model) quit(_ []string) tea.Cmd {
	return tea.Quit
}

func (m *Model) yankPathToClipboard(_ []string) tea.Cmd {
	entry, ok := m.cursorEntry()
	if !ok {
		return nil
	}
	if err := clipboard.WriteAll(entry.Path); err != nil {
		m.setStatus("clipboard: %v", err)
		return nil
	}
	m.setStatus("copied path to clipboard")
	return nil
}

func (m *Model) openCursorEntry(_ []string) tea.Cmd {
	entry, ok := m.cursorEntry()
	if !ok {
		return nil
	}
	if err := open.Start(entry.Path); err != nil {
		m.setStatus("open: %v", err)
	}
	return nil
}

func (m *Model) markDown(_ []string) tea.Cmd {
	if m.markCursor < m.marks.Len()-1 {
		m.markCursor++
	}
	return nil
}

func (m *Model) markUp(_ []string) tea.Cmd {
	if m.markCursor > 0 {
		m.markCursor--
	}
	return nil
}

// jumpToBookmark navigates the main listing to the bookmark under the
// cursor and hands focus back to it.
func (m *Model) jumpToBookmark(_ []string) tea.Cmd {
	mark, ok := m.marks.At(m.markCursor)
	if !ok {
		return nil
	}
	if err := m.changeDir(mark.Path); err != nil {
		m.setStatus("%v", err)
		return nil
	}
	m.panel = types.PanelMain
	return nil
}

func (m *Model) removeBookmark(_ []string) tea.Cmd {
	mark, ok := m.marks.At(m.markCursor)
	if !ok {
		return nil
	}
	m.marks.RemoveAt(m.markCursor)
	m.clampCursors()
	m.setStatus("removed bookmark %s", mark.Name)
	return nil
}

func (m *Model) makeDirs(args []string) tea.Cmd {
	if len(args) == 0 {
		return nil
	}
	results := m.engine.MakeDirs(m.currentDir, args)
	m.refresh()
	done := 0
	for _, r := range results {
		if r.Done {
			done++
		}
	}
	m.setStatus("created %d of %d", done, len(results))
	return nil
}

func (m *Model) toggleHelp(_ []string) tea.Cmd {
	m.help.ShowAll = !m.help.ShowAll
	return nil
}
