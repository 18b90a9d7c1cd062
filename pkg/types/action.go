package types

// Action identifies one of the operations a key chord or command can trigger.
// The set is closed; configuration files refer to actions by these names and
// anything else is ignored.
type Action int

const (
	// NoAction is the zero value and never bound.
	NoAction Action = iota
	MoveDown
	MoveUp
	MoveUpDir
	EnterDir
	Quit
	MoveToTop
	MoveToBottom
	CopyFiles
	CutFiles
	PasteFiles
	OpenCommandMode
	ToggleVisualMode
	DeleteFile
	CreateBookmark
	DeleteBookmark
	ToggleBookmark
	MoveToLeftPanel
	MoveToRightPanel
	MoveEntry
	ToggleHiddenFiles
	CreateDir
	YankPath
	OpenEntry
	ToggleHelp
)

var actionNames = map[Action]string{
	MoveDown:          "MoveDown",
	MoveUp:            "MoveUp",
	MoveUpDir:         "MoveUpDir",
	EnterDir:          "EnterDir",
	Quit:              "Quit",
	MoveToTop:         "MoveToTop",
	MoveToBottom:      "MoveToBottom",
	CopyFiles:         "CopyFiles",
	CutFiles:          "CutFiles",
	PasteFiles:        "PasteFiles",
	OpenCommandMode:   "OpenCommandMode",
	ToggleVisualMode:  "ToggleVisualMode",
	DeleteFile:        "DeleteFile",
	CreateBookmark:    "CreateBookmark",
	DeleteBookmark:    "DeleteBookmark",
	ToggleBookmark:    "ToggleBookmark",
	MoveToLeftPanel:   "MoveToLeftPanel",
	MoveToRightPanel:  "MoveToRightPanel",
	MoveEntry:         "MoveEntry",
	ToggleHiddenFiles: "ToggleHiddenFiles",
	CreateDir:         "CreateDir",
	YankPath:          "YankPath",
	OpenEntry:         "OpenEntry",
	ToggleHelp:        "ToggleHelp",
}

var actionsByName = func() map[string]Action {
	m := make(map[string]Action, len(actionNames))
	for a, n := range actionNames {
		m[n] = a
	}
	return m
}()

// String returns the action's configuration name.
func (a Action) String() string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return "NoAction"
}

// ActionFromName resolves a configuration name to its Action. The second
// return is false for names outside the closed set.
func ActionFromName(name string) (Action, bool) {
	a, ok := actionsByName[name]
	return a, ok
}
