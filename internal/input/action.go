// internal/input/action.go
package input

// Action is what a key press asks the previewer to do.
type Action int

const (
	ActionUnknown Action = iota

	// --- Navigation ---
	ActionMoveUp
	ActionMoveDown
	ActionMovePageUp
	ActionMovePageDown
	ActionMoveStart
	ActionMoveEnd

	// --- Session ---
	ActionConfirm   // persist the highlighted theme and exit
	ActionQuit      // restore the previous theme and exit
	ActionInterrupt // Ctrl+C, handled like quit
	ActionCopyName  // copy the highlighted theme name
)

var actionNames = map[Action]string{
	ActionUnknown:      "unknown",
	ActionMoveUp:       "up",
	ActionMoveDown:     "down",
	ActionMovePageUp:   "page-up",
	ActionMovePageDown: "page-down",
	ActionMoveStart:    "start",
	ActionMoveEnd:      "end",
	ActionConfirm:      "confirm",
	ActionQuit:         "quit",
	ActionInterrupt:    "interrupt",
	ActionCopyName:     "copy-name",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// IsNavigation reports whether a moves the selection.
func (a Action) IsNavigation() bool {
	return a >= ActionMoveUp && a <= ActionMoveEnd
}
