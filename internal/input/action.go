// internal/input/action.go
package input

// Action represents a command or operation to be performed by the editor.
type Action int

const (
	// --- Meta Actions ---
	ActionUnknown  Action = iota // Unmapped key
	ActionEscape                 // First or second half of the exit sequence
	ActionIgnore                 // Insert key: overtype mode is never entered
	ActionReserved               // Function keys without a binding

	// --- Cursor Movement ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMovePageUp
	ActionMovePageDown
	ActionMoveHome // Beginning of line
	ActionMoveEnd  // End of line

	// --- Text Manipulation ---
	ActionInsertRune         // Requires Rune argument
	ActionInsertNewLine      // Enter
	ActionDeleteCharForward  // Delete key
	ActionDeleteCharBackward // Backspace key
	ActionIndent             // Tab
	ActionOutdent            // Shift+Tab

	// --- Clipboard / Buffer ---
	ActionCopy     // F1
	ActionPaste    // F2
	ActionClearAll // F3, needs confirmation
)

var actionNames = map[Action]string{
	ActionUnknown:            "Unknown",
	ActionEscape:             "Escape",
	ActionIgnore:             "Ignore",
	ActionReserved:           "Reserved",
	ActionMoveUp:             "MoveUp",
	ActionMoveDown:           "MoveDown",
	ActionMoveLeft:           "MoveLeft",
	ActionMoveRight:          "MoveRight",
	ActionMovePageUp:         "MovePageUp",
	ActionMovePageDown:       "MovePageDown",
	ActionMoveHome:           "MoveHome",
	ActionMoveEnd:            "MoveEnd",
	ActionInsertRune:         "InsertRune",
	ActionInsertNewLine:      "InsertNewLine",
	ActionDeleteCharForward:  "DeleteCharForward",
	ActionDeleteCharBackward: "DeleteCharBackward",
	ActionIndent:             "Indent",
	ActionOutdent:            "Outdent",
	ActionCopy:               "Copy",
	ActionPaste:              "Paste",
	ActionClearAll:           "ClearAll",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Action(?)"
}

// IsMovement reports whether the action only moves the cursor.
func (a Action) IsMovement() bool {
	return a >= ActionMoveUp && a <= ActionMoveEnd
}

// ActionEvent represents a decoded key event.
type ActionEvent struct {
	Action Action
	Rune   rune // Used for ActionInsertRune
}
