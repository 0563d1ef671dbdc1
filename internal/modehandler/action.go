package modehandler

import (
	"github.com/bethropolis/scriptbench/internal/input"
	"github.com/bethropolis/scriptbench/internal/logger"
)

// executeAction handles one action in the Editing state.
func (mh *ModeHandler) executeAction(actionEvent input.ActionEvent) {
	action := actionEvent.Action

	if action.IsMovement() {
		mh.editor.Move(action)
		return
	}

	switch action {
	// Two-key sequences
	case input.ActionEscape:
		if mh.editor.IsSingleLine() {
			logger.DebugTagf("dispatch", "Escape ignored in single-line mode")
			return
		}
		mh.setState(StateAwaitingSecondEscape)
	case input.ActionClearAll:
		mh.setState(StateAwaitingSecondF3)

	// Text Modification actions
	case input.ActionInsertRune:
		mh.editor.InsertRune(actionEvent.Rune)
	case input.ActionInsertNewLine:
		if mh.editor.IsSingleLine() {
			mh.setState(StateTerminated)
			return
		}
		mh.editor.InsertNewLine()
	case input.ActionDeleteCharBackward:
		mh.editor.DeleteBackward()
	case input.ActionDeleteCharForward:
		mh.editor.DeleteForward()
	case input.ActionIndent:
		mh.editor.InsertTab()
	case input.ActionOutdent:
		mh.editor.Outdent()

	// Clipboard actions
	case input.ActionCopy:
		if err := mh.editor.Copy(); err != nil {
			logger.Warnf("ModeHandler: %v", err)
		}
	case input.ActionPaste:
		if err := mh.editor.Paste(); err != nil {
			logger.Warnf("ModeHandler: %v", err)
		}

	case input.ActionIgnore, input.ActionReserved:
		// Insert and unbound function keys do nothing
	default:
		logger.DebugTagf("dispatch", "Unhandled action %v at %v", action, mh.editor.GetCursor())
	}
}
