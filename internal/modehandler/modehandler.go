// internal/modehandler/modehandler.go
package modehandler

import (
	"github.com/bethropolis/scriptbench/internal/input"
	"github.com/bethropolis/scriptbench/internal/logger"
	"github.com/bethropolis/scriptbench/internal/tui"
	"github.com/bethropolis/scriptbench/internal/types"
)

// State is where the dispatcher is in the exit and clear-all sequences.
type State int

const (
	StateEditing State = iota
	StateAwaitingSecondEscape
	StateAwaitingSecondF3 // Clear-all confirmation
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "Editing"
	case StateAwaitingSecondEscape:
		return "AwaitingSecondEscape"
	case StateAwaitingSecondF3:
		return "AwaitingSecondF3"
	case StateTerminated:
		return "Terminated"
	default:
		return "State(?)"
	}
}

// Editor is the set of operations the dispatcher drives.
type Editor interface {
	IsSingleLine() bool
	GetCursor() types.Position

	Move(action input.Action)
	InsertRune(r rune)
	InsertNewLine()
	DeleteBackward()
	DeleteForward()
	InsertTab()
	Outdent()
	ClearAll()
	Copy() error
	Paste() error
}

// ModeHandler turns key events into editor operations and decides when the
// session ends.
type ModeHandler struct {
	editor         Editor
	inputProcessor *input.InputProcessor

	state State
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Editor         Editor
	InputProcessor *input.InputProcessor
}

// New creates a dispatcher in the Editing state.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.InputProcessor == nil {
		panic("modehandler.New: Missing required dependencies in Config")
	}
	return &ModeHandler{
		editor:         cfg.Editor,
		inputProcessor: cfg.InputProcessor,
		state:          StateEditing,
	}
}

// State returns the current dispatcher state.
func (mh *ModeHandler) State() State {
	return mh.state
}

// Terminated reports whether the exit sequence has completed.
func (mh *ModeHandler) Terminated() bool {
	return mh.state == StateTerminated
}

// HandleKeyEvent processes one key and reports whether the session is over.
// A key that does not complete a pending two-key sequence cancels it and is
// then handled as if no sequence had been started.
func (mh *ModeHandler) HandleKeyEvent(ev tui.KeyEvent) bool {
	if mh.state == StateTerminated {
		logger.Warnf("ModeHandler: Key %v after termination ignored", ev.Key)
		return true
	}
	actionEvent := mh.inputProcessor.ProcessEvent(ev)

	switch mh.state {
	case StateAwaitingSecondEscape:
		if actionEvent.Action == input.ActionEscape {
			mh.setState(StateTerminated)
			return true
		}
		mh.setState(StateEditing)
	case StateAwaitingSecondF3:
		mh.setState(StateEditing)
		if actionEvent.Action == input.ActionClearAll {
			mh.editor.ClearAll()
			return false
		}
	}

	mh.executeAction(actionEvent)
	return mh.state == StateTerminated
}

func (mh *ModeHandler) setState(s State) {
	if s == mh.state {
		return
	}
	logger.DebugTagf("dispatch", "State %s -> %s", mh.state, s)
	mh.state = s
}
