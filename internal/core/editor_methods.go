package core

import (
	"github.com/bethropolis/scriptbench/internal/buffer"
	"github.com/bethropolis/scriptbench/internal/clipboard"
	"github.com/bethropolis/scriptbench/internal/event"
	"github.com/bethropolis/scriptbench/internal/input"
	"github.com/bethropolis/scriptbench/internal/statusbar"
	"github.com/bethropolis/scriptbench/internal/types"
)

// GetBuffer returns the buffer being edited.
func (e *Editor) GetBuffer() buffer.Buffer {
	return e.buffer
}

// GetCursor returns the logical cursor.
func (e *Editor) GetCursor() types.Position {
	return e.buffer.Cursor()
}

// IsSingleLine reports whether the buffer is pinned to one line.
func (e *Editor) IsSingleLine() bool {
	return e.singleLine
}

// Highlighting reports whether a highlighter is attached.
func (e *Editor) Highlighting() bool {
	return e.highlighter != nil
}

// Tabulation is the whitespace run used by Tab and paste.
func (e *Editor) Tabulation() string {
	return e.settings.Tabulation()
}

// GetClipboard returns the clipboard used by copy and paste.
func (e *Editor) GetClipboard() clipboard.Clipboard {
	return e.clipboard
}

// GetEventManager returns the event manager sessions report to.
func (e *Editor) GetEventManager() *event.Manager {
	return e.eventManager
}

// Header returns the header showing diagnostics.
func (e *Editor) Header() *statusbar.StatusBar {
	return e.header
}

// Cursor operations delegated to cursorManager
func (e *Editor) Move(action input.Action) {
	if !e.cursorManager.Move(action) {
		return
	}
	e.placeCursor()
	e.eventManager.Dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: e.buffer.Cursor()})
}

// Text operation methods delegated to textOps
func (e *Editor) InsertRune(r rune) { e.textOps.InsertRune(r) }
func (e *Editor) InsertNewLine()    { e.textOps.InsertNewLine() }
func (e *Editor) DeleteBackward()   { e.textOps.DeleteBackward() }
func (e *Editor) DeleteForward()    { e.textOps.DeleteForward() }
func (e *Editor) InsertTab()        { e.textOps.InsertTab() }
func (e *Editor) Outdent()          { e.textOps.Outdent() }
func (e *Editor) ClearAll()         { e.textOps.ClearAll() }

// Clipboard operations
func (e *Editor) Copy() error  { return e.textOps.Copy() }
func (e *Editor) Paste() error { return e.textOps.Paste() }
