package cursor

import (
	"fmt"

	"github.com/bethropolis/scriptbench/internal/buffer"
	"github.com/bethropolis/scriptbench/internal/input"
	"github.com/bethropolis/scriptbench/internal/logger"
	"github.com/bethropolis/scriptbench/internal/types"
)

// PageJump is the number of rows PageUp and PageDown move.
const PageJump = 10

// Editor is the interface cursor manager expects from the editor
type Editor interface {
	GetBuffer() buffer.Buffer
	IsSingleLine() bool
}

// Manager moves the logical cursor. It never edits the buffer.
type Manager struct {
	editor Editor
	sticky bool

	// desiredCol is the column vertical moves aim for when sticky
	desiredCol int
}

// NewManager creates a cursor manager. With sticky set, moving up or down
// through shorter lines returns to the original column afterwards.
func NewManager(editor Editor, sticky bool) *Manager {
	return &Manager{editor: editor, sticky: sticky}
}

// GetPosition returns the current cursor position
func (m *Manager) GetPosition() types.Position {
	return m.editor.GetBuffer().Cursor()
}

// Sync records the current column as the one vertical moves aim for.
// The editor calls it after every edit.
func (m *Manager) Sync() {
	m.desiredCol = m.GetPosition().Col
}

// Move applies a navigation action and reports whether the cursor moved.
// Any other action reaching the cursor mover is a dispatch bug and panics.
func (m *Manager) Move(action input.Action) bool {
	before := m.GetPosition()
	switch action {
	case input.ActionMoveLeft:
		m.MoveLeft()
	case input.ActionMoveRight:
		m.MoveRight()
	case input.ActionMoveUp:
		m.MoveVertical(-1)
	case input.ActionMoveDown:
		m.MoveVertical(1)
	case input.ActionMovePageUp:
		m.PageMove(-1)
	case input.ActionMovePageDown:
		m.PageMove(1)
	case input.ActionMoveHome:
		m.MoveToLineStart()
	case input.ActionMoveEnd:
		m.MoveToLineEnd()
	default:
		panic(fmt.Sprintf("cursor: %v is not a navigation action", action))
	}
	after := m.GetPosition()
	if after != before {
		logger.DebugTagf("cursor", "Cursor %v -> %v", before, after)
	}
	return after != before
}

// MoveLeft moves one column left, to the end of the previous line at the
// start of a line.
func (m *Manager) MoveLeft() {
	buf := m.editor.GetBuffer()
	pos := buf.Cursor()
	switch {
	case pos.Col > 0:
		pos.Col--
	case pos.Line > 0 && !m.editor.IsSingleLine():
		pos.Line--
		pos.Col = buf.LineLen(pos.Line)
	default:
		return
	}
	buf.SetCursor(pos)
	m.desiredCol = pos.Col
}

// MoveRight moves one column right, to the start of the next line at the
// end of a line.
func (m *Manager) MoveRight() {
	buf := m.editor.GetBuffer()
	pos := buf.Cursor()
	switch {
	case pos.Col < buf.LineLen(pos.Line):
		pos.Col++
	case pos.Line < buf.LineCount()-1 && !m.editor.IsSingleLine():
		pos.Line++
		pos.Col = 0
	default:
		return
	}
	buf.SetCursor(pos)
	m.desiredCol = pos.Col
}

// MoveVertical moves delta rows, clamped to the buffer, and clamps the
// column to the target line.
func (m *Manager) MoveVertical(delta int) {
	if m.editor.IsSingleLine() {
		return
	}
	buf := m.editor.GetBuffer()
	pos := buf.Cursor()

	target := pos.Line + delta
	if target < 0 {
		target = 0
	}
	if last := buf.LineCount() - 1; target > last {
		target = last
	}
	if target == pos.Line {
		return
	}

	col := pos.Col
	if m.sticky && m.desiredCol > col {
		col = m.desiredCol
	}
	if n := buf.LineLen(target); col > n {
		col = n
	}
	if !m.sticky {
		m.desiredCol = col
	}
	buf.SetCursor(types.Position{Line: target, Col: col})
}

// PageMove moves the cursor by the given number of pages
func (m *Manager) PageMove(deltaPages int) {
	m.MoveVertical(deltaPages * PageJump)
}

// MoveToLineStart moves the cursor to the start of the current line
func (m *Manager) MoveToLineStart() {
	buf := m.editor.GetBuffer()
	buf.SetCursor(types.Position{Line: buf.Cursor().Line, Col: 0})
	m.desiredCol = 0
}

// MoveToLineEnd moves the cursor to the end of the current line
func (m *Manager) MoveToLineEnd() {
	buf := m.editor.GetBuffer()
	line := buf.Cursor().Line
	buf.SetCursor(types.Position{Line: line, Col: buf.LineLen(line)})
	m.desiredCol = buf.Cursor().Col
}
