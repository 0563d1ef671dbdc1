package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bethropolis/scriptbench/internal/buffer"
	"github.com/bethropolis/scriptbench/internal/input"
	"github.com/bethropolis/scriptbench/internal/types"
)

type testEditor struct {
	buf        buffer.Buffer
	singleLine bool
}

func (e *testEditor) GetBuffer() buffer.Buffer { return e.buf }
func (e *testEditor) IsSingleLine() bool       { return e.singleLine }

func newManager(text string, pos types.Position, sticky bool) (*Manager, buffer.Buffer) {
	buf := buffer.NewSliceBuffer(text)
	buf.SetCursor(pos)
	m := NewManager(&testEditor{buf: buf}, sticky)
	m.Sync()
	return m, buf
}

func TestHorizontalWrap(t *testing.T) {
	m, buf := newManager("ab\ncd", types.Position{Line: 1, Col: 0}, false)

	assert.True(t, m.Move(input.ActionMoveLeft))
	assert.Equal(t, types.Position{Line: 0, Col: 2}, buf.Cursor())

	assert.True(t, m.Move(input.ActionMoveRight))
	assert.Equal(t, types.Position{Line: 1, Col: 0}, buf.Cursor())

	buf.SetCursor(types.Position{Line: 1, Col: 2})
	assert.False(t, m.Move(input.ActionMoveRight), "end of buffer")
	buf.SetCursor(types.Position{})
	assert.False(t, m.Move(input.ActionMoveLeft), "start of buffer")
}

func TestSingleLineDoesNotWrapOrMoveVertically(t *testing.T) {
	buf := buffer.NewSliceBuffer("abc")
	m := NewManager(&testEditor{buf: buf, singleLine: true}, true)

	assert.False(t, m.Move(input.ActionMoveUp))
	assert.False(t, m.Move(input.ActionMovePageDown))
	assert.True(t, m.Move(input.ActionMoveEnd))
	assert.Equal(t, 3, buf.Cursor().Col)
	assert.False(t, m.Move(input.ActionMoveRight))
}

func TestVerticalClampsColumn(t *testing.T) {
	m, buf := newManager("long line\nab\nanother long", types.Position{Line: 0, Col: 7}, false)

	m.Move(input.ActionMoveDown)
	assert.Equal(t, types.Position{Line: 1, Col: 2}, buf.Cursor())
	m.Move(input.ActionMoveDown)
	assert.Equal(t, types.Position{Line: 2, Col: 2}, buf.Cursor(), "non-sticky keeps the clamped column")
}

func TestStickyColumn(t *testing.T) {
	m, buf := newManager("long line\nab\nanother long", types.Position{Line: 0, Col: 7}, true)

	m.Move(input.ActionMoveDown)
	assert.Equal(t, types.Position{Line: 1, Col: 2}, buf.Cursor())
	m.Move(input.ActionMoveDown)
	assert.Equal(t, types.Position{Line: 2, Col: 7}, buf.Cursor())

	m.Move(input.ActionMoveHome)
	m.Move(input.ActionMoveUp)
	assert.Equal(t, types.Position{Line: 1, Col: 0}, buf.Cursor(), "horizontal moves reset the column")
}

func TestPageMove(t *testing.T) {
	text := ""
	for i := 0; i < 25; i++ {
		if i > 0 {
			text += "\n"
		}
		text += "line"
	}
	m, buf := newManager(text, types.Position{Line: 3, Col: 4}, false)

	m.Move(input.ActionMovePageDown)
	assert.Equal(t, types.Position{Line: 13, Col: 4}, buf.Cursor())
	m.Move(input.ActionMovePageDown)
	m.Move(input.ActionMovePageDown)
	assert.Equal(t, 24, buf.Cursor().Line, "clamped to the last line")
	m.Move(input.ActionMovePageUp)
	assert.Equal(t, 14, buf.Cursor().Line)
	m.Move(input.ActionMovePageUp)
	m.Move(input.ActionMovePageUp)
	assert.Equal(t, 0, buf.Cursor().Line)
}

func TestHomeEnd(t *testing.T) {
	m, buf := newManager("  héllo", types.Position{Line: 0, Col: 3}, false)
	m.Move(input.ActionMoveEnd)
	assert.Equal(t, 7, buf.Cursor().Col)
	m.Move(input.ActionMoveHome)
	assert.Equal(t, 0, buf.Cursor().Col)
}

func TestMoveRejectsEditActions(t *testing.T) {
	m, _ := newManager("x", types.Position{}, false)
	assert.Panics(t, func() { m.Move(input.ActionInsertRune) })
}
