// internal/render/frame.go
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/scriptbench/internal/config"
	"github.com/bethropolis/scriptbench/internal/tui"
	"github.com/bethropolis/scriptbench/internal/types"
)

// KeyHelp is the shortcut summary shown in the top frame.
const KeyHelp = "[Esc]x2 exit [F1] copy [F2] paste [F3]x2 clear all"

// Frame draws the box around a multi-line edit area.
type Frame struct {
	Glyphs config.Glyphs
	Color  tcell.Color // Lines and gutter
	Accent tcell.Color // Key help
}

// DrawTop draws the top frame from the cursor row down and leaves the
// cursor at the start of the first edit row. With a message box it returns
// where the message text starts.
func (f Frame) DrawTop(t tui.Terminal, withMessageBox bool) *types.Point {
	g := f.Glyphs
	w, _ := t.BufferSize()
	var box *types.Point

	tui.WithForeground(t, f.Color, func() {
		startRow(t)
		t.WriteLine(g.DownRight + horizontal(g.Horizontal, w-1))

		startRow(t)
		t.Write(g.Vertical + " ")
		tui.WithForeground(t, f.Accent, func() {
			t.WriteLine(runePrefix(KeyHelp, w-2))
		})

		if withMessageBox {
			startRow(t)
			t.Write(g.Vertical + " ")
			x, y := t.CursorPos()
			box = &types.Point{X: x, Y: y}
			t.WriteLine("")
		}

		startRow(t)
		t.WriteLine(g.UpRight + horizontal(g.Horizontal, separatorX-1) + g.HorizontalDown +
			horizontal(g.Horizontal, w-separatorX-1))
	})
	startRow(t)
	return box
}

// DrawBottom closes the frame on terminal row y and moves below it.
func (f Frame) DrawBottom(t tui.Terminal, y int) {
	g := f.Glyphs
	w, _ := t.BufferSize()
	growTo(t, y)
	t.SetCursorPos(0, y)
	tui.ClearLine(t, 0)
	tui.WithForeground(t, f.Color, func() {
		t.WriteLine(horizontal(g.Horizontal, separatorX) + g.HorizontalUp +
			horizontal(g.Horizontal, w-separatorX-1))
	})
}

// Erase blanks terminal rows top..bottom and leaves the cursor at the
// start of top.
func Erase(t tui.Terminal, top, bottom int) {
	for y := top; y <= bottom; y++ {
		growTo(t, y)
		t.SetCursorPos(0, y)
		tui.ClearLine(t, 0)
	}
	t.SetCursorPos(0, top)
}

// startRow clears the cursor row and moves to its first cell.
func startRow(t tui.Terminal) {
	_, y := t.CursorPos()
	t.SetCursorPos(0, y)
	tui.ClearLine(t, 0)
}

func growTo(t tui.Terminal, y int) {
	if w, h := t.BufferSize(); y >= h {
		t.SetBufferSize(w, y+1)
	}
}
