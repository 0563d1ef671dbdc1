// internal/tui/scope.go
package tui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// WithPosition runs fn with the cursor at (x, y) and restores the previous
// position afterwards, including when fn panics.
func WithPosition(t Terminal, x, y int, fn func()) {
	ox, oy := t.CursorPos()
	defer t.SetCursorPos(ox, oy)
	t.SetCursorPos(x, y)
	fn()
}

// WithCurrentPosition runs fn and puts the cursor back where it was.
func WithCurrentPosition(t Terminal, fn func()) {
	ox, oy := t.CursorPos()
	defer t.SetCursorPos(ox, oy)
	fn()
}

// WithForeground runs fn with foreground color c and restores the old color.
func WithForeground(t Terminal, c tcell.Color, fn func()) {
	old := t.Foreground()
	defer t.SetForeground(old)
	t.SetForeground(c)
	fn()
}

// WithBackground runs fn with background color c and restores the old color.
func WithBackground(t Terminal, c tcell.Color, fn func()) {
	old := t.Background()
	defer t.SetBackground(old)
	t.SetBackground(c)
	fn()
}

// ClearLine blanks the current row from fromX to the right edge of the
// buffer and leaves the cursor at fromX.
func ClearLine(t Terminal, fromX int) {
	_, y := t.CursorPos()
	w, _ := t.BufferSize()
	if fromX < 0 {
		fromX = 0
	}
	t.SetCursorPos(fromX, y)
	if n := w - fromX; n > 0 {
		t.Write(strings.Repeat(" ", n))
	}
	t.SetCursorPos(fromX, y)
}
