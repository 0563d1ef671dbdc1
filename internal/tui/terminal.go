// internal/tui/terminal.go
package tui

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// ErrClosed is returned by ReadKey once the screen has been finalized.
var ErrClosed = errors.New("terminal closed")

// Terminal is the console the editor paints on. Positions are cells of a
// buffer that may be larger than the visible window.
type Terminal interface {
	ReadKey() (KeyEvent, error)

	Write(text string)
	WriteLine(text string)

	SetForeground(c tcell.Color)
	Foreground() tcell.Color
	SetBackground(c tcell.Color)
	Background() tcell.Color

	CursorPos() (x, y int)
	SetCursorPos(x, y int)

	SetTitle(title string)

	BufferSize() (w, h int)
	SetBufferSize(w, h int)
	WindowWidth() int

	// Flush makes everything written so far visible.
	Flush()
}

// KeyEvent is one key press.
type KeyEvent struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// NewKeyEvent builds a KeyEvent the way tcell would report it.
func NewKeyEvent(k tcell.Key, r rune, mod tcell.ModMask) KeyEvent {
	return KeyFromEvent(tcell.NewEventKey(k, r, mod))
}

// RuneKey is a printable character key.
func RuneKey(r rune) KeyEvent {
	return NewKeyEvent(tcell.KeyRune, r, tcell.ModNone)
}

// KeyFromEvent converts a tcell key event.
func KeyFromEvent(ev *tcell.EventKey) KeyEvent {
	return KeyEvent{Key: ev.Key(), Rune: ev.Rune(), Mod: ev.Modifiers()}
}
