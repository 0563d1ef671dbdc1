// internal/tui/stream.go
package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// ErrNoInput is returned by ReadKey on an output-only terminal.
var ErrNoInput = errors.New("terminal has no input")

var _ Terminal = (*Stream)(nil)

// Stream is an output-only Terminal writing text with ANSI colors to a
// writer, for printing highlighted code after the screen is released.
// Text is appended in order; cursor positioning is tracked but never
// emitted, so only forward writes are meaningful.
type Stream struct {
	w     *bufio.Writer
	width int

	x, y   int
	fg, bg tcell.Color
	sgrFg  tcell.Color // Colors last sent to the writer
	sgrBg  tcell.Color
	title  string
	err    error
}

// NewStream creates a stream terminal width cells wide.
func NewStream(w io.Writer, width int) *Stream {
	if width < 1 {
		width = 80
	}
	return &Stream{
		w:     bufio.NewWriter(w),
		width: width,
		fg:    tcell.ColorDefault,
		bg:    tcell.ColorDefault,
		sgrFg: tcell.ColorDefault,
		sgrBg: tcell.ColorDefault,
	}
}

func (s *Stream) ReadKey() (KeyEvent, error) {
	return KeyEvent{}, ErrNoInput
}

func (s *Stream) Write(text string) {
	for _, r := range text {
		if r == '\n' {
			s.reset()
			s.put("\n")
			s.x = 0
			s.y++
			continue
		}
		s.sgr()
		s.put(string(r))
		s.x += runewidth.RuneWidth(r)
	}
}

func (s *Stream) WriteLine(text string) {
	s.Write(text + "\n")
}

func (s *Stream) SetForeground(c tcell.Color) { s.fg = c }
func (s *Stream) Foreground() tcell.Color     { return s.fg }
func (s *Stream) SetBackground(c tcell.Color) { s.bg = c }
func (s *Stream) Background() tcell.Color     { return s.bg }

func (s *Stream) CursorPos() (int, int) { return s.x, s.y }

// SetCursorPos only updates the tracked position.
func (s *Stream) SetCursorPos(x, y int) { s.x, s.y = x, y }

// SetTitle is recorded but not emitted.
func (s *Stream) SetTitle(title string) { s.title = title }

func (s *Stream) BufferSize() (int, int) { return s.width, s.y + 1 }
func (s *Stream) SetBufferSize(w, _ int) {
	if w > s.width {
		s.width = w
	}
}
func (s *Stream) WindowWidth() int { return s.width }

// Flush resets the colors and writes out buffered output.
func (s *Stream) Flush() {
	s.reset()
	if err := s.w.Flush(); err != nil && s.err == nil {
		s.err = err
	}
}

// Err returns the first write error.
func (s *Stream) Err() error {
	return s.err
}

func (s *Stream) put(text string) {
	if _, err := s.w.WriteString(text); err != nil && s.err == nil {
		s.err = err
	}
}

// sgr sends the current colors if they differ from the last ones sent.
func (s *Stream) sgr() {
	if s.fg != s.sgrFg {
		s.put(sgrColor(s.fg, 38))
		s.sgrFg = s.fg
	}
	if s.bg != s.sgrBg {
		s.put(sgrColor(s.bg, 48))
		s.sgrBg = s.bg
	}
}

func (s *Stream) reset() {
	if s.sgrFg != tcell.ColorDefault || s.sgrBg != tcell.ColorDefault {
		s.put("\x1b[0m")
		s.sgrFg, s.sgrBg = tcell.ColorDefault, tcell.ColorDefault
	}
}

// sgrColor returns the escape selecting c; base is 38 for the foreground
// and 48 for the background.
func sgrColor(c tcell.Color, base int) string {
	if c == tcell.ColorDefault || c == tcell.ColorReset {
		return fmt.Sprintf("\x1b[%dm", base+1)
	}
	r, g, b := c.RGB()
	return fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", base, r, g, b)
}
