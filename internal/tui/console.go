// internal/tui/console.go
package tui

import (
	"fmt"
	"strings"

	"github.com/bethropolis/scriptbench/internal/logger"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// cell is one buffer position. A zero rune marks the right half of a wide
// character, or a cell that was never written.
type cell struct {
	r     rune
	comb  []rune
	style tcell.Style
	wide  bool // Right half of the previous cell
}

// Console implements Terminal on a tcell screen. It keeps a virtual buffer
// of cells that can grow past the window, and shows the part of it that
// contains the cursor.
type Console struct {
	screen tcell.Screen
	rows   [][]cell
	width  int

	x, y   int
	fg, bg tcell.Color

	top, left int // Viewport origin inside the buffer
	title     string
}

// Open creates, initializes and wraps the real terminal screen.
func Open() (*Console, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize tcell screen: %w", err)
	}
	return NewConsole(s), nil
}

// NewConsole wraps an initialized screen. The buffer starts at the window size.
func NewConsole(screen tcell.Screen) *Console {
	w, h := screen.Size()
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := &Console{
		screen: screen,
		width:  w,
		fg:     tcell.ColorDefault,
		bg:     tcell.ColorDefault,
	}
	c.SetBufferSize(w, h)
	return c
}

// Close finalizes the tcell screen.
func (c *Console) Close() {
	if c.screen != nil {
		c.screen.Fini()
	}
}

// ReadKey flushes pending output and blocks until a key arrives.
// Resize events redraw the screen and are not returned.
func (c *Console) ReadKey() (KeyEvent, error) {
	c.Flush()
	for {
		switch ev := c.screen.PollEvent().(type) {
		case nil:
			return KeyEvent{}, ErrClosed
		case *tcell.EventKey:
			return KeyFromEvent(ev), nil
		case *tcell.EventResize:
			logger.DebugTagf("tui", "Resize event, window width now %d", c.WindowWidth())
			c.screen.Sync()
			c.Flush()
		}
	}
}

func (c *Console) style() tcell.Style {
	return tcell.StyleDefault.Foreground(c.fg).Background(c.bg)
}

// Write puts text at the cursor and advances it by grapheme cluster width.
// '\n' starts the next row. Text reaching the right edge wraps; rows are
// added at the bottom as needed. A tab takes a single cell.
func (c *Console) Write(text string) {
	st := c.style()
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		runes, w := gr.Runes(), gr.Width()
		switch gr.Str() {
		case "\n", "\r\n":
			c.newline()
			continue
		case "\r":
			continue
		case "\t":
			runes, w = []rune{' '}, 1
		}
		if w == 0 {
			for _, r := range runes {
				c.combine(r)
			}
			continue
		}
		if w > 2 {
			w = 2
		}
		if c.x+w > c.width {
			c.newline()
		}
		row := c.rows[c.y]
		row[c.x] = cell{r: runes[0], comb: runes[1:], style: st}
		if w == 2 && c.x+1 < c.width {
			row[c.x+1] = cell{style: st, wide: true}
		}
		c.x += w
	}
}

// WriteLine writes text followed by a line break.
func (c *Console) WriteLine(text string) {
	c.Write(text)
	c.newline()
}

func (c *Console) newline() {
	c.x = 0
	c.y++
	if c.y >= len(c.rows) {
		c.rows = append(c.rows, make([]cell, c.width))
	}
}

// combine attaches a zero-width rune to the previously written cell.
func (c *Console) combine(r rune) {
	x := c.x - 1
	for x >= 0 && c.rows[c.y][x].wide {
		x--
	}
	if x < 0 {
		return
	}
	c.rows[c.y][x].comb = append(c.rows[c.y][x].comb, r)
}

func (c *Console) SetForeground(col tcell.Color) { c.fg = col }
func (c *Console) Foreground() tcell.Color       { return c.fg }
func (c *Console) SetBackground(col tcell.Color) { c.bg = col }
func (c *Console) Background() tcell.Color       { return c.bg }

// SetTitle sets the window title, where the terminal supports one.
func (c *Console) SetTitle(title string) {
	c.title = title
	c.screen.SetTitle(title)
}

// Title returns the last title set.
func (c *Console) Title() string {
	return c.title
}

// CursorPos returns the cursor in buffer coordinates.
func (c *Console) CursorPos() (int, int) {
	return c.x, c.y
}

// SetCursorPos moves the cursor, clamped to the buffer.
func (c *Console) SetCursorPos(x, y int) {
	c.x = clamp(x, 0, c.width-1)
	c.y = clamp(y, 0, len(c.rows)-1)
}

// BufferSize returns the buffer dimensions in cells.
func (c *Console) BufferSize() (int, int) {
	return c.width, len(c.rows)
}

// SetBufferSize resizes the buffer. Content outside the new size is dropped.
func (c *Console) SetBufferSize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	for i := range c.rows {
		c.rows[i] = resizeRow(c.rows[i], w)
	}
	for len(c.rows) < h {
		c.rows = append(c.rows, make([]cell, w))
	}
	c.rows = c.rows[:h]
	c.width = w
	c.SetCursorPos(c.x, c.y)
}

func resizeRow(row []cell, w int) []cell {
	if len(row) >= w {
		return row[:w]
	}
	return append(row, make([]cell, w-len(row))...)
}

// WindowWidth is the visible width of the screen.
func (c *Console) WindowWidth() int {
	w, _ := c.screen.Size()
	return w
}

// Flush scrolls the viewport to the cursor and copies it to the screen.
func (c *Console) Flush() {
	sw, sh := c.screen.Size()
	if sw <= 0 || sh <= 0 {
		return
	}

	if c.y < c.top {
		c.top = c.y
	} else if c.y >= c.top+sh {
		c.top = c.y - sh + 1
	}
	if c.x < c.left {
		c.left = c.x
	} else if c.x >= c.left+sw {
		c.left = c.x - sw + 1
	}

	for sy := 0; sy < sh; sy++ {
		by := c.top + sy
		for sx := 0; sx < sw; sx++ {
			bx := c.left + sx
			if by >= len(c.rows) || bx >= c.width {
				c.screen.SetContent(sx, sy, ' ', nil, tcell.StyleDefault)
				continue
			}
			cl := c.rows[by][bx]
			switch {
			case cl.wide:
				// tcell draws the right half of a wide rune itself
			case cl.r == 0:
				c.screen.SetContent(sx, sy, ' ', nil, cl.style)
			default:
				c.screen.SetContent(sx, sy, cl.r, cl.comb, cl.style)
			}
		}
	}
	c.screen.ShowCursor(c.x-c.left, c.y-c.top)
	c.screen.Show()
}

// Row returns the text of a buffer row with trailing blanks removed.
func (c *Console) Row(y int) string {
	if y < 0 || y >= len(c.rows) {
		return ""
	}
	var sb strings.Builder
	for _, cl := range c.rows[y] {
		switch {
		case cl.wide:
		case cl.r == 0:
			sb.WriteRune(' ')
		default:
			sb.WriteRune(cl.r)
			for _, r := range cl.comb {
				sb.WriteRune(r)
			}
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

// CellAt returns the rune and foreground color stored at (x, y).
func (c *Console) CellAt(x, y int) (rune, tcell.Color) {
	if y < 0 || y >= len(c.rows) || x < 0 || x >= c.width {
		return 0, tcell.ColorDefault
	}
	cl := c.rows[y][x]
	fg, _, _ := cl.style.Decompose()
	return cl.r, fg
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
