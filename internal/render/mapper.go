// internal/render/mapper.go
package render

import (
	"github.com/rivo/uniseg"

	"github.com/bethropolis/scriptbench/internal/logger"
	"github.com/bethropolis/scriptbench/internal/tui"
	"github.com/bethropolis/scriptbench/internal/types"
)

// Mapper converts logical buffer positions to terminal cells. Logical (0,0)
// sits at the origin, which is fixed for the whole session.
type Mapper struct {
	origin     types.Point
	singleLine bool
}

// NewMapper creates a mapper for an edit box starting at origin.
func NewMapper(origin types.Point, singleLine bool) *Mapper {
	return &Mapper{origin: origin, singleLine: singleLine}
}

// Origin is where logical (0,0) is drawn.
func (m *Mapper) Origin() types.Point {
	return m.origin
}

// Physical returns the cell of pos, where line is the text of pos.Line.
func (m *Mapper) Physical(pos types.Position, line string) types.Point {
	return types.Point{
		X: m.origin.X + VisualWidth(runePrefix(line, pos.Col)),
		Y: m.RowY(pos.Line),
	}
}

// RowY returns the terminal row of a buffer row.
func (m *Mapper) RowY(row int) int {
	if m.singleLine {
		return m.origin.Y
	}
	return m.origin.Y + row
}

// Place moves the terminal cursor to pos, growing the terminal buffer
// downwards first when the row does not exist yet.
func (m *Mapper) Place(t tui.Terminal, pos types.Position, line string) types.Point {
	p := m.Physical(pos, line)
	m.ensureRow(t, p.Y)
	t.SetCursorPos(p.X, p.Y)
	return p
}

// PlaceRow moves the terminal cursor to column x of a buffer row.
func (m *Mapper) PlaceRow(t tui.Terminal, row, x int) {
	y := m.RowY(row)
	m.ensureRow(t, y)
	t.SetCursorPos(x, y)
}

func (m *Mapper) ensureRow(t tui.Terminal, y int) {
	w, h := t.BufferSize()
	if y >= h {
		logger.DebugTagf("render", "Growing buffer height %d -> %d", h, y+1)
		t.SetBufferSize(w, y+1)
	}
}

// FitWidth widens the terminal buffer so the longest line and the cursor
// after it fit without wrapping. When everything fits in the window the
// buffer width follows the window width.
func (m *Mapper) FitWidth(t tui.Terminal, lines []string) {
	longest := 0
	for _, l := range lines {
		if w := VisualWidth(l); w > longest {
			longest = w
		}
	}
	want := m.origin.X + longest + 1
	if ww := t.WindowWidth(); want < ww {
		want = ww
	}
	w, h := t.BufferSize()
	if want != w {
		logger.DebugTagf("render", "Buffer width %d -> %d", w, want)
		t.SetBufferSize(want, h)
	}
}

// VisualWidth is the number of cells text occupies. A tab counts as one.
func VisualWidth(text string) int {
	width := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		if gr.Str() == "\t" {
			width++
			continue
		}
		width += gr.Width()
	}
	return width
}

// runePrefix returns the first n runes of s.
func runePrefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
