// internal/render/renderer.go
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/scriptbench/internal/buffer"
	"github.com/bethropolis/scriptbench/internal/highlighter"
	"github.com/bethropolis/scriptbench/internal/logger"
	"github.com/bethropolis/scriptbench/internal/statusbar"
	"github.com/bethropolis/scriptbench/internal/tui"
	"github.com/bethropolis/scriptbench/internal/types"
)

// Path names the repaint strategy a pass used.
type Path int

const (
	PathLine      Path = iota // Only the edited line
	PathFromRow               // Every line from the edited row down
	PathHighlight             // Highlighter spans from its restart point
)

func (p Path) String() string {
	switch p {
	case PathFromRow:
		return "from-row"
	case PathHighlight:
		return "highlight"
	default:
		return "line"
	}
}

// Pass describes one completed repaint.
type Pass struct {
	Path  Path
	Delta int // Line count change since the previous pass
	// HeaderChanged is set when the header shows a different message now.
	HeaderChanged bool
}

// Options configures a Renderer.
type Options struct {
	SingleLine bool

	// Highlighter is nil when highlighting is off.
	Highlighter         highlighter.Highlighter
	MaxHighlightedLines int

	Separator       string // Gutter separator glyph
	ShowWhitespace  bool
	WhitespaceGlyph string

	TextColor       tcell.Color
	FrameColor      tcell.Color
	WhitespaceColor tcell.Color

	// Header receives diagnostics; may be nil.
	Header *statusbar.StatusBar
}

// Renderer keeps the terminal in step with the buffer. After every edit it
// repaints as little as the edit allows, based on how the line count changed.
type Renderer struct {
	term   tui.Terminal
	buf    buffer.Buffer
	mapper *Mapper
	opts   Options

	lastLineCount int
	status        error // First gutter status of the current pass
	row           int   // Buffer row being painted
}

// NewRenderer creates a renderer. The first pass treats the terminal as
// showing one line.
func NewRenderer(term tui.Terminal, buf buffer.Buffer, mapper *Mapper, opts Options) *Renderer {
	if opts.WhitespaceGlyph == "" {
		opts.WhitespaceGlyph = "·"
	}
	if opts.Separator == "" {
		opts.Separator = "│"
	}
	return &Renderer{
		term:          term,
		buf:           buf,
		mapper:        mapper,
		opts:          opts,
		lastLineCount: 1,
	}
}

// Mapper returns the coordinate mapper in use.
func (r *Renderer) Mapper() *Mapper {
	return r.mapper
}

// LastLineCount is the number of lines shown after the last pass.
func (r *Renderer) LastLineCount() int {
	return r.lastLineCount
}

// Highlighting reports whether passes go through the highlighter.
func (r *Renderer) Highlighting() bool {
	return r.opts.Highlighter != nil
}

// Render repaints after an edit. from is the earliest position the edit
// changed. The terminal cursor is restored afterwards; callers place it on
// the logical cursor themselves.
func (r *Renderer) Render(from types.Position) Pass {
	lines := r.buf.Lines()
	count := len(lines)
	pass := Pass{Delta: count - r.lastLineCount}
	from = clampPosition(from, lines)
	r.status = nil

	var diags []types.Diagnostic
	tui.WithCurrentPosition(r.term, func() {
		r.mapper.FitWidth(r.term, lines)

		switch {
		case r.opts.Highlighter != nil:
			pass.Path = PathHighlight
			diags = r.highlight(lines, from)
		case !r.opts.SingleLine && pass.Delta != 0:
			pass.Path = PathFromRow
			for row := from.Line; row < count; row++ {
				r.rewriteLine(lines, row)
			}
		default:
			pass.Path = PathLine
			r.rewriteLine(lines, from.Line)
		}

		switch {
		case pass.Delta > 0 && !r.opts.SingleLine:
			// Rows that appeared at the bottom get their numbers
			for row := r.lastLineCount; row < count; row++ {
				r.mapper.PlaceRow(r.term, row, 0)
				r.note(r.gutter())
			}
		case pass.Delta < 0:
			// Rows that disappeared are wiped, gutter included
			for row := count; row < r.lastLineCount; row++ {
				r.ClearLine(row, 0, true)
			}
		}
	})
	r.lastLineCount = count

	if r.opts.Highlighter != nil {
		pass.HeaderChanged = r.report(diags)
	}

	logger.DebugTagf("render", "Pass %s from %v, delta %d, %d lines", pass.Path, from, pass.Delta, count)
	return pass
}

// Append paints text at pos without touching the rest of the line. It is
// used when a character was added at the very end of the buffer.
func (r *Renderer) Append(pos types.Position, text string) {
	lines := r.buf.Lines()
	pos = clampPosition(pos, lines)
	tui.WithCurrentPosition(r.term, func() {
		r.mapper.FitWidth(r.term, lines)
		r.mapper.Place(r.term, pos, lines[pos.Line])
		r.row = pos.Line
		r.paint(highlighter.AppendSplit(nil, text, r.opts.TextColor))
	})
}

// ClearLine blanks a buffer row from logical column fromCol to the right
// edge and leaves the cursor at the first blank cell. In multi-line mode the
// line number is printed again first, and its status returned. A full clear
// wipes the gutter as well.
func (r *Renderer) ClearLine(row, fromCol int, full bool) error {
	if full {
		r.mapper.PlaceRow(r.term, row, 0)
		tui.ClearLine(r.term, 0)
		return nil
	}

	line, _ := r.buf.Line(row)
	x := r.mapper.Physical(types.Position{Line: row, Col: fromCol}, line).X
	if r.opts.SingleLine {
		r.mapper.PlaceRow(r.term, row, x)
		tui.ClearLine(r.term, x)
		return nil
	}

	r.mapper.PlaceRow(r.term, row, 0)
	err := r.gutter()
	tui.ClearLine(r.term, x)
	return err
}

// ClearLines clears row from.Line starting at from.Col, then every following
// row of the buffer. The terminal cursor is restored.
func (r *Renderer) ClearLines(from types.Position) error {
	var status error
	tui.WithCurrentPosition(r.term, func() {
		status = r.ClearLine(from.Line, from.Col, false)
		for row := from.Line + 1; row < r.buf.LineCount(); row++ {
			if err := r.ClearLine(row, 0, false); err != nil && status == nil {
				status = err
			}
		}
	})
	return status
}

// gutter prints the line number of the row under the cursor. The result is
// ErrFileTooLarge once a highlighted buffer is over the line ceiling.
func (r *Renderer) gutter() error {
	_, y := r.term.CursorPos()
	row := y - r.mapper.Origin().Y
	PrintLineNumber(r.term, row+1, r.opts.Separator, r.opts.FrameColor)

	if r.opts.Highlighter != nil && r.opts.MaxHighlightedLines > 0 &&
		r.buf.LineCount() > r.opts.MaxHighlightedLines {
		return ErrFileTooLarge
	}
	return nil
}

// note keeps the first status of a pass.
func (r *Renderer) note(err error) {
	if err != nil && r.status == nil {
		logger.DebugTagf("render", "Gutter status: %v", err)
		r.status = err
	}
}

func (r *Renderer) rewriteLine(lines []string, row int) {
	r.note(r.ClearLine(row, 0, false))
	r.row = row
	r.paint(highlighter.AppendSplit(nil, lines[row], r.opts.TextColor))
}

func clampPosition(p types.Position, lines []string) types.Position {
	if p.Line < 0 {
		p.Line = 0
	}
	if p.Line >= len(lines) {
		p.Line = len(lines) - 1
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if n := len([]rune(lines[p.Line])); p.Col > n {
		p.Col = n
	}
	return p
}
