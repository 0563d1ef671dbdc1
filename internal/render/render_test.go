package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/scriptbench/internal/buffer"
	"github.com/bethropolis/scriptbench/internal/config"
	"github.com/bethropolis/scriptbench/internal/highlighter"
	"github.com/bethropolis/scriptbench/internal/statusbar"
	"github.com/bethropolis/scriptbench/internal/tui"
	"github.com/bethropolis/scriptbench/internal/types"
)

func newConsole(t *testing.T, w, h int) *tui.Console {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return tui.NewConsole(s)
}

// fakeHighlighter colors everything green and restarts at the line start.
type fakeHighlighter struct {
	diags []types.Diagnostic
	calls int
}

func (f *fakeHighlighter) Highlight(lines []string, from types.Position) highlighter.Result {
	f.calls++
	text := strings.Join(lines[from.Line:], "\n")
	return highlighter.Result{
		Spans:       highlighter.AppendSplit(nil, text, tcell.ColorGreen),
		Restart:     types.Position{Line: from.Line},
		Diagnostics: f.diags,
	}
}

func (f *fakeHighlighter) HighlightText(text string) []types.Span {
	return highlighter.AppendSplit(nil, text, tcell.ColorGreen)
}

func multiLine(t *testing.T, c *tui.Console, text string, opts Options) (*Renderer, *buffer.SliceBuffer) {
	t.Helper()
	buf := buffer.NewSliceBuffer(text)
	opts.FrameColor = tcell.ColorDarkGray
	return NewRenderer(c, buf, NewMapper(types.Point{X: GutterWidth, Y: 0}, false), opts), buf
}

func TestFormatLineNumber(t *testing.T) {
	assert.Equal(t, "    1 │ ", FormatLineNumber(1, "│"))
	assert.Equal(t, "  300 | ", FormatLineNumber(300, "|"))
	assert.Equal(t, " 12345 │ ", FormatLineNumber(12345, "│"))
	assert.Len(t, []rune(FormatLineNumber(9999, "│")), GutterWidth)
}

func TestRenderSingleLineRewrite(t *testing.T) {
	c := newConsole(t, 40, 4)
	r, _ := multiLine(t, c, "abc", Options{})

	pass := r.Render(types.Position{})
	assert.Equal(t, PathLine, pass.Path)
	assert.Equal(t, 0, pass.Delta)
	assert.Equal(t, "    1 │ abc", c.Row(0))

	_, fg := c.CellAt(1, 0)
	assert.Equal(t, tcell.ColorDarkGray, fg, "gutter uses the frame color")
}

func TestRenderSplitAndJoin(t *testing.T) {
	c := newConsole(t, 40, 4)
	r, buf := multiLine(t, c, "abc", Options{})
	r.Render(types.Position{})

	buf.SplitAt(0, 1)
	pass := r.Render(types.Position{Line: 0})
	assert.Equal(t, PathFromRow, pass.Path)
	assert.Equal(t, 1, pass.Delta)
	assert.Equal(t, "    1 │ a", c.Row(0))
	assert.Equal(t, "    2 │ bc", c.Row(1))
	assert.Equal(t, 2, r.LastLineCount())

	require.True(t, buf.EraseCharBefore(1, 0))
	pass = r.Render(types.Position{Line: 0, Col: 1})
	assert.Equal(t, -1, pass.Delta)
	assert.Equal(t, "    1 │ abc", c.Row(0))
	assert.Equal(t, "", c.Row(1), "removed row is wiped with its gutter")
}

func TestRenderClearAllWipesRows(t *testing.T) {
	c := newConsole(t, 40, 6)
	r, buf := multiLine(t, c, "a", Options{})
	r.Render(types.Position{})
	buf.AppendText("\nb\nc\nd")
	pass := r.Render(types.Position{})
	assert.Equal(t, 3, pass.Delta)
	assert.Equal(t, "    4 │ d", c.Row(3))

	buf.ClearAll()
	pass = r.Render(types.Position{})
	assert.Equal(t, -3, pass.Delta)
	assert.Equal(t, "    1 │", c.Row(0))
	for y := 1; y < 4; y++ {
		assert.Equal(t, "", c.Row(y))
	}
}

func TestRenderRestoresTerminalCursor(t *testing.T) {
	c := newConsole(t, 40, 5)
	r, buf := multiLine(t, c, "x\ny", Options{})
	c.SetCursorPos(3, 4)

	buf.SplitAt(1, 1)
	r.Render(types.Position{Line: 1})
	x, y := c.CursorPos()
	assert.Equal(t, 3, x)
	assert.Equal(t, 4, y)
	assert.Equal(t, tcell.ColorDefault, c.Foreground())
}

func TestRenderSingleLineMode(t *testing.T) {
	c := newConsole(t, 20, 2)
	c.Write("> ")
	buf := buffer.NewSliceBuffer("hi")
	r := NewRenderer(c, buf, NewMapper(types.Point{X: 2, Y: 0}, true), Options{SingleLine: true})

	r.Render(types.Position{})
	assert.Equal(t, "> hi", c.Row(0))

	buf.EraseCharBefore(0, 2)
	pass := r.Render(types.Position{Line: 0, Col: 1})
	assert.Equal(t, PathLine, pass.Path)
	assert.Equal(t, "> h", c.Row(0))
}

func TestRenderShowsWhitespace(t *testing.T) {
	c := newConsole(t, 40, 2)
	r, _ := multiLine(t, c, "a b", Options{ShowWhitespace: true, WhitespaceGlyph: "·", WhitespaceColor: tcell.ColorBlue})

	r.Render(types.Position{})
	assert.Equal(t, "    1 │ a·b", c.Row(0))
	_, fg := c.CellAt(GutterWidth+1, 0)
	assert.Equal(t, tcell.ColorBlue, fg)
}

func TestRenderAppend(t *testing.T) {
	c := newConsole(t, 40, 2)
	r, buf := multiLine(t, c, "ab", Options{})
	r.Render(types.Position{})

	buf.InsertChar(0, 2, 'c')
	r.Append(types.Position{Line: 0, Col: 2}, "c")
	assert.Equal(t, "    1 │ abc", c.Row(0))
}

func TestClearLineTwiceKeepsGutter(t *testing.T) {
	c := newConsole(t, 40, 2)
	r, _ := multiLine(t, c, "hello", Options{})
	r.Render(types.Position{})

	require.NoError(t, r.ClearLine(0, 2, false))
	once := c.Row(0)
	require.NoError(t, r.ClearLine(0, 2, false))
	assert.Equal(t, once, c.Row(0))
	assert.Equal(t, "    1 │ he", once)
	x, _ := c.CursorPos()
	assert.Equal(t, GutterWidth+2, x)
}

func TestRenderHighlightedReportsDiagnostics(t *testing.T) {
	c := newConsole(t, 40, 6)
	header := statusbar.New(statusbar.DefaultConfig())
	header.SetMessageBox(types.Point{X: 2, Y: 4})
	hl := &fakeHighlighter{}
	r, buf := multiLine(t, c, "one\ntwo", Options{Highlighter: hl, Header: header, MaxHighlightedLines: 300})

	pass := r.Render(types.Position{})
	assert.Equal(t, PathHighlight, pass.Path)
	assert.Equal(t, "    1 │ one", c.Row(0))
	assert.Equal(t, "    2 │ two", c.Row(1))
	_, fg := c.CellAt(GutterWidth, 1)
	assert.Equal(t, tcell.ColorGreen, fg)
	assert.Equal(t, "  No errors found.", c.Row(4))
	assert.Equal(t, "No errors found.", c.Title())

	hl.diags = []types.Diagnostic{{Message: "ERROR: bad"}, {Message: "WARNING: later"}}
	buf.InsertChar(1, 3, '!')
	pass = r.Render(types.Position{Line: 1, Col: 3})
	assert.True(t, pass.HeaderChanged)
	assert.Equal(t, "    2 │ two!", c.Row(1))
	assert.Equal(t, "  ERROR: bad", c.Row(4))
	_, fg = c.CellAt(2, 4)
	assert.Equal(t, tcell.ColorRed, fg)
}

func TestRenderFileTooLarge(t *testing.T) {
	c := newConsole(t, 60, 8)
	header := statusbar.New(statusbar.DefaultConfig())
	hl := &fakeHighlighter{}
	r, buf := multiLine(t, c, "a\nb", Options{Highlighter: hl, Header: header, MaxHighlightedLines: 2})
	r.Render(types.Position{})
	assert.True(t, header.IsDefault())

	buf.SetCursor(types.Position{Line: 1, Col: 1})
	buf.SplitAt(1, 1)
	pass := r.Render(types.Position{Line: 1})
	assert.True(t, pass.HeaderChanged)
	msg, _ := header.Message()
	assert.Equal(t, ErrFileTooLarge.Error(), msg)
	assert.Equal(t, "    3 │", c.Row(2), "editing still paints")

	require.True(t, buf.EraseCharBefore(2, 0))
	r.Render(types.Position{Line: 1, Col: 1})
	assert.True(t, header.IsDefault())
}

func TestMapperPhysicalAndGrowth(t *testing.T) {
	c := newConsole(t, 20, 2)
	m := NewMapper(types.Point{X: 8, Y: 1}, false)

	p := m.Physical(types.Position{Line: 2, Col: 1}, "世a")
	assert.Equal(t, types.Point{X: 10, Y: 3}, p)

	m.Place(c, types.Position{Line: 4, Col: 0}, "")
	_, h := c.BufferSize()
	assert.Equal(t, 6, h)
	x, y := c.CursorPos()
	assert.Equal(t, 8, x)
	assert.Equal(t, 5, y)

	single := NewMapper(types.Point{X: 2, Y: 1}, true)
	assert.Equal(t, 1, single.Physical(types.Position{Line: 3}, "").Y, "single-line origin never moves")
}

func TestMapperFitWidth(t *testing.T) {
	c := newConsole(t, 20, 2)
	m := NewMapper(types.Point{X: 8, Y: 0}, false)

	m.FitWidth(c, []string{"short", strings.Repeat("x", 30)})
	w, _ := c.BufferSize()
	assert.Equal(t, 39, w)

	m.FitWidth(c, []string{"short"})
	w, _ = c.BufferSize()
	assert.Equal(t, 20, w)
}

func TestVisualWidth(t *testing.T) {
	assert.Equal(t, 0, VisualWidth(""))
	assert.Equal(t, 3, VisualWidth("a\tb"))
	assert.Equal(t, 4, VisualWidth("世界"))
	assert.Equal(t, "hé", runePrefix("héllo", 2))
	assert.Equal(t, "ab", runePrefix("ab", 5))
}

func TestFrame(t *testing.T) {
	c := newConsole(t, 60, 10)
	f := Frame{Glyphs: config.DefaultGlyphs(), Color: tcell.ColorDarkGray, Accent: tcell.ColorDarkCyan}

	box := f.DrawTop(c, true)
	require.NotNil(t, box)
	assert.Equal(t, types.Point{X: 2, Y: 2}, *box)
	assert.True(t, strings.HasPrefix(c.Row(0), "┌───"))
	assert.Equal(t, "│ "+KeyHelp, c.Row(1))
	assert.Equal(t, "│", c.Row(2))
	assert.True(t, strings.HasPrefix(c.Row(3), "└─────┬──"))
	_, fg := c.CellAt(2, 1)
	assert.Equal(t, tcell.ColorDarkCyan, fg)
	x, y := c.CursorPos()
	assert.Equal(t, 0, x)
	assert.Equal(t, 4, y)

	f.DrawBottom(c, 6)
	assert.True(t, strings.HasPrefix(c.Row(6), "──────┴──"))
	assert.Len(t, []rune(c.Row(6)), 60)

	Erase(c, 0, 6)
	for row := 0; row <= 6; row++ {
		assert.Equal(t, "", c.Row(row))
	}
}

func TestFrameWithoutMessageBox(t *testing.T) {
	c := newConsole(t, 60, 6)
	f := Frame{Glyphs: config.DefaultGlyphs()}
	assert.Nil(t, f.DrawTop(c, false))
	_, y := c.CursorPos()
	assert.Equal(t, 3, y)
}
