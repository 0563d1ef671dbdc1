// internal/core/editor.go
package core

import (
	"github.com/bethropolis/scriptbench/internal/buffer"
	"github.com/bethropolis/scriptbench/internal/clipboard"
	"github.com/bethropolis/scriptbench/internal/config"
	"github.com/bethropolis/scriptbench/internal/core/cursor"
	"github.com/bethropolis/scriptbench/internal/core/text"
	"github.com/bethropolis/scriptbench/internal/event"
	"github.com/bethropolis/scriptbench/internal/highlighter"
	"github.com/bethropolis/scriptbench/internal/logger"
	"github.com/bethropolis/scriptbench/internal/render"
	"github.com/bethropolis/scriptbench/internal/statusbar"
	"github.com/bethropolis/scriptbench/internal/theme"
	"github.com/bethropolis/scriptbench/internal/tui"
	"github.com/bethropolis/scriptbench/internal/types"
)

// TitlePrefix starts the window title while a session runs.
const TitlePrefix = config.AppName + ": "

// Options configures an Editor.
type Options struct {
	Settings   *config.Settings
	SingleLine bool
	Prompt     string

	// Highlighter is nil when highlighting is off.
	Highlighter highlighter.Highlighter
	Clipboard   clipboard.Clipboard
	Events      *event.Manager
}

// Editor ties the buffer to the terminal for one editing session.
type Editor struct {
	term       tui.Terminal
	buffer     buffer.Buffer
	settings   *config.Settings
	singleLine bool
	prompt     string

	highlighter highlighter.Highlighter
	palette     *theme.Theme
	header      *statusbar.StatusBar
	frame       render.Frame
	renderer    *render.Renderer // Set by Start, once the origin is known

	cursorManager *cursor.Manager
	textOps       *text.Operations
	clipboard     clipboard.Clipboard
	eventManager  *event.Manager

	top int // Terminal row the session started on
}

// NewEditor creates an editor over buf. Nothing is drawn until Start.
func NewEditor(term tui.Terminal, buf buffer.Buffer, opts Options) *Editor {
	settings := opts.Settings
	if settings == nil {
		settings = config.NewDefault()
	}
	palette := theme.FromSettings(settings)

	headerCfg := statusbar.DefaultConfig()
	headerCfg.DefaultText = settings.HeaderDefaultText
	headerCfg.TitlePrefix = TitlePrefix
	headerCfg.ColorError = palette.Foreground(theme.StyleError)
	headerCfg.ColorWarning = palette.Foreground(theme.StyleWarning)

	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.NewManager(settings.SystemClipboard)
	}
	events := opts.Events
	if events == nil {
		events = event.NewManager()
	}

	e := &Editor{
		term:        term,
		buffer:      buf,
		settings:    settings,
		singleLine:  opts.SingleLine,
		prompt:      opts.Prompt,
		highlighter: opts.Highlighter,
		palette:     palette,
		header:      statusbar.New(headerCfg),
		frame: render.Frame{
			Glyphs: settings.Glyphs,
			Color:  palette.Foreground(theme.StyleFrame),
			Accent: palette.Foreground(theme.StyleAccent),
		},
		clipboard:    clip,
		eventManager: events,
	}
	e.cursorManager = cursor.NewManager(e, settings.StickyColumn)
	e.textOps = text.NewOperations(e)
	return e
}

// Start draws the prompt or the top frame at the current terminal row and
// paints the initial content. The cursor ends at the end of the first line.
func (e *Editor) Start() {
	_, y := e.term.CursorPos()
	e.term.SetCursorPos(0, y)
	tui.ClearLine(e.term, 0)
	e.top = y

	var origin types.Point
	if e.singleLine {
		e.term.Write(e.prompt)
		origin.X, origin.Y = e.term.CursorPos()
	} else {
		if box := e.frame.DrawTop(e.term, e.highlighter != nil); box != nil {
			e.header.SetMessageBox(*box)
		}
		_, origin.Y = e.term.CursorPos()
		origin.X = render.GutterWidth
	}

	mapper := render.NewMapper(origin, e.singleLine)
	e.renderer = render.NewRenderer(e.term, e.buffer, mapper, render.Options{
		SingleLine:          e.singleLine,
		Highlighter:         e.highlighter,
		MaxHighlightedLines: e.settings.MaxHighlightedLines,
		Separator:           e.settings.Glyphs.Vertical,
		ShowWhitespace:      e.settings.ShowWhitespaces,
		WhitespaceGlyph:     e.settings.WhitespaceGlyph,
		TextColor:           e.palette.Foreground(theme.StyleText),
		FrameColor:          e.palette.Foreground(theme.StyleFrame),
		WhitespaceColor:     e.palette.Foreground(theme.StyleWhitespace),
		Header:              e.header,
	})
	if e.highlighter == nil {
		e.term.SetTitle(TitlePrefix + e.settings.HeaderDefaultText)
	}

	e.buffer.SetCursor(types.Position{Line: 0, Col: e.buffer.LineLen(0)})
	e.cursorManager.Sync()
	e.renderer.Render(types.Position{})
	e.placeCursor()

	logger.Infof("Session started: singleLine=%v highlighting=%v origin=%v", e.singleLine, e.highlighter != nil, origin)
	e.eventManager.Dispatch(event.TypeSessionStarted, event.SessionStartedData{
		SingleLine:   e.singleLine,
		Highlighting: e.highlighter != nil,
		Origin:       origin,
	})
}

// Finish closes the frame and returns the content. A multi-line session
// left with a single blank line has its box erased instead.
func (e *Editor) Finish() []string {
	lines := e.buffer.Lines()
	origin := e.renderer.Mapper().Origin()

	switch {
	case e.singleLine:
		e.term.SetCursorPos(0, origin.Y)
		e.term.WriteLine("")
	case e.buffer.IsBlank():
		render.Erase(e.term, e.top, origin.Y)
	default:
		e.frame.DrawBottom(e.term, origin.Y+len(lines))
	}
	e.term.Flush()

	logger.Infof("Session ended with %d line(s)", len(lines))
	e.eventManager.Dispatch(event.TypeSessionEnded, event.SessionEndedData{Lines: lines})
	return lines
}

// Changed repaints after an edit and announces it.
func (e *Editor) Changed(from types.Position) {
	before := e.renderer.LastLineCount()
	pass := e.renderer.Render(from)
	e.cursorManager.Sync()
	e.placeCursor()

	e.eventManager.Dispatch(event.TypeBufferModified, event.BufferModifiedData{
		LineCount: e.buffer.LineCount(),
		Cursor:    e.buffer.Cursor(),
		Delta:     e.buffer.LineCount() - before,
	})
	if pass.HeaderChanged {
		msg, _ := e.header.Message()
		e.eventManager.Dispatch(event.TypeDiagnosticChanged, event.DiagnosticChangedData{
			Message: msg,
			IsError: types.Diagnostic{Message: msg}.IsError(),
			Default: e.header.IsDefault(),
		})
	}
}

// Appended paints text added at the end of a line at pos.
func (e *Editor) Appended(pos types.Position, text string) {
	e.renderer.Append(pos, text)
	e.cursorManager.Sync()
	e.placeCursor()
	e.eventManager.Dispatch(event.TypeBufferModified, event.BufferModifiedData{
		LineCount: e.buffer.LineCount(),
		Cursor:    e.buffer.Cursor(),
	})
}

// placeCursor puts the terminal cursor on the logical cursor.
func (e *Editor) placeCursor() {
	pos := e.buffer.Cursor()
	line, _ := e.buffer.Line(pos.Line)
	e.renderer.Mapper().Place(e.term, pos, line)
}
