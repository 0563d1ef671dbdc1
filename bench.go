// Package scriptbench is an embeddable terminal editor for short scripts.
// A Bench draws a framed, line-numbered edit area (or a single prompt line)
// at the current terminal row, lets the user edit until the exit sequence,
// and returns the lines.
package scriptbench

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bethropolis/scriptbench/internal/app"
	"github.com/bethropolis/scriptbench/internal/config"
	"github.com/bethropolis/scriptbench/internal/event"
	"github.com/bethropolis/scriptbench/internal/highlighter"
	"github.com/bethropolis/scriptbench/internal/logger"
	"github.com/bethropolis/scriptbench/internal/theme"
	"github.com/bethropolis/scriptbench/internal/tui"
	"github.com/bethropolis/scriptbench/internal/types"
	"github.com/bethropolis/scriptbench/internal/utils"
)

type (
	Settings        = config.Settings
	Highlighter     = highlighter.Highlighter
	HighlightResult = highlighter.Result
	Span            = types.Span
	Diagnostic      = types.Diagnostic
	Position        = types.Position
	Terminal        = tui.Terminal
	KeyEvent        = tui.KeyEvent
	Event           = event.Event
	EventType       = event.Type
	Handler         = event.Handler

	SessionStartedData    = event.SessionStartedData
	BufferModifiedData    = event.BufferModifiedData
	CursorMovedData       = event.CursorMovedData
	DiagnosticChangedData = event.DiagnosticChangedData
	SessionEndedData      = event.SessionEndedData
)

// Session events a host can subscribe to.
const (
	EventSessionStarted    = event.TypeSessionStarted
	EventBufferModified    = event.TypeBufferModified
	EventCursorMoved       = event.TypeCursorMoved
	EventDiagnosticChanged = event.TypeDiagnosticChanged
	EventSessionEnded      = event.TypeSessionEnded
)

var (
	// ErrNoHighlighter means highlighting was requested without a highlighter.
	ErrNoHighlighter = errors.New("highlighting enabled but no highlighter given")
	// ErrPromptWithMultiLine means a prompt was given for a multi-line session.
	ErrPromptWithMultiLine = errors.New("a prompt is only shown in single-line mode")
	// ErrMalformedSettings wraps a settings file that could not be decoded.
	ErrMalformedSettings = config.ErrMalformed
)

// Config describes one editing session.
type Config struct {
	// Settings is read from SettingsPath when nil.
	Settings *Settings
	// SettingsPath defaults to DefaultSettingsPath. The default settings are
	// written there at the end of a session when no file exists yet.
	SettingsPath string
	// NoSettingsFile keeps the session away from the settings file: nothing
	// is read from it or written to it.
	NoSettingsFile bool

	FirstLine  string
	SingleLine bool
	// Prompt is written before the edit area in single-line mode. When empty
	// the single_line_prompt setting is used.
	Prompt string

	Highlight   bool
	Highlighter Highlighter

	// Terminal defaults to the process terminal, opened by Run and released
	// before it returns.
	Terminal Terminal
}

// Bench is a configured session, run once.
type Bench struct {
	cfg         Config
	events      *event.Manager
	settingsErr error
}

// New validates cfg and prepares a session.
func New(cfg Config) (*Bench, error) {
	if cfg.Highlight && cfg.Highlighter == nil {
		return nil, ErrNoHighlighter
	}
	if cfg.Prompt != "" && !cfg.SingleLine {
		return nil, ErrPromptWithMultiLine
	}
	var settingsErr error
	switch {
	case cfg.NoSettingsFile:
		cfg.SettingsPath = ""
	case cfg.SettingsPath == "":
		cfg.SettingsPath = config.DefaultPath()
	}
	if cfg.Settings == nil {
		cfg.Settings, settingsErr = config.Load(cfg.SettingsPath)
		if settingsErr != nil {
			logger.Warnf("Bench: %v; using default settings", settingsErr)
		}
	}
	if cfg.SingleLine {
		cfg.FirstLine = strings.ReplaceAll(utils.NormalizeNewlines(cfg.FirstLine), "\n", " ")
		if cfg.Prompt == "" {
			cfg.Prompt = cfg.Settings.SingleLinePrompt
		}
	}
	if !cfg.Highlight {
		cfg.Highlighter = nil
	}
	return &Bench{cfg: cfg, events: event.NewManager(), settingsErr: settingsErr}, nil
}

// SettingsError returns the problem met while reading the settings file, if
// any. The session then runs with the default settings.
func (b *Bench) SettingsError() error {
	return b.settingsErr
}

// Subscribe registers handler for a session event. Handlers run
// synchronously on the editing goroutine.
func (b *Bench) Subscribe(eventType EventType, handler Handler) {
	b.events.Subscribe(eventType, handler)
}

// Run edits until the exit sequence and returns the lines, never an empty
// slice. It blocks on terminal input.
func (b *Bench) Run() ([]string, error) {
	term := b.cfg.Terminal
	if term == nil {
		console, err := tui.Open()
		if err != nil {
			return nil, fmt.Errorf("opening terminal: %w", err)
		}
		defer console.Close()
		term = console
	}
	if b.settingsErr != nil {
		warning := theme.FromSettings(b.cfg.Settings).Foreground(theme.StyleWarning)
		tui.WithForeground(term, warning, func() {
			term.WriteLine(fmt.Sprintf("Warning: %v; using default settings", b.settingsErr))
		})
	}

	session, err := app.NewApp(app.Config{
		Terminal:     term,
		Settings:     b.cfg.Settings,
		SettingsPath: b.cfg.SettingsPath,
		FirstLine:    b.cfg.FirstLine,
		SingleLine:   b.cfg.SingleLine,
		Prompt:       b.cfg.Prompt,
		Highlighter:  b.cfg.Highlighter,
		Events:       b.events,
	})
	if err != nil {
		return nil, err
	}

	lines, err := session.Run()
	if err != nil {
		return lines, fmt.Errorf("scriptbench: %w", err)
	}
	logger.Infof("Bench returned %d line(s)", len(lines))
	return lines, nil
}

// LoadSettings reads a settings file. A missing file gives the defaults; a
// malformed one gives the defaults and an error.
func LoadSettings(path string) (*Settings, error) {
	return config.Load(path)
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() *Settings {
	return config.NewDefault()
}

// DefaultSettingsPath is the settings file location relative to the
// working directory.
func DefaultSettingsPath() string {
	return config.DefaultPath()
}
