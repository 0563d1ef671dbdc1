// internal/app/app.go
package app

import (
	"errors"
	"fmt"

	"github.com/bethropolis/scriptbench/internal/buffer"
	"github.com/bethropolis/scriptbench/internal/clipboard"
	"github.com/bethropolis/scriptbench/internal/config"
	"github.com/bethropolis/scriptbench/internal/core"
	"github.com/bethropolis/scriptbench/internal/event"
	"github.com/bethropolis/scriptbench/internal/highlighter"
	"github.com/bethropolis/scriptbench/internal/input"
	"github.com/bethropolis/scriptbench/internal/logger"
	"github.com/bethropolis/scriptbench/internal/modehandler"
	"github.com/bethropolis/scriptbench/internal/tui"
)

// ErrAlreadyRun is returned by a second call to Run.
var ErrAlreadyRun = errors.New("session already run")

// Config holds everything one session needs.
type Config struct {
	Terminal tui.Terminal
	Settings *config.Settings

	// SettingsPath receives the default settings when a session ends
	// normally and no file exists there yet. Empty disables it.
	SettingsPath string

	FirstLine   string
	SingleLine  bool
	Prompt      string
	Highlighter highlighter.Highlighter // nil disables highlighting
	Clipboard   clipboard.Clipboard     // nil uses the system clipboard per settings
	Events      *event.Manager          // nil creates a private manager
}

// App wires a terminal, an editor and a key dispatcher into one session.
type App struct {
	term         tui.Terminal
	editor       *core.Editor
	modeHandler  *modehandler.ModeHandler
	eventManager *event.Manager
	settingsPath string
	ran          bool
}

// NewApp builds a session. Nothing is drawn until Run.
func NewApp(cfg Config) (*App, error) {
	if cfg.Terminal == nil {
		return nil, errors.New("app: terminal is required")
	}
	settings := cfg.Settings
	if settings == nil {
		settings = config.NewDefault()
	}
	eventManager := cfg.Events
	if eventManager == nil {
		eventManager = event.NewManager()
	}

	buf := buffer.NewSliceBuffer(cfg.FirstLine)
	editor := core.NewEditor(cfg.Terminal, buf, core.Options{
		Settings:    settings,
		SingleLine:  cfg.SingleLine,
		Prompt:      cfg.Prompt,
		Highlighter: cfg.Highlighter,
		Clipboard:   cfg.Clipboard,
		Events:      eventManager,
	})

	modeHandler := modehandler.New(modehandler.Config{
		Editor:         editor,
		InputProcessor: input.NewInputProcessor(),
	})

	appInstance := &App{
		term:         cfg.Terminal,
		editor:       editor,
		modeHandler:  modeHandler,
		eventManager: eventManager,
		settingsPath: cfg.SettingsPath,
	}

	// --- Subscribe App level handlers ---
	eventManager.Subscribe(event.TypeDiagnosticChanged, appInstance.handleDiagnosticChanged)
	eventManager.Subscribe(event.TypeSessionEnded, appInstance.handleSessionEnded)

	return appInstance, nil
}

// Run draws the editor, processes keys until the exit sequence and returns
// the content. A terminal read failure ends the session early with an error
// and the content as it was.
func (a *App) Run() ([]string, error) {
	if a.ran {
		return nil, ErrAlreadyRun
	}
	a.ran = true

	a.editor.Start()
	for !a.modeHandler.Terminated() {
		ev, err := a.term.ReadKey()
		if err != nil {
			logger.Errorf("App: Reading key failed: %v", err)
			return a.editor.GetBuffer().Lines(), fmt.Errorf("reading key: %w", err)
		}
		a.modeHandler.HandleKeyEvent(ev)
	}
	return a.editor.Finish(), nil
}

// GetEditor returns the session editor.
func (a *App) GetEditor() *core.Editor {
	return a.editor
}

// GetEventManager returns the manager session events are dispatched on.
func (a *App) GetEventManager() *event.Manager {
	return a.eventManager
}
