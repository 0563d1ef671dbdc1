package app

import (
	"github.com/bethropolis/scriptbench/internal/config"
	"github.com/bethropolis/scriptbench/internal/event"
	"github.com/bethropolis/scriptbench/internal/logger"
)

// handleDiagnosticChanged logs header changes
func (a *App) handleDiagnosticChanged(e event.Event) bool {
	if data, ok := e.Data.(event.DiagnosticChangedData); ok {
		logger.DebugTagf("app", "Header now %q (error=%v, default=%v)", data.Message, data.IsError, data.Default)
	} else {
		logger.Warnf("App: Received DiagnosticChanged event with unexpected data type: %T", e.Data)
	}
	return false // Not consumed
}

// handleSessionEnded writes the default settings file when none exists yet.
// A failure is only logged; the session result is unaffected.
func (a *App) handleSessionEnded(e event.Event) bool {
	if err := config.CreateMissing(a.settingsPath); err != nil {
		logger.Warnf("App: %v", err)
	}
	return false // Not consumed
}
