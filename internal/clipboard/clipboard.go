// internal/clipboard/clipboard.go
package clipboard

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/bethropolis/scriptbench/internal/logger"
	"github.com/bethropolis/scriptbench/internal/utils"
)

// Clipboard is where Copy writes and Paste reads.
type Clipboard interface {
	GetText() (string, error)
	SetText(text string) error
}

// Manager uses the system clipboard when enabled and available, and keeps
// an in-process register that is always up to date as a fallback.
type Manager struct {
	system   bool
	register string
}

// NewManager creates a clipboard manager. With useSystem false, or on
// platforms where atotto/clipboard has no backend, only the register is used.
func NewManager(useSystem bool) *Manager {
	if useSystem && clipboard.Unsupported {
		logger.Warnf("Clipboard: system clipboard unsupported, using internal register")
		useSystem = false
	}
	return &Manager{system: useSystem}
}

// GetText returns the system clipboard, or the register when the system
// clipboard is disabled or fails.
func (m *Manager) GetText() (string, error) {
	if m.system {
		text, err := clipboard.ReadAll()
		if err == nil {
			return text, nil
		}
		logger.Warnf("Clipboard: read failed, using internal register: %v", err)
	}
	return m.register, nil
}

// SetText stores text in the register and, when enabled, the system clipboard.
func (m *Manager) SetText(text string) error {
	m.register = text
	if !m.system {
		return nil
	}
	if err := clipboard.WriteAll(text); err != nil {
		logger.Warnf("Clipboard: write failed, text kept in internal register: %v", err)
	}
	return nil
}

// NormalizePaste converts CRLF and lone CR line endings to '\n' and expands
// tab characters to tabulation.
func NormalizePaste(text, tabulation string) string {
	return strings.ReplaceAll(utils.NormalizeNewlines(text), "\t", tabulation)
}
