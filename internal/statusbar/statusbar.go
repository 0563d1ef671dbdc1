// internal/statusbar/statusbar.go
package statusbar

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg" // For proper Unicode width calculation

	"github.com/bethropolis/scriptbench/internal/logger"
	"github.com/bethropolis/scriptbench/internal/tui"
	"github.com/bethropolis/scriptbench/internal/types"
)

// Config defines the appearance of the header.
type Config struct {
	ColorDefault tcell.Color // Color of the default text
	ColorError   tcell.Color // Messages starting with "error"
	ColorWarning tcell.Color // Any other message
	DefaultText  string      // Shown when there is nothing to report
	TitlePrefix  string      // Prepended to the window title
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		ColorDefault: tcell.ColorDefault,
		ColorError:   tcell.ColorRed,
		ColorWarning: tcell.ColorYellow,
		DefaultText:  "No errors found.",
	}
}

// StatusBar is the editor header. It shows the first diagnostic of the last
// highlighting pass in the window title and, when the frame has one, in the
// message box.
type StatusBar struct {
	config Config
	mu     sync.RWMutex

	box     *types.Point // Message box origin, nil when there is none
	message string
	color   tcell.Color
	isDef   bool
}

// New creates a header showing the default text.
func New(config Config) *StatusBar {
	sb := &StatusBar{config: config}
	sb.reset()
	return sb
}

// SetMessageBox sets where the message box text starts.
func (sb *StatusBar) SetMessageBox(p types.Point) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.box = &p
}

// HasMessageBox reports whether a message box was set.
func (sb *StatusBar) HasMessageBox() bool {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.box != nil
}

// SetDiagnostics shows the first diagnostic, or the default text when there
// are none. It reports whether the displayed text changed.
func (sb *StatusBar) SetDiagnostics(diags []types.Diagnostic) bool {
	if len(diags) == 0 {
		return sb.set(sb.config.DefaultText, sb.config.ColorDefault, true)
	}
	return sb.show(diags[0])
}

// SetStatus shows a status error in place of any diagnostic.
func (sb *StatusBar) SetStatus(err error) bool {
	if err == nil {
		return false
	}
	return sb.show(types.Diagnostic{Message: err.Error()})
}

func (sb *StatusBar) show(d types.Diagnostic) bool {
	color := sb.config.ColorWarning
	if d.IsError() {
		color = sb.config.ColorError
	}
	return sb.set(d.Message, color, false)
}

func (sb *StatusBar) set(msg string, color tcell.Color, isDefault bool) bool {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	changed := sb.message != msg || sb.color != color
	sb.message = msg
	sb.color = color
	sb.isDef = isDefault
	if changed {
		logger.DebugTagf("header", "Header now %q", msg)
	}
	return changed
}

func (sb *StatusBar) reset() {
	sb.message = sb.config.DefaultText
	sb.color = sb.config.ColorDefault
	sb.isDef = true
}

// Message returns the displayed text and its color.
func (sb *StatusBar) Message() (string, tcell.Color) {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.message, sb.color
}

// IsDefault reports whether the default text is shown.
func (sb *StatusBar) IsDefault() bool {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.isDef
}

// Draw sets the window title and repaints the message box. The terminal
// cursor and color are left as they were.
func (sb *StatusBar) Draw(t tui.Terminal) {
	sb.mu.RLock()
	msg, color, box := sb.message, sb.color, sb.box
	sb.mu.RUnlock()

	t.SetTitle(sb.config.TitlePrefix + msg)
	if box == nil {
		return
	}

	tui.WithPosition(t, box.X, box.Y, func() {
		tui.ClearLine(t, box.X)
		w, _ := t.BufferSize()
		tui.WithForeground(t, color, func() {
			t.Write(fit(msg, w-box.X))
		})
	})
}

// fit cuts text to at most width cells, on grapheme boundaries.
func fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	gr := uniseg.NewGraphemes(text)
	used := 0
	end := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if used+clusterWidth > width {
			break // Stop if cluster doesn't fit
		}
		used += clusterWidth
		_, end = gr.Positions()
	}
	return text[:end]
}
