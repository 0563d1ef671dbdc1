// internal/types/span.go
package types

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Span is a run of text sharing one color, as produced by a highlighter.
// Text may contain '\n'; each one moves painting to the next logical line.
type Span struct {
	Text       string
	Color      tcell.Color
	Whitespace bool // Run of blanks, drawn with the whitespace glyph when enabled
}

// Diagnostic is a message about the current buffer content ("blame").
type Diagnostic struct {
	Message string
}

// IsError reports whether the message starts with "error", ignoring case.
// Everything else is treated as a warning.
func (d Diagnostic) IsError() bool {
	return len(d.Message) >= 5 && strings.EqualFold(d.Message[:5], "error")
}
