// internal/highlighter/highlighter.go
package highlighter

import "github.com/bethropolis/scriptbench/internal/types"

// Result is the outcome of one highlighting pass.
type Result struct {
	// Spans cover the buffer content from Restart to the end, in reading order.
	Spans []types.Span
	// Restart is where painting must begin. It never lies after the
	// position the caller asked for.
	Restart types.Position
	// Diagnostics found in the content; only the first is displayed.
	Diagnostics []types.Diagnostic
}

// Highlighter colors buffer content and reports problems in it.
type Highlighter interface {
	// Highlight colors lines. from is the earliest position the last edit
	// touched; the highlighter may restart earlier than that.
	Highlight(lines []string, from types.Position) Result

	// HighlightText colors arbitrary text in one shot.
	HighlightText(text string) []types.Span
}
