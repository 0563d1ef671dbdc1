// internal/render/gutter.go
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/scriptbench/internal/tui"
)

// ErrFileTooLarge is the status of printing a line number once a highlighted
// buffer has more lines than the configured ceiling.
var ErrFileTooLarge = errors.New("File too large to display. Please use external editor.")

// GutterWidth is the width of the line number column for up to 9999 lines.
const GutterWidth = 8

// separatorX is the column of the gutter separator, where frame joints sit.
const separatorX = 6

// FormatLineNumber renders the gutter text for line number n:
// the number right-aligned in at least four digits, then the separator.
func FormatLineNumber(n int, separator string) string {
	return fmt.Sprintf(" %4d %s ", n, separator)
}

// PrintLineNumber writes the gutter for line number n at the cursor, in color.
func PrintLineNumber(t tui.Terminal, n int, separator string, color tcell.Color) {
	tui.WithForeground(t, color, func() {
		t.Write(FormatLineNumber(n, separator))
	})
}

// horizontal repeats the horizontal glyph n times.
func horizontal(glyph string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(glyph, n)
}
