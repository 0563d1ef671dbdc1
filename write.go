package scriptbench

import (
	"github.com/bethropolis/scriptbench/internal/config"
	"github.com/bethropolis/scriptbench/internal/highlighter"
	"github.com/bethropolis/scriptbench/internal/render"
	"github.com/bethropolis/scriptbench/internal/theme"
	"github.com/bethropolis/scriptbench/internal/tui"
)

// NewHighlighter returns the chroma highlighter configured from settings,
// with syntax diagnostics.
func NewHighlighter(settings *Settings) Highlighter {
	if settings == nil {
		settings = config.NewDefault()
	}
	return highlighter.NewChroma(highlighter.Options{
		Language:    settings.Language,
		Style:       settings.HighlightStyle,
		TextColor:   theme.FromSettings(settings).Foreground(theme.StyleText),
		Diagnostics: true,
	})
}

// FormatLineNumber returns the gutter text for line n: the number right
// aligned in four cells, then the separator, padded with single blanks.
func FormatLineNumber(n int, separator string) string {
	return render.FormatLineNumber(n, separator)
}

// PrintLineNumber writes the gutter for line n at the cursor, in the main
// color of settings.
func PrintLineNumber(term Terminal, n int, settings *Settings) {
	if settings == nil {
		settings = config.NewDefault()
	}
	color := theme.FromSettings(settings).Foreground(theme.StyleFrame)
	render.PrintLineNumber(term, n, settings.Glyphs.Vertical, color)
}

// Write prints code at the cursor, colored by h when it is not nil.
// The terminal colors are restored afterwards.
func Write(term Terminal, code string, h Highlighter) {
	if h == nil {
		term.Write(code)
		term.Flush()
		return
	}
	for _, span := range h.HighlightText(code) {
		tui.WithForeground(term, span.Color, func() {
			term.Write(span.Text)
		})
	}
	term.Flush()
}
