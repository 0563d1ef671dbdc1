// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/scriptbench/internal/config"
	"github.com/bethropolis/scriptbench/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Style names used by the editor chrome.
const (
	StyleDefault    = "Default"
	StyleText       = "Text"
	StyleFrame      = "Frame"
	StyleAccent     = "Accent"
	StyleError      = "Error"
	StyleWarning    = "Warning"
	StyleWhitespace = "Whitespace"
)

// Theme maps style names to tcell styles.
type Theme struct {
	Name   string
	Styles map[string]tcell.Style
}

// GetStyle looks up name, then its base name (part before the first dot),
// then "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}
	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		if style, ok := t.Styles[name[:dotIndex]]; ok {
			return style
		}
	}
	if defStyle, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.Debugf("Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}
	return tcell.StyleDefault
}

// Foreground returns the foreground color of a named style.
func (t *Theme) Foreground(name string) tcell.Color {
	fg, _, _ := t.GetStyle(name).Decompose()
	return fg
}

// FromSettings builds the chrome theme from the configured colors. Unknown
// color names fall back to the built-in defaults with a warning.
func FromSettings(s *config.Settings) *Theme {
	base := tcell.StyleDefault
	frame := colorOr(s.MainColor, config.DefaultMainColor)
	return &Theme{
		Name: "settings",
		Styles: map[string]tcell.Style{
			StyleDefault:    base,
			StyleText:       base.Foreground(tcell.ColorDefault),
			StyleFrame:      base.Foreground(frame),
			StyleAccent:     base.Foreground(colorOr(s.AccentColor, config.DefaultAccentColor)),
			StyleError:      base.Foreground(tcell.ColorRed),
			StyleWarning:    base.Foreground(tcell.ColorYellow),
			StyleWhitespace: base.Foreground(frame),
		},
	}
}

func colorOr(name, fallback string) tcell.Color {
	c, err := ParseColor(name)
	if err != nil {
		logger.Warnf("Theme: %v, using '%s'", err, fallback)
		c, _ = ParseColor(fallback)
	}
	return c
}
