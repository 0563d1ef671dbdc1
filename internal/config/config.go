// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/scriptbench/internal/logger"
)

// ErrMalformed marks a settings file that exists but could not be decoded.
var ErrMalformed = errors.New("malformed settings file")

// Settings holds every recognized option of the settings file.
type Settings struct {
	TabSize             int    `toml:"tab_size"`
	ShowWhitespaces     bool   `toml:"show_whitespaces"`
	SingleLinePrompt    string `toml:"single_line_prompt"`
	MainColor           string `toml:"main_color"`
	AccentColor         string `toml:"accent_color"`
	HeaderDefaultText   string `toml:"header_default_text"`
	MaxHighlightedLines int    `toml:"max_highlighted_lines"`
	StickyColumn        bool   `toml:"sticky_column"`
	SystemClipboard     bool   `toml:"system_clipboard"`
	WhitespaceGlyph     string `toml:"whitespace_glyph"`
	HighlightStyle      string `toml:"highlight_style"`
	Language            string `toml:"language"` // Empty means detect from content

	Glyphs Glyphs        `toml:"glyphs"`
	Logger logger.Config `toml:"logger"`
}

// Glyphs are the nine box-drawing characters used for frames and the gutter.
type Glyphs struct {
	DownRight      string `toml:"down_right"`
	DownLeft       string `toml:"down_left"`
	UpRight        string `toml:"up_right"`
	UpLeft         string `toml:"up_left"`
	Horizontal     string `toml:"horizontal"`
	Vertical       string `toml:"vertical"`
	HorizontalDown string `toml:"horizontal_down"`
	HorizontalUp   string `toml:"horizontal_up"`
	VerticalRight  string `toml:"vertical_right"`
}

// DefaultGlyphs returns the light box-drawing set.
func DefaultGlyphs() Glyphs {
	return Glyphs{
		DownRight:      "┌",
		DownLeft:       "┐",
		UpRight:        "└",
		UpLeft:         "┘",
		Horizontal:     "─",
		Vertical:       "│",
		HorizontalDown: "┬",
		HorizontalUp:   "┴",
		VerticalRight:  "├",
	}
}

// NewDefault creates Settings with default values.
func NewDefault() *Settings {
	return &Settings{
		TabSize:             DefaultTabSize,
		ShowWhitespaces:     false,
		SingleLinePrompt:    "",
		MainColor:           DefaultMainColor,
		AccentColor:         DefaultAccentColor,
		HeaderDefaultText:   DefaultHeaderText,
		MaxHighlightedLines: DefaultMaxHighlightedLines,
		StickyColumn:        true,
		SystemClipboard:     true,
		WhitespaceGlyph:     DefaultWhitespaceGlyph,
		HighlightStyle:      DefaultHighlightStyle,
		Glyphs:              DefaultGlyphs(),
		Logger:              logger.NewConfig(),
	}
}

// DefaultPath is the fixed location of the settings file, relative to the
// working directory.
func DefaultPath() string {
	return filepath.Join(SettingsDirName, SettingsFileName)
}

// Tabulation is the whitespace run inserted by Tab.
func (s *Settings) Tabulation() string {
	return strings.Repeat(" ", s.TabSize)
}

// Load reads settings from filePath. A missing file gives the defaults and a
// nil error. A malformed file gives the defaults and an error wrapping
// ErrMalformed, which callers report as a warning.
func Load(filePath string) (*Settings, error) {
	if filePath == "" {
		return NewDefault(), nil
	}
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		logger.Debugf("Settings file not found: %s", filePath)
		return NewDefault(), nil
	}
	if err != nil {
		return NewDefault(), fmt.Errorf("error checking settings file '%s': %w", filePath, err)
	}

	s := NewDefault()
	metadata, err := toml.DecodeFile(filePath, s)
	if err != nil {
		return NewDefault(), fmt.Errorf("%w '%s': %w", ErrMalformed, filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Settings file '%s': Unrecognized keys: %v", filePath, undecoded)
	}
	s.validate()
	logger.Infof("Loaded settings from: %s", filePath)
	return s, nil
}

// CreateMissing writes the default settings to filePath unless a file
// already exists there.
func CreateMissing(filePath string) error {
	if filePath == "" {
		return nil
	}
	if _, err := os.Stat(filePath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("error checking settings file '%s': %w", filePath, err)
	}

	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create settings directory '%s': %w", dir, err)
		}
	}
	f, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create settings file '%s': %w", filePath, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(NewDefault()); err != nil {
		return fmt.Errorf("failed to write settings file '%s': %w", filePath, err)
	}
	logger.Infof("Created default settings file: %s", filePath)
	return nil
}

// validate resets invalid values to their defaults.
func (s *Settings) validate() {
	defaults := NewDefault()

	if s.TabSize <= 0 {
		s.TabSize = defaults.TabSize
	}
	if s.MaxHighlightedLines <= 0 {
		s.MaxHighlightedLines = defaults.MaxHighlightedLines
	}
	if s.HeaderDefaultText == "" {
		s.HeaderDefaultText = defaults.HeaderDefaultText
	}
	if utf8.RuneCountInString(s.WhitespaceGlyph) != 1 {
		s.WhitespaceGlyph = defaults.WhitespaceGlyph
	}
	if s.HighlightStyle == "" {
		s.HighlightStyle = defaults.HighlightStyle
	}
	if s.Logger.LogLevel == "" {
		s.Logger.LogLevel = defaults.Logger.LogLevel
	}
	s.Glyphs.fill(defaults.Glyphs)
}

// fill replaces every glyph that is not exactly one character.
func (g *Glyphs) fill(defaults Glyphs) {
	pairs := []struct {
		field    *string
		fallback string
	}{
		{&g.DownRight, defaults.DownRight},
		{&g.DownLeft, defaults.DownLeft},
		{&g.UpRight, defaults.UpRight},
		{&g.UpLeft, defaults.UpLeft},
		{&g.Horizontal, defaults.Horizontal},
		{&g.Vertical, defaults.Vertical},
		{&g.HorizontalDown, defaults.HorizontalDown},
		{&g.HorizontalUp, defaults.HorizontalUp},
		{&g.VerticalRight, defaults.VerticalRight},
	}
	for _, p := range pairs {
		if utf8.RuneCountInString(*p.field) != 1 {
			*p.field = p.fallback
		}
	}
}
