// internal/config/flags.go
package config

import (
	"fmt"
	"strings"

	"github.com/bethropolis/scriptbench/internal/logger"
	"github.com/spf13/pflag"
)

// Flags holds values parsed from command-line flags. Only flags the user set
// override the settings file.
type Flags struct {
	ConfigFilePath  string
	LogLevel        string
	LogFilePath     string
	TabSize         int
	ShowWhitespaces bool
	Prompt          string
	Language        string
	Style           string
	StickyColumn    bool
	SystemClipboard bool
	EnableTags      string
	DisableTags     string
	EnablePkgs      string
	DisablePkgs     string

	// Session switches, not part of Settings.
	SingleLine  bool
	NoHighlight bool
	FirstLine   string
}

// DefineFlags registers the flags on fs.
func (f *Flags) DefineFlags(fs *pflag.FlagSet) {
	fs.StringVar(&f.ConfigFilePath, "config", DefaultPath(), "Path to the TOML settings file")
	fs.StringVar(&f.LogLevel, "loglevel", "", "Log level (debug, info, warn, error) - Overrides settings file")
	fs.StringVar(&f.LogFilePath, "logfile", "", fmt.Sprintf("Path to write the log file (e.g. %s) - Overrides settings file", DefaultLogFileName))
	fs.IntVar(&f.TabSize, "tab-size", 0, "Number of spaces per indent - Overrides settings file")
	fs.BoolVar(&f.ShowWhitespaces, "show-whitespaces", false, "Draw blanks with the whitespace glyph")
	fs.StringVar(&f.Prompt, "prompt", "", "Prompt shown in single-line mode")
	fs.StringVar(&f.Language, "lang", "", "Highlight language (empty detects from content)")
	fs.StringVar(&f.Style, "style", "", "Highlight color style name")
	fs.BoolVar(&f.StickyColumn, "sticky-column", true, "Keep the horizontal column when moving through shorter lines")
	fs.BoolVar(&f.SystemClipboard, "system-clipboard", true, "Use the system clipboard instead of an in-process register")
	fs.StringVar(&f.EnableTags, "log-tags", "", "Comma-separated list of log tags to enable")
	fs.StringVar(&f.DisableTags, "log-disable-tags", "", "Comma-separated list of log tags to disable")
	fs.StringVar(&f.EnablePkgs, "log-packages", "", "Comma-separated list of packages to log")
	fs.StringVar(&f.DisablePkgs, "log-disable-packages", "", "Comma-separated list of packages to silence")

	fs.BoolVarP(&f.SingleLine, "single-line", "s", false, "Edit one line; Enter finishes the session")
	fs.BoolVar(&f.NoHighlight, "no-highlight", false, "Disable syntax highlighting")
	fs.StringVar(&f.FirstLine, "text", "", "Initial buffer content")
}

// ApplyOverrides updates s with the flags that were actually set on fs.
func (f *Flags) ApplyOverrides(fs *pflag.FlagSet, s *Settings) {
	fs.Visit(func(fl *pflag.Flag) {
		logger.DebugTagf("config", "Applying flag override: %s", fl.Name)
		switch fl.Name {
		case "loglevel":
			if f.LogLevel != "" {
				s.Logger.LogLevel = f.LogLevel
			}
		case "logfile":
			s.Logger.LogFilePath = f.LogFilePath
		case "tab-size":
			if f.TabSize > 0 {
				s.TabSize = f.TabSize
			}
		case "show-whitespaces":
			s.ShowWhitespaces = f.ShowWhitespaces
		case "prompt":
			s.SingleLinePrompt = f.Prompt
		case "lang":
			s.Language = f.Language
		case "style":
			if f.Style != "" {
				s.HighlightStyle = f.Style
			}
		case "sticky-column":
			s.StickyColumn = f.StickyColumn
		case "system-clipboard":
			s.SystemClipboard = f.SystemClipboard
		case "log-tags":
			s.Logger.EnabledTags = splitCommaList(f.EnableTags)
		case "log-disable-tags":
			s.Logger.DisabledTags = splitCommaList(f.DisableTags)
		case "log-packages":
			s.Logger.EnabledPackages = splitCommaList(f.EnablePkgs)
		case "log-disable-packages":
			s.Logger.DisabledPackages = splitCommaList(f.DisablePkgs)
		}
	})
	s.validate()
}

// LoadSettings loads the settings file named by the flags and applies the
// flag overrides. A malformed file still yields usable settings alongside
// the error.
func LoadSettings(fs *pflag.FlagSet, f *Flags) (*Settings, error) {
	s, err := Load(f.ConfigFilePath)
	f.ApplyOverrides(fs, s)
	return s, err
}

func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
