package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, NewDefault(), s)
}

func TestLoadValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	content := `
tab_size = 2
show_whitespaces = true
single_line_prompt = "> "
sticky_column = false

[glyphs]
vertical = "|"
horizontal = "too long"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, s.TabSize)
	assert.Equal(t, "  ", s.Tabulation())
	assert.True(t, s.ShowWhitespaces)
	assert.Equal(t, "> ", s.SingleLinePrompt)
	assert.False(t, s.StickyColumn)
	assert.True(t, s.SystemClipboard, "unset keys keep defaults")
	assert.Equal(t, "|", s.Glyphs.Vertical)
	assert.Equal(t, "─", s.Glyphs.Horizontal, "invalid glyph falls back")
	assert.Equal(t, DefaultMaxHighlightedLines, s.MaxHighlightedLines)
}

func TestLoadMalformedFileGivesDefaultsAndError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("tab_size = [oops"), 0o644))

	s, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformed))
	assert.Equal(t, NewDefault(), s)
}

func TestValidateResetsBadValues(t *testing.T) {
	s := NewDefault()
	s.TabSize = 0
	s.MaxHighlightedLines = -1
	s.WhitespaceGlyph = ""
	s.HeaderDefaultText = ""
	s.validate()

	assert.Equal(t, NewDefault(), s)
}

func TestCreateMissingWritesDefaultsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsDirName, SettingsFileName)

	require.NoError(t, CreateMissing(path))
	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, NewDefault().TabSize, s.TabSize)
	assert.Equal(t, NewDefault().Glyphs, s.Glyphs)

	require.NoError(t, os.WriteFile(path, []byte("tab_size = 8\n"), 0o644))
	require.NoError(t, CreateMissing(path))
	s, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, s.TabSize, "existing file is left alone")
}

func TestApplyOverridesOnlyForSetFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	var f Flags
	f.DefineFlags(fs)
	require.NoError(t, fs.Parse([]string{"--tab-size", "8", "--log-tags", "render, input"}))

	s := NewDefault()
	s.StickyColumn = false
	f.ApplyOverrides(fs, s)

	assert.Equal(t, 8, s.TabSize)
	assert.Equal(t, []string{"render", "input"}, s.Logger.EnabledTags)
	assert.False(t, s.StickyColumn, "unset flag keeps the file value")
}
