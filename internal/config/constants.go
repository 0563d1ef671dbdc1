package config

// Base application details
const AppName = "scriptbench"
const SettingsDirName = ".scriptbench"
const SettingsFileName = "settings.toml"
const DefaultLogFileName = "scriptbench.log"

// Editing
const DefaultTabSize = 4
const DefaultMaxHighlightedLines = 300
const DefaultWhitespaceGlyph = "·"

// Header / colors
const DefaultHeaderText = "No errors found."
const DefaultMainColor = "darkgray"
const DefaultAccentColor = "darkcyan"
const DefaultHighlightStyle = "monokai"
