// internal/highlighter/detect.go
package highlighter

import (
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/go-enry/go-enry/v2"

	"github.com/bethropolis/scriptbench/internal/highlighter/lang"
	"github.com/bethropolis/scriptbench/internal/logger"
)

// minClassifyLen is the shortest trimmed text handed to the classifier.
// Shorter snippets flip between languages on every keystroke.
const minClassifyLen = 24

// DetectLanguage guesses the language of text and returns its name, or ""
// when nothing fits. A shebang wins, then chroma's content analysers, then
// the enry classifier limited to the registered languages.
func DetectLanguage(text string) string {
	content := []byte(text)

	if name, _ := enry.GetLanguageByShebang(content); name != "" {
		logger.DebugTagf("highlight", "Detected %s from shebang", name)
		return name
	}
	if l := lexers.Analyse(text); l != nil {
		return l.Config().Name
	}

	trimmed := strings.TrimSpace(text)
	if len(trimmed) < minClassifyLen {
		return ""
	}
	RegisterLanguages()
	candidates := lang.Names()
	if len(candidates) == 0 {
		return ""
	}
	name, _ := enry.GetLanguageByClassifier([]byte(trimmed), candidates)
	if name != "" {
		logger.DebugTagf("highlight", "Classifier picked %s", name)
	}
	return name
}
