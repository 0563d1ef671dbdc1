// internal/highlighter/languages.go
package highlighter

import (
	"sync"

	"github.com/bethropolis/scriptbench/internal/highlighter/lang"
	"github.com/bethropolis/scriptbench/internal/logger"

	// Import the grammar bindings
	gosrc "github.com/smacker/go-tree-sitter/golang"
	jssrc "github.com/smacker/go-tree-sitter/javascript"
	pythonsrc "github.com/smacker/go-tree-sitter/python"
	rustsrc "github.com/smacker/go-tree-sitter/rust"
)

var registerOnce sync.Once

// RegisterLanguages fills the language registry with the bundled grammars.
// It is safe to call more than once.
func RegisterLanguages() {
	registerOnce.Do(func() {
		logger.Debugf("Registering languages...")

		lang.Register(&lang.Language{
			Name:           "Go",
			TreeSitterLang: gosrc.GetLanguage(),
			Aliases:        []string{"go", "golang"},
		})

		lang.Register(&lang.Language{
			Name:           "Python",
			TreeSitterLang: pythonsrc.GetLanguage(),
			Aliases:        []string{"python", "py", "python3"},
		})

		lang.Register(&lang.Language{
			Name:           "JavaScript",
			TreeSitterLang: jssrc.GetLanguage(),
			Aliases:        []string{"javascript", "js", "node"},
		})

		lang.Register(&lang.Language{
			Name:           "Rust",
			TreeSitterLang: rustsrc.GetLanguage(),
			Aliases:        []string{"rust", "rs"},
		})

		logger.Debugf("Registration complete. Registered %d languages.", len(lang.GetAll()))
	})
}
