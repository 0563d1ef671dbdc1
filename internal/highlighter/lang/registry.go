package lang

import (
	"sync"

	"github.com/bethropolis/scriptbench/internal/logger"
)

var (
	// Global language registry
	registry struct {
		sync.RWMutex
		languages []*Language
	}
)

// Register adds a language to the registry. A language registered under a
// name that already exists replaces the earlier entry.
func Register(lang *Language) {
	registry.Lock()
	defer registry.Unlock()

	for i, existing := range registry.languages {
		if existing.Name == lang.Name {
			logger.Warnf("Language %s already registered, overriding", lang.Name)
			registry.languages[i] = lang
			return
		}
	}
	registry.languages = append(registry.languages, lang)

	logger.Debugf("Registered language: %s with aliases: %v", lang.Name, lang.Aliases)
}

// Get returns the language with the given name or alias, or nil.
func Get(name string) *Language {
	registry.RLock()
	defer registry.RUnlock()

	for _, l := range registry.languages {
		if l.Matches(name) {
			return l
		}
	}
	return nil
}

// GetAll returns all registered languages
func GetAll() []*Language {
	registry.RLock()
	defer registry.RUnlock()

	result := make([]*Language, len(registry.languages))
	copy(result, registry.languages)
	return result
}

// Names returns the display names of all registered languages.
func Names() []string {
	all := GetAll()
	names := make([]string, len(all))
	for i, l := range all {
		names[i] = l.Name
	}
	return names
}
