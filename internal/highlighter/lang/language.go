package lang

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// Language describes a programming language the checker can parse.
type Language struct {
	// Name is the display name, matching the names go-enry reports
	Name string

	// TreeSitterLang is the tree-sitter grammar instance
	TreeSitterLang *sitter.Language

	// Aliases are the lower-case names a user may configure for the language.
	// The first alias doubles as the chroma lexer name.
	Aliases []string
}

// LexerName returns the name chroma knows the language by.
func (l *Language) LexerName() string {
	if len(l.Aliases) > 0 {
		return l.Aliases[0]
	}
	return strings.ToLower(l.Name)
}

// Matches reports whether name refers to this language.
func (l *Language) Matches(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return false
	}
	if strings.ToLower(l.Name) == name {
		return true
	}
	for _, alias := range l.Aliases {
		if alias == name {
			return true
		}
	}
	return false
}
