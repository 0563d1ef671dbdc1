// internal/highlighter/checker.go
package highlighter

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/bethropolis/scriptbench/internal/highlighter/lang"
	"github.com/bethropolis/scriptbench/internal/logger"
	"github.com/bethropolis/scriptbench/internal/types"
	"github.com/bethropolis/scriptbench/internal/utils"
)

// maxSnippet bounds the source excerpt quoted in a diagnostic.
const maxSnippet = 20

// SyntaxChecker parses content with tree-sitter and reports the ERROR and
// MISSING nodes of the tree as diagnostics.
type SyntaxChecker struct {
	parser *sitter.Parser
}

// NewSyntaxChecker creates a checker with its own parser.
func NewSyntaxChecker() *SyntaxChecker {
	RegisterLanguages()
	return &SyntaxChecker{parser: sitter.NewParser()}
}

// Check parses source as the named language. Unknown languages produce no
// diagnostics. Unexpected input is reported as an error, a node the parser
// had to invent as a warning.
func (sc *SyntaxChecker) Check(language string, source []byte) []types.Diagnostic {
	l := lang.Get(language)
	if l == nil || l.TreeSitterLang == nil {
		return nil
	}
	sc.parser.SetLanguage(l.TreeSitterLang)

	tree, err := sc.parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		logger.Errorf("Tree-sitter parsing error: %v", err)
		return nil
	}
	defer tree.Close()

	root := tree.RootNode()
	if !root.HasError() {
		return nil
	}

	lines := bytes.Split(source, []byte("\n"))
	var diags []types.Diagnostic
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		switch {
		case n.IsMissing():
			diags = append(diags, types.Diagnostic{
				Message: fmt.Sprintf("WARNING: missing %s at %s", n.Type(), location(lines, n.StartPoint())),
			})
			return
		case n.IsError():
			diags = append(diags, types.Diagnostic{
				Message: fmt.Sprintf("ERROR: unexpected %q at %s", snippet(n.Content(source)), location(lines, n.StartPoint())),
			})
			return
		}
		if !n.HasError() {
			return
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	walk(root)

	logger.DebugTagf("highlight", "%s check found %d problem(s)", l.Name, len(diags))
	return diags
}

// location formats a tree-sitter point as 1-based "line L, col C", with
// the column counted in runes.
func location(lines [][]byte, p sitter.Point) string {
	row := int(p.Row)
	col := int(p.Column)
	if row < len(lines) {
		col = utils.ByteOffsetToRuneIndex(lines[row], col)
	}
	return fmt.Sprintf("line %d, col %d", row+1, col+1)
}

func snippet(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	if r := []rune(s); len(r) > maxSnippet {
		s = string(r[:maxSnippet]) + "…"
	}
	return s
}
