// internal/highlighter/chroma.go
package highlighter

import (
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/scriptbench/internal/highlighter/lang"
	"github.com/bethropolis/scriptbench/internal/logger"
	"github.com/bethropolis/scriptbench/internal/types"
)

// Options configures a Chroma highlighter.
type Options struct {
	// Language is a chroma lexer name or alias. Empty means detect from content.
	Language string
	// Style is a chroma style name; unknown names fall back to chroma's default.
	Style string
	// TextColor is used for tokens the style leaves uncolored.
	TextColor tcell.Color
	// Diagnostics enables the tree-sitter syntax check.
	Diagnostics bool
}

// Chroma highlights with chroma lexers and styles.
type Chroma struct {
	language string
	style    *chroma.Style
	text     tcell.Color
	checker  *SyntaxChecker
}

// NewChroma creates a chroma-backed highlighter.
func NewChroma(opts Options) *Chroma {
	c := &Chroma{
		language: strings.TrimSpace(opts.Language),
		style:    styles.Get(opts.Style),
		text:     opts.TextColor,
	}
	if opts.Diagnostics {
		c.checker = NewSyntaxChecker()
	}
	logger.Debugf("Chroma highlighter: language=%q style=%s", c.language, c.style.Name)
	return c
}

// Highlight tokenizes the whole content and returns the spans from the start
// of the line holding from.
func (c *Chroma) Highlight(lines []string, from types.Position) Result {
	if len(lines) == 0 {
		lines = []string{""}
	}
	restart := types.Position{Line: from.Line}
	if restart.Line < 0 {
		restart.Line = 0
	}
	if restart.Line >= len(lines) {
		restart.Line = len(lines) - 1
	}

	text := strings.Join(lines, "\n")
	name := c.resolve(text)

	skip := 0
	for _, l := range lines[:restart.Line] {
		skip += utf8.RuneCountInString(l) + 1
	}

	res := Result{
		Spans:   c.spans(name, text, skip),
		Restart: restart,
	}
	if c.checker != nil {
		res.Diagnostics = c.checker.Check(name, []byte(text))
	}
	logger.DebugTagf("highlight", "Highlighted %d lines as %q, restart %v, %d spans",
		len(lines), name, restart, len(res.Spans))
	return res
}

// HighlightText colors text without diagnostics.
func (c *Chroma) HighlightText(text string) []types.Span {
	return c.spans(c.resolve(text), text, 0)
}

// resolve returns the configured language or the detected one.
func (c *Chroma) resolve(text string) string {
	if c.language != "" {
		return c.language
	}
	return DetectLanguage(text)
}

func (c *Chroma) lexer(name string) chroma.Lexer {
	var l chroma.Lexer
	if name != "" {
		l = lexers.Get(name)
		if l == nil {
			if known := lang.Get(name); known != nil {
				l = lexers.Get(known.LexerName())
			}
		}
	}
	if l == nil {
		l = lexers.Fallback
	}
	return chroma.Coalesce(l)
}

// spans tokenizes text and converts the tokens to spans, dropping the first
// skip runes. Output never runs past the end of text, even when the lexer
// appends a trailing newline.
func (c *Chroma) spans(name, text string, skip int) []types.Span {
	total := utf8.RuneCountInString(text)
	tokens, err := chroma.Tokenise(c.lexer(name), nil, text)
	if err != nil {
		logger.Warnf("Tokenise failed for %q: %v", name, err)
		tokens = []chroma.Token{{Type: chroma.Text, Value: text}}
	}

	var out []types.Span
	pos := 0
	for _, tok := range tokens {
		if pos >= total {
			break
		}
		value := []rune(tok.Value)
		start := pos
		pos += len(value)
		if pos <= skip {
			continue
		}
		if start < skip {
			value = value[skip-start:]
			start = skip
		}
		if start+len(value) > total {
			value = value[:total-start]
		}
		out = AppendSplit(out, string(value), c.color(tok.Type))
	}
	return out
}

func (c *Chroma) color(tt chroma.TokenType) tcell.Color {
	entry := c.style.Get(tt)
	if !entry.Colour.IsSet() {
		return c.text
	}
	return tcell.NewRGBColor(int32(entry.Colour.Red()), int32(entry.Colour.Green()), int32(entry.Colour.Blue()))
}

// AppendSplit appends value to out as spans of one color, separating runs
// of blanks so they can be drawn with the whitespace glyph.
func AppendSplit(out []types.Span, value string, color tcell.Color) []types.Span {
	start := 0
	blank := false
	for i, r := range value {
		isBlank := r == ' ' || r == '\t'
		if i == 0 {
			blank = isBlank
			continue
		}
		if isBlank != blank {
			out = append(out, types.Span{Text: value[start:i], Color: color, Whitespace: blank})
			start = i
			blank = isBlank
		}
	}
	if start < len(value) {
		out = append(out, types.Span{Text: value[start:], Color: color, Whitespace: blank})
	}
	return out
}
