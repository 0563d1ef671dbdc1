package text

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/bethropolis/scriptbench/internal/buffer"
	"github.com/bethropolis/scriptbench/internal/clipboard"
	"github.com/bethropolis/scriptbench/internal/logger"
	"github.com/bethropolis/scriptbench/internal/types"
)

// EditorInterface defines editor methods needed
type EditorInterface interface {
	GetBuffer() buffer.Buffer
	IsSingleLine() bool
	Highlighting() bool
	Tabulation() string
	GetClipboard() clipboard.Clipboard

	// Changed repaints after an edit that started at from.
	Changed(from types.Position)
	// Appended paints text that was added at pos, at the end of a line,
	// without a full repaint.
	Appended(pos types.Position, text string)
}

// Operations handles text insertion/deletion
type Operations struct {
	editor EditorInterface
}

// NewOperations creates a text operations manager
func NewOperations(editor EditorInterface) *Operations {
	return &Operations{
		editor: editor,
	}
}

// InsertRune inserts a single rune at cursor. A character typed at the end
// of a line is painted directly unless it may change the highlighting.
func (o *Operations) InsertRune(r rune) {
	buf := o.editor.GetBuffer()
	pos := buf.Cursor()
	atEnd := pos.Col == buf.LineLen(pos.Line)

	buf.InsertChar(pos.Line, pos.Col, r)

	if atEnd && !(o.editor.Highlighting() && !unicode.IsSpace(r)) {
		o.editor.Appended(pos, string(r))
		return
	}
	o.editor.Changed(pos)
}

// InsertNewLine splits the line at the cursor.
func (o *Operations) InsertNewLine() {
	if o.editor.IsSingleLine() {
		logger.Warnf("InsertNewLine: ignored in single-line mode")
		return
	}
	buf := o.editor.GetBuffer()
	pos := buf.Cursor()
	buf.SplitAt(pos.Line, pos.Col)
	o.editor.Changed(types.Position{Line: pos.Line, Col: pos.Col})
}

// DeleteBackward erases the character left of the cursor, joining lines at
// a line start. Nothing happens at the start of the buffer.
func (o *Operations) DeleteBackward() {
	buf := o.editor.GetBuffer()
	pos := buf.Cursor()
	if !buf.EraseCharBefore(pos.Line, pos.Col) {
		return
	}
	o.editor.Changed(buf.Cursor())
}

// DeleteForward erases the character right of the cursor, pulling the next
// line up at a line end. Nothing happens at the end of the buffer.
func (o *Operations) DeleteForward() {
	buf := o.editor.GetBuffer()
	pos := buf.Cursor()
	if !buf.EraseCharAfter(pos.Line, pos.Col) {
		return
	}
	o.editor.Changed(pos)
}

// InsertTab indents the line when only blanks precede the cursor, and
// inserts a single space otherwise.
func (o *Operations) InsertTab() {
	buf := o.editor.GetBuffer()
	pos := buf.Cursor()
	if buf.Indent(o.editor.Tabulation()) {
		o.editor.Changed(types.Position{Line: pos.Line})
		return
	}
	o.InsertRune(' ')
}

// Outdent removes one leading tabulation from the cursor line, if present.
func (o *Operations) Outdent() {
	buf := o.editor.GetBuffer()
	row := buf.Cursor().Line
	if !buf.Outdent(o.editor.Tabulation()) {
		return
	}
	o.editor.Changed(types.Position{Line: row})
}

// Copy puts the whole buffer on the clipboard.
func (o *Operations) Copy() error {
	text := strings.Join(o.editor.GetBuffer().Lines(), "\n")
	if err := o.editor.GetClipboard().SetText(text); err != nil {
		return fmt.Errorf("copy failed: %w", err)
	}
	logger.Debugf("Copied %d bytes to clipboard", len(text))
	return nil
}

// Paste splices the clipboard text in at the cursor row and leaves the
// cursor at the end of the last pasted line. In single-line mode line
// breaks become spaces.
func (o *Operations) Paste() error {
	text, err := o.editor.GetClipboard().GetText()
	if err != nil {
		return fmt.Errorf("paste failed: %w", err)
	}
	text = clipboard.NormalizePaste(text, o.editor.Tabulation())
	if o.editor.IsSingleLine() {
		text = strings.ReplaceAll(text, "\n", " ")
	}
	if text == "" {
		return nil
	}

	buf := o.editor.GetBuffer()
	row := buf.Cursor().Line
	buf.AppendText(text)
	logger.Debugf("Pasted %d bytes at line %d", len(text), row)
	o.editor.Changed(types.Position{Line: row})
	return nil
}

// ClearAll empties the buffer.
func (o *Operations) ClearAll() {
	o.editor.GetBuffer().ClearAll()
	o.editor.Changed(types.Position{})
}
