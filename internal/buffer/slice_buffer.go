// internal/buffer/slice_buffer.go
package buffer

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bethropolis/scriptbench/internal/types"
	"github.com/bethropolis/scriptbench/internal/utils"
)

// SliceBuffer keeps one byte slice per line. Columns are rune indexes.
type SliceBuffer struct {
	lines  [][]byte
	cursor types.Position
}

// NewSliceBuffer creates a buffer seeded with text. Embedded line breaks
// (LF, CRLF or CR) split the seed into several lines; an empty seed gives
// one empty line.
func NewSliceBuffer(text string) *SliceBuffer {
	sb := &SliceBuffer{}
	for _, piece := range strings.Split(utils.NormalizeNewlines(text), "\n") {
		sb.lines = append(sb.lines, []byte(piece))
	}
	return sb
}

// Lines returns a copy of the content, one string per line.
func (sb *SliceBuffer) Lines() []string {
	out := make([]string, len(sb.lines))
	for i, line := range sb.lines {
		out[i] = string(line)
	}
	return out
}

// Line returns the text of one line.
func (sb *SliceBuffer) Line(index int) (string, error) {
	if index < 0 || index >= len(sb.lines) {
		return "", fmt.Errorf("line index %d out of bounds (0-%d)", index, len(sb.lines)-1)
	}
	return string(sb.lines[index]), nil
}

// LineCount is never less than one.
func (sb *SliceBuffer) LineCount() int {
	return len(sb.lines)
}

// LineLen returns the rune length of a line, or 0 for an invalid index.
func (sb *SliceBuffer) LineLen(index int) int {
	if index < 0 || index >= len(sb.lines) {
		return 0
	}
	return utf8.RuneCount(sb.lines[index])
}

// Cursor returns the logical cursor.
func (sb *SliceBuffer) Cursor() types.Position {
	return sb.cursor
}

// SetCursor moves the logical cursor, clamped to the buffer bounds.
func (sb *SliceBuffer) SetCursor(pos types.Position) {
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Line >= len(sb.lines) {
		pos.Line = len(sb.lines) - 1
	}
	if pos.Col < 0 {
		pos.Col = 0
	}
	if maxCol := sb.LineLen(pos.Line); pos.Col > maxCol {
		pos.Col = maxCol
	}
	sb.cursor = pos
}

// offset converts a rune column to a byte offset, panicking when the column
// lies past the end of the line.
func (sb *SliceBuffer) offset(row, col int) int {
	if row < 0 || row >= len(sb.lines) {
		panic(fmt.Sprintf("buffer: row %d out of bounds (0-%d)", row, len(sb.lines)-1))
	}
	off := utils.RuneIndexToByteOffset(sb.lines[row], col)
	if col < 0 || off < 0 {
		panic(fmt.Sprintf("buffer: column %d out of bounds for line %d (len %d)", col, row, sb.LineLen(row)))
	}
	return off
}

// SplitAt divides a line at col; the tail becomes a new line below.
// The cursor moves to the start of the new line.
func (sb *SliceBuffer) SplitAt(row, col int) {
	off := sb.offset(row, col)
	line := sb.lines[row]

	head := make([]byte, off)
	copy(head, line[:off])
	tail := make([]byte, len(line)-off)
	copy(tail, line[off:])

	sb.lines[row] = head
	sb.insertLine(row+1, tail)
	sb.cursor = types.Position{Line: row + 1, Col: 0}
}

// JoinWithNext appends the next line to row and removes it. It returns false
// when row is the last line. The cursor is left untouched.
func (sb *SliceBuffer) JoinWithNext(row int) bool {
	if row < 0 || row+1 >= len(sb.lines) {
		return false
	}
	sb.lines[row] = append(sb.lines[row], sb.lines[row+1]...)
	sb.removeLine(row + 1)
	return true
}

// EraseCharBefore removes the character left of (row, col), joining with the
// previous line at column 0. Returns false at the start of the buffer.
func (sb *SliceBuffer) EraseCharBefore(row, col int) bool {
	if col > 0 {
		start := sb.offset(row, col-1)
		end := sb.offset(row, col)
		sb.lines[row] = append(sb.lines[row][:start], sb.lines[row][end:]...)
		sb.cursor = types.Position{Line: row, Col: col - 1}
		return true
	}
	if row == 0 {
		return false
	}
	boundary := sb.LineLen(row - 1)
	sb.JoinWithNext(row - 1)
	sb.cursor = types.Position{Line: row - 1, Col: boundary}
	return true
}

// EraseCharAfter removes the character right of (row, col), pulling the next
// line up at the end of a line. Returns false at the end of the buffer.
func (sb *SliceBuffer) EraseCharAfter(row, col int) bool {
	if col < sb.LineLen(row) {
		start := sb.offset(row, col)
		end := sb.offset(row, col+1)
		sb.lines[row] = append(sb.lines[row][:start], sb.lines[row][end:]...)
		sb.cursor = types.Position{Line: row, Col: col}
		return true
	}
	if !sb.JoinWithNext(row) {
		return false
	}
	sb.cursor = types.Position{Line: row, Col: col}
	return true
}

// InsertChar inserts ch at (row, col) and advances the cursor.
// A column past the end of the line is a caller bug and panics.
func (sb *SliceBuffer) InsertChar(row, col int, ch rune) {
	off := sb.offset(row, col)
	encoded := utf8.AppendRune(nil, ch)

	line := sb.lines[row]
	newLine := make([]byte, 0, len(line)+len(encoded))
	newLine = append(newLine, line[:off]...)
	newLine = append(newLine, encoded...)
	newLine = append(newLine, line[off:]...)
	sb.lines[row] = newLine
	sb.cursor = types.Position{Line: row, Col: col + 1}
}

// ClearAll resets the buffer to one empty line.
func (sb *SliceBuffer) ClearAll() {
	sb.lines = [][]byte{{}}
	sb.cursor = types.Position{}
}

// Indent prefixes the cursor line with tab when everything left of the
// cursor is blank. It returns false otherwise, leaving the line as is.
func (sb *SliceBuffer) Indent(tab string) bool {
	row, col := sb.cursor.Line, sb.cursor.Col
	prefix := sb.lines[row][:sb.offset(row, col)]
	if len(bytes.TrimFunc(prefix, unicode.IsSpace)) != 0 {
		return false
	}
	sb.lines[row] = append([]byte(tab), sb.lines[row]...)
	sb.cursor.Col = col + utf8.RuneCountInString(tab)
	return true
}

// Outdent removes one leading tab run from the cursor line, if present.
func (sb *SliceBuffer) Outdent(tab string) bool {
	row := sb.cursor.Line
	if tab == "" || !bytes.HasPrefix(sb.lines[row], []byte(tab)) {
		return false
	}
	sb.lines[row] = sb.lines[row][len(tab):]
	sb.cursor.Col -= utf8.RuneCountInString(tab)
	if sb.cursor.Col < 0 {
		sb.cursor.Col = 0
	}
	return true
}

// AppendText splices text at the cursor row: the first piece is appended to
// the end of the row, later pieces become new lines below it. The cursor ends
// at the end of the last line touched. Text must already use '\n' breaks.
func (sb *SliceBuffer) AppendText(text string) {
	row := sb.cursor.Line
	pieces := strings.Split(text, "\n")
	sb.lines[row] = append(sb.lines[row], pieces[0]...)
	for i, piece := range pieces[1:] {
		sb.insertLine(row+1+i, []byte(piece))
	}
	last := row + len(pieces) - 1
	sb.cursor = types.Position{Line: last, Col: sb.LineLen(last)}
}

// Text joins all lines with '\n'.
func (sb *SliceBuffer) Text() string {
	return string(bytes.Join(sb.lines, []byte("\n")))
}

// IsBlank reports whether the buffer is a single line of whitespace.
func (sb *SliceBuffer) IsBlank() bool {
	return len(sb.lines) == 1 && len(bytes.TrimSpace(sb.lines[0])) == 0
}

func (sb *SliceBuffer) insertLine(index int, line []byte) {
	sb.lines = append(sb.lines, nil)
	copy(sb.lines[index+1:], sb.lines[index:])
	sb.lines[index] = line
}

func (sb *SliceBuffer) removeLine(index int) {
	sb.lines = append(sb.lines[:index], sb.lines[index+1:]...)
}
