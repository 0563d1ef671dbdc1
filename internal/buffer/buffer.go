// internal/buffer/buffer.go
package buffer

import "github.com/bethropolis/scriptbench/internal/types"

// Buffer defines the line-level text operations the editor relies on.
// A Buffer always holds at least one line and owns the logical cursor.
type Buffer interface {
	Lines() []string
	Line(index int) (string, error)
	LineCount() int
	LineLen(index int) int

	Cursor() types.Position
	SetCursor(pos types.Position)

	SplitAt(row, col int)
	JoinWithNext(row int) bool
	EraseCharBefore(row, col int) bool
	EraseCharAfter(row, col int) bool
	InsertChar(row, col int, ch rune)
	ClearAll()

	Indent(tab string) bool
	Outdent(tab string) bool
	AppendText(text string)

	Text() string
	IsBlank() bool
}
