// internal/types/position.go
package types

// Position represents a logical cursor or text position within the buffer.
// Line is the 0-based line index.
// Col is the 0-based column (rune) index within the line.
type Position struct {
	Line int
	Col  int // Rune index
}

// Before reports whether p comes strictly before other in reading order.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Col < other.Col
}

// Point is a physical terminal cell coordinate.
type Point struct {
	X int
	Y int
}
