// internal/event/event.go
package event

import "github.com/bethropolis/scriptbench/internal/types"

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	TypeSessionStarted    // Frame drawn and first render done
	TypeBufferModified    // Buffer content changed
	TypeCursorMoved       // Logical cursor moved without an edit
	TypeDiagnosticChanged // Header text changed
	TypeSessionEnded      // Session terminated, lines about to be returned
)

func (t Type) String() string {
	switch t {
	case TypeSessionStarted:
		return "SessionStarted"
	case TypeBufferModified:
		return "BufferModified"
	case TypeCursorMoved:
		return "CursorMoved"
	case TypeDiagnosticChanged:
		return "DiagnosticChanged"
	case TypeSessionEnded:
		return "SessionEnded"
	default:
		return "Unknown"
	}
}

// Event is the structure passed to handlers.
type Event struct {
	Type Type
	Data interface{}
}

// SessionStartedData describes a freshly started session.
type SessionStartedData struct {
	SingleLine   bool
	Highlighting bool
	Origin       types.Point
}

// BufferModifiedData reports a change in the buffer.
type BufferModifiedData struct {
	LineCount int
	Cursor    types.Position
	// Delta is the change in line count caused by the edit.
	Delta int
}

// CursorMovedData contains the new cursor position.
type CursorMovedData struct {
	NewPosition types.Position
}

// DiagnosticChangedData carries the text now shown in the header.
type DiagnosticChangedData struct {
	Message string
	IsError bool
	// Default is true when no diagnostic is present.
	Default bool
}

// SessionEndedData holds the final content.
type SessionEndedData struct {
	Lines []string
}
