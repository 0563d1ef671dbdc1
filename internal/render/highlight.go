// internal/render/highlight.go
package render

import (
	"strings"

	"github.com/bethropolis/scriptbench/internal/logger"
	"github.com/bethropolis/scriptbench/internal/tui"
	"github.com/bethropolis/scriptbench/internal/types"
)

// highlight runs the highlighter and paints its spans from the restart point.
func (r *Renderer) highlight(lines []string, from types.Position) []types.Diagnostic {
	res := r.opts.Highlighter.Highlight(lines, from)
	restart := clampPosition(res.Restart, lines)
	if from.Before(restart) {
		logger.Warnf("Highlighter restart %v is after edit start %v", restart, from)
	}

	r.note(r.ClearLines(restart))
	r.mapper.Place(r.term, restart, lines[restart.Line])
	r.row = restart.Line
	r.paint(res.Spans)
	return res.Diagnostics
}

// paint writes spans at the cursor. Line breaks inside a span continue on
// the next buffer row.
func (r *Renderer) paint(spans []types.Span) {
	for _, span := range spans {
		for i, part := range strings.Split(span.Text, "\n") {
			if i > 0 {
				r.nextLine()
			}
			r.writePart(part, span)
		}
	}
}

func (r *Renderer) writePart(text string, span types.Span) {
	if text == "" {
		return
	}
	color := span.Color
	if span.Whitespace && r.opts.ShowWhitespace {
		text = strings.NewReplacer(" ", r.opts.WhitespaceGlyph, "\t", r.opts.WhitespaceGlyph).Replace(text)
		color = r.opts.WhitespaceColor
	}
	tui.WithForeground(r.term, color, func() {
		r.term.Write(text)
	})
}

// nextLine moves to the start of the next row, preparing the row first when
// the buffer did not have it during the clear.
func (r *Renderer) nextLine() {
	r.row++
	if r.row >= r.buf.LineCount() {
		r.note(r.ClearLine(r.row, 0, false))
	}
	r.mapper.PlaceRow(r.term, r.row, r.mapper.Origin().X)
}

// report shows the pass outcome in the header. A gutter status such as
// ErrFileTooLarge takes the place of the diagnostics.
func (r *Renderer) report(diags []types.Diagnostic) bool {
	header := r.opts.Header
	if header == nil {
		return false
	}
	var changed bool
	if r.status != nil {
		changed = header.SetStatus(r.status)
	} else {
		changed = header.SetDiagnostics(diags)
	}
	header.Draw(r.term)
	return changed
}
