package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/bethropolis/scriptbench/internal/tui"
)

func TestProcessEvent(t *testing.T) {
	p := NewInputProcessor()

	tests := []struct {
		name string
		ev   tui.KeyEvent
		want ActionEvent
	}{
		{"rune", tui.RuneKey('x'), ActionEvent{Action: ActionInsertRune, Rune: 'x'}},
		{"space", tui.RuneKey(' '), ActionEvent{Action: ActionInsertRune, Rune: ' '}},
		{"shifted rune", tui.NewKeyEvent(tcell.KeyRune, 'X', tcell.ModShift), ActionEvent{Action: ActionInsertRune, Rune: 'X'}},
		{"alt rune", tui.NewKeyEvent(tcell.KeyRune, 'x', tcell.ModAlt), ActionEvent{Action: ActionUnknown}},
		{"enter", tui.NewKeyEvent(tcell.KeyEnter, 0, tcell.ModNone), ActionEvent{Action: ActionInsertNewLine}},
		{"backspace", tui.NewKeyEvent(tcell.KeyBackspace2, 0, tcell.ModNone), ActionEvent{Action: ActionDeleteCharBackward}},
		{"ctrl-h backspace", tui.NewKeyEvent(tcell.KeyBackspace, 0, tcell.ModNone), ActionEvent{Action: ActionDeleteCharBackward}},
		{"delete", tui.NewKeyEvent(tcell.KeyDelete, 0, tcell.ModNone), ActionEvent{Action: ActionDeleteCharForward}},
		{"tab", tui.NewKeyEvent(tcell.KeyTab, 0, tcell.ModNone), ActionEvent{Action: ActionIndent}},
		{"backtab", tui.NewKeyEvent(tcell.KeyBacktab, 0, tcell.ModShift), ActionEvent{Action: ActionOutdent}},
		{"shift tab", tui.NewKeyEvent(tcell.KeyTab, 0, tcell.ModShift), ActionEvent{Action: ActionOutdent}},
		{"escape", tui.NewKeyEvent(tcell.KeyEscape, 0, tcell.ModNone), ActionEvent{Action: ActionEscape}},
		{"insert", tui.NewKeyEvent(tcell.KeyInsert, 0, tcell.ModNone), ActionEvent{Action: ActionIgnore}},
		{"f1", tui.NewKeyEvent(tcell.KeyF1, 0, tcell.ModNone), ActionEvent{Action: ActionCopy}},
		{"f2", tui.NewKeyEvent(tcell.KeyF2, 0, tcell.ModNone), ActionEvent{Action: ActionPaste}},
		{"f3", tui.NewKeyEvent(tcell.KeyF3, 0, tcell.ModNone), ActionEvent{Action: ActionClearAll}},
		{"f7", tui.NewKeyEvent(tcell.KeyF7, 0, tcell.ModNone), ActionEvent{Action: ActionReserved}},
		{"shift up", tui.NewKeyEvent(tcell.KeyUp, 0, tcell.ModShift), ActionEvent{Action: ActionMoveUp}},
		{"page down", tui.NewKeyEvent(tcell.KeyPgDn, 0, tcell.ModNone), ActionEvent{Action: ActionMovePageDown}},
		{"ctrl-a", tui.NewKeyEvent(tcell.KeyCtrlA, 0, tcell.ModCtrl), ActionEvent{Action: ActionUnknown}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ProcessEvent(tt.ev))
		})
	}
}

func TestIsMovement(t *testing.T) {
	assert.True(t, ActionMoveHome.IsMovement())
	assert.True(t, ActionMovePageUp.IsMovement())
	assert.False(t, ActionInsertRune.IsMovement())
	assert.False(t, ActionEscape.IsMovement())
	assert.Equal(t, "ClearAll", ActionClearAll.String())
}
