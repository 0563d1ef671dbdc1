package modehandler

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/scriptbench/internal/buffer"
	"github.com/bethropolis/scriptbench/internal/config"
	"github.com/bethropolis/scriptbench/internal/core"
	"github.com/bethropolis/scriptbench/internal/input"
	"github.com/bethropolis/scriptbench/internal/tui"
	"github.com/bethropolis/scriptbench/internal/types"
)

type memClipboard struct{ text string }

func (c *memClipboard) GetText() (string, error) { return c.text, nil }
func (c *memClipboard) SetText(text string) error {
	c.text = text
	return nil
}

func newSession(t *testing.T, text string, pos types.Position, singleLine bool) (*ModeHandler, *core.Editor) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(60, 12)
	t.Cleanup(s.Fini)

	ed := core.NewEditor(tui.NewConsole(s), buffer.NewSliceBuffer(text), core.Options{
		Settings:   config.NewDefault(),
		SingleLine: singleLine,
		Clipboard:  &memClipboard{},
	})
	ed.Start()
	ed.GetBuffer().SetCursor(pos)

	mh := New(Config{Editor: ed, InputProcessor: input.NewInputProcessor()})
	return mh, ed
}

func key(k tcell.Key) tui.KeyEvent {
	return tui.NewKeyEvent(k, 0, tcell.ModNone)
}

func typeText(mh *ModeHandler, text string) {
	for _, r := range text {
		mh.HandleKeyEvent(tui.RuneKey(r))
	}
}

func TestTypeIntoEmptySession(t *testing.T) {
	mh, ed := newSession(t, "", types.Position{}, false)
	typeText(mh, "abc")

	assert.Equal(t, []string{"abc"}, ed.GetBuffer().Lines())
	assert.Equal(t, types.Position{Line: 0, Col: 3}, ed.GetCursor())
	assert.Equal(t, StateEditing, mh.State())
}

func TestEnterSplitsLine(t *testing.T) {
	mh, ed := newSession(t, "abc", types.Position{Col: 1}, false)
	assert.False(t, mh.HandleKeyEvent(key(tcell.KeyEnter)))

	assert.Equal(t, []string{"a", "bc"}, ed.GetBuffer().Lines())
	assert.Equal(t, types.Position{Line: 1, Col: 0}, ed.GetCursor())
}

func TestBackspaceJoinsLines(t *testing.T) {
	mh, ed := newSession(t, "a\nbc", types.Position{Line: 1}, false)
	mh.HandleKeyEvent(key(tcell.KeyBackspace2))

	assert.Equal(t, []string{"abc"}, ed.GetBuffer().Lines())
	assert.Equal(t, types.Position{Line: 0, Col: 1}, ed.GetCursor())
}

func TestShiftTabOutdents(t *testing.T) {
	mh, ed := newSession(t, "    x", types.Position{Col: 4}, false)
	mh.HandleKeyEvent(key(tcell.KeyBacktab))

	assert.Equal(t, []string{"x"}, ed.GetBuffer().Lines())
	assert.Equal(t, types.Position{Line: 0, Col: 0}, ed.GetCursor())
}

func TestSingleLineExitsOnEnterOnly(t *testing.T) {
	mh, ed := newSession(t, "", types.Position{}, true)
	typeText(mh, "hello")

	assert.False(t, mh.HandleKeyEvent(key(tcell.KeyEscape)))
	assert.False(t, mh.HandleKeyEvent(key(tcell.KeyEscape)))
	assert.Equal(t, StateEditing, mh.State())
	assert.Equal(t, []string{"hello"}, ed.GetBuffer().Lines())

	assert.True(t, mh.HandleKeyEvent(key(tcell.KeyEnter)))
	assert.True(t, mh.Terminated())
	assert.Equal(t, []string{"hello"}, ed.Finish())
}

func TestDoubleEscapeTerminates(t *testing.T) {
	mh, _ := newSession(t, "x", types.Position{Col: 1}, false)

	assert.False(t, mh.HandleKeyEvent(key(tcell.KeyEscape)))
	assert.Equal(t, StateAwaitingSecondEscape, mh.State())
	assert.True(t, mh.HandleKeyEvent(key(tcell.KeyEscape)))
	assert.Equal(t, StateTerminated, mh.State())

	assert.True(t, mh.HandleKeyEvent(tui.RuneKey('y')), "keys after termination are dropped")
}

func TestKeyAfterSingleEscapeIsHandled(t *testing.T) {
	mh, ed := newSession(t, "x", types.Position{Col: 1}, false)

	mh.HandleKeyEvent(key(tcell.KeyEscape))
	assert.False(t, mh.HandleKeyEvent(tui.RuneKey('y')))

	assert.Equal(t, StateEditing, mh.State())
	assert.Equal(t, []string{"xy"}, ed.GetBuffer().Lines())
}

func TestClearAllNeedsConfirmation(t *testing.T) {
	mh, ed := newSession(t, "a\nb", types.Position{Line: 1, Col: 1}, false)

	mh.HandleKeyEvent(key(tcell.KeyF3))
	assert.Equal(t, StateAwaitingSecondF3, mh.State())
	mh.HandleKeyEvent(tui.RuneKey('c'))
	assert.Equal(t, []string{"a", "bc"}, ed.GetBuffer().Lines(), "second key cancels and is typed")

	mh.HandleKeyEvent(key(tcell.KeyF3))
	mh.HandleKeyEvent(key(tcell.KeyF3))
	assert.Equal(t, StateEditing, mh.State())
	assert.Equal(t, []string{""}, ed.GetBuffer().Lines())
	assert.Equal(t, types.Position{}, ed.GetCursor())
}

func TestEscapeAfterF3StartsExit(t *testing.T) {
	mh, _ := newSession(t, "a", types.Position{Col: 1}, false)

	mh.HandleKeyEvent(key(tcell.KeyF3))
	mh.HandleKeyEvent(key(tcell.KeyEscape))
	assert.Equal(t, StateAwaitingSecondEscape, mh.State())
	assert.True(t, mh.HandleKeyEvent(key(tcell.KeyEscape)))
}

func TestReservedKeysDoNothing(t *testing.T) {
	mh, ed := newSession(t, "abc", types.Position{Col: 1}, false)

	for _, k := range []tcell.Key{tcell.KeyInsert, tcell.KeyF5, tcell.KeyF12} {
		assert.False(t, mh.HandleKeyEvent(key(k)))
	}
	assert.Equal(t, []string{"abc"}, ed.GetBuffer().Lines())
	assert.Equal(t, types.Position{Col: 1}, ed.GetCursor())
}

func TestNavigationDoesNotMutate(t *testing.T) {
	mh, ed := newSession(t, "abc\nd", types.Position{Col: 3}, false)

	mh.HandleKeyEvent(key(tcell.KeyDown))
	assert.Equal(t, types.Position{Line: 1, Col: 1}, ed.GetCursor())
	mh.HandleKeyEvent(key(tcell.KeyHome))
	assert.Equal(t, types.Position{Line: 1, Col: 0}, ed.GetCursor())
	mh.HandleKeyEvent(key(tcell.KeyPgUp))
	assert.Equal(t, types.Position{Line: 0, Col: 0}, ed.GetCursor())
	assert.Equal(t, []string{"abc", "d"}, ed.GetBuffer().Lines())
}

func TestCopyThenPaste(t *testing.T) {
	mh, ed := newSession(t, "ab", types.Position{Col: 2}, false)

	mh.HandleKeyEvent(key(tcell.KeyF1))
	mh.HandleKeyEvent(key(tcell.KeyF2))
	assert.Equal(t, []string{"abab"}, ed.GetBuffer().Lines())
}

func TestNewPanicsWithoutEditor(t *testing.T) {
	assert.Panics(t, func() { New(Config{InputProcessor: input.NewInputProcessor()}) })
}
