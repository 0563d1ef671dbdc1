// internal/input/keymap.go
package input

import (
	"unicode"

	"github.com/bethropolis/scriptbench/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// Keymap maps special keys to editor actions.
type Keymap map[tcell.Key]Action

// ModKeymap maps keys combined with modifiers (Ctrl, Alt, Shift).
type ModKeymap map[tcell.ModMask]Keymap

// InputProcessor translates key events into ActionEvents.
type InputProcessor struct {
	keymap    Keymap
	modKeymap ModKeymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:    make(Keymap),
		modKeymap: make(ModKeymap),
	}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyPgUp] = ActionMovePageUp
	p.keymap[tcell.KeyPgDn] = ActionMovePageDown
	p.keymap[tcell.KeyHome] = ActionMoveHome
	p.keymap[tcell.KeyEnd] = ActionMoveEnd
	p.keymap[tcell.KeyEnter] = ActionInsertNewLine
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward
	p.keymap[tcell.KeyDelete] = ActionDeleteCharForward
	p.keymap[tcell.KeyTab] = ActionIndent
	p.keymap[tcell.KeyBacktab] = ActionOutdent
	p.keymap[tcell.KeyEscape] = ActionEscape
	p.keymap[tcell.KeyInsert] = ActionIgnore
	p.keymap[tcell.KeyF1] = ActionCopy
	p.keymap[tcell.KeyF2] = ActionPaste
	p.keymap[tcell.KeyF3] = ActionClearAll
	for k := tcell.KeyF4; k <= tcell.KeyF64; k++ {
		p.keymap[k] = ActionReserved
	}

	// Some terminals report Shift+Tab as Tab with the Shift modifier.
	p.modKeymap[tcell.ModShift] = Keymap{tcell.KeyTab: ActionOutdent}
}

// ProcessEvent returns the ActionEvent for a key. The dispatcher decides
// what the action means in the current state.
func (p *InputProcessor) ProcessEvent(ev tui.KeyEvent) ActionEvent {
	key := ev.Key
	mod := ev.Mod

	// 1. Modifier + key combinations
	if modKeyMap, ok := p.modKeymap[mod]; ok {
		if action, ok := modKeyMap[key]; ok {
			return ActionEvent{Action: action}
		}
	}

	// 2. Special keys; Shift/Ctrl variants of navigation keys map the same way
	if key != tcell.KeyRune {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action}
		}
		return ActionEvent{Action: ActionUnknown}
	}

	// 3. Printable runes, with or without Shift
	if mod&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) == 0 && unicode.IsPrint(ev.Rune) {
		return ActionEvent{Action: ActionInsertRune, Rune: ev.Rune}
	}

	return ActionEvent{Action: ActionUnknown}
}
