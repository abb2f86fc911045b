// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps special keys to actions.
type Keymap map[tcell.Key]Action

// RuneKeymap maps plain runes to actions.
type RuneKeymap map[rune]Action

// InputProcessor translates tcell key events into actions.
type InputProcessor struct {
	keymap     Keymap
	runeKeymap RuneKeymap
}

// NewInputProcessor creates a processor with the default bindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:     make(Keymap),
		runeKeymap: make(RuneKeymap),
	}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyPgUp] = ActionMovePageUp
	p.keymap[tcell.KeyPgDn] = ActionMovePageDown
	p.keymap[tcell.KeyHome] = ActionMoveStart
	p.keymap[tcell.KeyEnd] = ActionMoveEnd
	p.keymap[tcell.KeyEnter] = ActionConfirm
	p.keymap[tcell.KeyCtrlC] = ActionInterrupt

	p.runeKeymap['q'] = ActionQuit
	p.runeKeymap['y'] = ActionCopyName
}

// ProcessEvent returns the action bound to ev.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) Action {
	key := ev.Key()
	if key == tcell.KeyRune {
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) != 0 {
			return ActionUnknown
		}
		if action, ok := p.runeKeymap[ev.Rune()]; ok {
			return action
		}
		return ActionUnknown
	}
	if action, ok := p.keymap[key]; ok {
		return action
	}
	return ActionUnknown
}
