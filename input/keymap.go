package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps terminal key events to logical actions. Special keys and
// rune bindings are kept in separate tables, mirroring how terminals
// report them.
type Keymap struct {
	Keys  map[tcell.Key]Action
	Runes map[rune]Action
}

// DefaultKeymap returns the default bindings: a/d traverse (uppercase
// or shift = fast), arrow keys elevate, space fires, q or Ctrl-C quits.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Keys: map[tcell.Key]Action{
			tcell.KeyUp:    ActionElevateUp,
			tcell.KeyDown:  ActionElevateDown,
			tcell.KeyLeft:  ActionTraverseLeft,
			tcell.KeyRight: ActionTraverseRight,
			tcell.KeyCtrlC: ActionQuit,
			tcell.KeyEsc:   ActionQuit,
		},
		Runes: map[rune]Action{
			'a': ActionTraverseLeft,
			'A': ActionTraverseLeft,
			'd': ActionTraverseRight,
			'D': ActionTraverseRight,
			'w': ActionElevateUp,
			's': ActionElevateDown,
			' ': ActionFire,
			'q': ActionQuit,
		},
	}
}

// Translate resolves a tcell key event to an action. fast reports the
// fast-traverse modifier: an uppercase rune or a shifted key.
func (k *Keymap) Translate(ev *tcell.EventKey) (a Action, fast bool) {
	fast = ev.Modifiers()&tcell.ModShift != 0

	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			fast = true
		}
		return k.Runes[r], fast
	}
	return k.Keys[ev.Key()], fast
}
