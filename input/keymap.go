package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Named keys accepted in the keys section, case-insensitive
var specialKeys = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"ctrl+c":    tcell.KeyCtrlC,
	"ctrl+q":    tcell.KeyCtrlQ,
	"ctrl+s":    tcell.KeyCtrlS,
}

// Rune aliases for keys that are awkward to write in YAML
var runeAliases = map[string]rune{
	"space": ' ',
}

// Keymap resolves tcell key events to actions
type Keymap struct {
	keys  map[tcell.Key]Action
	runes map[rune]Action
}

// NewKeymap builds a keymap from action name to key names
// Errors on unknown action names or unparseable key names
func NewKeymap(bindings map[string][]string) (*Keymap, error) {
	km := &Keymap{
		keys:  make(map[tcell.Key]Action),
		runes: make(map[rune]Action),
	}
	for name, keys := range bindings {
		action, ok := ParseAction(name)
		if !ok {
			return nil, fmt.Errorf("keymap: unknown action %q", name)
		}
		for _, k := range keys {
			if err := km.bind(k, action); err != nil {
				return nil, fmt.Errorf("keymap: action %q: %w", name, err)
			}
		}
	}
	return km, nil
}

func (km *Keymap) bind(name string, action Action) error {
	lower := strings.ToLower(strings.ReplaceAll(name, "-", "+"))
	if key, ok := specialKeys[lower]; ok {
		km.keys[key] = action
		return nil
	}
	if r, ok := runeAliases[lower]; ok {
		km.runes[r] = action
		return nil
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		km.runes[r] = action
		return nil
	}
	return fmt.Errorf("unknown key %q", name)
}

// Resolve returns the action bound to a key event
func (km *Keymap) Resolve(ev *tcell.EventKey) (Action, bool) {
	if ev.Key() == tcell.KeyRune {
		a, ok := km.runes[ev.Rune()]
		return a, ok
	}
	a, ok := km.keys[ev.Key()]
	return a, ok
}
