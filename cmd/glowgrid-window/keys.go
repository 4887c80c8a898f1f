package main

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/glowgrid/input"
)

// keyAliases maps tcell-style names from the config onto ebiten key names
var keyAliases = map[string]string{
	"up":    "ArrowUp",
	"down":  "ArrowDown",
	"left":  "ArrowLeft",
	"right": "ArrowRight",
	"esc":   "Escape",
	" ":     "Space",
	"space": "Space",
}

// keyBinding ties one physical key to an action
type keyBinding struct {
	key    ebiten.Key
	action input.Action
}

// parseBindings resolves config key names to ebiten keys
// Modifier combos have no polled equivalent and are skipped
func parseBindings(bindings map[string][]string) ([]keyBinding, error) {
	var out []keyBinding
	for name, keys := range bindings {
		action, ok := input.ParseAction(name)
		if !ok {
			return nil, fmt.Errorf("unknown action %q", name)
		}
		for _, k := range keys {
			if strings.ContainsAny(k, "+-") && len(k) > 1 {
				continue
			}
			text := k
			if alias, ok := keyAliases[strings.ToLower(k)]; ok {
				text = alias
			}
			var key ebiten.Key
			if err := key.UnmarshalText([]byte(text)); err != nil {
				return nil, fmt.Errorf("key %q for %s: %w", k, name, err)
			}
			out = append(out, keyBinding{key: key, action: action})
		}
	}
	return out, nil
}
