// Package input maps host key events to simulation intent
package input

import (
	"github.com/lixenwraith/glowgrid/config"
	"github.com/lixenwraith/glowgrid/core"
)

// Action is a bindable command
type Action uint8

const (
	ActionNone Action = iota
	ActionForward
	ActionBackward
	ActionTurnLeft
	ActionTurnRight
	ActionQuit
	ActionPause
	ActionMute
	actionCount
)

var actionNames = map[string]Action{
	config.ActionForward:   ActionForward,
	config.ActionBackward:  ActionBackward,
	config.ActionTurnLeft:  ActionTurnLeft,
	config.ActionTurnRight: ActionTurnRight,
	config.ActionQuit:      ActionQuit,
	config.ActionPause:     ActionPause,
	config.ActionMute:      ActionMute,
}

// ParseAction returns the action for a config name
func ParseAction(name string) (Action, bool) {
	a, ok := actionNames[name]
	return a, ok
}

// String returns the config name of the action
func (a Action) String() string {
	for name, v := range actionNames {
		if v == a {
			return name
		}
	}
	return "none"
}

// IsMovement reports whether the action feeds intent rather than the host
func (a Action) IsMovement() bool {
	return a >= ActionForward && a <= ActionTurnRight
}

// IntentFromActions sets an intent flag for each held movement action
func IntentFromActions(held ...Action) core.Intent {
	var in core.Intent
	for _, a := range held {
		switch a {
		case ActionForward:
			in.Forward = true
		case ActionBackward:
			in.Backward = true
		case ActionTurnLeft:
			in.TurnLeft = true
		case ActionTurnRight:
			in.TurnRight = true
		}
	}
	return in
}
