package audio

import (
	"github.com/lixenwraith/glowgrid/events"
)

// Player is the subset of SoundManager the event handler needs
type Player interface {
	PlayChime()
	PlayBump()
}

// NewEventHandler maps simulation events to cues
// Activation plays the chime, collision plays the bump
func NewEventHandler[T any](p Player) events.Handler[T] {
	return events.HandlerFunc[T]{
		Types: []events.EventType{events.EventFixtureActivated, events.EventCollision},
		Fn: func(_ T, ev events.GameEvent) {
			switch ev.Type {
			case events.EventFixtureActivated:
				p.PlayChime()
			case events.EventCollision:
				p.PlayBump()
			}
		},
	}
}
