package engine

import (
	"fmt"

	"github.com/lixenwraith/glowgrid/components"
	"github.com/lixenwraith/glowgrid/core"
)

// Controlled returns the single player-steered entity
// Zero avatars yields ErrNoControlledEntity, more than one yields ErrMultipleControlledEntities
func (w *World) Controlled() (core.Entity, error) {
	switch w.Avatars.Count() {
	case 0:
		return core.NoEntity, ErrNoControlledEntity
	case 1:
		return w.Avatars.Entities()[0], nil
	default:
		return core.NoEntity, fmt.Errorf("%w: found %d", ErrMultipleControlledEntities, w.Avatars.Count())
	}
}

// ControlledAvatar returns the controlled entity together with its component
func (w *World) ControlledAvatar() (core.Entity, components.AvatarComponent, error) {
	e, err := w.Controlled()
	if err != nil {
		return core.NoEntity, components.AvatarComponent{}, err
	}
	a, _ := w.Avatars.Get(e)
	return e, a, nil
}

// Validate checks scene invariants that must hold before the first frame
// A missing avatar is tolerated here; passes skip per frame and report it
func (w *World) Validate() error {
	if w.Avatars.Count() > 1 {
		_, err := w.Controlled()
		return err
	}
	for _, e := range w.Fixtures.Entities() {
		f, _ := w.Fixtures.Get(e)
		if f.DetectionRadius < 0 {
			return fmt.Errorf("fixture %d: negative detection radius %v", e, f.DetectionRadius)
		}
	}
	return nil
}
