package systems

import (
	"fmt"
	"time"

	"github.com/lixenwraith/glowgrid/constants"
	"github.com/lixenwraith/glowgrid/engine"
	"github.com/lixenwraith/glowgrid/lighting"
	"github.com/lixenwraith/glowgrid/material"
)

// FeedbackSystem writes fixture brightness into the material store
// A fixture without a usable visual handle is reported and skipped
type FeedbackSystem struct {
	profile   lighting.Profile
	materials *material.Store
}

// NewFeedbackSystem creates the brightness write-back pass
func NewFeedbackSystem(profile lighting.Profile, materials *material.Store) engine.System {
	return &FeedbackSystem{profile: profile, materials: materials}
}

// Name returns system's name
func (s *FeedbackSystem) Name() string {
	return "feedback"
}

// Priority returns the system's priority
func (s *FeedbackSystem) Priority() int {
	return constants.PriorityFeedback
}

// Update sets every fixture's emissive color from its lighting state
func (s *FeedbackSystem) Update(world *engine.World, dt time.Duration) {
	for _, e := range world.Fixtures.Entities() {
		f, ok := world.Fixtures.Get(e)
		if !ok {
			continue
		}
		visual, ok := world.Visuals.Get(e)
		if !ok {
			world.Report(s.Name(), e, engine.ErrVisualHandleMissing)
			continue
		}
		level := lighting.Brightness(f, s.profile)
		if err := s.materials.SetEmissive(visual.Material, material.Gray(level)); err != nil {
			world.Report(s.Name(), e, fmt.Errorf("%w: %w", engine.ErrVisualHandleMissing, err))
		}
	}
}
