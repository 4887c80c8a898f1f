package systems

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/glowgrid/constants"
	"github.com/lixenwraith/glowgrid/engine"
	"github.com/lixenwraith/glowgrid/events"
	"github.com/lixenwraith/glowgrid/lighting"
	"github.com/lixenwraith/glowgrid/status"
)

// LightingSystem owns fixture activation state
// Already active fixtures advance first, then this frame's edges are applied,
// so a fixture lit this frame reports zero elapsed time and full brightness
type LightingSystem struct {
	profile lighting.Profile

	statActivations   *atomic.Int64
	statDeactivations *atomic.Int64
	statActive        *atomic.Int64
}

// NewLightingSystem creates the activation/decay pass
func NewLightingSystem(world *engine.World, profile lighting.Profile) engine.System {
	return &LightingSystem{
		profile:           profile,
		statActivations:   world.Resource.Status.Ints.Get(status.KeyActivations),
		statDeactivations: world.Resource.Status.Ints.Get(status.KeyDeactivations),
		statActive:        world.Resource.Status.Ints.Get(status.KeyActiveFixtures),
	}
}

// Name returns system's name
func (s *LightingSystem) Name() string {
	return "lighting"
}

// Priority returns the system's priority
func (s *LightingSystem) Priority() int {
	return constants.PriorityLighting
}

// Update advances timers and applies activation edges
func (s *LightingSystem) Update(world *engine.World, dt time.Duration) {
	frame := world.Resource.Frame
	var active int64

	for _, e := range world.Fixtures.Entities() {
		f, ok := world.Fixtures.Get(e)
		if !ok || !f.IsActivated {
			continue
		}
		if lighting.Advance(&f, dt, s.profile) == lighting.TransitionDeactivated {
			frame.Deactivated = append(frame.Deactivated, e)
			s.statDeactivations.Add(1)
			world.Emit(events.EventFixtureDeactivated, &events.FixturePayload{Entity: e, Position: f.Position})
			log.Printf("[lighting] fixture %d deactivated after %v", e, f.ElapsedActive)
		} else {
			active++
		}
		world.Fixtures.Set(e, f)
	}

	for _, edge := range frame.Edges {
		f, ok := world.Fixtures.Get(edge.Entity)
		if !ok || !lighting.Activate(&f) {
			continue
		}
		world.Fixtures.Set(edge.Entity, f)
		frame.Activated = append(frame.Activated, edge.Entity)
		active++
		s.statActivations.Add(1)
		world.Emit(events.EventFixtureActivated, &events.FixturePayload{Entity: edge.Entity, Position: f.Position})
		log.Printf("[lighting] fixture %d activated at distance %.3f", edge.Entity, edge.Distance)
	}

	s.statActive.Store(active)
}
