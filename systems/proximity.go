package systems

import (
	"time"

	"github.com/lixenwraith/glowgrid/constants"
	"github.com/lixenwraith/glowgrid/core"
	"github.com/lixenwraith/glowgrid/engine"
	"github.com/lixenwraith/glowgrid/physics"
)

// ProximitySystem finds idle fixtures the avatar has come within range of
// It only records edges; LightingSystem owns fixture state and applies them
type ProximitySystem struct {
	snapshots []physics.FixtureSnapshot
}

// NewProximitySystem creates the detection pass
func NewProximitySystem() engine.System {
	return &ProximitySystem{}
}

// Name returns system's name
func (s *ProximitySystem) Name() string {
	return "proximity"
}

// Priority returns the system's priority
func (s *ProximitySystem) Priority() int {
	return constants.PriorityProximity
}

// Update records this frame's activation edges
func (s *ProximitySystem) Update(world *engine.World, dt time.Duration) {
	_, avatar, err := world.ControlledAvatar()
	if err != nil {
		world.Report(s.Name(), core.NoEntity, err)
		return
	}

	s.snapshots = fixtureSnapshots(world, s.snapshots)
	edges := physics.DetectProximity(avatar.Position, s.snapshots)
	world.Resource.Frame.Edges = append(world.Resource.Frame.Edges, edges...)
}
