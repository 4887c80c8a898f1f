package systems

import (
	"time"

	"github.com/lixenwraith/glowgrid/constants"
	"github.com/lixenwraith/glowgrid/core"
	"github.com/lixenwraith/glowgrid/engine"
	"github.com/lixenwraith/glowgrid/physics"
)

// CollisionSystem computes the push-back force from fixtures touching the avatar
// The result is handed to MovementSystem through the frame record
type CollisionSystem struct {
	profile   physics.ContactProfile
	snapshots []physics.FixtureSnapshot
}

// NewCollisionSystem creates the collision pass
func NewCollisionSystem(profile physics.ContactProfile) engine.System {
	return &CollisionSystem{profile: profile}
}

// Name returns system's name
func (s *CollisionSystem) Name() string {
	return "collision"
}

// Priority returns the system's priority
func (s *CollisionSystem) Priority() int {
	return constants.PriorityCollision
}

// Update stores a force update when at least one fixture is in contact
func (s *CollisionSystem) Update(world *engine.World, dt time.Duration) {
	_, avatar, err := world.ControlledAvatar()
	if err != nil {
		world.Report(s.Name(), core.NoEntity, err)
		return
	}

	s.snapshots = fixtureSnapshots(world, s.snapshots)
	update, hit := physics.ResolveContacts(avatar, s.snapshots, seconds(dt), s.profile)
	if !hit {
		return
	}
	world.Resource.Frame.Force = &update
}
