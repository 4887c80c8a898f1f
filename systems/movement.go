package systems

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/glowgrid/constants"
	"github.com/lixenwraith/glowgrid/core"
	"github.com/lixenwraith/glowgrid/engine"
	"github.com/lixenwraith/glowgrid/events"
	"github.com/lixenwraith/glowgrid/physics"
	"github.com/lixenwraith/glowgrid/status"
)

// MovementSystem owns the avatar: applies the collision result, then intent, integration and decay
type MovementSystem struct {
	profile physics.MovementProfile

	statCollisions *atomic.Int64
	statSpeed      *status.AtomicFloat
}

// NewMovementSystem creates the movement pass
func NewMovementSystem(world *engine.World, profile physics.MovementProfile) engine.System {
	return &MovementSystem{
		profile:        profile,
		statCollisions: world.Resource.Status.Ints.Get(status.KeyCollisions),
		statSpeed:      world.Resource.Status.Floats.Get(status.KeyAvatarSpeed),
	}
}

// Name returns system's name
func (s *MovementSystem) Name() string {
	return "movement"
}

// Priority returns the system's priority
func (s *MovementSystem) Priority() int {
	return constants.PriorityMovement
}

// Update advances the avatar by one frame
func (s *MovementSystem) Update(world *engine.World, dt time.Duration) {
	entity, avatar, err := world.ControlledAvatar()
	if err != nil {
		world.Report(s.Name(), core.NoEntity, err)
		return
	}

	if update := world.Resource.Frame.Force; update != nil {
		physics.ApplyForce(&avatar, *update)
		s.statCollisions.Add(1)
		world.Emit(events.EventCollision, &events.CollisionPayload{
			Force:    update.Force,
			Contacts: update.Contacts,
		})
		log.Printf("[movement] contact with %v, force %v", update.Contacts, update.Force)
	}

	physics.Step(&avatar, world.Resource.Input.Intent, seconds(dt), s.profile)
	world.Avatars.Set(entity, avatar)

	s.statSpeed.Set(float64(avatar.ForwardSpeed))
}
