package engine

import (
	"sort"
	"time"

	"github.com/lixenwraith/glowgrid/components"
	"github.com/lixenwraith/glowgrid/core"
	"github.com/lixenwraith/glowgrid/events"
	"github.com/lixenwraith/glowgrid/status"
)

// World holds entities, their components and the ordered simulation passes
type World struct {
	nextEntityID core.Entity

	Avatars  *Store[components.AvatarComponent]
	Fixtures *Store[components.FixtureComponent]
	Visuals  *Store[components.VisualComponent]

	Resource Resource

	allStores []AnyStore
	systems   []System
}

// NewWorld creates a world with empty stores and fresh resources
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Avatars:      NewStore[components.AvatarComponent](),
		Fixtures:     NewStore[components.FixtureComponent](),
		Visuals:      NewStore[components.VisualComponent](),
		Resource: Resource{
			Time:   &TimeResource{},
			Frame:  &FrameResource{},
			Input:  &InputResource{},
			Events: events.NewEventQueue(),
			Status: status.NewRegistry(),
		},
	}
	w.allStores = []AnyStore{w.Avatars, w.Fixtures, w.Visuals}
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	e := w.nextEntityID
	w.nextEntityID++
	return e
}

// DestroyEntity removes every component of an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, s := range w.allStores {
		s.Remove(e)
	}
}

// EntityCount returns number of entities holding at least one component
func (w *World) EntityCount() int {
	seen := make(map[core.Entity]struct{})
	for _, e := range w.Avatars.Entities() {
		seen[e] = struct{}{}
	}
	for _, e := range w.Fixtures.Entities() {
		seen[e] = struct{}{}
	}
	for _, e := range w.Visuals.Entities() {
		seen[e] = struct{}{}
	}
	return len(seen)
}

// AddSystem registers a pass, keeping the list ordered by priority
// Passes of equal priority keep registration order
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns the registered passes in run order
func (w *World) Systems() []System {
	out := make([]System, len(w.systems))
	copy(out, w.systems)
	return out
}

// SetIntent stores the player's intent for the next frame
func (w *World) SetIntent(intent core.Intent) {
	w.Resource.Input.Intent = intent
}

// Update runs one frame: clears the frame record, advances time, runs every pass in order
// A zero dt still runs the passes, so proximity edges and collisions with no displacement are reported
func (w *World) Update(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	w.Resource.Frame.Reset()
	w.Resource.Time.Update(dt)

	for _, s := range w.systems {
		s.Update(w, dt)
	}

	w.Resource.Status.Ints.Get(status.KeyFrames).Add(1)
}

// Emit pushes an event stamped with the current frame
func (w *World) Emit(eventType events.EventType, payload any) {
	w.Resource.Events.Push(events.GameEvent{
		Type:      eventType,
		Payload:   payload,
		Frame:     w.Resource.Time.FrameNumber,
		Timestamp: time.Now(),
	})
}
