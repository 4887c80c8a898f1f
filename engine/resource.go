package engine

import (
	"time"

	"github.com/lixenwraith/glowgrid/core"
	"github.com/lixenwraith/glowgrid/events"
	"github.com/lixenwraith/glowgrid/physics"
	"github.com/lixenwraith/glowgrid/status"
)

// Resource holds singleton simulation resources, accessed via World.Resource
type Resource struct {
	Time  *TimeResource
	Frame *FrameResource
	Input *InputResource

	Events *events.EventQueue
	Status *status.Registry
}

// TimeResource wraps time data for systems
// Updated by World.Update at the start of a frame
type TimeResource struct {
	// DeltaTime is the simulated time advanced this frame
	DeltaTime time.Duration

	// Elapsed is total simulated time
	Elapsed time.Duration

	// FrameNumber is the current frame count, starting at 1
	FrameNumber int64
}

// Update modifies TimeResource fields in-place
func (tr *TimeResource) Update(dt time.Duration) {
	tr.DeltaTime = dt
	tr.Elapsed += dt
	tr.FrameNumber++
}

// FrameResource carries deltas from detection passes to the passes that own the state
// Reset at the start of every frame
type FrameResource struct {
	// Edges are produced by proximity detection and applied by lighting
	Edges []physics.ActivationEdge

	// Force is produced by collision and applied by movement, nil when nothing touched
	Force *physics.ForceUpdate

	// Activated and Deactivated record what lighting actually changed
	Activated   []core.Entity
	Deactivated []core.Entity

	// SkippedPasses names passes that could not run this frame
	SkippedPasses []string
}

// Reset clears per-frame data, keeping slice capacity
func (fr *FrameResource) Reset() {
	fr.Edges = fr.Edges[:0]
	fr.Force = nil
	fr.Activated = fr.Activated[:0]
	fr.Deactivated = fr.Deactivated[:0]
	fr.SkippedPasses = fr.SkippedPasses[:0]
}

// InputResource holds the player's intent for the current frame
// Written by the host before World.Update
type InputResource struct {
	Intent core.Intent
}
