package engine

import "time"

// System is a single simulation pass
type System interface {
	// Update runs the pass once; dt is the frame's elapsed simulated time
	Update(world *World, dt time.Duration)
	// Priority orders passes, lower values run first
	Priority() int
	// Name identifies the pass in diagnostics
	Name() string
}
