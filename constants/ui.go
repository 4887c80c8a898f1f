package constants

import "time"

// Frame Timing
const (
	// DefaultFPS is the host frame rate
	DefaultFPS = 60

	// MaxFrameDelta caps a single frame step after a stall (window drag, suspend)
	MaxFrameDelta = 250 * time.Millisecond

	// KeyHoldWindow is how long a terminal key press counts as held
	// Terminals report presses and repeats, never releases
	KeyHoldWindow = 150 * time.Millisecond
)

// Terminal View
const (
	// CellsPerUnitX and CellsPerUnitZ map world units to terminal cells
	// Cells are roughly twice as tall as wide
	CellsPerUnitX = 4
	CellsPerUnitZ = 2

	StatusBarHeight = 1
)
