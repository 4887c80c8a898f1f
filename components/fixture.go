package components

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// FixtureComponent is a static light box that activates when the avatar comes close
type FixtureComponent struct {
	Position        mgl32.Vec3
	DetectionRadius float32

	IsActivated bool

	// ElapsedActive counts from the most recent activation edge
	// Frozen, not cleared, when the fixture goes idle
	ElapsedActive time.Duration
}

// NewFixture creates an idle fixture
func NewFixture(pos mgl32.Vec3, detectionRadius float32) FixtureComponent {
	return FixtureComponent{
		Position:        pos,
		DetectionRadius: detectionRadius,
	}
}
