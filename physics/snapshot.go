package physics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/glowgrid/core"
)

// FixtureSnapshot is the read-only view of a fixture that detection passes work from
type FixtureSnapshot struct {
	Entity          core.Entity
	Position        mgl32.Vec3
	DetectionRadius float32
	IsActivated     bool
}
