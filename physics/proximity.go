package physics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/glowgrid/core"
	"github.com/lixenwraith/glowgrid/vmath"
)

// ActivationEdge reports an idle fixture that the avatar has come within range of
type ActivationEdge struct {
	Entity   core.Entity
	Distance float32
}

// DetectProximity returns one edge per idle fixture strictly inside its detection radius
// Active fixtures are skipped so loitering never restarts their timer
// Distance is full 3D, unlike collision which works on the horizontal plane
func DetectProximity(avatarPos mgl32.Vec3, fixtures []FixtureSnapshot) []ActivationEdge {
	var edges []ActivationEdge
	for _, f := range fixtures {
		if f.IsActivated {
			continue
		}
		d := vmath.Distance(f.Position, avatarPos)
		if d < f.DetectionRadius {
			edges = append(edges, ActivationEdge{Entity: f.Entity, Distance: d})
		}
	}
	return edges
}
