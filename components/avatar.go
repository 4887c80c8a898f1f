package components

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/glowgrid/vmath"
)

// AvatarComponent is the player-steered entity
// Mutated only by the movement pass; other passes read snapshots
type AvatarComponent struct {
	Position    mgl32.Vec3
	Orientation mgl32.Quat

	// ForwardSpeed is along Forward(), negative means reversing
	ForwardSpeed float32

	// OpposingForce is a per-frame displacement left by the last collision
	// Already scaled by dt when produced, added to position as-is
	OpposingForce mgl32.Vec3
}

// NewAvatar creates an avatar at rest facing +Z
func NewAvatar(pos mgl32.Vec3) AvatarComponent {
	return AvatarComponent{
		Position:    pos,
		Orientation: mgl32.QuatIdent(),
	}
}

// Forward returns the unit facing direction
func (a AvatarComponent) Forward() mgl32.Vec3 {
	return vmath.Forward(a.Orientation)
}
