package physics

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/glowgrid/components"
	"github.com/lixenwraith/glowgrid/constants"
	"github.com/lixenwraith/glowgrid/core"
	"github.com/lixenwraith/glowgrid/vmath"
)

// ForceMode defines how several contacts in one frame combine
type ForceMode uint8

const (
	// ForceOverride keeps only the last contact evaluated
	ForceOverride ForceMode = iota
	// ForceAccumulate sums the push of every contact
	ForceAccumulate
)

// String returns the config name of the mode
func (m ForceMode) String() string {
	switch m {
	case ForceAccumulate:
		return "accumulate"
	default:
		return "override"
	}
}

// ContactProfile defines collision interaction parameters
type ContactProfile struct {
	Radius     float32 // Horizontal contact distance
	SpeedFloor float32 // Minimum speed factor for the push
	Mode       ForceMode
}

// DefaultContact matches the compiled-in constants
var DefaultContact = ContactProfile{
	Radius:     constants.CollisionRadius,
	SpeedFloor: constants.TurnRateFloor,
	Mode:       ForceOverride,
}

// ForceUpdate is the collision pass result handed to the movement pass
// Force replaces the avatar's opposing force; it is not added to it
type ForceUpdate struct {
	Force    mgl32.Vec3
	Contacts []core.Entity
}

// ResolveContacts tests every fixture regardless of activation state on the horizontal plane
// Returns false when nothing is in contact, leaving the current force to relax
func ResolveContacts(avatar components.AvatarComponent, fixtures []FixtureSnapshot, dt float32, p ContactProfile) (ForceUpdate, bool) {
	var update ForceUpdate
	avatarXZ := vmath.XZ(avatar.Position)
	scale := dt * vmath.MaxF(avatar.ForwardSpeed, p.SpeedFloor)

	for _, f := range fixtures {
		delta := avatarXZ.Sub(vmath.XZ(f.Position))
		if delta.Len() >= p.Radius {
			continue
		}

		push := vmath.FromXZ(delta).Mul(scale)
		switch p.Mode {
		case ForceAccumulate:
			update.Force = update.Force.Add(push)
		default:
			update.Force = push
		}
		update.Contacts = append(update.Contacts, f.Entity)
	}

	return update, len(update.Contacts) > 0
}

// ApplyForce hands a collision result to the avatar
func ApplyForce(a *components.AvatarComponent, update ForceUpdate) {
	a.OpposingForce = update.Force
}
