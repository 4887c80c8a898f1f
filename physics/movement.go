package physics

import (
	"github.com/lixenwraith/glowgrid/components"
	"github.com/lixenwraith/glowgrid/constants"
	"github.com/lixenwraith/glowgrid/core"
	"github.com/lixenwraith/glowgrid/vmath"
)

// MovementProfile holds the integrator tunables
type MovementProfile struct {
	SpeedDecayRate float32 // Forward speed lost per second while positive
	ForceDecayRate float32 // Fraction of opposing force relaxed per second
	TurnRateFloor  float32 // Minimum speed factor applied to turning
}

// DefaultMovement matches the compiled-in constants
var DefaultMovement = MovementProfile{
	SpeedDecayRate: constants.SpeedDecayRate,
	ForceDecayRate: constants.ForceDecayRate,
	TurnRateFloor:  constants.TurnRateFloor,
}

// ApplyIntent changes speed and heading from player input
// Speed is unclamped here so backward input can drive it negative
func ApplyIntent(a *components.AvatarComponent, in core.Intent, dt float32, p MovementProfile) {
	if in.Forward {
		a.ForwardSpeed += dt
	}
	if in.Backward {
		a.ForwardSpeed -= dt
	}

	turn := dt * vmath.MaxF(a.ForwardSpeed, p.TurnRateFloor)
	if in.TurnLeft {
		a.Orientation = vmath.Yaw(turn).Mul(a.Orientation).Normalize()
	}
	if in.TurnRight {
		a.Orientation = vmath.Yaw(-turn).Mul(a.Orientation).Normalize()
	}
}

// Integrate moves the avatar along its heading and adds the opposing force displacement
func Integrate(a *components.AvatarComponent, dt float32) {
	step := a.Forward().Mul(a.ForwardSpeed * dt)
	a.Position = a.Position.Add(step).Add(a.OpposingForce)
}

// Relax applies passive decay after the position update
// Speed only decays while positive and stops at zero
// Force relaxes toward zero without changing sign
func Relax(a *components.AvatarComponent, dt float32, p MovementProfile) {
	if a.ForwardSpeed > 0 {
		a.ForwardSpeed -= dt * p.SpeedDecayRate
		if a.ForwardSpeed < 0 {
			a.ForwardSpeed = 0
		}
	}
	a.OpposingForce = a.OpposingForce.Mul(vmath.DampFactor(p.ForceDecayRate, dt))
}

// Step runs one full integration: intent, position, decay
func Step(a *components.AvatarComponent, in core.Intent, dt float32, p MovementProfile) {
	ApplyIntent(a, in, dt, p)
	Integrate(a, dt)
	Relax(a, dt, p)
}
