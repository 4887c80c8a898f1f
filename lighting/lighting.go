// Package lighting implements the fixture activation and decay state machine
//
// States:
//   - Idle: IsActivated false, emits Dimmed
//   - Active: IsActivated true, ElapsedActive running, emits a linear fade from Lit
//
// Idle to Active happens only on an activation edge; Active to Idle when the
// accumulated time reaches the deactivation threshold
package lighting

import (
	"time"

	"github.com/lixenwraith/glowgrid/components"
	"github.com/lixenwraith/glowgrid/constants"
	"github.com/lixenwraith/glowgrid/vmath"
)

// Profile holds the lighting tunables
// DeactivationTime must be positive; config validation enforces it
type Profile struct {
	Lit              float32
	Dimmed           float32
	DeactivationTime time.Duration
}

// DefaultProfile matches the compiled-in constants
var DefaultProfile = Profile{
	Lit:              constants.Lit,
	Dimmed:           constants.Dimmed,
	DeactivationTime: constants.DeactivationTime,
}

// Transition reports what Advance did to a fixture
type Transition uint8

const (
	TransitionNone Transition = iota
	TransitionDeactivated
)

// Activate applies an activation edge
// Returns false when the fixture is already active; the running timer is left alone
func Activate(f *components.FixtureComponent) bool {
	if f.IsActivated {
		return false
	}
	f.IsActivated = true
	f.ElapsedActive = 0
	return true
}

// Advance moves an active fixture's timer forward by dt
// Idle fixtures are not touched
func Advance(f *components.FixtureComponent, dt time.Duration, p Profile) Transition {
	if !f.IsActivated {
		return TransitionNone
	}
	f.ElapsedActive += dt
	if f.ElapsedActive >= p.DeactivationTime {
		f.IsActivated = false
		return TransitionDeactivated
	}
	return TransitionNone
}

// Progress is the fraction of the active window used up, in [0, 1)
// Zero for idle fixtures
func Progress(f components.FixtureComponent, p Profile) float32 {
	if !f.IsActivated || p.DeactivationTime <= 0 {
		return 0
	}
	return vmath.ClampF(float32(f.ElapsedActive.Seconds()/p.DeactivationTime.Seconds()), 0, 1)
}

// Brightness is the emissive scalar shared by all three color channels
func Brightness(f components.FixtureComponent, p Profile) float32 {
	if !f.IsActivated {
		return p.Dimmed
	}
	return (1 - Progress(f, p)) * vmath.MaxF(p.Lit, p.Dimmed)
}
