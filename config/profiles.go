package config

import (
	"fmt"
	"time"

	"github.com/lixenwraith/glowgrid/lighting"
	"github.com/lixenwraith/glowgrid/physics"
)

// LightingProfile converts the lighting section for the activation state machine
func (c *Config) LightingProfile() lighting.Profile {
	return lighting.Profile{
		Lit:              c.Lighting.Lit,
		Dimmed:           c.Lighting.Dimmed,
		DeactivationTime: c.Lighting.DeactivationTime.Std(),
	}
}

// MovementProfile converts the movement section for the integrator
func (c *Config) MovementProfile() physics.MovementProfile {
	return physics.MovementProfile{
		SpeedDecayRate: c.Movement.SpeedDecayRate,
		ForceDecayRate: c.Movement.ForceDecayRate,
		TurnRateFloor:  c.Movement.TurnRateFloor,
	}
}

// ContactProfile converts the collision section; call after Validate
func (c *Config) ContactProfile() physics.ContactProfile {
	mode, _ := c.ForceMode()
	radius := c.Collision.Radius
	if radius == 0 {
		radius = c.Grid.BoxWidth * c.Collision.RadiusFactor
	}
	return physics.ContactProfile{
		Radius:     radius,
		SpeedFloor: c.Movement.TurnRateFloor,
		Mode:       mode,
	}
}

// ForceMode parses the collision mode string
func (c *Config) ForceMode() (physics.ForceMode, error) {
	switch c.Collision.Mode {
	case "", physics.ForceOverride.String():
		return physics.ForceOverride, nil
	case physics.ForceAccumulate.String():
		return physics.ForceAccumulate, nil
	default:
		return physics.ForceOverride, fmt.Errorf("%w: collision.mode must be %q or %q, got %q",
			ErrInvalidConfig, physics.ForceOverride, physics.ForceAccumulate, c.Collision.Mode)
	}
}

// FrameInterval returns the host tick period
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Frame.FPS)
}
