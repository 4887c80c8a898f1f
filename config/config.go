// Package config loads the simulation and host settings from YAML
// Missing keys fall back to the compiled-in defaults in package constants
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/glowgrid/constants"
	"github.com/lixenwraith/glowgrid/physics"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full settings tree
type Config struct {
	Lighting  LightingConfig      `yaml:"lighting"`
	Movement  MovementConfig      `yaml:"movement"`
	Collision CollisionConfig     `yaml:"collision"`
	Grid      GridConfig          `yaml:"grid"`
	Avatar    AvatarConfig        `yaml:"avatar"`
	Keys      map[string][]string `yaml:"keys"`
	Audio     AudioConfig         `yaml:"audio"`
	Frame     FrameConfig         `yaml:"frame"`
}

type LightingConfig struct {
	Lit              float32  `yaml:"lit"`
	Dimmed           float32  `yaml:"dimmed"`
	DeactivationTime Duration `yaml:"deactivation_time"`
	DetectionRadius  float32  `yaml:"detection_radius"`
}

type MovementConfig struct {
	SpeedDecayRate float32 `yaml:"speed_decay_rate"`
	ForceDecayRate float32 `yaml:"force_decay_rate"`
	TurnRateFloor  float32 `yaml:"turn_rate_floor"`
}

type CollisionConfig struct {
	// Radius 0 means BoxWidth * RadiusFactor
	Radius       float32 `yaml:"radius"`
	RadiusFactor float32 `yaml:"radius_factor"`
	// Mode is "override" (last contact wins) or "accumulate"
	Mode string `yaml:"mode"`
}

type GridConfig struct {
	Rows      int     `yaml:"rows"`
	Cols      int     `yaml:"cols"`
	Spacing   float32 `yaml:"spacing"`
	BoxWidth  float32 `yaml:"box_width"`
	BoxHeight float32 `yaml:"box_height"`
}

type AvatarConfig struct {
	Radius float32 `yaml:"radius"`
	Height float32 `yaml:"height"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

type FrameConfig struct {
	FPS      int      `yaml:"fps"`
	MaxDelta Duration `yaml:"max_delta"`
	KeyHold  Duration `yaml:"key_hold"`
}

// DefaultKeys binds actions to tcell key names
func DefaultKeys() map[string][]string {
	return map[string][]string{
		ActionForward:   {"Up", "w"},
		ActionBackward:  {"Down", "s"},
		ActionTurnLeft:  {"Left", "a"},
		ActionTurnRight: {"Right", "d"},
		ActionQuit:      {"Esc", "q", "Ctrl+C"},
		ActionPause:     {"p", " "},
		ActionMute:      {"m"},
	}
}

// Action names used as keys in the keys section
const (
	ActionForward   = "forward"
	ActionBackward  = "backward"
	ActionTurnLeft  = "turn_left"
	ActionTurnRight = "turn_right"
	ActionQuit      = "quit"
	ActionPause     = "pause"
	ActionMute      = "mute"
)

// Default returns the configuration matching package constants
func Default() *Config {
	return &Config{
		Lighting: LightingConfig{
			Lit:              constants.Lit,
			Dimmed:           constants.Dimmed,
			DeactivationTime: Duration(constants.DeactivationTime),
			DetectionRadius:  constants.DetectionRadius,
		},
		Movement: MovementConfig{
			SpeedDecayRate: constants.SpeedDecayRate,
			ForceDecayRate: constants.ForceDecayRate,
			TurnRateFloor:  constants.TurnRateFloor,
		},
		Collision: CollisionConfig{
			RadiusFactor: constants.CollisionRadiusFactor,
			Mode:         physics.ForceOverride.String(),
		},
		Grid: GridConfig{
			Rows:      constants.GridRows,
			Cols:      constants.GridCols,
			Spacing:   constants.Spacing,
			BoxWidth:  constants.BoxWidth,
			BoxHeight: constants.BoxHeight,
		},
		Avatar: AvatarConfig{
			Radius: constants.AvatarRadius,
			Height: constants.AvatarHeight,
		},
		Keys: DefaultKeys(),
		Audio: AudioConfig{
			Enabled: true,
		},
		Frame: FrameConfig{
			FPS:      constants.DefaultFPS,
			MaxDelta: Duration(constants.MaxFrameDelta),
			KeyHold:  Duration(constants.KeyHoldWindow),
		},
	}
}

// Load reads path over the defaults and validates the result
// An empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := cfg.Merge(data); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge decodes YAML over the current values
// Bindings listed in the document replace the default binding of that action only
func (c *Config) Merge(data []byte) error {
	defaults := c.Keys
	c.Keys = nil
	if err := yaml.Unmarshal(data, c); err != nil {
		c.Keys = defaults
		return err
	}
	merged := make(map[string][]string, len(defaults))
	for action, keys := range defaults {
		merged[action] = keys
	}
	for action, keys := range c.Keys {
		merged[action] = keys
	}
	c.Keys = merged
	return nil
}

// Validate checks every value the simulation divides by or depends on being positive
func (c *Config) Validate() error {
	if c.Lighting.DeactivationTime <= 0 {
		return fmt.Errorf("%w: lighting.deactivation_time must be positive, got %v", ErrInvalidConfig, c.Lighting.DeactivationTime.Std())
	}
	if c.Lighting.Lit < 0 || c.Lighting.Dimmed < 0 {
		return fmt.Errorf("%w: lighting levels must be non-negative", ErrInvalidConfig)
	}
	if c.Lighting.DetectionRadius < 0 {
		return fmt.Errorf("%w: lighting.detection_radius must be non-negative, got %v", ErrInvalidConfig, c.Lighting.DetectionRadius)
	}
	if c.Movement.SpeedDecayRate < 0 || c.Movement.ForceDecayRate < 0 {
		return fmt.Errorf("%w: movement decay rates must be non-negative", ErrInvalidConfig)
	}
	if c.Movement.TurnRateFloor < 0 {
		return fmt.Errorf("%w: movement.turn_rate_floor must be non-negative", ErrInvalidConfig)
	}
	if _, err := c.ForceMode(); err != nil {
		return err
	}
	if c.Collision.Radius < 0 || c.Collision.RadiusFactor < 0 {
		return fmt.Errorf("%w: collision radius must be non-negative", ErrInvalidConfig)
	}
	if c.Grid.Rows < 1 || c.Grid.Cols < 1 {
		return fmt.Errorf("%w: grid must have at least one row and column, got %dx%d", ErrInvalidConfig, c.Grid.Rows, c.Grid.Cols)
	}
	if c.Grid.Spacing <= 0 || c.Grid.BoxWidth <= 0 || c.Grid.BoxHeight <= 0 {
		return fmt.Errorf("%w: grid dimensions must be positive", ErrInvalidConfig)
	}
	if c.Avatar.Radius <= 0 || c.Avatar.Height <= 0 {
		return fmt.Errorf("%w: avatar dimensions must be positive", ErrInvalidConfig)
	}
	if c.Frame.FPS < 1 || c.Frame.FPS > 1000 {
		return fmt.Errorf("%w: frame.fps must be in [1, 1000], got %d", ErrInvalidConfig, c.Frame.FPS)
	}
	if c.Frame.MaxDelta < 0 || c.Frame.KeyHold < 0 {
		return fmt.Errorf("%w: frame durations must be non-negative", ErrInvalidConfig)
	}
	for action, keys := range c.Keys {
		if !isKnownAction(action) {
			return fmt.Errorf("%w: unknown key action %q", ErrInvalidConfig, action)
		}
		if len(keys) == 0 {
			return fmt.Errorf("%w: action %q has no keys", ErrInvalidConfig, action)
		}
	}
	return nil
}

func isKnownAction(action string) bool {
	switch action {
	case ActionForward, ActionBackward, ActionTurnLeft, ActionTurnRight, ActionQuit, ActionPause, ActionMute:
		return true
	}
	return false
}
