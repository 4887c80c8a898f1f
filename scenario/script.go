// Package scenario replays scripted intent and frame deltas against a scene
package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/glowgrid/config"
	"github.com/lixenwraith/glowgrid/core"
	"github.com/lixenwraith/glowgrid/input"
)

// ErrInvalidScript wraps every script validation failure
var ErrInvalidScript = errors.New("invalid scenario script")

// Script is a deterministic run: optional avatar setup and a list of frame steps
type Script struct {
	Name   string      `yaml:"name"`
	Avatar *AvatarInit `yaml:"avatar"`
	Steps  []Step      `yaml:"steps"`
}

// AvatarInit overrides the spawned avatar before the first frame
type AvatarInit struct {
	Position []float32 `yaml:"position"`
	Speed    float32   `yaml:"speed"`
	// HeadingDeg is yaw from +Z in the turn_left direction
	HeadingDeg float32 `yaml:"heading_deg"`
}

// Step runs Repeat frames of DT with the listed actions held
type Step struct {
	DT     config.Duration `yaml:"dt"`
	Repeat int             `yaml:"repeat"`
	Hold   []string        `yaml:"hold"`
}

// Load reads and validates a script file
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a script
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks frame deltas, repeat counts and action names
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("%w: no steps", ErrInvalidScript)
	}
	if s.Avatar != nil && len(s.Avatar.Position) != 0 && len(s.Avatar.Position) != 3 {
		return fmt.Errorf("%w: avatar position needs 3 components, got %d", ErrInvalidScript, len(s.Avatar.Position))
	}
	for i, st := range s.Steps {
		if st.DT < 0 {
			return fmt.Errorf("%w: step %d: negative dt", ErrInvalidScript, i)
		}
		if st.Repeat < 0 {
			return fmt.Errorf("%w: step %d: negative repeat", ErrInvalidScript, i)
		}
		if _, err := st.Intent(); err != nil {
			return fmt.Errorf("%w: step %d: %v", ErrInvalidScript, i, err)
		}
	}
	return nil
}

// Frames returns the total number of frames the script runs
func (s *Script) Frames() int {
	n := 0
	for _, st := range s.Steps {
		n += st.count()
	}
	return n
}

// Intent converts the held action names
func (st Step) Intent() (core.Intent, error) {
	actions := make([]input.Action, 0, len(st.Hold))
	for _, name := range st.Hold {
		a, ok := input.ParseAction(name)
		if !ok || !a.IsMovement() {
			return core.Intent{}, fmt.Errorf("unknown movement action %q", name)
		}
		actions = append(actions, a)
	}
	return input.IntentFromActions(actions...), nil
}

// count treats a missing repeat as one frame
func (st Step) count() int {
	if st.Repeat == 0 {
		return 1
	}
	return st.Repeat
}
