// Package scene builds the fixture grid and the avatar, and wires the simulation passes
package scene

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/glowgrid/components"
	"github.com/lixenwraith/glowgrid/config"
	"github.com/lixenwraith/glowgrid/core"
	"github.com/lixenwraith/glowgrid/engine"
	"github.com/lixenwraith/glowgrid/material"
	"github.com/lixenwraith/glowgrid/systems"
	"github.com/lixenwraith/glowgrid/vmath"
)

// Scene is a built world plus the handles hosts need to draw it
type Scene struct {
	World     *engine.World
	Materials *material.Store
	Config    *config.Config

	Avatar   core.Entity
	Fixtures []core.Entity
}

// GridPositions lays rows along X and columns along Z, centred on the origin at y=0
func GridPositions(rows, cols int, spacing float32) []mgl32.Vec3 {
	rowMax := float32(rows - 1)
	colMax := float32(cols - 1)

	out := make([]mgl32.Vec3, 0, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := vmath.MapRange(float32(row), 0, rowMax, -spacing*rowMax/2, spacing*rowMax/2)
			z := vmath.MapRange(float32(col), 0, colMax, -spacing*colMax/2, spacing*colMax/2)
			out = append(out, mgl32.Vec3{x, 0, z})
		}
	}
	return out
}

// SpawnPosition puts the avatar capsule base on the ground at the origin
func SpawnPosition(cfg *config.Config) mgl32.Vec3 {
	return mgl32.Vec3{0, (cfg.Avatar.Height + cfg.Avatar.Radius*2) / 2, 0}
}

// Build populates a world from cfg without registering passes
func Build(cfg *config.Config) (*Scene, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Scene{
		World:     engine.NewWorld(),
		Materials: material.NewStore(),
		Config:    cfg,
	}

	idle := material.Gray(cfg.Lighting.Dimmed)
	for _, pos := range GridPositions(cfg.Grid.Rows, cfg.Grid.Cols, cfg.Grid.Spacing) {
		e := s.World.CreateEntity()
		s.World.Fixtures.Set(e, components.NewFixture(pos, cfg.Lighting.DetectionRadius))
		s.World.Visuals.Set(e, components.VisualComponent{Material: s.Materials.Create(idle)})
		s.Fixtures = append(s.Fixtures, e)
	}

	s.Avatar = s.World.CreateEntity()
	s.World.Avatars.Set(s.Avatar, components.NewAvatar(SpawnPosition(cfg)))

	if err := s.World.Validate(); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return s, nil
}

// RegisterSystems adds every simulation pass configured from cfg
func RegisterSystems(w *engine.World, materials *material.Store, cfg *config.Config) {
	lightProfile := cfg.LightingProfile()

	w.AddSystem(systems.NewProximitySystem())
	w.AddSystem(systems.NewCollisionSystem(cfg.ContactProfile()))
	w.AddSystem(systems.NewMovementSystem(w, cfg.MovementProfile()))
	w.AddSystem(systems.NewLightingSystem(w, lightProfile))
	w.AddSystem(systems.NewFeedbackSystem(lightProfile, materials))
}

// NewSimulation builds the scene and registers its passes
func NewSimulation(cfg *config.Config) (*Scene, error) {
	s, err := Build(cfg)
	if err != nil {
		return nil, err
	}
	RegisterSystems(s.World, s.Materials, s.Config)
	return s, nil
}

// Step runs one frame with the given intent
func (s *Scene) Step(intent core.Intent, dt time.Duration) {
	s.World.SetIntent(intent)
	s.World.Update(dt)
}

// Extent is the half-width of the ground plane around the grid
func (s *Scene) Extent() float32 {
	span := vmath.MaxF(float32(s.Config.Grid.Rows-1), float32(s.Config.Grid.Cols-1)) * s.Config.Grid.Spacing
	return vmath.MaxF(span*1.5, s.Config.Grid.Spacing)
}

// Brightness returns a fixture's current emissive level as written by the feedback pass
func (s *Scene) Brightness(e core.Entity) (float32, bool) {
	v, ok := s.World.Visuals.Get(e)
	if !ok {
		return 0, false
	}
	em, ok := s.Materials.Emissive(v.Material)
	if !ok {
		return 0, false
	}
	return em.R, true
}
