package systems

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/glowgrid/components"
	"github.com/lixenwraith/glowgrid/core"
	"github.com/lixenwraith/glowgrid/engine"
	"github.com/lixenwraith/glowgrid/lighting"
	"github.com/lixenwraith/glowgrid/material"
	"github.com/lixenwraith/glowgrid/physics"
)

const epsilon = 1e-4

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < epsilon
}

// testRig is a world with every pass registered at default settings
type testRig struct {
	world     *engine.World
	materials *material.Store
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()
	return newTestRigWith(t, physics.DefaultContact)
}

func newTestRigWith(t *testing.T, contact physics.ContactProfile) *testRig {
	t.Helper()
	w := engine.NewWorld()
	m := material.NewStore()

	w.AddSystem(NewFeedbackSystem(lighting.DefaultProfile, m))
	w.AddSystem(NewLightingSystem(w, lighting.DefaultProfile))
	w.AddSystem(NewMovementSystem(w, physics.DefaultMovement))
	w.AddSystem(NewCollisionSystem(contact))
	w.AddSystem(NewProximitySystem())

	return &testRig{world: w, materials: m}
}

func (r *testRig) addAvatar(pos mgl32.Vec3, speed float32) core.Entity {
	e := r.world.CreateEntity()
	a := components.NewAvatar(pos)
	a.ForwardSpeed = speed
	r.world.Avatars.Set(e, a)
	return e
}

func (r *testRig) addFixture(pos mgl32.Vec3, radius float32) core.Entity {
	e := r.world.CreateEntity()
	r.world.Fixtures.Set(e, components.NewFixture(pos, radius))
	r.world.Visuals.Set(e, components.VisualComponent{Material: r.materials.Create(material.Gray(lighting.DefaultProfile.Dimmed))})
	return e
}

func (r *testRig) fixture(t *testing.T, e core.Entity) components.FixtureComponent {
	t.Helper()
	f, ok := r.world.Fixtures.Get(e)
	if !ok {
		t.Fatalf("Fixture %d missing", e)
	}
	return f
}

func (r *testRig) avatar(t *testing.T, e core.Entity) components.AvatarComponent {
	t.Helper()
	a, ok := r.world.Avatars.Get(e)
	if !ok {
		t.Fatalf("Avatar %d missing", e)
	}
	return a
}

func (r *testRig) emissive(t *testing.T, e core.Entity) material.Emissive {
	t.Helper()
	v, _ := r.world.Visuals.Get(e)
	em, ok := r.materials.Emissive(v.Material)
	if !ok {
		t.Fatalf("Material for fixture %d missing", e)
	}
	return em
}
