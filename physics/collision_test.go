package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/glowgrid/components"
)

func TestCollisionDisplacementSign(t *testing.T) {
	a := components.NewAvatar(mgl32.Vec3{1, 0, 0})
	a.ForwardSpeed = 2
	fixtures := []FixtureSnapshot{{Entity: 7, Position: mgl32.Vec3{}}}
	profile := DefaultContact
	profile.Radius = 1.5

	update, ok := ResolveContacts(a, fixtures, 0.1, profile)
	if !ok {
		t.Fatal("Expected contact")
	}

	want := mgl32.Vec3{0.2, 0, 0}
	if !vecApprox(update.Force, want) {
		t.Errorf("Expected force %v pointing away from fixture, got %v", want, update.Force)
	}
	if len(update.Contacts) != 1 || update.Contacts[0] != 7 {
		t.Errorf("Expected contact list [7], got %v", update.Contacts)
	}
}

func TestCollisionIgnoresHeightAndActivation(t *testing.T) {
	a := components.NewAvatar(mgl32.Vec3{0.3, 1.15, 0})
	fixtures := []FixtureSnapshot{{Entity: 1, Position: mgl32.Vec3{}, IsActivated: true}}

	update, ok := ResolveContacts(a, fixtures, 1, DefaultContact)
	if !ok {
		t.Fatal("Expected contact on the horizontal plane")
	}
	// Stationary avatar uses the speed floor of 1
	if !vecApprox(update.Force, mgl32.Vec3{0.3, 0, 0}) {
		t.Errorf("Expected force (0.3,0,0), got %v", update.Force)
	}
}

func TestCollisionNoContact(t *testing.T) {
	a := components.NewAvatar(mgl32.Vec3{0.625, 0, 0})
	fixtures := []FixtureSnapshot{{Entity: 1, Position: mgl32.Vec3{}}}

	if _, ok := ResolveContacts(a, fixtures, 1, DefaultContact); ok {
		t.Error("Expected no contact at exactly the collision radius")
	}
}

func TestCollisionMultiContactModes(t *testing.T) {
	a := components.NewAvatar(mgl32.Vec3{})
	fixtures := []FixtureSnapshot{
		{Entity: 1, Position: mgl32.Vec3{-0.5, 0, 0}},
		{Entity: 2, Position: mgl32.Vec3{0, 0, -0.5}},
	}

	override := DefaultContact
	update, _ := ResolveContacts(a, fixtures, 1, override)
	if !vecApprox(update.Force, mgl32.Vec3{0, 0, 0.5}) {
		t.Errorf("Expected last contact to win in override mode, got %v", update.Force)
	}

	accumulate := DefaultContact
	accumulate.Mode = ForceAccumulate
	update, _ = ResolveContacts(a, fixtures, 1, accumulate)
	if !vecApprox(update.Force, mgl32.Vec3{0.5, 0, 0.5}) {
		t.Errorf("Expected summed force in accumulate mode, got %v", update.Force)
	}
	if len(update.Contacts) != 2 {
		t.Errorf("Expected 2 contacts, got %d", len(update.Contacts))
	}
}

func TestApplyForceReplaces(t *testing.T) {
	a := components.NewAvatar(mgl32.Vec3{})
	a.OpposingForce = mgl32.Vec3{5, 0, 5}

	ApplyForce(&a, ForceUpdate{Force: mgl32.Vec3{0.1, 0, 0}})

	if a.OpposingForce != (mgl32.Vec3{0.1, 0, 0}) {
		t.Errorf("Expected force to be replaced, got %v", a.OpposingForce)
	}
}
