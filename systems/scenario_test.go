package systems

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/glowgrid/constants"
)

// Avatar at the origin moving toward a fixture two units ahead
// First frame ends exactly on the radius, second frame is inside it
func TestEndToEndApproach(t *testing.T) {
	r := newTestRig(t)
	a := r.addAvatar(mgl32.Vec3{0, 0, 0}, 1)
	f := r.addFixture(mgl32.Vec3{0, 0, 2}, 2)

	r.world.Update(time.Second)

	if r.fixture(t, f).IsActivated {
		t.Fatal("Expected no activation on frame 1")
	}
	if got := r.avatar(t, a).Position.Z(); !approx(got, 1) {
		t.Fatalf("Expected avatar at z=1 after frame 1, got %v", got)
	}

	r.world.Update(time.Second)

	got := r.fixture(t, f)
	if !got.IsActivated {
		t.Fatal("Expected activation on frame 2")
	}
	if got.ElapsedActive != 0 {
		t.Errorf("Expected elapsed 0 on frame 2, got %v", got.ElapsedActive)
	}
	if em := r.emissive(t, f); !approx(em.R, constants.Lit) {
		t.Errorf("Expected brightness LIT on frame 2, got %v", em.R)
	}
}
