package systems

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/glowgrid/constants"
	"github.com/lixenwraith/glowgrid/events"
	"github.com/lixenwraith/glowgrid/status"
)

func TestActivationEdgeSameFrame(t *testing.T) {
	r := newTestRig(t)
	r.addAvatar(mgl32.Vec3{0, 0, 0}, 0)
	f := r.addFixture(mgl32.Vec3{0, 0, 1.5}, 2)

	r.world.Update(time.Second)

	got := r.fixture(t, f)
	if !got.IsActivated {
		t.Fatal("Expected fixture activated")
	}
	if got.ElapsedActive != 0 {
		t.Errorf("Expected elapsed 0 on activation frame, got %v", got.ElapsedActive)
	}
	if em := r.emissive(t, f); !approx(em.R, constants.Lit) || em.R != em.G || em.G != em.B {
		t.Errorf("Expected gray LIT emissive, got %+v", em)
	}
	if len(r.world.Resource.Frame.Activated) != 1 {
		t.Errorf("Expected 1 activation in frame record, got %d", len(r.world.Resource.Frame.Activated))
	}
}

func TestNoRetriggerWhileActive(t *testing.T) {
	r := newTestRig(t)
	r.addAvatar(mgl32.Vec3{0, 0, 0}, 0)
	f := r.addFixture(mgl32.Vec3{1, 0, 1}, 2)

	for i := 0; i < 3; i++ {
		r.world.Update(time.Second)
	}

	got := r.fixture(t, f)
	if got.ElapsedActive != 2*time.Second {
		t.Errorf("Expected elapsed 2s after three frames in range, got %v", got.ElapsedActive)
	}
	if n := r.world.Resource.Status.Ints.Get(status.KeyActivations).Load(); n != 1 {
		t.Errorf("Expected exactly 1 activation, got %d", n)
	}
}

func TestDeactivationOnCrossingFrame(t *testing.T) {
	r := newTestRig(t)
	f := r.addFixture(mgl32.Vec3{0, 0, 0}, 2)
	r.addAvatar(mgl32.Vec3{50, 0, 50}, 0)

	fx := r.fixture(t, f)
	fx.IsActivated = true
	fx.ElapsedActive = 9500 * time.Millisecond
	r.world.Fixtures.Set(f, fx)
	r.world.Resource.Events.Consume()

	r.world.Update(time.Second)

	got := r.fixture(t, f)
	if got.IsActivated {
		t.Fatal("Expected fixture idle after crossing the threshold")
	}
	if got.ElapsedActive != 10500*time.Millisecond {
		t.Errorf("Expected frozen elapsed 10.5s, got %v", got.ElapsedActive)
	}
	if em := r.emissive(t, f); !approx(em.R, constants.Dimmed) {
		t.Errorf("Expected DIMMED emissive after deactivation, got %v", em.R)
	}

	var deactivated int
	for _, ev := range r.world.Resource.Events.Consume() {
		if ev.Type == events.EventFixtureDeactivated {
			deactivated++
		}
	}
	if deactivated != 1 {
		t.Errorf("Expected 1 deactivation event, got %d", deactivated)
	}
}

func TestBrightnessFallsWhileActive(t *testing.T) {
	r := newTestRig(t)
	r.addAvatar(mgl32.Vec3{0, 0, 0}, 0)
	f := r.addFixture(mgl32.Vec3{0, 0, 1}, 2)

	r.world.Update(0)
	r.world.Update(5 * time.Second)

	if em := r.emissive(t, f); !approx(em.R, constants.Lit/2) {
		t.Errorf("Expected half brightness at half window, got %v", em.R)
	}
}

func TestLightingRunsWithoutAvatar(t *testing.T) {
	r := newTestRig(t)
	f := r.addFixture(mgl32.Vec3{0, 0, 0}, 2)
	fx := r.fixture(t, f)
	fx.IsActivated = true
	r.world.Fixtures.Set(f, fx)

	r.world.Update(time.Second)

	if got := r.fixture(t, f); got.ElapsedActive != time.Second {
		t.Errorf("Expected active timer to advance without avatar, got %v", got.ElapsedActive)
	}
	// proximity, collision and movement each skip
	if n := r.world.Resource.Status.Ints.Get(status.KeyMissingControlled).Load(); n != 3 {
		t.Errorf("Expected 3 missing-controlled diagnostics, got %d", n)
	}
	if len(r.world.Resource.Frame.SkippedPasses) != 3 {
		t.Errorf("Expected 3 skipped passes, got %v", r.world.Resource.Frame.SkippedPasses)
	}
}

func TestMultipleAvatarsSkipAvatarPasses(t *testing.T) {
	r := newTestRig(t)
	r.addAvatar(mgl32.Vec3{0, 0, 0}, 0)
	r.addAvatar(mgl32.Vec3{5, 0, 5}, 0)
	f := r.addFixture(mgl32.Vec3{0, 0, 1}, 2)

	r.world.Update(time.Second)

	if r.fixture(t, f).IsActivated {
		t.Error("Expected no activation when the controlled avatar is ambiguous")
	}
	if n := r.world.Resource.Status.Ints.Get(status.KeyMultipleControlled).Load(); n != 3 {
		t.Errorf("Expected 3 multiple-controlled diagnostics, got %d", n)
	}
	skipped := r.world.Resource.Frame.SkippedPasses
	if len(skipped) != 3 || skipped[0] != "proximity" || skipped[1] != "collision" || skipped[2] != "movement" {
		t.Errorf("Expected proximity, collision and movement skipped, got %v", skipped)
	}
}
