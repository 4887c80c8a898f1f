package lighting

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/glowgrid/components"
)

func newFixture() components.FixtureComponent {
	return components.NewFixture(mgl32.Vec3{}, 2)
}

func TestActivateEdge(t *testing.T) {
	f := newFixture()
	f.ElapsedActive = 3 * time.Second // Left over from a previous activation

	if !Activate(&f) {
		t.Fatal("Expected idle fixture to activate")
	}
	if !f.IsActivated {
		t.Error("Expected IsActivated after edge")
	}
	if f.ElapsedActive != 0 {
		t.Errorf("Expected elapsed reset to 0 on edge, got %v", f.ElapsedActive)
	}
}

func TestActivateNoRetrigger(t *testing.T) {
	f := newFixture()
	Activate(&f)
	Advance(&f, 2*time.Second, DefaultProfile)

	if Activate(&f) {
		t.Error("Expected second activation to be rejected while active")
	}
	if f.ElapsedActive != 2*time.Second {
		t.Errorf("Expected elapsed to keep running at 2s, got %v", f.ElapsedActive)
	}
}

func TestDeactivationOnCrossingFrame(t *testing.T) {
	p := Profile{Lit: 4, Dimmed: 0.1, DeactivationTime: 3 * time.Second}
	f := newFixture()
	Activate(&f)

	steps := []time.Duration{time.Second, time.Second, time.Second}
	for i, dt := range steps {
		tr := Advance(&f, dt, p)
		last := i == len(steps)-1
		if last && tr != TransitionDeactivated {
			t.Errorf("Expected deactivation on frame %d", i)
		}
		if !last && tr != TransitionNone {
			t.Errorf("Expected no transition on frame %d", i)
		}
	}

	if f.IsActivated {
		t.Error("Expected fixture idle after threshold")
	}
	if f.ElapsedActive != 3*time.Second {
		t.Errorf("Expected elapsed frozen at 3s, got %v", f.ElapsedActive)
	}

	// Idle fixtures do not accumulate
	Advance(&f, time.Second, p)
	if f.ElapsedActive != 3*time.Second {
		t.Errorf("Expected idle elapsed to stay frozen, got %v", f.ElapsedActive)
	}
}

func TestBrightnessBounds(t *testing.T) {
	p := DefaultProfile
	f := newFixture()

	if b := Brightness(f, p); b != p.Dimmed {
		t.Errorf("Expected idle brightness %v, got %v", p.Dimmed, b)
	}

	Activate(&f)
	if b := Brightness(f, p); b != p.Lit {
		t.Errorf("Expected brightness %v at activation, got %v", p.Lit, b)
	}

	f.ElapsedActive = p.DeactivationTime / 2
	if b := Brightness(f, p); !mgl32.FloatEqualThreshold(b, p.Lit/2, 1e-5) {
		t.Errorf("Expected half brightness %v, got %v", p.Lit/2, b)
	}

	f.ElapsedActive = p.DeactivationTime - time.Millisecond
	if b := Brightness(f, p); b > 0.01 {
		t.Errorf("Expected brightness near the floor just before deactivation, got %v", b)
	}
}

func TestBrightnessUsesLargerLevel(t *testing.T) {
	// A misconfigured Lit below Dimmed still fades from the brighter of the two
	p := Profile{Lit: 0.05, Dimmed: 0.1, DeactivationTime: time.Second}
	f := newFixture()
	Activate(&f)

	if b := Brightness(f, p); b != 0.1 {
		t.Errorf("Expected max(Lit, Dimmed) 0.1, got %v", b)
	}
}
