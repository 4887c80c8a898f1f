package vmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-5

// approx compares with an absolute tolerance; mgl32's relative form is near-exact around zero
func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < epsilon
}

func vecApprox(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < epsilon
}

func TestMapRange(t *testing.T) {
	tests := []struct {
		name     string
		val      float32
		expected float32
	}{
		{"low end", 0, -4},
		{"middle", 2, 0},
		{"high end", 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapRange(tt.val, 0, 4, -4, 4)
			if !approx(got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestMapRangeDegenerate(t *testing.T) {
	got := MapRange(0, 0, 0, 3, 7)
	if got != 3 {
		t.Errorf("Expected degenerate range to map to outMin 3, got %v", got)
	}
}

func TestHorizontalDistanceIgnoresHeight(t *testing.T) {
	a := mgl32.Vec3{1, 10, 0}
	b := mgl32.Vec3{0, -3, 0}
	if d := HorizontalDistance(a, b); !approx(d, 1) {
		t.Errorf("Expected horizontal distance 1, got %v", d)
	}
	if d := Distance(a, b); d <= 13 {
		t.Errorf("Expected full distance above 13, got %v", d)
	}
}

func TestYawForward(t *testing.T) {
	// Identity faces +Z
	f := Forward(mgl32.QuatIdent())
	if !vecApprox(f, mgl32.Vec3{0, 0, 1}) {
		t.Errorf("Expected identity forward (0,0,1), got %v", f)
	}

	// Positive quarter turn about +Y swings +Z onto +X
	f = Forward(Yaw(math.Pi / 2))
	if !vecApprox(f, mgl32.Vec3{1, 0, 0}) {
		t.Errorf("Expected quarter-turn forward (1,0,0), got %v", f)
	}

	if h := Heading(Yaw(0.5)); !approx(h, 0.5) {
		t.Errorf("Expected heading 0.5, got %v", h)
	}
}

func TestDampFactorClamped(t *testing.T) {
	if f := DampFactor(0.25, 1); !approx(f, 0.75) {
		t.Errorf("Expected 0.75, got %v", f)
	}
	if f := DampFactor(0.25, 10); f != 0 {
		t.Errorf("Expected long frame to clamp at 0, got %v", f)
	}
	if f := DampFactor(0.25, 0); f != 1 {
		t.Errorf("Expected zero dt to leave value untouched, got %v", f)
	}
}
