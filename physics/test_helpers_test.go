package physics

import (
	"math"

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
