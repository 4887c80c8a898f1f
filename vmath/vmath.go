// Package vmath holds the small amount of vector math the simulation needs on top of mgl32
package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Up is the world vertical axis, turning happens around it
var Up = mgl32.Vec3{0, 1, 0}

// LocalForward is the body-space facing direction (+Z)
var LocalForward = mgl32.Vec3{0, 0, 1}

// MapRange linearly maps val from [inMin, inMax] onto [outMin, outMax]
// A degenerate input range maps everything to outMin
func MapRange(val, inMin, inMax, outMin, outMax float32) float32 {
	if inMax == inMin {
		return outMin
	}
	return (val-inMin)/(inMax-inMin)*(outMax-outMin) + outMin
}

// MaxF returns the larger of a and b
func MaxF(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// ClampF limits v to [lo, hi]
func ClampF(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// XZ projects a world position onto the horizontal plane
func XZ(v mgl32.Vec3) mgl32.Vec2 {
	return mgl32.Vec2{v.X(), v.Z()}
}

// FromXZ lifts a horizontal vector back into 3D with zero height
func FromXZ(v mgl32.Vec2) mgl32.Vec3 {
	return mgl32.Vec3{v.X(), 0, v.Y()}
}

// Distance is the full 3D displacement magnitude between a and b
func Distance(a, b mgl32.Vec3) float32 {
	return a.Sub(b).Len()
}

// HorizontalDistance ignores height
func HorizontalDistance(a, b mgl32.Vec3) float32 {
	return XZ(a).Sub(XZ(b)).Len()
}

// Yaw builds a rotation of angle radians about Up
func Yaw(angle float32) mgl32.Quat {
	return mgl32.QuatRotate(angle, Up)
}

// Forward returns the world-space facing direction of an orientation
func Forward(q mgl32.Quat) mgl32.Vec3 {
	return q.Rotate(LocalForward)
}

// Heading returns the yaw angle of an orientation in radians, 0 facing +Z
func Heading(q mgl32.Quat) float32 {
	f := Forward(q)
	return float32(math.Atan2(float64(f.X()), float64(f.Z())))
}

// DampFactor returns the multiplier that relaxes a value by rate per second over dt
// Linear approximation clamped to [0, 1] so a long frame never flips the sign
func DampFactor(rate, dt float32) float32 {
	return ClampF(1-rate*dt, 0, 1)
}
