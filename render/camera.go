package render

import (
	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera spring tuning, slightly under-damped so turns feel soft
const (
	cameraFrequency = 4.0
	cameraDamping   = 0.9
)

// FollowCamera eases a 2D view centre toward a moving target
// Steps at a fixed rate; hosts call Update once per rendered frame
type FollowCamera struct {
	spring harmonica.Spring
	pos    [2]float64
	vel    [2]float64
}

// NewFollowCamera creates a camera stepped at fps
func NewFollowCamera(fps int) *FollowCamera {
	if fps < 1 {
		fps = 60
	}
	return &FollowCamera{
		spring: harmonica.NewSpring(harmonica.FPS(fps), cameraFrequency, cameraDamping),
	}
}

// Snap jumps to target with no motion
func (c *FollowCamera) Snap(target mgl32.Vec2) {
	c.pos = [2]float64{float64(target.X()), float64(target.Y())}
	c.vel = [2]float64{}
}

// Update advances one step toward target and returns the new centre
func (c *FollowCamera) Update(target mgl32.Vec2) mgl32.Vec2 {
	for i := 0; i < 2; i++ {
		c.pos[i], c.vel[i] = c.spring.Update(c.pos[i], c.vel[i], float64(target[i]))
	}
	return c.Position()
}

// Position returns the current centre
func (c *FollowCamera) Position() mgl32.Vec2 {
	return mgl32.Vec2{float32(c.pos[0]), float32(c.pos[1])}
}
