package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Viewport maps the XZ ground plane onto a cell grid seen from above, facing +Z
// +Z is up the screen and +X is to the left, so a left turn reads as one
type Viewport struct {
	Width, Height int
	Center        mgl32.Vec2

	CellsPerUnitX float32
	CellsPerUnitZ float32
}

// ToCell returns the cell under a world position, ok is false when off screen
func (v Viewport) ToCell(p mgl32.Vec3) (x, y int, ok bool) {
	fx := float32(v.Width)/2 - (p.X()-v.Center.X())*v.CellsPerUnitX
	fy := float32(v.Height)/2 - (p.Z()-v.Center.Y())*v.CellsPerUnitZ
	x = int(math.Floor(float64(fx)))
	y = int(math.Floor(float64(fy)))
	ok = x >= 0 && x < v.Width && y >= 0 && y < v.Height
	return x, y, ok
}

// ToWorld returns the XZ point at the centre of a cell
func (v Viewport) ToWorld(x, y int) mgl32.Vec2 {
	wx := (float32(v.Width)/2-float32(x)-0.5)/v.CellsPerUnitX + v.Center.X()
	wz := (float32(v.Height)/2-float32(y)-0.5)/v.CellsPerUnitZ + v.Center.Y()
	return mgl32.Vec2{wx, wz}
}

// headingGlyphs are ordered by increasing yaw from +Z, which is counter-clockwise on screen
var headingGlyphs = [8]rune{'↑', '↖', '←', '↙', '↓', '↘', '→', '↗'}

// HeadingGlyph picks the arrow closest to a heading in radians, 0 is +Z and π/2 is +X (screen left)
func HeadingGlyph(heading float32) rune {
	sector := math.Round(float64(heading) / (math.Pi / 4))
	idx := int(sector) % 8
	if idx < 0 {
		idx += 8
	}
	return headingGlyphs[idx]
}
