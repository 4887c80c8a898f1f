package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glowgrid/vmath"
)

var (
	RgbBackground = tcell.NewRGBColor(8, 8, 12)
	RgbGround     = tcell.NewRGBColor(40, 40, 48)
	RgbAvatar     = tcell.NewRGBColor(80, 140, 255)
	RgbStatusFg   = tcell.NewRGBColor(200, 200, 200)
	RgbStatusBg   = tcell.NewRGBColor(24, 24, 32)
	RgbWarning    = tcell.NewRGBColor(255, 170, 0)
)

// glowFloor keeps a dimmed fixture visible against the background
const glowFloor = 0.18

// Tonemap maps an emissive level onto [0, 1] for display
// lit maps to 1; anything above clips, as a bloom would
func Tonemap(level, lit float32) float32 {
	if lit <= 0 {
		return 0
	}
	v := vmath.ClampF(level/lit, 0, 1)
	return glowFloor + (1-glowFloor)*v
}

// GlowColor is the gray terminal color for an emissive level
func GlowColor(level, lit float32) tcell.Color {
	g := int32(Tonemap(level, lit) * 255)
	return tcell.NewRGBColor(g, g, g)
}
