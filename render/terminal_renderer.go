package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/glowgrid/constants"
	"github.com/lixenwraith/glowgrid/scene"
	"github.com/lixenwraith/glowgrid/status"
	"github.com/lixenwraith/glowgrid/vmath"
)

// HUD is host state shown in the status bar
type HUD struct {
	Paused bool
	Muted  bool
	FPS    float64
}

// TerminalRenderer draws a top-down view of the scene
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
}

// NewTerminalRenderer creates a renderer for screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{screen: screen, width: w, height: h}
}

// Resize updates the drawing area after a terminal resize
func (r *TerminalRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Viewport returns the play area centred on centre
func (r *TerminalRenderer) Viewport(centre mgl32.Vec2) Viewport {
	h := r.height - constants.StatusBarHeight
	if h < 0 {
		h = 0
	}
	return Viewport{
		Width:         r.width,
		Height:        h,
		Center:        centre,
		CellsPerUnitX: constants.CellsPerUnitX,
		CellsPerUnitZ: constants.CellsPerUnitZ,
	}
}

// RenderFrame draws ground, fixtures, avatar and status bar, then shows the screen
func (r *TerminalRenderer) RenderFrame(s *scene.Scene, centre mgl32.Vec2, hud HUD) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	view := r.Viewport(centre)

	r.drawGround(s, view, defaultStyle)
	r.drawFixtures(s, view, defaultStyle)
	r.drawAvatar(s, view, defaultStyle)
	r.drawStatusBar(s, hud)

	r.screen.Show()
}

// drawGround dots every world unit inside the ground extent
func (r *TerminalRenderer) drawGround(s *scene.Scene, view Viewport, defaultStyle tcell.Style) {
	extent := s.Extent()
	style := defaultStyle.Foreground(RgbGround)
	for y := 0; y < view.Height; y++ {
		for x := 0; x < view.Width; x++ {
			p := view.ToWorld(x, y)
			if p.X() < -extent || p.X() > extent || p.Y() < -extent || p.Y() > extent {
				continue
			}
			if x%constants.CellsPerUnitX == 0 && y%constants.CellsPerUnitZ == 0 {
				r.screen.SetContent(x, y, '·', nil, style)
			}
		}
	}
}

// drawFixtures fills each fixture footprint with its glow
func (r *TerminalRenderer) drawFixtures(s *scene.Scene, view Viewport, defaultStyle tcell.Style) {
	half := s.Config.Grid.BoxWidth / 2
	lit := s.Config.Lighting.Lit

	for _, e := range s.Fixtures {
		f, ok := s.World.Fixtures.Get(e)
		if !ok {
			continue
		}
		level, ok := s.Brightness(e)
		if !ok {
			// No material to read, mark the footprint so the problem is visible
			if x, y, on := view.ToCell(f.Position); on {
				r.screen.SetContent(x, y, '?', nil, defaultStyle.Foreground(RgbWarning))
			}
			continue
		}

		style := defaultStyle.Foreground(GlowColor(level, lit))
		if f.IsActivated {
			style = style.Bold(true)
		}

		x0, y0, _ := view.ToCell(f.Position.Add(mgl32.Vec3{half, 0, half}))
		x1, y1, _ := view.ToCell(f.Position.Add(mgl32.Vec3{-half, 0, -half}))
		if x1 <= x0 {
			x1 = x0 + 1
		}
		if y1 <= y0 {
			y1 = y0 + 1
		}
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				if x >= 0 && x < view.Width && y >= 0 && y < view.Height {
					r.screen.SetContent(x, y, '█', nil, style)
				}
			}
		}
	}
}

func (r *TerminalRenderer) drawAvatar(s *scene.Scene, view Viewport, defaultStyle tcell.Style) {
	a, ok := s.World.Avatars.Get(s.Avatar)
	if !ok {
		return
	}
	x, y, on := view.ToCell(a.Position)
	if !on {
		return
	}
	glyph := HeadingGlyph(vmath.Heading(a.Orientation))
	r.screen.SetContent(x, y, glyph, nil, defaultStyle.Foreground(RgbAvatar).Bold(true))
}

// drawStatusBar writes frame, speed and activity counters on the last row
func (r *TerminalRenderer) drawStatusBar(s *scene.Scene, hud HUD) {
	if r.height < 1 {
		return
	}
	y := r.height - 1
	style := tcell.StyleDefault.Foreground(RgbStatusFg).Background(RgbStatusBg)

	reg := s.World.Resource.Status
	text := fmt.Sprintf(" frame %d  speed %5.2f  lit %d/%d  hits %d",
		s.World.Resource.Time.FrameNumber,
		reg.Floats.Get(status.KeyAvatarSpeed).Get(),
		reg.Ints.Get(status.KeyActiveFixtures).Load(),
		len(s.Fixtures),
		reg.Ints.Get(status.KeyCollisions).Load(),
	)
	if hud.FPS > 0 {
		text += fmt.Sprintf("  %3.0f fps", hud.FPS)
	}
	if hud.Paused {
		text += "  [PAUSED]"
	}
	if hud.Muted {
		text += "  [muted]"
	}
	if n := reg.Ints.Get(status.KeyMissingControlled).Load() + reg.Ints.Get(status.KeyVisualMissing).Load(); n > 0 {
		text += fmt.Sprintf("  diag %d", n)
	}

	x := 0
	for _, ch := range text {
		if x >= r.width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	for ; x < r.width; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}
