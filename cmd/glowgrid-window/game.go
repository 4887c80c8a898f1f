package main

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/glowgrid/audio"
	"github.com/lixenwraith/glowgrid/events"
	"github.com/lixenwraith/glowgrid/input"
	"github.com/lixenwraith/glowgrid/render"
	"github.com/lixenwraith/glowgrid/scene"
	"github.com/lixenwraith/glowgrid/status"
	"github.com/lixenwraith/glowgrid/vmath"
)

// pixelsPerUnit is the top-down zoom of the window view
const pixelsPerUnit = 48

var (
	colorBackground = color.RGBA{8, 8, 12, 255}
	colorGround     = color.RGBA{40, 40, 48, 255}
	colorAvatar     = color.RGBA{80, 140, 255, 255}
)

// Game is the ebiten host: polled keys in, one simulation step per tick, top-down draw
type Game struct {
	sim      *scene.Scene
	router   *events.Router[*scene.Scene]
	sound    *audio.SoundManager
	camera   *render.FollowCamera
	bindings []keyBinding

	paused bool
	width  int
	height int
	centre mgl32.Vec2
}

// Update reads held keys and advances the simulation by one fixed tick
func (g *Game) Update() error {
	var held []input.Action
	for _, b := range g.bindings {
		switch b.action {
		case input.ActionQuit:
			if inpututil.IsKeyJustPressed(b.key) {
				return ebiten.Termination
			}
		case input.ActionPause:
			if inpututil.IsKeyJustPressed(b.key) {
				g.paused = !g.paused
				g.sim.World.Resource.Status.Bools.Get(status.KeyPaused).Store(g.paused)
				log.Printf("paused=%v", g.paused)
			}
		case input.ActionMute:
			if inpututil.IsKeyJustPressed(b.key) {
				log.Printf("muted=%v", g.sound.ToggleMute())
			}
		default:
			if ebiten.IsKeyPressed(b.key) {
				held = append(held, b.action)
			}
		}
	}

	if !g.paused {
		dt := time.Second / time.Duration(ebiten.TPS())
		g.sim.Step(input.IntentFromActions(held...), dt)
		g.router.DispatchAll(g.sim)
	}

	if a, ok := g.sim.World.Avatars.Get(g.sim.Avatar); ok {
		g.centre = g.camera.Update(vmath.XZ(a.Position))
	}
	return nil
}

// toScreen projects a ground point seen from above facing +Z, +X to the left
func (g *Game) toScreen(p mgl32.Vec3) (float32, float32) {
	x := float32(g.width)/2 - (p.X()-g.centre.X())*pixelsPerUnit
	y := float32(g.height)/2 - (p.Z()-g.centre.Y())*pixelsPerUnit
	return x, y
}

// Draw renders fixtures as emissive squares and the avatar as a disc with a heading line
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	cfg := g.sim.Config
	world := g.sim.World
	half := cfg.Grid.BoxWidth / 2 * pixelsPerUnit

	for _, p := range scene.GridPositions(cfg.Grid.Rows, cfg.Grid.Cols, cfg.Grid.Spacing) {
		x, y := g.toScreen(p)
		vector.DrawFilledCircle(screen, x, y, 1.5, colorGround, false)
	}

	active := 0
	for _, e := range g.sim.Fixtures {
		f, ok := world.Fixtures.Get(e)
		if !ok {
			continue
		}
		if f.IsActivated {
			active++
		}
		level, ok := g.sim.Brightness(e)
		if !ok {
			continue
		}
		v := uint8(render.Tonemap(level, cfg.Lighting.Lit) * 255)
		x, y := g.toScreen(f.Position)
		vector.DrawFilledRect(screen, x-half, y-half, half*2, half*2, color.RGBA{v, v, v, 255}, false)
	}

	var speed float32
	if a, ok := world.Avatars.Get(g.sim.Avatar); ok {
		speed = a.ForwardSpeed
		x, y := g.toScreen(a.Position)
		vector.DrawFilledCircle(screen, x, y, cfg.Avatar.Radius*pixelsPerUnit, colorAvatar, true)
		tip := a.Position.Add(a.Forward().Mul(cfg.Avatar.Radius * 2))
		tx, ty := g.toScreen(tip)
		vector.StrokeLine(screen, x, y, tx, ty, 2, colorAvatar, true)
	}

	msg := fmt.Sprintf("frame %d  speed %.2f  lit %d/%d  hits %d  tps %.0f",
		world.Resource.Time.FrameNumber, speed, active, len(g.sim.Fixtures),
		world.Resource.Status.Ints.Get(status.KeyCollisions).Load(), ebiten.ActualTPS())
	if g.paused {
		msg += "  [PAUSED]"
	}
	if g.sound.IsMuted() {
		msg += "  [muted]"
	}
	ebitenutil.DebugPrint(screen, msg)
}

// Layout tracks the window size so the view stays centred on resize
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width = max(1, outsideWidth)
	g.height = max(1, outsideHeight)
	return g.width, g.height
}
