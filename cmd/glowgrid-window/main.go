package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/glowgrid/audio"
	"github.com/lixenwraith/glowgrid/config"
	"github.com/lixenwraith/glowgrid/events"
	"github.com/lixenwraith/glowgrid/logging"
	"github.com/lixenwraith/glowgrid/render"
	"github.com/lixenwraith/glowgrid/scene"
	"github.com/lixenwraith/glowgrid/vmath"
)

const (
	windowWidth  = 960
	windowHeight = 720
)

var (
	configFlag = flag.String("config", "", "Path to YAML config (defaults built in)")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/glowgrid-window.log")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup finishes before exit
func run() int {
	logFile := logging.Setup(*debugFlag, "glowgrid-window")
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	sim, err := scene.NewSimulation(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Scene error: %v\n", err)
		return 1
	}

	bindings, err := parseBindings(cfg.Keys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Key binding error: %v\n", err)
		return 1
	}

	sound := audio.NewSoundManager(cfg.Audio.Volume)
	sound.SetMuted(*muteFlag)
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		}
		defer sound.Cleanup()
	}

	router := events.NewRouter[*scene.Scene](sim.World.Resource.Events)
	router.Register(audio.NewEventHandler[*scene.Scene](sound))

	camera := render.NewFollowCamera(cfg.Frame.FPS)
	if a, ok := sim.World.Avatars.Get(sim.Avatar); ok {
		camera.Snap(vmath.XZ(a.Position))
	}

	game := &Game{
		sim:      sim,
		router:   router,
		sound:    sound,
		camera:   camera,
		bindings: bindings,
	}

	ebiten.SetTPS(cfg.Frame.FPS)
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("glowgrid")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		log.Printf("window host: %v", err)
		fmt.Fprintf(os.Stderr, "glowgrid-window: %v\n", err)
		return 1
	}
	return 0
}
