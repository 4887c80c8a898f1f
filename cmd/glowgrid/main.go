package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glowgrid/audio"
	"github.com/lixenwraith/glowgrid/config"
	"github.com/lixenwraith/glowgrid/core"
	"github.com/lixenwraith/glowgrid/engine"
	"github.com/lixenwraith/glowgrid/events"
	"github.com/lixenwraith/glowgrid/input"
	"github.com/lixenwraith/glowgrid/logging"
	"github.com/lixenwraith/glowgrid/render"
	"github.com/lixenwraith/glowgrid/scene"
	"github.com/lixenwraith/glowgrid/status"
	"github.com/lixenwraith/glowgrid/vmath"
)

var (
	configFlag = flag.String("config", "", "Path to YAML config (defaults built in)")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/glowgrid.log")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
	fpsFlag    = flag.Int("fps", 0, "Frame rate override, 0 uses config")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup finishes before exit
func run() int {
	logFile := logging.Setup(*debugFlag, "glowgrid")
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}
	if *fpsFlag > 0 {
		cfg.Frame.FPS = *fpsFlag
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			return 1
		}
	}

	if err := play(cfg); err != nil {
		log.Printf("host error: %v", err)
		fmt.Fprintf(os.Stderr, "glowgrid: %v\n", err)
		return 1
	}
	return 0
}

// terminalEvent carries a polled tcell event to the frame loop
type terminalEvent struct {
	ev tcell.Event
}

// play runs the terminal frame loop until quit, signal or error
func play(cfg *config.Config) error {
	sim, err := scene.NewSimulation(cfg)
	if err != nil {
		return err
	}

	keymap, err := input.NewKeymap(cfg.Keys)
	if err != nil {
		return err
	}
	hold := input.NewHoldTracker(cfg.Frame.KeyHold.Std())

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()

	core.RegisterCrashFinalizer(screen)
	defer core.RegisterCrashFinalizer(nil)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

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

	clock := engine.NewPausableClock(engine.NewMonotonicTimeProvider(), cfg.Frame.MaxDelta.Std())
	renderer := render.NewTerminalRenderer(screen)
	camera := render.NewFollowCamera(cfg.Frame.FPS)
	if a, ok := sim.World.Avatars.Get(sim.Avatar); ok {
		camera.Snap(vmath.XZ(a.Position))
	}
	statPaused := sim.World.Resource.Status.Bools.Get(status.KeyPaused)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eventChan := make(chan terminalEvent, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			select {
			case eventChan <- terminalEvent{ev: ev}:
			case <-ctx.Done():
				return
			}
		}
	})

	frameTicker := time.NewTicker(cfg.FrameInterval())
	defer frameTicker.Stop()

	var fps float64
	lastFrame := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil

		case te := <-eventChan:
			switch ev := te.ev.(type) {
			case *tcell.EventResize:
				w, h := ev.Size()
				renderer.Resize(w, h)
				screen.Sync()
			case *tcell.EventKey:
				action, ok := keymap.Resolve(ev)
				if !ok {
					continue
				}
				switch action {
				case input.ActionQuit:
					return nil
				case input.ActionPause:
					paused := clock.Toggle()
					statPaused.Store(paused)
					hold.Reset()
					log.Printf("paused=%v", paused)
				case input.ActionMute:
					log.Printf("muted=%v", sound.ToggleMute())
				default:
					hold.Press(action, time.Now())
				}
			}

		case now := <-frameTicker.C:
			dt := clock.Tick()
			if !clock.IsPaused() {
				sim.Step(hold.Intent(now), dt)
				router.DispatchAll(sim)
			}

			if elapsed := now.Sub(lastFrame).Seconds(); elapsed > 0 {
				fps = fps*0.9 + (1/elapsed)*0.1
			}
			lastFrame = now

			centre := camera.Position()
			if a, ok := sim.World.Avatars.Get(sim.Avatar); ok {
				centre = camera.Update(vmath.XZ(a.Position))
			}
			renderer.RenderFrame(sim, centre, render.HUD{
				Paused: clock.IsPaused(),
				Muted:  sound.IsMuted(),
				FPS:    fps,
			})
		}
	}
}
