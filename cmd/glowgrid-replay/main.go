package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/glowgrid/config"
	"github.com/lixenwraith/glowgrid/logging"
	"github.com/lixenwraith/glowgrid/scenario"
	"github.com/lixenwraith/glowgrid/scene"
)

var (
	configFlag = flag.String("config", "", "Path to YAML config (defaults built in)")
	scriptFlag = flag.String("script", "", "Path to YAML scenario script (required)")
	everyFlag  = flag.Int("every", 1, "Print every nth frame; the last frame is always printed")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/glowgrid-replay.log")
)

func main() {
	flag.Parse()
	os.Exit(run(os.Stdout))
}

// run returns the process exit code so deferred cleanup finishes before exit
func run(out io.Writer) int {
	if *scriptFlag == "" {
		fmt.Fprintln(os.Stderr, "usage: glowgrid-replay -script <file.yaml> [-config <file.yaml>] [-every n]")
		return 2
	}

	logFile := logging.Setup(*debugFlag, "glowgrid-replay")
	if logFile != nil {
		defer logFile.Close()
	}

	if err := replay(out); err != nil {
		log.Printf("replay failed: %v", err)
		fmt.Fprintf(os.Stderr, "glowgrid-replay: %v\n", err)
		return 1
	}
	return 0
}

func replay(out io.Writer) error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	script, err := scenario.Load(*scriptFlag)
	if err != nil {
		return err
	}
	sim, err := scene.NewSimulation(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	trace, err := scenario.Run(ctx, sim, script)
	if err != nil {
		return err
	}
	return trace.Write(out, *everyFlag)
}
