package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/eggdrift/audio"
	"github.com/lixenwraith/eggdrift/config"
	"github.com/lixenwraith/eggdrift/engine"
	"github.com/lixenwraith/eggdrift/feedback"
	"github.com/lixenwraith/eggdrift/logging"
	"github.com/lixenwraith/eggdrift/render"
)

var (
	configFlag = flag.String("config", "", "Path to YAML config")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/eggdrift.log")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "eggdrift: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *debugFlag {
		cfg.Logging.Debug = true
	}

	log, err := logging.New(cfg.Logging.Debug, cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return err
	}
	defer log.Sync()

	clock := engine.NewTimeProvider()

	// Audio is optional; the egg works silently
	var sound feedback.Audio = feedback.NopAudio{}
	audioOn := false
	synth := audio.NewSynth(cfg.Audio, log)
	if err := synth.Init(); err == nil {
		sound, audioOn = synth, true
		defer synth.Close()
	} else if !errors.Is(err, audio.ErrDisabled) {
		log.Warn("audio init failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Audio initialization failed: %v (continuing without audio)\n", err)
	}

	var haptics feedback.Haptics = feedback.NopHaptics{}
	var shaker render.Shaker
	if cfg.Haptics.Enabled {
		rumble := feedback.NewRumble(clock)
		haptics, shaker = rumble, rumble
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	var finiOnce sync.Once
	fini := func() { finiOnce.Do(screen.Fini) }
	defer fini()

	defer crashGuard(fini, "EGGDRIFT")

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	a := newApp(screen, cfg, clock, sound, haptics, shaker, log)
	log.Info("started",
		zap.Int("fps", cfg.Render.FPS),
		zap.Bool("audio", audioOn),
		zap.Bool("haptics", cfg.Haptics.Enabled),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(runCtx)
	events := make(chan tcell.Event, 256)

	g.Go(func() error {
		defer crashGuard(fini, "EVENT POLLER")
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-gctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer crashGuard(fini, "FRAME LOOP")
		// Fini unblocks PollEvent so the pump exits
		defer fini()
		defer cancel()
		err := a.loop(cfg.Render.FPS).Run(gctx, events, a.handle)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	log.Info("stopped", zap.Uint64("frames", a.animator.Frames()))
	return nil
}

// crashGuard restores the terminal before the stack trace is printed
func crashGuard(fini func(), where string) {
	if r := recover(); r != nil {
		fini()
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s CRASHED: %v\x1b[0m\r\n", where, r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
}
