package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/pyramid-smash/config"
	"github.com/lixenwraith/pyramid-smash/core"
	"github.com/lixenwraith/pyramid-smash/engine"
	"github.com/lixenwraith/pyramid-smash/logger"
	"github.com/lixenwraith/pyramid-smash/parameter"
	"github.com/lixenwraith/pyramid-smash/status"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "pyramid-smash: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := config.Flags("pyramid-smash")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(flags)
	if err != nil {
		return err
	}

	log, closeLog, err := setupLogging(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	if stop := startProfile(cfg.Profile); stop != nil {
		defer stop()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.SetCrashTerminal(screen)
	screen.EnableMouse()
	screen.HideCursor()

	a, err := newApp(ctx, cfg, screen, engine.NewMonotonicTimeProvider(), log)
	if err != nil {
		return err
	}

	if err := a.sound.Start(); err != nil {
		log.WithError(err).Warn("audio unavailable, continuing without sound")
	}
	defer a.sound.Close()

	if cfg.Metrics.Enabled {
		// Instruments are created per key, so register after every system has fetched its metrics
		reg, err := status.RegisterMeter(status.Meter(), a.reg)
		if err != nil {
			log.WithError(err).Warn("metrics registration failed")
		} else {
			defer reg.Unregister()
		}
	}

	if err := a.Reset(); err != nil {
		return fmt.Errorf("initial reset: %w", err)
	}

	events := make(chan tcell.Event, parameter.EventChannelSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// Clean exit on screen finalization
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	})

	log.WithFields(logrus.Fields{
		"capacity": cfg.World.Capacity,
		"fps":      cfg.Render.FPS,
		"audio":    cfg.Audio.Enabled,
	}).Info("game started")

	if err := a.run(ctx, events, cfg.FrameInterval()); err != nil {
		log.WithError(err).Error("game loop stopped")
		return err
	}
	log.Info("game exited")
	return nil
}

// setupLogging routes logs to cfg.File, or discards them: the terminal belongs to the screen
func setupLogging(cfg config.LogConfig) (*logrus.Logger, func(), error) {
	if cfg.File == "" {
		return logger.New(logger.Options{Level: cfg.Level, Format: cfg.Format, Output: io.Discard}), func() {}, nil
	}
	f, err := logger.OpenFile(cfg.File)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log := logger.New(logger.Options{Level: cfg.Level, Format: cfg.Format, Output: f})
	return log, func() { f.Close() }, nil
}

// startProfile begins the configured profile and returns its stop func, nil when disabled
func startProfile(cfg config.ProfileConfig) func() {
	var mode func(*profile.Profile)
	switch cfg.Mode {
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	case "trace":
		mode = profile.TraceProfile
	default:
		return nil
	}
	p := profile.Start(mode, profile.ProfilePath(cfg.Path), profile.Quiet, profile.NoShutdownHook)
	return p.Stop
}
