package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/lixenwraith/snek/audio"
	"github.com/lixenwraith/snek/config"
	"github.com/lixenwraith/snek/core"
	"github.com/lixenwraith/snek/engine"
	"github.com/lixenwraith/snek/game"
	"github.com/lixenwraith/snek/input"
	"github.com/lixenwraith/snek/service"
	"github.com/lixenwraith/snek/spectate"
	"github.com/lixenwraith/snek/status"
	"github.com/lixenwraith/snek/terminal"
	"github.com/lixenwraith/snek/theme"
)

// Process exit codes
const (
	exitOK       = 0
	exitConfig   = 1
	exitTerminal = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// frameSinks lists the frame consumers besides the terminal; the feed only encodes frames when it has an address
func frameSinks(addr string, feed engine.FrameSink) []engine.FrameSink {
	if addr == "" {
		return nil
	}
	return []engine.FrameSink{feed}
}

func run(args []string) int {
	cfg, err := config.FromArgs("snek", args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(os.Stderr, "snek: %v\n", err)
		return exitConfig
	}

	if cfg.Fullscreen {
		if cols, rows, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			cfg.ApplyTerminalSize(cols, rows)
		}
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "snek: %v\n", err)
		return exitConfig
	}
	table, err := theme.Resolve(cfg.Theme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snek: %v\n", err)
		return exitConfig
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	logger, logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}
	logger.WithFields(logrus.Fields{
		"width":  cfg.Width,
		"height": cfg.Height,
		"seed":   cfg.Seed,
		"theme":  cfg.Theme,
	}).Info("configuration resolved")

	screen, err := terminal.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "snek: %v\n", err)
		return exitTerminal
	}
	defer screen.Close()

	core.SetCleanup(screen.Close)
	defer core.SetCleanup(nil)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	reg := status.NewRegistry()
	sound := audio.NewSoundManager(reg, logger)
	feed := spectate.NewServer(cfg.Spectate, reg, logger)

	hub := service.NewHub(logger)
	for _, svc := range []service.Service{sound, feed} {
		if err := hub.Register(svc); err != nil {
			logger.WithError(err).Error("service registration failed")
		}
	}
	if err := hub.InitAll(cfg); err != nil {
		logger.WithError(err).Warn("services disabled")
	} else if err := hub.StartAll(); err != nil {
		logger.WithError(err).Warn("services disabled")
	}
	defer hub.StopAll()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	queue := input.NewQueue(input.DefaultCapacity)
	core.Go(func() { screen.Pump(ctx, queue, input.DefaultKeyTable()) })

	machine := game.NewMachine(cfg.Settings(), game.NewSpawner(game.NewSource(cfg.Seed)))
	loop := engine.NewLoop(engine.Options{
		Config:   cfg,
		Machine:  machine,
		Queue:    queue,
		Table:    table,
		Painter:  screen,
		Sinks:    frameSinks(cfg.Spectate, feed),
		Sound:    sound,
		Registry: reg,
		Logger:   logger,
	})

	if err := loop.Run(ctx); err != nil {
		logger.WithError(err).Error("loop failed")
	}
	logger.WithField("status", reg.Snapshot()).Info("exiting")
	return exitOK
}
