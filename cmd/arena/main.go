package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/arena-fighter/config"
	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/game"
	"github.com/lixenwraith/arena-fighter/logging"
	"github.com/lixenwraith/arena-fighter/parameter"
)

func main() {
	// Missing .env is normal
	_ = godotenv.Load()

	configPath := flag.String("config", os.Getenv(parameter.EnvConfigPath), "Path to YAML config (default: ./arena.yaml, then embedded)")
	debugFlag := flag.Bool("debug", config.EnvBool(parameter.EnvDebug), "Enable file logging and the diagnostics line")
	invincible := flag.Bool("invincible", false, "Never end a run on defeat")
	seed := flag.Uint64("seed", 0, "RNG seed override (0 = config, then wall clock)")
	flag.Parse()

	logger, logFile, err := logging.Setup(*debugFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging disabled: %v\n", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.LoadAuto(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mARENA CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	opts := []engine.Option{engine.WithLogger(logger), engine.WithSeed(config.ResolveSeed(*seed, cfg.Seed))}
	sess := game.New(cfg, opts...)
	if *invincible {
		sess.World().Player.Invincible = true
	}

	logger.Info().
		Str("config", *configPath).
		Bool("camera", cfg.Camera.Enabled).
		Bool("invincible", sess.World().Player.Invincible).
		Msg("arena starting")

	app := newApp(screen, sess, *debugFlag)
	err = app.run(context.Background())
	screen.Fini()

	if errors.Is(err, errPanic) {
		logger.Error().Err(err).Msg("arena crashed")
		fmt.Fprintf(os.Stderr, "\n\x1b[31mARENA CRASHED: %v\x1b[0m\n", err)
		os.Exit(1)
	}
	if err != nil && !errors.Is(err, errQuit) {
		logger.Error().Err(err).Msg("arena stopped")
		fmt.Fprintf(os.Stderr, "arena: %v\n", err)
		os.Exit(1)
	}
	logger.Info().Int("runs", sess.Runs()).Int("currency", sess.Currency()).Msg("arena exited")
}
