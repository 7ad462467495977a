// Command arena-window runs the arena in a desktop window instead of a terminal
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/arena-fighter/config"
	"github.com/lixenwraith/arena-fighter/engine"
	"github.com/lixenwraith/arena-fighter/game"
	"github.com/lixenwraith/arena-fighter/logging"
	"github.com/lixenwraith/arena-fighter/parameter"
)

func main() {
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

	sess := game.New(cfg, engine.WithLogger(logger), engine.WithSeed(config.ResolveSeed(*seed, cfg.Seed)))
	if *invincible {
		sess.World().Player.Invincible = true
	}

	ebiten.SetWindowSize(int(cfg.Screen.Width), int(cfg.Screen.Height))
	ebiten.SetWindowTitle("Arena Fighter")

	logger.Info().Str("config", *configPath).Msg("arena window starting")
	if err := ebiten.RunGame(newWindow(sess, *debugFlag)); err != nil {
		logger.Error().Err(err).Msg("arena window stopped")
		fmt.Fprintf(os.Stderr, "arena-window: %v\n", err)
		os.Exit(1)
	}
	logger.Info().Int("runs", sess.Runs()).Int("currency", sess.Currency()).Msg("arena window exited")
}
