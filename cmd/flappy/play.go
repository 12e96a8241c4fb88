package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game in the terminal.

Controls:
  1 / 2        - Choose Bird 1 or Bird 2 (Bird 1 is picked after 3.5s)
  Space/Up/W   - Flap
  R/Enter      - Play again (after game over)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Examples:
  flappy play
  flappy play --seed 42 --fps 30
  flappy play --config ./my-flappy.yaml --log-file flappy.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	// The alt screen owns the terminal, so logs go to the file or nowhere.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = resolveSeed(flagSeed)
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	logger.Info("starting", "seed", cfg.Seed, "fps", cfg.TickRate, "screen", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))

	game := flappy.New(gameCfg, flappy.NewRand(cfg.Seed))
	if err := tui.Run(game, cfg, logger); err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// resolveSeed replaces the "random" seed 0 with one from the clock.
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}
