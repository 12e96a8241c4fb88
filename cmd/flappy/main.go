// flappy is a terminal Flappy Bird clone.
//
// Usage:
//
//	flappy                   - Play (same as "flappy play")
//	flappy play              - Play in the terminal
//	flappy sim               - Run a headless simulation and print YAML
//	flappy config            - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Path to a custom game config YAML
//	--log-level <level> - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file
//
// Flags that are not given on the command line fall back to FLAPPY_FPS,
// FLAPPY_SEED, FLAPPY_CONFIG, FLAPPY_LOG_LEVEL and FLAPPY_LOG_FILE. A .env
// file in the working directory is loaded first.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Flappy is a terminal Flappy Bird clone.

Pick a bird, flap through the gaps, and do not hit a pipe twice in a row.

Available commands:
  play     - Play the game (default)
  sim      - Run a headless simulation
  config   - Print the effective configuration

Examples:
  flappy
  flappy play --seed 42
  flappy sim --ticks 600 --flap-every 20
  flappy config --config ./my-flappy.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: applyEnv,
	Run:               runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// applyEnv fills flags that were not set on the command line from the
// environment.
func applyEnv(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	if v := os.Getenv("FLAPPY_FPS"); v != "" && !flags.Changed("fps") {
		fps, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("FLAPPY_FPS: %w", err)
		}
		flagFPS = fps
	}
	if v := os.Getenv("FLAPPY_SEED"); v != "" && !flags.Changed("seed") {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("FLAPPY_SEED: %w", err)
		}
		flagSeed = seed
	}
	if v := os.Getenv("FLAPPY_CONFIG"); v != "" && !flags.Changed("config") {
		flagConfig = v
	}
	if v := os.Getenv("FLAPPY_LOG_LEVEL"); v != "" && !flags.Changed("log-level") {
		flagLogLevel = v
	}
	if v := os.Getenv("FLAPPY_LOG_FILE"); v != "" && !flags.Changed("log-file") {
		flagLogFile = v
	}

	if flagFPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", flagFPS)
	}
	return nil
}

// newLogger builds the logger for a command. fallback is used when no log
// file is configured. The returned closer must be called on exit.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	w := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("log file: %w", err)
		}
		w = f
		closer = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           level,
	})
	return logger, closer, nil
}
