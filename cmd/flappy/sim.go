package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	flagTicks     int
	flagFlapEvery int
	flagVariant   string
	flagTrace     int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the game without a terminal UI and print the result as YAML.

The bird is picked immediately and the game advances one frame per tick
at the --fps rate. With --flap-every K the bird flaps on every K-th tick;
with --trace M every M-th snapshot is included in the output.

Examples:
  flappy sim --seed 42
  flappy sim --ticks 3000 --flap-every 25 --variant b
  flappy sim --ticks 600 --trace 60 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 1000, "Maximum number of ticks to run")
	simCmd.Flags().IntVar(&flagFlapEvery, "flap-every", 0, "Flap on every N-th tick (0 = never)")
	simCmd.Flags().StringVar(&flagVariant, "variant", "a", "Bird variant: a or b")
	simCmd.Flags().IntVar(&flagTrace, "trace", 0, "Include every N-th snapshot in the output (0 = none)")
}

// simOptions controls one headless run.
type simOptions struct {
	Seed      int64
	FPS       int
	Ticks     int
	FlapEvery int
	Variant   string
	Trace     int
}

// simReport is the YAML document printed by the sim command.
type simReport struct {
	Seed     int64             `yaml:"seed"`
	Ticks    int               `yaml:"ticks"`
	Trace    []flappy.Snapshot `yaml:"trace,omitempty"`
	Final    flappy.Snapshot   `yaml:"final"`
	GameOver *flappy.GameOver  `yaml:"game_over,omitempty"`
}

func runSim(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(os.Stderr)
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

	opts := simOptions{
		Seed:      resolveSeed(flagSeed),
		FPS:       flagFPS,
		Ticks:     flagTicks,
		FlapEvery: flagFlapEvery,
		Variant:   flagVariant,
		Trace:     flagTrace,
	}

	report, err := simulate(gameCfg, opts, logger)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := writeReport(os.Stdout, report); err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// simulate runs one game to completion or until opts.Ticks is reached.
// Flaps follow the same rule as the terminal UI: none at or above the top edge.
func simulate(cfg config.FlappyConfig, opts simOptions, logger *log.Logger) (simReport, error) {
	if opts.Ticks <= 0 {
		return simReport{}, fmt.Errorf("sim: ticks must be positive, got %d", opts.Ticks)
	}
	variant, err := flappy.ParseVariant(opts.Variant)
	if err != nil {
		return simReport{}, err
	}

	frame := flappy.DefaultFrame
	if opts.FPS > 0 {
		frame = time.Second / time.Duration(opts.FPS)
	}

	game := flappy.New(cfg, flappy.NewRand(opts.Seed))
	game.SelectVariant(variant)
	logger.Debug("simulation started", "seed", opts.Seed, "variant", variant, "ticks", opts.Ticks)

	report := simReport{Seed: opts.Seed}
	for i := 1; i <= opts.Ticks; i++ {
		if opts.FlapEvery > 0 && i%opts.FlapEvery == 0 && game.Bird().Y > 0 {
			game.Flap()
		}

		result := game.Tick(frame)
		report.Ticks = i

		if opts.Trace > 0 && i%opts.Trace == 0 {
			report.Trace = append(report.Trace, result.Snapshot)
		}
		if result.GameOver != nil {
			report.GameOver = result.GameOver
			logger.Info("game over", "score", result.GameOver.Score, "ticks", result.GameOver.Tick)
			break
		}
	}

	report.Final = game.Snapshot()
	if report.GameOver == nil {
		logger.Info("tick limit reached", "score", report.Final.Score, "ticks", report.Ticks)
	}
	return report, nil
}

func writeReport(w io.Writer, report simReport) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("sim: failed to encode report: %w", err)
	}
	return enc.Close()
}
