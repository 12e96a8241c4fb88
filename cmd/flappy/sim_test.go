package main

import (
	"bytes"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// impassableConfig returns a config whose gaps are shorter than the bird.
func impassableConfig() config.FlappyConfig {
	cfg := config.DefaultFlappyConfig()
	cfg.Playfield.Width = 40
	cfg.Obstacles.GapHeight = 10
	return cfg
}

func TestSimulateTickLimit(t *testing.T) {
	opts := simOptions{Seed: 1, FPS: 60, Ticks: 100, Variant: "b", Trace: 10}

	report, err := simulate(config.DefaultFlappyConfig(), opts, quietLogger())
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}

	if report.GameOver != nil {
		t.Fatalf("no obstacle can reach the bird in 100 ticks, got %+v", report.GameOver)
	}
	if report.Ticks != 100 || report.Final.Tick != 100 {
		t.Errorf("ticks = %d/%d, expected 100", report.Ticks, report.Final.Tick)
	}
	if len(report.Trace) != 10 {
		t.Errorf("trace has %d entries, expected 10", len(report.Trace))
	}
	if report.Final.Phase != flappy.PhaseRunning || report.Final.Variant != flappy.VariantB {
		t.Errorf("final = %v/%v, expected RUNNING/bird2", report.Final.Phase, report.Final.Variant)
	}
}

func TestSimulateGameOver(t *testing.T) {
	opts := simOptions{Seed: 3, FPS: 60, Ticks: 1000, Variant: "a"}

	report, err := simulate(impassableConfig(), opts, quietLogger())
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}

	if report.GameOver == nil {
		t.Fatal("an impassable gate should end the game")
	}
	if report.Ticks >= opts.Ticks {
		t.Errorf("simulation should stop at game over, ran %d ticks", report.Ticks)
	}
	if report.Final.Phase != flappy.PhaseEnded {
		t.Errorf("final phase = %v, expected ENDED", report.Final.Phase)
	}
	if report.GameOver.Tick != report.Final.Tick {
		t.Errorf("game over tick %d != final tick %d", report.GameOver.Tick, report.Final.Tick)
	}
}

func TestSimulateDeterministic(t *testing.T) {
	opts := simOptions{Seed: 42, FPS: 60, Ticks: 2000, FlapEvery: 30, Variant: "a", Trace: 100}

	a, err := simulate(config.DefaultFlappyConfig(), opts, quietLogger())
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	b, err := simulate(config.DefaultFlappyConfig(), opts, quietLogger())
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Error("two runs with the same seed should produce the same report")
	}
}

func TestSimulateFlapEvery(t *testing.T) {
	cfg := config.DefaultFlappyConfig()

	falling, err := simulate(cfg, simOptions{Seed: 1, Ticks: 50, Variant: "a"}, quietLogger())
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	flapping, err := simulate(cfg, simOptions{Seed: 1, Ticks: 50, FlapEvery: 10, Variant: "a"}, quietLogger())
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}

	if flapping.Final.BirdY >= falling.Final.BirdY {
		t.Errorf("flapping bird (y=%v) should be above the falling one (y=%v)",
			flapping.Final.BirdY, falling.Final.BirdY)
	}
}

func TestSimulateErrors(t *testing.T) {
	tests := []struct {
		name string
		opts simOptions
	}{
		{"zero ticks", simOptions{Ticks: 0, Variant: "a"}},
		{"unknown variant", simOptions{Ticks: 10, Variant: "parrot"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := simulate(config.DefaultFlappyConfig(), tt.opts, quietLogger()); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestWriteReport(t *testing.T) {
	report, err := simulate(impassableConfig(), simOptions{Seed: 3, Ticks: 1000, Variant: "b"}, quietLogger())
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}

	var buf bytes.Buffer
	if err := writeReport(&buf, report); err != nil {
		t.Fatalf("writeReport: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"seed: 3", "phase: ENDED", "variant: bird2", "game_over:", "selection_remaining: 0s"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "trace:") {
		t.Error("empty trace should be omitted")
	}
}
