package flappy

import (
	"fmt"
	"strings"
	"time"
)

// Phase is the top-level game state.
type Phase int

const (
	PhaseSelecting Phase = iota // waiting for a bird choice or the selection timeout
	PhaseRunning
	PhaseEnded
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSelecting:
		return "SELECTING"
	case PhaseRunning:
		return "RUNNING"
	case PhaseEnded:
		return "ENDED"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Variant is the bird the player picked. It changes looks only.
type Variant int

const (
	VariantA Variant = iota // default when the selection times out
	VariantB
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantA:
		return "bird1"
	case VariantB:
		return "bird2"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Valid reports whether v is one of the selectable variants.
func (v Variant) Valid() bool {
	return v == VariantA || v == VariantB
}

// ParseVariant accepts "a", "1", "bird1" and the B equivalents, case-insensitive.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "1", "bird1":
		return VariantA, nil
	case "b", "2", "bird2":
		return VariantB, nil
	}
	return VariantA, fmt.Errorf("flappy: unknown bird variant %q", s)
}

// ObstacleView is the renderer's view of one gate.
type ObstacleView struct {
	X         float64 `yaml:"x"`
	GapAnchor float64 `yaml:"gap_anchor"`
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Phase        Phase          `yaml:"phase"`
	Tick         uint64         `yaml:"tick"`
	Variant      Variant        `yaml:"variant"`
	BirdX        float64        `yaml:"bird_x"`
	BirdY        float64        `yaml:"bird_y"`
	BirdVelocity float64        `yaml:"bird_velocity"`
	Obstacles    []ObstacleView `yaml:"obstacles"`
	Score        int            `yaml:"score"`
	Hits         int            `yaml:"hits"`

	GapHeight     float64 `yaml:"gap_height"`
	ObstacleWidth float64 `yaml:"obstacle_width"`
	BirdWidth     float64 `yaml:"bird_width"`
	BirdHeight    float64 `yaml:"bird_height"`
	FloorY        float64 `yaml:"floor_y"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`

	// SelectionRemaining is the time left before the default bird is
	// chosen; zero outside PhaseSelecting.
	SelectionRemaining time.Duration `yaml:"selection_remaining"`
}

// GameOver is emitted once, on the tick that ends a run.
type GameOver struct {
	Score   int     `yaml:"score"`
	Tick    uint64  `yaml:"tick"`
	Variant Variant `yaml:"variant"`
}

// StepResult is returned by Game.Tick.
type StepResult struct {
	Snapshot Snapshot
	// GameOver is non-nil only on the tick of the RUNNING -> ENDED transition.
	GameOver *GameOver
}
