// Package config provides YAML-based configuration for the flappy game.
package config

import "time"

// FlappyConfig contains all tunable parameters of the simulation.
type FlappyConfig struct {
	Playfield FlappyPlayfield `yaml:"playfield"`
	Physics   FlappyPhysics   `yaml:"physics"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
	Bird      FlappyBird      `yaml:"bird"`
	Collision FlappyCollision `yaml:"collision"`
	Selection FlappySelection `yaml:"selection"`
}

// FlappyPlayfield defines the playfield dimensions in pixels.
type FlappyPlayfield struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// FloorY returns the floor line: only the upper half of the ground band is
// above it.
func (p FlappyPlayfield) FloorY() float64 {
	return p.Height - p.GroundHeight/2
}

// FlappyPhysics defines per-tick physics parameters.
type FlappyPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"` // negative = up
}

// FlappyObstacles defines the shared gate geometry and scroll speed.
type FlappyObstacles struct {
	Width     float64 `yaml:"width"`
	GapHeight float64 `yaml:"gap_height"`
	Speed     float64 `yaml:"speed"`
}

// FlappyBird defines the bird hitbox and its fixed horizontal position.
type FlappyBird struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyCollision holds the forgiveness applied to collision tests.
type FlappyCollision struct {
	VerticalTolerance   float64 `yaml:"vertical_tolerance"`   // added to both gap band tests
	HorizontalTolerance float64 `yaml:"horizontal_tolerance"` // added to the bird width
}

// FlappySelection configures the bird selection step.
type FlappySelection struct {
	Timeout time.Duration `yaml:"timeout"`
}
