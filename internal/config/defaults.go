package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration. It matches the
// embedded defaults/flappy.yaml.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Playfield: FlappyPlayfield{
			Width:        480,
			Height:       640,
			GroundHeight: 112,
		},
		Physics: FlappyPhysics{
			Gravity:     0.05,
			JumpImpulse: -3.0,
		},
		Obstacles: FlappyObstacles{
			Width:     50,
			GapHeight: 150,
			Speed:     0.5,
		},
		Bird: FlappyBird{
			X:      20,
			Width:  34,
			Height: 24,
		},
		Collision: FlappyCollision{
			VerticalTolerance:   5,
			HorizontalTolerance: 2,
		},
		Selection: FlappySelection{
			Timeout: 3500 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
