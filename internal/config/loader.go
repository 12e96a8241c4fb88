package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfigPath is the project-local config location searched by Load.
const LocalConfigPath = "configs/flappy.yaml"

// Load loads the flappy configuration and validates it.
// Search order: customPath -> ~/.flappy/flappy.yaml -> ./configs/flappy.yaml -> embedded default.
// Values missing from a file keep their defaults.
func Load(customPath string) (FlappyConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Broken user or local files are skipped, like a missing file.
	for _, path := range []string{userConfigPath("flappy.yaml"), LocalConfigPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultFlappyYAML)
	if err != nil {
		return DefaultFlappyConfig(), nil
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FlappyConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return FlappyConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg FlappyConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// Validate reports every value the simulation cannot run with.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	p := c.Playfield
	check(p.Width > 0, "playfield.width must be positive, got %v", p.Width)
	check(p.Height > 0, "playfield.height must be positive, got %v", p.Height)
	check(p.GroundHeight >= 0 && p.GroundHeight/2 < p.Height,
		"playfield.ground_height must be in [0, 2*height), got %v", p.GroundHeight)

	check(c.Physics.Gravity >= 0, "physics.gravity must not be negative, got %v", c.Physics.Gravity)
	check(c.Physics.JumpImpulse < 0, "physics.jump_impulse must be negative (up), got %v", c.Physics.JumpImpulse)

	o := c.Obstacles
	check(o.Width > 0, "obstacles.width must be positive, got %v", o.Width)
	check(o.Speed > 0, "obstacles.speed must be positive, got %v", o.Speed)
	check(o.GapHeight > 0 && o.GapHeight < p.Height-1,
		"obstacles.gap_height must be in (0, playfield.height-1), got %v", o.GapHeight)

	b := c.Bird
	check(b.Width > 0 && b.Height > 0, "bird.width and bird.height must be positive, got %vx%v", b.Width, b.Height)
	check(b.Height < p.FloorY(), "bird.height must fit above the floor, got %v", b.Height)

	check(c.Collision.VerticalTolerance >= 0, "collision.vertical_tolerance must not be negative")
	check(c.Collision.HorizontalTolerance >= 0, "collision.horizontal_tolerance must not be negative")

	check(c.Selection.Timeout > 0, "selection.timeout must be positive, got %v", c.Selection.Timeout)

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", filename)
}
