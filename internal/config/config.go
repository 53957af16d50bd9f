// Package config provides YAML-based configuration loading for the match-3
// engine and its play harness.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Match3Config contains all configuration for the match-3 game.
type Match3Config struct {
	Board     BoardConfig     `yaml:"board"`
	Swipe     SwipeConfig     `yaml:"swipe"`
	Timing    TimingConfig    `yaml:"timing"`
	Powers    PowersConfig    `yaml:"powers"`
	Animation AnimationConfig `yaml:"animation"`
}

// BoardConfig defines the grid and the tile palette.
type BoardConfig struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Colors  int    `yaml:"colors"`  // number of tile colors in play
	Gravity string `yaml:"gravity"` // "normal" or "flipped"
}

// SwipeConfig defines pointer gesture parameters.
type SwipeConfig struct {
	Sensitivity float64 `yaml:"sensitivity"` // minimum drag in cells
}

// TimingConfig defines the settle delays between cascade phases.
type TimingConfig struct {
	DestroySettle  time.Duration `yaml:"destroy_settle"`
	CollapseSettle time.Duration `yaml:"collapse_settle"`
	SpawnInterval  time.Duration `yaml:"spawn_interval"`
}

// PowersConfig defines which match sizes create power tiles.
type PowersConfig struct {
	Tiers      []PowerTier `yaml:"tiers"`
	BombRadius int         `yaml:"bomb_radius"`
}

// PowerTier grants Kind to matches of at least MinSize tiles.
type PowerTier struct {
	MinSize int    `yaml:"min_size"`
	Kind    string `yaml:"kind"` // line, bomb, gravity
}

// AnimationConfig defines tile movement speed for the play harness.
type AnimationConfig struct {
	Speed float64 `yaml:"speed"` // cells per second
}

// Validate reports every problem in the configuration.
func (c Match3Config) Validate() error {
	var errs []error
	if c.Board.Width < 3 || c.Board.Height < 3 {
		errs = append(errs, fmt.Errorf("board: size %dx%d is below 3x3", c.Board.Width, c.Board.Height))
	}
	if c.Board.Colors < 3 {
		errs = append(errs, fmt.Errorf("board: need at least 3 colors, got %d", c.Board.Colors))
	}
	switch c.Board.Gravity {
	case "", "normal", "flipped":
	default:
		errs = append(errs, fmt.Errorf("board: unknown gravity %q", c.Board.Gravity))
	}
	if c.Swipe.Sensitivity <= 0 {
		errs = append(errs, fmt.Errorf("swipe: sensitivity must be positive, got %v", c.Swipe.Sensitivity))
	}
	if c.Timing.DestroySettle < 0 || c.Timing.CollapseSettle < 0 || c.Timing.SpawnInterval < 0 {
		errs = append(errs, errors.New("timing: delays must not be negative"))
	}
	for i, t := range c.Powers.Tiers {
		if t.MinSize < 4 {
			errs = append(errs, fmt.Errorf("powers: tier %d: min_size %d is below 4", i, t.MinSize))
		}
		switch t.Kind {
		case "line", "bomb", "gravity":
		default:
			errs = append(errs, fmt.Errorf("powers: tier %d: unknown kind %q", i, t.Kind))
		}
	}
	if c.Powers.BombRadius < 0 {
		errs = append(errs, fmt.Errorf("powers: bomb_radius must not be negative, got %d", c.Powers.BombRadius))
	}
	if c.Animation.Speed <= 0 {
		errs = append(errs, fmt.Errorf("animation: speed must be positive, got %v", c.Animation.Speed))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid match3 config: %w", errors.Join(errs...))
	}
	return nil
}
