// Package config provides YAML-based tuning for the maze-chase engine and
// the environment overrides read by the command line.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/engine"
)

// Config is the full set of tunables.
type Config struct {
	Runner     RunnerConfig     `yaml:"runner"`
	Hunters    []HunterConfig   `yaml:"hunters"`
	Frightened FrightenedConfig `yaml:"frightened"`
	Targeting  TargetingConfig  `yaml:"targeting"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Runtime    RuntimeConfig    `yaml:"runtime"`
}

// RunnerConfig defines the player-controlled agent.
type RunnerConfig struct {
	Speed int `yaml:"speed"` // fixed-point tiles per tick
}

// HunterConfig defines one hunter slot.
type HunterConfig struct {
	Role  string  `yaml:"role"`
	Speed int     `yaml:"speed"`
	Bias  float64 `yaml:"bias"`
}

// FrightenedConfig defines the power item timer.
type FrightenedConfig struct {
	Base  int `yaml:"base"`
	Decay int `yaml:"decay"`
}

// TargetingConfig defines hunter targeting constants.
type TargetingConfig struct {
	BiasWeight  float64 `yaml:"bias_weight"`
	AmbushAhead int     `yaml:"ambush_ahead"`
	ShyRadius   int     `yaml:"shy_radius"`
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	Item   int `yaml:"item"`
	Power  int `yaml:"power"`
	Hunter int `yaml:"hunter"`
}

// GameplayConfig defines run rules.
type GameplayConfig struct {
	Lives int `yaml:"lives"`
}

// RuntimeConfig defines host settings.
type RuntimeConfig struct {
	TickRate int    `yaml:"tick_rate"`
	Maze     string `yaml:"maze"` // file path or built-in maze name; empty means classic
	Seed     int64  `yaml:"seed"`
}

var errNoHunters = errors.New("config: hunters: at least one profile required")

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Runner.Speed <= 0 {
		return fmt.Errorf("config: runner.speed must be positive, got %d", c.Runner.Speed)
	}
	if len(c.Hunters) == 0 {
		return errNoHunters
	}
	for i, h := range c.Hunters {
		if _, ok := engine.ParseRole(h.Role); !ok {
			return fmt.Errorf("config: hunters[%d].role: unknown role %q", i, h.Role)
		}
		if h.Speed <= 0 {
			return fmt.Errorf("config: hunters[%d].speed must be positive, got %d", i, h.Speed)
		}
		if h.Bias <= 0 || h.Bias > 1 {
			return fmt.Errorf("config: hunters[%d].bias must be in (0, 1], got %g", i, h.Bias)
		}
	}
	if c.Frightened.Base < 0 || c.Frightened.Decay <= 0 {
		return fmt.Errorf("config: frightened: base must be >= 0 and decay > 0")
	}
	if c.Gameplay.Lives < 0 {
		return fmt.Errorf("config: gameplay.lives must not be negative, got %d", c.Gameplay.Lives)
	}
	if c.Runtime.TickRate <= 0 {
		return fmt.Errorf("config: runtime.tick_rate must be positive, got %d", c.Runtime.TickRate)
	}
	return nil
}

// Params converts the configuration into engine tuning.
// Call Validate first; unknown roles fall back to blinky.
func (c Config) Params() engine.Params {
	p := engine.Params{
		RunnerSpeed:     core.Fixed(c.Runner.Speed),
		FrightenedBase:  core.Fixed(c.Frightened.Base),
		FrightenedDecay: core.Fixed(c.Frightened.Decay),
		BiasWeight:      c.Targeting.BiasWeight,
		AmbushAhead:     c.Targeting.AmbushAhead,
		ShyRadius:       c.Targeting.ShyRadius,
		ItemPoints:      c.Scoring.Item,
		PowerPoints:     c.Scoring.Power,
		HunterPoints:    c.Scoring.Hunter,
		Lives:           c.Gameplay.Lives,
	}
	for _, h := range c.Hunters {
		role, _ := engine.ParseRole(h.Role)
		p.Hunters = append(p.Hunters, engine.HunterProfile{
			Role:  role,
			Speed: core.Fixed(h.Speed),
			Bias:  h.Bias,
		})
	}
	return p
}
