package config

import (
	_ "embed"
)

//go:embed defaults/mazechase.yaml
var defaultYAML []byte

// Default returns the hard-coded configuration. It matches the embedded
// defaults/mazechase.yaml.
func Default() Config {
	return Config{
		Runner: RunnerConfig{Speed: 110},
		Hunters: []HunterConfig{
			{Role: "blinky", Speed: 100, Bias: 1.0},
			{Role: "pinky", Speed: 95, Bias: 0.8},
			{Role: "inky", Speed: 92, Bias: 0.6},
			{Role: "clyde", Speed: 90, Bias: 0.3},
		},
		Frightened: FrightenedConfig{Base: 6000, Decay: 20},
		Targeting: TargetingConfig{
			BiasWeight:  0.15,
			AmbushAhead: 2,
			ShyRadius:   6,
		},
		Scoring:  ScoringConfig{Item: 10, Power: 50, Hunter: 200},
		Gameplay: GameplayConfig{Lives: 3},
		Runtime:  RuntimeConfig{TickRate: 60},
	}
}

// DefaultYAML returns the embedded default file.
func DefaultYAML() []byte {
	return defaultYAML
}
