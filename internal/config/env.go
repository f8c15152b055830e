package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by ReadEnv.
const (
	EnvMaze     = "MAZECHASE_MAZE"
	EnvSeed     = "MAZECHASE_SEED"
	EnvTickRate = "MAZECHASE_TICK_RATE"
	EnvLogLevel = "MAZECHASE_LOG_LEVEL"
)

// Env holds the overrides found in the environment. Zero values mean unset.
type Env struct {
	Maze     string
	Seed     int64
	HasSeed  bool
	TickRate int
	LogLevel string
}

// ReadEnv loads dotenv (if the file exists) into the process environment
// without overriding variables already set, then reads the MAZECHASE_*
// variables.
func ReadEnv(dotenv string) (Env, error) {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Env{}, fmt.Errorf("config: load %s: %w", dotenv, err)
		}
	}

	env := Env{
		Maze:     os.Getenv(EnvMaze),
		LogLevel: os.Getenv(EnvLogLevel),
	}

	if v, ok := os.LookupEnv(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Env{}, fmt.Errorf("config: %s must be an integer: %w", EnvSeed, err)
		}
		env.Seed, env.HasSeed = seed, true
	}

	if v, ok := os.LookupEnv(EnvTickRate); ok && v != "" {
		rate, err := strconv.Atoi(v)
		if err != nil {
			return Env{}, fmt.Errorf("config: %s must be an integer: %w", EnvTickRate, err)
		}
		env.TickRate = rate
	}

	return env, nil
}

// Apply copies the set overrides into cfg.
func (e Env) Apply(cfg *Config) {
	if e.Maze != "" {
		cfg.Runtime.Maze = e.Maze
	}
	if e.HasSeed {
		cfg.Runtime.Seed = e.Seed
	}
	if e.TickRate != 0 {
		cfg.Runtime.TickRate = e.TickRate
	}
}
