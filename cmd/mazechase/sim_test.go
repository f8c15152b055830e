package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/engine"
	"github.com/vovakirdan/maze-chase/internal/maze"
)

func TestParseIntents(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		want    []segment
		wantErr bool
	}{
		{"empty", "  ", nil, false},
		{"single", "L:30", []segment{{dir: core.DirLeft, set: true, ticks: 30}}, false},
		{"several", "r:5, U:0,N:7", []segment{
			{dir: core.DirRight, set: true, ticks: 5},
			{dir: core.DirUp, set: true, ticks: 0},
			{ticks: 7},
		}, false},
		{"missing ticks", "L", nil, true},
		{"bad ticks", "L:x", nil, true},
		{"negative ticks", "L:-1", nil, true},
		{"bad direction", "Q:3", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseIntents(tt.script)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSimulateFollowsScript(t *testing.T) {
	m := maze.ParseLines([]string{
		"#######",
		"#     #",
		"#  P  #",
		"#     #",
		"#######",
	})
	sim := engine.New(m)
	script, err := parseIntents("R:10,U:10")
	require.NoError(t, err)

	sum := simulate(sim, script, 20)

	assert.Equal(t, 20, sum.Ticks)
	assert.Equal(t, core.P(4, 1), sum.Final.Runner.Tile)
	assert.Equal(t, core.DirUp, sum.Final.Runner.Dir)
	assert.Zero(t, sum.StoppedAt)
}

func TestSimulateIsDeterministic(t *testing.T) {
	script, err := parseIntents("L:200,U:150,R:300,D:100")
	require.NoError(t, err)

	run := func() simSummary {
		return simulate(engine.New(maze.Fallback(), engine.WithSeed(99)), script, 2000)
	}
	assert.Equal(t, run(), run())
}

func TestSimulateStopsAtGameOver(t *testing.T) {
	p := engine.DefaultParams()
	p.Lives = 1
	m := maze.ParseLines([]string{
		"#######",
		"#P G  #",
		"#######",
	})

	sum := simulate(engine.New(m, engine.WithParams(p)), nil, 500)

	assert.Equal(t, 20, sum.StoppedAt)
	assert.Equal(t, 20, sum.Ticks)
	assert.Equal(t, 1, sum.Events[engine.EventGameOver])

	var buf bytes.Buffer
	printSummary(&buf, "Test", 0, sum)
	assert.Contains(t, buf.String(), "Score: 0  Lives: 0  Level: 1")
	assert.Contains(t, buf.String(), "Game over at tick 20")
}

func TestNewLogger(t *testing.T) {
	_, _, err := newLogger("", "loud", nil)
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "run.log")
	logger, closeLog, err := newLogger(path, "debug", nil)
	require.NoError(t, err)
	logger.Info("hello")
	closeLog()

	assert.FileExists(t, path)
}
