package mazechase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/engine"
	"github.com/vovakirdan/maze-chase/internal/maze"
)

func newGame(t *testing.T, rows ...string) *Game {
	t.Helper()
	var opts []Option
	if len(rows) > 0 {
		opts = append(opts, WithMaze("Test", maze.ParseLines(rows)))
	}
	g := New(opts...)
	g.Reset(core.RuntimeConfig{ScreenW: 60, ScreenH: 30, TickRate: 60, Seed: 1})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameMetadata(t *testing.T) {
	g := New()
	assert.Equal(t, "mazechase", g.ID())
	assert.Equal(t, "Maze Chase: Classic", g.Title())
}

func TestStepSteersRunner(t *testing.T) {
	g := newGame(t,
		"#######",
		"#  P  #",
		"#######",
	)

	g.Step(frame(core.ActionRight))
	snap := g.Snapshot()
	assert.Equal(t, core.DirRight, snap.Runner.Dir)

	// Intent persists without further input.
	for range 9 {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, core.P(4, 1), g.Snapshot().Runner.Tile)
}

func TestStepPauseToggles(t *testing.T) {
	g := newGame(t)

	res := g.Step(frame(core.ActionPause))
	assert.True(t, res.State.Paused)
	before := g.Snapshot().Runner

	g.Step(core.NewInputFrame())
	assert.Equal(t, before, g.Snapshot().Runner)

	res = g.Step(frame(core.ActionPause))
	assert.False(t, res.State.Paused)
}

func TestStepRestart(t *testing.T) {
	g := newGame(t)
	for range 30 {
		g.Step(frame(core.ActionLeft))
	}
	require.NotEqual(t, core.P(13, 14), g.Snapshot().Runner.Tile)

	res := g.Step(frame(core.ActionRestart))
	assert.Equal(t, core.GameState{Lives: 3, Level: 1}, res.State)
	assert.Equal(t, core.P(13, 14), g.Snapshot().Runner.Tile)
	assert.Empty(t, g.Toast())
}

func TestToastFromEvents(t *testing.T) {
	g := newGame(t,
		"#########",
		"#.oP....#",
		"#.......#",
		"#G.....G#",
		"#########",
	)

	for range 10 {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, "Power-up!", g.Toast())
	assert.Equal(t, 50, g.State().Score)
}

func TestToastsExpire(t *testing.T) {
	g := newGame(t,
		"#####",
		"#P  #",
		"#####",
	)
	g.pushToast("one")
	g.pushToast("two")
	assert.Equal(t, "two", g.Toast())

	for range toastTTL - 1 {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, "two", g.Toast())

	g.Step(core.NewInputFrame())
	assert.Empty(t, g.Toast())
}

func TestToastsFreezeWhilePaused(t *testing.T) {
	g := newGame(t,
		"#####",
		"#P  #",
		"#####",
	)
	g.pushToast("hold")
	g.Step(frame(core.ActionPause))

	for range toastTTL * 2 {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, "hold", g.Toast())
}

func TestRenderDrawsMazeAndHUD(t *testing.T) {
	g := newGame(t,
		"#######",
		"#o P .#",
		"#######",
	)
	screen := core.NewScreen(60, 30)
	g.Render(screen)

	assert.True(t, strings.HasPrefix(screen.Row(0), " MAZE CHASE  Score: 0  Lives: 3  Level: 1"))

	ox := (60 - 7) / 2
	assert.Equal(t, "#######", screen.Row(2)[ox:ox+7])
	assert.Equal(t, glyphPower, screen.Get(ox+1, 3))
	assert.Equal(t, glyphItem, screen.Get(ox+5, 3))
	assert.Equal(t, core.ColorYellow, screen.GetCell(ox+3, 3).Color)
}

func TestRenderMazeIndexesByColumn(t *testing.T) {
	g := newGame(t,
		"é#P..#",
		"######",
	)
	screen := core.NewScreen(60, 30)
	g.Render(screen)

	ox := (60 - 6) / 2
	assert.Equal(t, glyphWall, screen.Get(ox+1, 2))
	assert.Equal(t, glyphWall, screen.Get(ox+5, 2))
	assert.NotEqual(t, glyphWall, screen.Get(ox+2, 2))
}

func TestRenderHunterColours(t *testing.T) {
	g := newGame(t,
		"#########",
		"#P  G G #",
		"#########",
	)
	g.sim.TogglePause()
	screen := core.NewScreen(60, 30)

	g.Render(screen)
	ox := (60 - 9) / 2
	assert.Equal(t, core.Cell{Rune: glyphHunter, Color: core.ColorBrightRed}, screen.GetCell(ox+4, 3))
	assert.Equal(t, core.Cell{Rune: glyphHunter, Color: core.ColorPink}, screen.GetCell(ox+6, 3))
	assert.Contains(t, screen.String(), "Paused")
}

func TestRenderTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10})
	screen := core.NewScreen(20, 10)

	res := g.Step(frame(core.ActionLeft))
	assert.Equal(t, 3, res.State.Lives)
	assert.Equal(t, core.Fixed(0), g.Snapshot().Runner.Sub)

	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")

	g.Resize(80, 40)
	g.Step(core.NewInputFrame())
	assert.NotEqual(t, core.Fixed(0), g.Snapshot().Runner.Sub)
}

func TestRunnerGlyph(t *testing.T) {
	tests := []struct {
		dir  core.Dir
		anim uint64
		want rune
	}{
		{core.DirRight, 0, '>'},
		{core.DirLeft, 3, '<'},
		{core.DirUp, 7, '^'},
		{core.DirDown, 16, 'v'},
		{core.DirLeft, 8, glyphRunnerShut},
		{core.DirNone, 0, glyphRunnerShut},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, runnerGlyph(tt.dir, tt.anim), "%v anim=%d", tt.dir, tt.anim)
	}
}

func TestStateReportsGameOver(t *testing.T) {
	p := engine.DefaultParams()
	p.Lives = 1
	g := New(WithMaze("Test", maze.ParseLines([]string{"#######", "#P G  #", "#######"})), WithParams(p))
	g.Reset(core.RuntimeConfig{ScreenW: 60, ScreenH: 30})

	for range 40 {
		g.Step(core.NewInputFrame())
	}

	st := g.State()
	assert.True(t, st.GameOver)
	assert.False(t, st.Paused)
	assert.Equal(t, 0, st.Lives)
	assert.Equal(t, "Game Over", g.Toast())
}
