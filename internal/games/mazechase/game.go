// Package mazechase adapts the engine simulation to the platform's
// Reset/Step/Render game contract.
package mazechase

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/engine"
	"github.com/vovakirdan/maze-chase/internal/maze"
)

const (
	hudHeight = 2  // HUD line and separator
	toastTTL  = 90 // ~1.5 seconds at 60 FPS
	maxToasts = 3
)

// toast is a short message shown under the maze after a tick event.
type toast struct {
	text string
	ttl  int
}

// Game implements the maze-chase game for the terminal host.
type Game struct {
	mazeName string
	maze     *maze.Maze
	params   engine.Params
	logger   *log.Logger

	sim  *engine.Sim
	tick uint64

	screenW  int
	screenH  int
	offsetX  int
	offsetY  int
	tooSmall bool

	toasts []toast
}

// Option configures a Game.
type Option func(*Game)

// WithMaze selects the layout. The default is the built-in fallback maze.
func WithMaze(name string, m *maze.Maze) Option {
	return func(g *Game) {
		g.mazeName = name
		g.maze = m
	}
}

// WithParams overrides the engine tuning.
func WithParams(p engine.Params) Option {
	return func(g *Game) { g.params = p }
}

// WithLogger passes a logger down to the simulation.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// New creates a game. Call Reset before stepping it.
func New(opts ...Option) *Game {
	g := &Game{
		mazeName: "Classic",
		params:   engine.DefaultParams(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.maze == nil {
		g.maze = maze.Fallback()
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "mazechase"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Maze Chase: " + g.mazeName
}

// Reset initializes/restarts the game with a fresh simulation.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.sim = engine.New(g.maze,
		engine.WithParams(g.params),
		engine.WithSeed(cfg.Seed),
		engine.WithLogger(g.logger),
	)
	g.tick = 0
	g.toasts = nil
	g.resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts the layout to a new screen size.
func (g *Game) Resize(w, h int) {
	g.resize(w, h)
}

func (g *Game) resize(w, h int) {
	g.screenW = w
	g.screenH = h

	mw, mh := g.maze.Width(), g.maze.Height()
	requiredW := mw
	requiredH := mh + hudHeight + 1 // toast line
	g.tooSmall = w < requiredW || h < requiredH

	g.offsetX = (w - mw) / 2
	g.offsetY = hudHeight
}

// Step applies one frame of input and advances the simulation by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) {
		g.sim.Restart()
		g.toasts = nil
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.sim.TogglePause()
	}

	if dir, ok := input.Steering(); ok {
		g.sim.SetIntent(dir.X, dir.Y)
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	res := g.sim.Tick()
	g.ageToasts()
	for _, e := range res.Events {
		if msg := e.Message(); msg != "" {
			g.pushToast(msg)
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) pushToast(text string) {
	g.toasts = append(g.toasts, toast{text: text, ttl: toastTTL})
	if len(g.toasts) > maxToasts {
		g.toasts = g.toasts[len(g.toasts)-maxToasts:]
	}
}

// ageToasts expires messages; they freeze while the game is paused.
func (g *Game) ageToasts() {
	if !g.sim.State().Running() {
		return
	}
	kept := g.toasts[:0]
	for _, t := range g.toasts {
		t.ttl--
		if t.ttl > 0 {
			kept = append(kept, t)
		}
	}
	g.toasts = kept
}

// Toast returns the newest visible message, or "".
func (g *Game) Toast() string {
	if len(g.toasts) == 0 {
		return ""
	}
	return g.toasts[len(g.toasts)-1].text
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.sim.State()
	return core.GameState{
		Score:    st.Score,
		Lives:    st.Lives,
		Level:    st.Level,
		GameOver: st.Over,
		Paused:   st.Paused && !st.Over,
	}
}

// Snapshot exposes the simulation snapshot for hosts and tests.
func (g *Game) Snapshot() engine.Snapshot {
	return g.sim.Snapshot()
}

// HUD returns the score line of the simulation.
func (g *Game) HUD() engine.HUD {
	return g.sim.HUD()
}
