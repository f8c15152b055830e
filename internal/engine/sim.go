// Package engine is the maze-chase simulation: sub-tile movement, hunter
// targeting, collision and scoring, and the game state machine.
//
// All mutable state lives in a Sim owned by the caller. A Sim is not safe for
// concurrent use; hosts call Tick, the input commands and Snapshot from a
// single goroutine.
package engine

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/maze"
)

// Sim is the simulation context.
type Sim struct {
	maze   *maze.Maze
	params Params
	rng    *rand.Rand
	logger *log.Logger

	items   []maze.Item
	runner  Agent
	hunters []Agent
	state   State
	intent  core.Dir

	tick   uint64 // every Tick call
	anim   uint64 // ticks spent playing, drives animation phase
	events []Event
}

// Option configures a Sim.
type Option func(*Sim)

// WithParams overrides the default tuning.
func WithParams(p Params) Option {
	return func(s *Sim) { s.params = p }
}

// WithSeed seeds the RNG used by frightened hunters.
func WithSeed(seed int64) Option {
	return func(s *Sim) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand injects the RNG used by frightened hunters.
func WithRand(r *rand.Rand) Option {
	return func(s *Sim) { s.rng = r }
}

// WithLogger sets the logger for gameplay milestones.
func WithLogger(l *log.Logger) Option {
	return func(s *Sim) { s.logger = l }
}

// New creates a simulation on the given maze in the initial Playing state.
func New(m *maze.Maze, opts ...Option) *Sim {
	s := &Sim{
		maze:   m,
		params: DefaultParams(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(0))
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	s.runner = Agent{
		Kind:  KindRunner,
		Spawn: m.RunnerSpawn(),
		Speed: s.params.RunnerSpeed,
	}
	for i, sp := range m.HunterSpawns() {
		prof := s.params.profile(i)
		s.hunters = append(s.hunters, Agent{
			Kind:  KindHunter,
			Role:  prof.Role,
			Speed: prof.Speed,
			Bias:  prof.Bias,
			Spawn: sp,
		})
	}

	s.Restart()
	return s
}

// Maze returns the static maze the simulation runs on.
func (s *Sim) Maze() *maze.Maze {
	return s.maze
}

// State returns the current game state.
func (s *Sim) State() State {
	return s.state
}

// SetIntent records the player's latest steering request. It is read, not
// consumed, on every tick. When both axes are non-zero the horizontal one wins.
func (s *Sim) SetIntent(dx, dy int) {
	s.intent = core.NormalizeDir(dx, dy)
}

// Intent returns the latest steering request.
func (s *Sim) Intent() core.Dir {
	return s.intent
}

// TogglePause flips between Playing and Paused. It does nothing after game over.
func (s *Sim) TogglePause() {
	s.state.togglePause()
}

// Restart reinitialises score, lives and level, restores every item and
// sends all agents back to spawn. It works from any state.
func (s *Sim) Restart() {
	s.state = newState(s.params.Lives)
	s.intent = core.DirNone
	s.anim = 0
	s.resetItems()
	s.reposition()
}

// Tick advances the simulation by one fixed step. Nothing moves while paused
// or after game over.
func (s *Sim) Tick() TickResult {
	s.tick++
	s.events = nil

	if s.state.Running() {
		s.moveRunner()
		s.moveHunters()
		s.collide()
		s.anim++
	}

	return TickResult{State: s.state, Events: s.events}
}

func (s *Sim) emit(e Event) {
	s.events = append(s.events, e)
}

func (s *Sim) resetItems() {
	s.items = s.maze.Items()
}

// reposition sends the runner (facing left) and every hunter (stopped, calm)
// back to their spawns. Hunters pick a direction at their next tile centre.
func (s *Sim) reposition() {
	s.runner.resetToSpawn(core.DirLeft)
	for i := range s.hunters {
		s.hunters[i].resetToSpawn(core.DirNone)
	}
}
