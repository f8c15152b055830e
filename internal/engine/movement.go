package engine

import (
	"github.com/vovakirdan/maze-chase/internal/core"
)

// passFunc reports whether an agent of some kind may occupy a tile.
type passFunc func(core.Point) bool

// steerFunc picks a new direction for an agent standing on a tile centre.
type steerFunc func(a *Agent) core.Dir

// advance moves an agent by one tick of sub-tile progress.
//
// Direction changes happen only on tile centres, and a direction that would
// enter a blocked tile stops the agent, so an agent never leaves the cells
// its predicate allows. Stopped agents accumulate no progress and stay on
// the centre, ready to turn on the next tick.
func (s *Sim) advance(a *Agent, pass passFunc, steer steerFunc) {
	if a.AtCenter() {
		a.Dir = steer(a)
		if !a.Dir.IsZero() && !pass(a.Tile.Step(a.Dir)) {
			a.Dir = core.DirNone
		}
	}

	if a.Dir.IsZero() {
		a.Sub = 0
		return
	}

	a.Sub += a.Speed
	if a.Sub >= core.FixedOne {
		a.Tile = s.maze.Teleport(a.Tile.Step(a.Dir))
		a.Sub = 0
	}
}

// steerRunner turns toward the latest intent when it is open, and otherwise
// keeps going.
func (s *Sim) steerRunner(a *Agent) core.Dir {
	if !s.intent.IsZero() && s.maze.PassableForRunner(a.Tile.Step(s.intent)) {
		return s.intent
	}
	return a.Dir
}

func (s *Sim) moveRunner() {
	s.advance(&s.runner, s.maze.PassableForRunner, s.steerRunner)
}

func (s *Sim) moveHunters() {
	for i := range s.hunters {
		h := &s.hunters[i]
		s.advance(h, s.maze.PassableForHunter, s.steerHunter)
		if h.IsFrightened() {
			h.Frightened -= s.params.FrightenedDecay
			if h.Frightened < 0 {
				h.Frightened = 0
			}
		}
	}
}
