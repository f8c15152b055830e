package engine

import (
	"github.com/vovakirdan/maze-chase/internal/core"
)

// allowedDirs returns the axis directions a hunter may take from its tile, in
// enumeration order. Reversing is only allowed when nothing else is open.
func (s *Sim) allowedDirs(h *Agent) []core.Dir {
	reverse := h.Dir.Reverse()
	dirs := make([]core.Dir, 0, len(core.Axes))
	reverseOpen := false

	for _, d := range core.Axes {
		if !s.maze.PassableForHunter(h.Tile.Step(d)) {
			continue
		}
		if !h.Dir.IsZero() && d == reverse {
			reverseOpen = true
			continue
		}
		dirs = append(dirs, d)
	}

	if len(dirs) == 0 && reverseOpen {
		dirs = append(dirs, reverse)
	}
	return dirs
}

// steerHunter is the HunterAI: a random walk while frightened, greedy
// pursuit of the role's target otherwise.
func (s *Sim) steerHunter(h *Agent) core.Dir {
	dirs := s.allowedDirs(h)
	if len(dirs) == 0 {
		return core.DirNone
	}

	if h.IsFrightened() {
		return dirs[s.rng.Intn(len(dirs))]
	}

	target := s.target(h)
	weight := 1 - h.Bias*s.params.BiasWeight

	best := dirs[0]
	bestScore := 0.0
	for i, d := range dirs {
		score := h.Tile.Step(d).Distance(target) * weight
		if i == 0 || score < bestScore {
			best, bestScore = d, score
		}
	}
	return best
}

// target returns the chase target tile for a hunter's role.
func (s *Sim) target(h *Agent) core.Point {
	runner := s.runner.Tile

	switch h.Role {
	case RolePinky:
		return runner.Offset(s.runner.Dir, s.params.AmbushAhead)
	case RoleInky:
		return s.leader(h).Tile.Midpoint(runner)
	case RoleClyde:
		if h.Tile.Manhattan(runner) < s.params.ShyRadius {
			return s.retreatCorner()
		}
		return runner
	default:
		return runner
	}
}

// leader returns the first Blinky-role hunter, or h itself when there is none.
func (s *Sim) leader(h *Agent) *Agent {
	for i := range s.hunters {
		if s.hunters[i].Role == RoleBlinky {
			return &s.hunters[i]
		}
	}
	return h
}

// retreatCorner is the bottom-left inner corner of the maze.
func (s *Sim) retreatCorner() core.Point {
	return core.Point{X: 1, Y: s.maze.Height() - 2}
}
