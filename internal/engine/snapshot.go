package engine

import (
	"fmt"

	"github.com/vovakirdan/maze-chase/internal/core"
	"github.com/vovakirdan/maze-chase/internal/maze"
)

// AgentView is a read-only copy of an agent for renderers.
type AgentView struct {
	Kind       Kind
	Role       Role
	Tile       core.Point
	Dir        core.Dir
	Sub        core.Fixed
	Frightened bool
	Timer      core.Fixed
}

// Interpolated returns the cosmetic position Tile + Sub*Dir.
func (v AgentView) Interpolated() (x, y float64) {
	f := v.Sub.Float()
	return float64(v.Tile.X) + f*float64(v.Dir.X), float64(v.Tile.Y) + f*float64(v.Dir.Y)
}

func viewOf(a *Agent) AgentView {
	return AgentView{
		Kind:       a.Kind,
		Role:       a.Role,
		Tile:       a.Tile,
		Dir:        a.Dir,
		Sub:        a.Sub,
		Frightened: a.IsFrightened(),
		Timer:      a.Frightened,
	}
}

// Snapshot captures everything a renderer needs after a tick.
type Snapshot struct {
	Tick    uint64
	Anim    uint64 // animation phase; advances only while playing
	Width   int
	Height  int
	Rows    []string
	Items   []maze.Item
	Runner  AgentView
	Hunters []AgentView
	State   State
	Phase   Phase
}

// Snapshot returns a copy of the current simulation state.
func (s *Sim) Snapshot() Snapshot {
	items := make([]maze.Item, len(s.items))
	copy(items, s.items)

	hunters := make([]AgentView, len(s.hunters))
	for i := range s.hunters {
		hunters[i] = viewOf(&s.hunters[i])
	}

	return Snapshot{
		Tick:    s.tick,
		Anim:    s.anim,
		Width:   s.maze.Width(),
		Height:  s.maze.Height(),
		Rows:    s.maze.Rows(),
		Items:   items,
		Runner:  viewOf(&s.runner),
		Hunters: hunters,
		State:   s.state,
		Phase:   s.state.Phase(),
	}
}

// RemainingItems counts the items not yet eaten on this level.
func (snap Snapshot) RemainingItems() int {
	n := 0
	for _, it := range snap.Items {
		if !it.Eaten {
			n++
		}
	}
	return n
}

// HUD is the read-only view for score displays.
type HUD struct {
	Score int
	Lives int
	Level int
}

// String formats the HUD line.
func (h HUD) String() string {
	return fmt.Sprintf("Score: %d  Lives: %d  Level: %d", h.Score, h.Lives, h.Level)
}

// HUD returns score, lives and level.
func (s *Sim) HUD() HUD {
	return HUD{Score: s.state.Score, Lives: s.state.Lives, Level: s.state.Level}
}
