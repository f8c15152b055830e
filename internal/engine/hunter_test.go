package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/maze-chase/internal/core"
)

var pen = []string{
	"#########",
	"#P      #",
	"#       #",
	"# GGGG  #",
	"#       #",
	"#       #",
	"#########",
}

func TestHunterRolesFollowSpawnOrder(t *testing.T) {
	s := newSim(t, pen)
	require.Len(t, s.hunters, 4)

	assert.Equal(t, RoleBlinky, s.hunters[0].Role)
	assert.Equal(t, RolePinky, s.hunters[1].Role)
	assert.Equal(t, RoleInky, s.hunters[2].Role)
	assert.Equal(t, RoleClyde, s.hunters[3].Role)
	assert.Equal(t, core.Fixed(100), s.hunters[0].Speed)
	assert.Equal(t, core.Fixed(90), s.hunters[3].Speed)
}

func TestHunterTargets(t *testing.T) {
	s := newSim(t, pen)
	s.runner.Tile = core.P(5, 4)
	s.runner.Dir = core.DirLeft
	s.hunters[0].Tile = core.P(1, 2)

	assert.Equal(t, core.P(5, 4), s.target(&s.hunters[0]), "blinky chases")
	assert.Equal(t, core.P(3, 4), s.target(&s.hunters[1]), "pinky ambushes")
	assert.Equal(t, core.P(3, 3), s.target(&s.hunters[2]), "inky uses blinky")
	assert.Equal(t, core.P(1, 5), s.target(&s.hunters[3]), "clyde retreats")
}

func TestClydeChasesWhenFar(t *testing.T) {
	p := DefaultParams()
	p.ShyRadius = 1
	s := newSim(t, pen, WithParams(p))
	s.runner.Tile = core.P(5, 4)

	assert.Equal(t, core.P(5, 4), s.target(&s.hunters[3]))
}

func TestInkyWithoutBlinkyUsesItself(t *testing.T) {
	s := newSim(t, pen)
	s.hunters[0].Role = RolePinky
	s.runner.Tile = core.P(7, 5)
	inky := &s.hunters[2] // (4,3)

	assert.Same(t, inky, s.leader(inky))
	assert.Equal(t, inky.Tile.Midpoint(s.runner.Tile), s.target(inky))
}

func TestAllowedDirsExcludeReverse(t *testing.T) {
	s := newSim(t, pen)
	h := &s.hunters[1]
	h.Tile = core.P(3, 2)
	h.Dir = core.DirRight

	assert.Equal(t, []core.Dir{core.DirRight, core.DirDown, core.DirUp}, s.allowedDirs(h))

	h.Dir = core.DirNone
	assert.Equal(t, []core.Dir{core.DirRight, core.DirLeft, core.DirDown, core.DirUp}, s.allowedDirs(h))
}

func TestAllowedDirsDeadEndReverses(t *testing.T) {
	s := newSim(t, []string{
		"#####",
		"#G  #",
		"#####",
	})
	h := &s.hunters[0]
	h.Dir = core.DirLeft

	assert.Equal(t, []core.Dir{core.DirRight}, s.allowedDirs(h))
}

func TestSteerHunterTieBreak(t *testing.T) {
	s := newSim(t, pen)
	h := &s.hunters[0]
	h.Tile = core.P(3, 2)
	s.runner.Tile = h.Tile

	// Every neighbour is one tile away; enumeration order decides.
	assert.Equal(t, core.DirRight, s.steerHunter(h))

	s.runner.Tile = core.P(3, 1)
	assert.Equal(t, core.DirUp, s.steerHunter(h))

	s.runner.Tile = core.P(1, 2)
	assert.Equal(t, core.DirLeft, s.steerHunter(h))
}

func TestSteerHunterBoxedIn(t *testing.T) {
	s := newSim(t, []string{
		"###",
		"#G#",
		"###",
	})
	assert.True(t, s.steerHunter(&s.hunters[0]).IsZero())
}

func TestFrightenedHunterWandersDeterministically(t *testing.T) {
	draw := func(seed int64) []core.Dir {
		s := newSim(t, pen, WithRand(rand.New(rand.NewSource(seed))))
		h := &s.hunters[0]
		h.Tile = core.P(3, 2)
		h.Frightened = core.ToFixed(5)

		out := make([]core.Dir, 0, 64)
		for range 64 {
			out = append(out, s.steerHunter(h))
		}
		return out
	}

	a, b := draw(3), draw(3)
	assert.Equal(t, a, b)

	seen := map[core.Dir]bool{}
	for _, d := range a {
		assert.Contains(t, core.Axes[:], d)
		seen[d] = true
	}
	assert.Greater(t, len(seen), 1)
}
