package engine

import "github.com/vovakirdan/maze-chase/internal/core"

// HunterProfile holds the fixed per-role tuning of one hunter slot.
type HunterProfile struct {
	Role  Role
	Speed core.Fixed // tiles per tick, fixed-point
	Bias  float64    // aggressiveness in (0, 1]
}

// Params are the tunables of a simulation. Hunters are assigned profiles in
// maze spawn scan order.
type Params struct {
	RunnerSpeed core.Fixed
	Hunters     []HunterProfile

	FrightenedBase  core.Fixed // timer set by a power item on level 1
	FrightenedDecay core.Fixed // subtracted from the timer every tick

	BiasWeight  float64 // k in distance*(1 - bias*k)
	AmbushAhead int     // tiles ahead of the runner targeted by Pinky
	ShyRadius   int     // Manhattan radius inside which Clyde retreats

	ItemPoints   int
	PowerPoints  int
	HunterPoints int
	Lives        int
}

// DefaultParams returns the classic tuning.
func DefaultParams() Params {
	return Params{
		RunnerSpeed: 110,
		Hunters: []HunterProfile{
			{Role: RoleBlinky, Speed: 100, Bias: 1.0},
			{Role: RolePinky, Speed: 95, Bias: 0.8},
			{Role: RoleInky, Speed: 92, Bias: 0.6},
			{Role: RoleClyde, Speed: 90, Bias: 0.3},
		},
		FrightenedBase:  core.ToFixed(6),
		FrightenedDecay: 20,
		BiasWeight:      0.15,
		AmbushAhead:     2,
		ShyRadius:       6,
		ItemPoints:      10,
		PowerPoints:     50,
		HunterPoints:    200,
		Lives:           3,
	}
}

// FrightenedDuration returns the timer value set by a power item on the
// given level: the base plus one unit per level after the first.
func (p Params) FrightenedDuration(level int) core.Fixed {
	return p.FrightenedBase + core.ToFixed(level-1)
}

func (p Params) profile(i int) HunterProfile {
	if len(p.Hunters) == 0 {
		return HunterProfile{Role: RoleBlinky, Speed: p.RunnerSpeed, Bias: 1}
	}
	return p.Hunters[i%len(p.Hunters)]
}
