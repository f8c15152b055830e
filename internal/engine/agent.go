package engine

import (
	"strings"

	"github.com/vovakirdan/maze-chase/internal/core"
)

// Kind discriminates the runner from hunters. Movement is shared; targeting,
// eating and passability differ by kind.
type Kind int

const (
	KindRunner Kind = iota
	KindHunter
)

func (k Kind) String() string {
	if k == KindRunner {
		return "runner"
	}
	return "hunter"
}

// Role selects a hunter's targeting policy.
type Role int

const (
	RoleBlinky Role = iota // chases the runner's tile
	RolePinky              // ambushes ahead of the runner
	RoleInky               // flanks from Blinky's side
	RoleClyde              // chases from afar, retreats up close
)

// String returns the role's name.
func (r Role) String() string {
	switch r {
	case RoleBlinky:
		return "Blinky"
	case RolePinky:
		return "Pinky"
	case RoleInky:
		return "Inky"
	case RoleClyde:
		return "Clyde"
	default:
		return "Unknown"
	}
}

// ParseRole maps a case-insensitive role name to a Role.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(s) {
	case "blinky":
		return RoleBlinky, true
	case "pinky":
		return RolePinky, true
	case "inky":
		return RoleInky, true
	case "clyde":
		return RoleClyde, true
	default:
		return RoleBlinky, false
	}
}

// Agent is the shared shape of the runner and the hunters.
type Agent struct {
	Kind Kind
	Role Role // hunters only

	Tile  core.Point
	Sub   core.Fixed // progress toward Tile+Dir, in [0, FixedOne)
	Dir   core.Dir
	Speed core.Fixed
	Bias  float64 // hunters only

	Frightened core.Fixed // hunters only; > 0 means Frightened
	Spawn      core.Point
}

// IsFrightened reports whether a hunter is in Frightened mode.
func (a *Agent) IsFrightened() bool {
	return a.Frightened.Positive()
}

// AtCenter reports whether the agent sits exactly on its tile centre and may
// change direction.
func (a *Agent) AtCenter() bool {
	return a.Sub <= 0
}

func (a *Agent) resetToSpawn(dir core.Dir) {
	a.Tile = a.Spawn
	a.Sub = 0
	a.Dir = dir
	a.Frightened = 0
}
