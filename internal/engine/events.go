package engine

import (
	"fmt"

	"github.com/vovakirdan/maze-chase/internal/core"
)

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventItemEaten EventKind = iota
	EventPowerActivated
	EventHunterCaught
	EventLifeLost
	EventLevelAdvanced
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventItemEaten:
		return "item_eaten"
	case EventPowerActivated:
		return "power_activated"
	case EventHunterCaught:
		return "hunter_caught"
	case EventLifeLost:
		return "life_lost"
	case EventLevelAdvanced:
		return "level_advanced"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted by collision resolution so hosts can show feedback
// without inspecting state diffs.
type Event struct {
	Kind   EventKind
	Pos    core.Point
	Points int  // score awarded, if any
	Role   Role // EventHunterCaught, EventLifeLost
	Level  int  // EventLevelAdvanced
}

// Message returns a short human-readable description.
func (e Event) Message() string {
	switch e.Kind {
	case EventPowerActivated:
		return "Power-up!"
	case EventHunterCaught:
		return fmt.Sprintf("%s caught! +%d", e.Role, e.Points)
	case EventLifeLost:
		return "Ouch! -1 life"
	case EventLevelAdvanced:
		return fmt.Sprintf("Level %d", e.Level)
	case EventGameOver:
		return "Game Over"
	default:
		return ""
	}
}

// TickResult is returned by Sim.Tick.
type TickResult struct {
	State  State
	Events []Event
}
