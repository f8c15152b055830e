package engine

// Phase is the coarse game state derived from the State flags.
type Phase int

const (
	PhasePlaying Phase = iota
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// State holds score, lives, level and the run flags.
// Over is terminal until Restart; Paused is only meaningful while !Over.
type State struct {
	Score  int
	Lives  int
	Level  int
	Paused bool
	Over   bool
}

func newState(lives int) State {
	return State{Lives: lives, Level: 1}
}

// Phase returns the state machine position.
func (s State) Phase() Phase {
	switch {
	case s.Over:
		return PhaseGameOver
	case s.Paused:
		return PhasePaused
	default:
		return PhasePlaying
	}
}

// Running reports whether ticks advance the simulation.
func (s State) Running() bool {
	return s.Phase() == PhasePlaying
}

func (s *State) togglePause() {
	if s.Over {
		return
	}
	s.Paused = !s.Paused
}

// loseLife decrements lives and reports whether the game just ended.
func (s *State) loseLife() bool {
	s.Lives--
	if s.Lives <= 0 {
		s.Lives = 0
		s.Over = true
		s.Paused = true
		return true
	}
	return false
}
