package engine

import "github.com/vovakirdan/maze-chase/internal/core"

// collide resolves item pickup first, then hunter contact.
func (s *Sim) collide() {
	s.pickup()
	s.contact()
}

func (s *Sim) pickup() {
	tile := s.runner.Tile
	idx := -1
	for i := range s.items {
		if !s.items[i].Eaten && s.items[i].X == tile.X && s.items[i].Y == tile.Y {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	it := &s.items[idx]
	it.Eaten = true

	points := s.params.ItemPoints
	if it.Power {
		points = s.params.PowerPoints
	}
	s.state.Score += points
	s.emit(Event{Kind: EventItemEaten, Pos: tile, Points: points})

	if it.Power {
		d := s.params.FrightenedDuration(s.state.Level)
		for i := range s.hunters {
			s.hunters[i].Frightened = d
		}
		s.emit(Event{Kind: EventPowerActivated, Pos: tile})
	}

	if s.allEaten() {
		s.state.Level++
		s.resetItems()
		s.reposition()
		s.logger.Info("level cleared", "level", s.state.Level, "score", s.state.Score)
		s.emit(Event{Kind: EventLevelAdvanced, Level: s.state.Level})
	}
}

func (s *Sim) allEaten() bool {
	if len(s.items) == 0 {
		return false
	}
	for _, it := range s.items {
		if !it.Eaten {
			return false
		}
	}
	return true
}

// contact handles the first hunter sharing the runner's tile.
func (s *Sim) contact() {
	for i := range s.hunters {
		h := &s.hunters[i]
		if h.Tile != s.runner.Tile {
			continue
		}

		if h.IsFrightened() {
			s.state.Score += s.params.HunterPoints
			s.emit(Event{Kind: EventHunterCaught, Pos: h.Tile, Points: s.params.HunterPoints, Role: h.Role})
			h.resetToSpawn(core.DirNone)
			s.logger.Debug("hunter caught", "role", h.Role, "score", s.state.Score)
			return
		}

		pos := h.Tile
		if s.state.loseLife() {
			s.emit(Event{Kind: EventLifeLost, Pos: pos, Role: h.Role})
			s.emit(Event{Kind: EventGameOver})
			s.logger.Info("game over", "score", s.state.Score, "level", s.state.Level)
			return
		}
		s.emit(Event{Kind: EventLifeLost, Pos: pos, Role: h.Role})
		s.logger.Debug("life lost", "by", h.Role, "lives", s.state.Lives)
		s.reposition()
		return
	}
}
