package shadowflap

// Scoreboard tracks the score of the current level and of the whole session.
type Scoreboard struct {
	level int
	total int
}

// Add awards n points.
func (s *Scoreboard) Add(n int) {
	s.level += n
	s.total += n
}

// Level returns points scored in the current level.
func (s *Scoreboard) Level() int { return s.level }

// Total returns points scored across all levels.
func (s *Scoreboard) Total() int { return s.total }

// ResetLevel starts counting a new level. The total is kept.
func (s *Scoreboard) ResetLevel() { s.level = 0 }
