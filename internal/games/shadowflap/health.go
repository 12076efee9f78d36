package shadowflap

// Health is the flyer's life counter. Capacity grows with the level.
type Health struct {
	lives    int
	capacity int
	base     int
	level    int
}

// NewHealth returns a full life counter for the first level.
func NewHealth(base int) *Health {
	return &Health{lives: base, capacity: base, base: base}
}

func (h *Health) Lives() int    { return h.lives }
func (h *Health) Capacity() int { return h.capacity }

// LoseLife removes one life. Lives never go below zero.
func (h *Health) LoseLife() {
	if h.lives > 0 {
		h.lives--
	}
}

// Exhausted reports whether no lives remain.
func (h *Health) Exhausted() bool {
	return h.lives <= 0
}

// LevelUp refills and enlarges the counter to base*(level+1).
func (h *Health) LevelUp() {
	h.level++
	h.capacity = h.base * (h.level + 1)
	h.lives = h.capacity
}
