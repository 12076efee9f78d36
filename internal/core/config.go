package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Score accumulated over the whole session
	Level    int  // Zero-based index of the level being played
	GameOver bool // Whether the session has ended (lost or won)
	Won      bool // Whether the session ended by clearing the final level
	Paused   bool // Whether the game is paused
}

// Outcome returns a short label for a finished session.
func (s GameState) Outcome() string {
	switch {
	case !s.GameOver:
		return "playing"
	case s.Won:
		return "won"
	default:
		return "lost"
	}
}

// Event is a notable thing that happened during a tick.
// The platform uses events for logging and metrics only.
type Event int

const (
	EventNone Event = iota
	EventStarted
	EventLifeLost
	EventLevelUp
	EventLost
	EventWon
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventStarted:
		return "started"
	case EventLifeLost:
		return "life_lost"
	case EventLevelUp:
		return "level_up"
	case EventLost:
		return "lost"
	case EventWon:
		return "won"
	default:
		return "none"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the given event occurred during the tick.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
