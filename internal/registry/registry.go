// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/shadowflap/internal/core"
)

// Game is the interface the platform drives once per simulation tick.
// Implementations contain pure logic with no Bubble Tea, storage or network
// dependencies; the platform handles input mapping, timing and rendering.
type Game interface {
	// ID returns a unique identifier (e.g. "shadowflap"), used by the CLI
	// and as the leaderboard key.
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Reset starts a fresh session. Called once at start and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current session state.
	State() core.GameState
}

// Configurable is implemented by games that accept an external config file.
// The platform calls LoadConfig before the first Reset.
type Configurable interface {
	LoadConfig(path string) error
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// CreateConfigured instantiates a game and lets it load its config.
// Configurable games search their default locations when path is empty.
// Games that are not Configurable reject a non-empty path.
func CreateConfigured(id, path string) (Game, error) {
	g, err := Create(id)
	if err != nil {
		return nil, err
	}

	c, ok := g.(Configurable)
	if !ok {
		if path != "" {
			return nil, fmt.Errorf("registry: game %q does not accept a config file", id)
		}
		return g, nil
	}
	if err := c.LoadConfig(path); err != nil {
		return nil, fmt.Errorf("registry: configure %q: %w", id, err)
	}
	return g, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
