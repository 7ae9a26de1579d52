// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/folio-arcade/internal/core"
)

// Game is the control surface every engine exposes to the platform.
// Engines contain pure logic with no Bubble Tea dependency; the platform
// owns scheduling, input mapping and rendering.
type Game interface {
	// ID returns a unique identifier used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset discards the session and returns to NotStarted with score 0.
	Reset(cfg core.RuntimeConfig)

	// Start moves a fresh session to Running.
	Start()

	// TogglePause flips between Running and Paused; otherwise a no-op.
	TogglePause()

	// Apply feeds a player intent. Rejected intents are silently ignored.
	Apply(a core.Action)

	// Render draws the current state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the summary the platform reads after every event.
	State() core.GameState
}

// Ticked is implemented by fixed-tick engines.
type Ticked interface {
	// Tick advances the simulation by one step. No-op unless Running.
	Tick()

	// Interval is the current step period. The platform reschedules its
	// timer whenever this changes.
	Interval() time.Duration
}

// Framed is implemented by continuous engines.
type Framed interface {
	// Advance integrates the simulation over dt. No-op unless Running.
	Advance(dt time.Duration)
}

// Pointer is implemented by engines that accept mouse input. Coordinates
// are screen cells of the last rendered frame.
type Pointer interface {
	Point(x, y int, click bool)
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
// Typically called from a game's init() function.
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
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
