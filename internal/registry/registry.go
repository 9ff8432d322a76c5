// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, so the CLI, the SSH server
// and the replay tools can create a game by ID without importing it directly.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-invasion/internal/core"
)

// Game is a fixed-timestep simulation the platform can drive.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, recording and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "invasion").
	// Used for CLI commands and recording storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new session. The same RuntimeConfig, in particular the
	// same Seed, followed by the same inputs must reproduce the same session.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by exactly one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Hasher is implemented by games that can digest their simulation state.
// Two sessions with equal hashes at the same tick are in the same state,
// which lets replays be verified.
type Hasher interface {
	StateHash() uint64
}

// FixedRate is implemented by games whose step length is built into their
// physics. Such a game only runs correctly at its own tick rate.
type FixedRate interface {
	TickRate() int
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
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
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

// CheckTickRate reports whether game id can run at rate ticks per second.
func CheckTickRate(id string, rate int) error {
	if rate <= 0 {
		return fmt.Errorf("registry: tick rate must be positive, got %d", rate)
	}

	g, err := Create(id)
	if err != nil {
		return err
	}
	if fr, ok := g.(FixedRate); ok && fr.TickRate() != rate {
		return fmt.Errorf("registry: game %q runs at %d ticks per second, got %d", id, fr.TickRate(), rate)
	}
	return nil
}
