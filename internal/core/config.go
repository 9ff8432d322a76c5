package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
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
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventKind classifies something notable that happened during a tick.
type EventKind int

const (
	EventScreenChanged  EventKind = iota // Session moved to another screen
	EventEnemyDestroyed                  // Laser hit an enemy
	EventPlayerHit                       // Bomb hit the player
	EventBombDropped                     // An enemy released a bomb
	EventSwarmLanded                     // Swarm reached the floor
	EventWaveCleared                     // Last enemy destroyed
	EventPauseToggled                    // Pause flag flipped
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventScreenChanged:
		return "screen_changed"
	case EventEnemyDestroyed:
		return "enemy_destroyed"
	case EventPlayerHit:
		return "player_hit"
	case EventBombDropped:
		return "bomb_dropped"
	case EventSwarmLanded:
		return "swarm_landed"
	case EventWaveCleared:
		return "wave_cleared"
	case EventPauseToggled:
		return "pause_toggled"
	default:
		return "unknown"
	}
}

// Event is emitted by a game during Step. The platform logs events; games
// never depend on anyone consuming them.
type Event struct {
	Kind   EventKind
	Tick   uint64
	Detail string // Free-form context, e.g. the new screen name
	Value  int    // Kind-specific number, e.g. score or remaining health
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
