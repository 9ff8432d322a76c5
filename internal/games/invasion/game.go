// Package invasion implements a single-screen arcade shooter.
// A ship at the bottom fires lasers at a swarm of enemies that marches
// row by row toward the ground and drops bombs on the ship.
package invasion

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-invasion/internal/config"
	"github.com/vovakirdan/tui-invasion/internal/core"
	"github.com/vovakirdan/tui-invasion/internal/registry"
)

// Screen is the session's current phase.
type Screen int

const (
	ScreenTitle Screen = iota
	ScreenReady
	ScreenPlaying
	ScreenGameOver
)

// String returns the screen name.
func (s Screen) String() string {
	switch s {
	case ScreenTitle:
		return "title"
	case ScreenReady:
		return "ready"
	case ScreenPlaying:
		return "playing"
	case ScreenGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// configPath is the custom config file consulted on Reset.
var configPath string

// SetConfigPath sets a custom config path for games created by the registry.
func SetConfigPath(path string) {
	configPath = path
}

// inputState is the input as the simulation sees it. Fire is latched until
// a shot is actually released; the rest mirror the current frame.
type inputState struct {
	left    bool
	right   bool
	fire    bool
	confirm bool
}

// Game owns one session: the screen machine, the world and the score.
type Game struct {
	cfg         config.InvasionConfig
	fixedConfig bool
	rng         *rand.Rand

	screen Screen
	score  int
	paused bool
	debug  bool
	tick   uint64
	input  inputState
	events []core.Event

	readyCounter    float64
	gameOverCounter float64
	winInterval     float64
	bombInterval    float64

	player    *Player
	enemies   []Enemy
	swarm     *Swarm
	laser     *Laser
	bomb      *Bomb
	particles []Particle
	stars     []Star
}

// New creates a game that loads its tuning from the config search path on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with fixed tuning.
func NewWithConfig(cfg config.InvasionConfig) *Game {
	return &Game{cfg: cfg, fixedConfig: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invasion"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Invasion"
}

// TickRate returns the fixed rate every Step assumes.
func (g *Game) TickRate() int {
	return TickRate
}

// Reset starts a new session on the title screen with a fresh world.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if !g.fixedConfig {
		// LoadInvasion falls back to defaults on error.
		g.cfg, _ = config.LoadInvasion(configPath)
	}
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.score = 0
	g.tick = 0
	g.events = nil
	g.readyCounter = 0
	g.gameOverCounter = 0
	g.startRound()
	g.screen = ScreenTitle
}

// startRound rebuilds the world for a fresh attempt, star field included.
// Score carries over.
func (g *Game) startRound() {
	g.input = inputState{}
	g.paused = false
	g.winInterval = 0
	g.bombInterval = g.cfg.Bomb.InitialCooldown

	g.player = newPlayer(g.cfg.Player)
	g.enemies = newFormation(g.cfg.Swarm)
	g.swarm = NewSwarm(g.cfg.Swarm)
	g.stars = g.newStarField()
	g.laser = nil
	g.bomb = nil
	g.particles = g.particles[:0]
}

// Step advances the session by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.events = nil
	g.latch(in)

	if in.Has(core.ActionDebug) {
		g.debug = !g.debug
	}
	if in.Has(core.ActionPause) && g.screen != ScreenGameOver {
		g.paused = !g.paused
		g.event(core.EventPauseToggled, "", boolValue(g.paused))
	}

	switch g.screen {
	case ScreenTitle:
		if g.input.confirm {
			g.setScreen(ScreenReady)
		}

	case ScreenReady:
		g.readyCounter += Dt
		if g.readyCounter >= g.cfg.Session.ReadySeconds {
			g.readyCounter = 0
			g.startRound()
			g.setScreen(ScreenPlaying)
		}

	case ScreenPlaying, ScreenGameOver:
		if !g.paused {
			g.updateWorld()
		}
		if g.screen == ScreenGameOver {
			g.gameOverCounter += Dt
			if g.gameOverCounter > g.cfg.Session.GameOverSeconds {
				g.setScreen(ScreenReady)
			}
		}
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

// latch folds the frame into the simulation's input state.
func (g *Game) latch(in core.InputFrame) {
	g.input.left = in.Has(core.ActionLeft)
	g.input.right = in.Has(core.ActionRight)
	g.input.confirm = in.Has(core.ActionConfirm)
	if in.Has(core.ActionFire) {
		g.input.fire = true
	}
}

// updateWorld runs one tick of world updates in fixed order.
func (g *Game) updateWorld() {
	if !g.player.Dead {
		g.updatePlayer()
	}

	if len(g.enemies) > 0 {
		g.updateEnemies()
	} else if g.screen == ScreenPlaying {
		if g.winInterval > g.cfg.Session.WinSeconds {
			g.winInterval = 0
			g.setScreen(ScreenReady)
		} else {
			g.winInterval += Dt
		}
	}

	if g.laser != nil {
		g.updateLaser()
	}
	if g.bomb != nil {
		g.updateBomb()
	}
	g.tickBombInterval()
	g.updateParticles()
	g.updateStars()
}

// updateEnemies runs the swarm choreographer and resolves per-enemy bomb
// drops and laser hits. Bomb paths are checked against the full swarm as it
// stood at the start of the tick, including enemies destroyed this tick.
func (g *Game) updateEnemies() {
	if g.swarm.BeginTick(g.enemies, Dt) && g.screen != ScreenGameOver {
		g.event(core.EventSwarmLanded, "", len(g.enemies))
		g.gameOver("swarm landed")
	}

	survivors := make([]Enemy, 0, len(g.enemies))
	for i := range g.enemies {
		e := &g.enemies[i]
		g.swarm.Move(e, Dt)

		if g.screen != ScreenGameOver && g.bombInterval == 0 {
			g.spawnBomb(*e)
		}

		if g.laser != nil && e.Overlaps(g.laser.Rect) {
			g.laser = nil
			g.blast(e.X, e.Y)
			g.score += g.cfg.Session.EnemyPoints
			g.event(core.EventEnemyDestroyed, fmt.Sprintf("%s r%d c%d", e.Kind(), e.Row, e.Col), g.score)
			continue
		}
		survivors = append(survivors, *e)
	}
	g.enemies = survivors

	if len(g.enemies) == 0 {
		g.event(core.EventWaveCleared, "", g.score)
	}
	g.swarm.EndTick(g.enemies, Dt)
}

// gameOver ends the round. The score is forfeited.
func (g *Game) gameOver(reason string) {
	g.score = 0
	g.enterScreen(ScreenGameOver, fmt.Sprintf("%s: %s", ScreenGameOver, reason))
}

func (g *Game) setScreen(s Screen) {
	g.enterScreen(s, s.String())
}

// enterScreen switches screens and resets the game over timer.
// Re-entering the current screen is a no-op.
func (g *Game) enterScreen(s Screen, detail string) {
	if g.screen == s {
		return
	}
	g.screen = s
	g.gameOverCounter = 0
	g.event(core.EventScreenChanged, detail, g.score)
}

func (g *Game) event(kind core.EventKind, detail string, value int) {
	g.events = append(g.events, core.Event{Kind: kind, Tick: g.tick, Detail: detail, Value: value})
}

func boolValue(b bool) int {
	if b {
		return 1
	}
	return 0
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.screen == ScreenGameOver,
		Paused:   g.paused,
	}
}

// Screen returns the session's current phase.
func (g *Game) Screen() Screen {
	return g.screen
}

// Tick returns the number of steps taken since Reset.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Register the game with the registry.
func init() {
	registry.Register("invasion", func() registry.Game {
		return New()
	})
}
