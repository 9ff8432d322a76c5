package invasion

import (
	"github.com/vovakirdan/tui-invasion/internal/config"
	"github.com/vovakirdan/tui-invasion/internal/core"
)

// Logical playfield size in pixels. Fixed; the renderer scales it to the terminal.
const (
	ScreenWidth  = 512
	ScreenHeight = 448
)

// TickRate is the only rate the simulation runs at, in ticks per second.
const TickRate = 60

// Dt is the fixed simulation step in seconds.
const Dt = 1.0 / TickRate

// Player is the ship at the bottom of the screen.
type Player struct {
	core.Rect
	VelocityX float64
	Health    int
	Dead      bool
}

// newPlayer places a fresh ship centered two ship-heights above the bottom edge.
func newPlayer(cfg config.PlayerConfig) *Player {
	return &Player{
		Rect:   core.NewRect(ScreenWidth*0.5, ScreenHeight-cfg.Size*2, cfg.Size, cfg.Size),
		Health: cfg.Health,
	}
}

// EnemyKind selects an enemy's sprite. Purely cosmetic.
type EnemyKind int

const (
	KindHorse EnemyKind = iota
	KindPig
	KindDeer
	KindWolf
	KindBird
	kindCount
)

// String returns the name of the enemy kind.
func (k EnemyKind) String() string {
	switch k {
	case KindHorse:
		return "horse"
	case KindPig:
		return "pig"
	case KindDeer:
		return "deer"
	case KindWolf:
		return "wolf"
	case KindBird:
		return "bird"
	default:
		return "?"
	}
}

// Enemy is one member of the swarm. Row and Col are assigned at spawn and
// never renumbered, even after a whole row has been destroyed.
type Enemy struct {
	core.Rect
	Row int
	Col int
}

// Kind maps the enemy's row to its sprite.
func (e Enemy) Kind() EnemyKind {
	return EnemyKind(e.Row % int(kindCount))
}

// newFormation lays out the full swarm, row-major from the top-left.
func newFormation(cfg config.SwarmConfig) []Enemy {
	enemies := make([]Enemy, 0, cfg.Rows*cfg.Cols)
	for row := range cfg.Rows {
		for col := range cfg.Cols {
			enemies = append(enemies, Enemy{
				Rect: core.NewRect(
					float64(col)*cfg.Spacing+cfg.EnemySize,
					float64(row)*cfg.Spacing+cfg.EnemySize+cfg.TopBuffer,
					cfg.EnemySize,
					cfg.EnemySize,
				),
				Row: row,
				Col: col,
			})
		}
	}
	return enemies
}

// Laser is the player's projectile. At most one exists at a time.
type Laser struct {
	core.Rect
	VelocityY float64
}

// Bomb is an enemy projectile. At most one exists at a time.
type Bomb struct {
	core.Rect
	VelocityY float64
}

// Particle is a short-lived blast fragment.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Age    float64 // Seconds since spawn
	Alpha  float64 // 1 at spawn, fades linearly
	Fade   float64 // Alpha lost per second

	// Carrier, when set, drags the particle along with its horizontal velocity.
	Carrier *Player
}

// Star is a background star.
type Star struct {
	X, Y float64
}
