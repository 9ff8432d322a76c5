package invasion

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-invasion/internal/core"
)

// spawnLaser fires from just above the ship's nose.
// Returns false if a laser is already in flight.
func (g *Game) spawnLaser() bool {
	if g.laser != nil {
		return false
	}
	cfg := g.cfg.Laser
	g.laser = &Laser{
		Rect:      core.NewRect(g.player.X-2, g.player.Y-8, cfg.Width, cfg.Height),
		VelocityY: -cfg.Speed,
	}
	return true
}

func (g *Game) updateLaser() {
	g.laser.Y += g.laser.VelocityY * Dt
	if g.laser.Y < 0 {
		g.laser = nil
	}
}

// bombPath is the column below e that a dropped bomb would fall through.
func bombPath(e Enemy) core.Rect {
	return core.Rect{
		X: e.X,
		Y: e.Y + (ScreenHeight-e.Y)*0.5 + e.W,
		W: e.W * 0.5,
		H: ScreenHeight - e.Y,
	}
}

// bombPathClear reports whether path is free of enemies and ends on the player.
func (g *Game) bombPathClear(path core.Rect) bool {
	for _, other := range g.enemies {
		if path.Overlaps(other.Rect) {
			return false
		}
	}
	return path.Overlaps(g.player.Rect)
}

// spawnBomb drops a bomb below e if nothing blocks its fall and it would
// land on the player. Returns false if no bomb was dropped.
func (g *Game) spawnBomb(e Enemy) bool {
	if g.bomb != nil || !g.bombPathClear(bombPath(e)) {
		return false
	}
	cfg := g.cfg.Bomb
	g.bomb = &Bomb{Rect: core.NewRect(e.X, e.Y+e.W*0.5, cfg.Size, cfg.Size)}
	g.bombInterval = cfg.Cooldown
	g.event(core.EventBombDropped, fmt.Sprintf("%s r%d c%d", e.Kind(), e.Row, e.Col), 0)
	return true
}

// updateBomb accelerates the bomb by a base gravity plus its own speed,
// so it keeps speeding up the longer it falls. Positions snap to whole pixels.
func (g *Game) updateBomb() {
	b := g.bomb
	cfg := g.cfg.Bomb

	accel := cfg.Gravity + b.VelocityY
	b.VelocityY += accel * Dt
	b.Y += math.Round(b.VelocityY * Dt)

	g.emit(emitter{
		x:      b.X - (b.W*0.5 - 1),
		y:      b.Y,
		spread: 2 * math.Pi,
		power:  cfg.TrailPower,
		count:  cfg.TrailParticles,
	})

	if b.Y > ScreenHeight {
		g.bomb = nil
	}
}

// tickBombInterval counts the drop cooldown down to exactly zero.
func (g *Game) tickBombInterval() {
	if g.bombInterval > 0 {
		g.bombInterval -= Dt
	} else {
		g.bombInterval = 0
	}
}
