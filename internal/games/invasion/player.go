package invasion

import (
	"math"

	"github.com/vovakirdan/tui-invasion/internal/core"
)

// Exhaust fans out below and to the left of the ship.
const (
	exhaustAngle  = 4 * math.Pi / 3
	exhaustSpread = math.Pi / 3
)

// updatePlayer integrates thrust and drag, keeps the ship off the walls,
// fires a latched shot and resolves bomb hits.
func (g *Game) updatePlayer() {
	p := g.player
	cfg := g.cfg.Player

	var ax float64
	if g.input.left {
		ax = -cfg.Accel
	}
	if g.input.right {
		ax = cfg.Accel
	}

	if g.input.fire && g.screen != ScreenGameOver && g.spawnLaser() {
		g.input.fire = false
	}

	ax += p.VelocityX * -cfg.Drag
	vx := p.VelocityX + ax*Dt

	next := p.Rect
	next.X += vx * Dt
	left, right := wallProbes(cfg.WallWidth)
	if next.Overlaps(left) || next.Overlaps(right) {
		p.VelocityX = 0
	} else {
		p.X = next.X
		p.VelocityX = vx
	}

	g.emit(emitter{
		x:       p.X - 3 - p.VelocityX*Dt,
		y:       p.Y + (p.W*0.5 - 3),
		angle:   exhaustAngle,
		spread:  exhaustSpread,
		power:   g.cfg.Particles.ExhaustPower,
		count:   g.cfg.Particles.ExhaustCount,
		carrier: p,
	})

	if g.bomb != nil && p.Overlaps(g.bomb.Rect) {
		g.bomb = nil
		g.blast(p.X, p.Y)
		p.Health--
		g.event(core.EventPlayerHit, "bomb", p.Health)
		if p.Health <= 0 {
			p.Health = 0
			p.Dead = true
			g.gameOver("player destroyed")
		}
	}
}
