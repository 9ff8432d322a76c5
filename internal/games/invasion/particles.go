package invasion

import (
	"math"

	"github.com/samber/lo"
)

// emitter describes a burst of particles. A zero spread emits along angle only.
type emitter struct {
	x, y    float64
	angle   float64
	spread  float64
	power   float64
	count   int
	carrier *Player
}

// emit appends count particles with a random heading in [angle, angle+spread).
func (g *Game) emit(em emitter) {
	for range em.count {
		heading := g.rng.Float64()*em.spread + em.angle
		g.particles = append(g.particles, Particle{
			X:       em.x,
			Y:       em.y,
			VX:      math.Cos(heading) * em.power,
			VY:      math.Sin(heading) * em.power,
			Alpha:   1,
			Fade:    g.cfg.Particles.Fade,
			Carrier: em.carrier,
		})
	}
}

// blast is the full-circle explosion used for kills and hits.
func (g *Game) blast(x, y float64) {
	g.emit(emitter{
		x:      x,
		y:      y,
		spread: 2 * math.Pi,
		power:  g.cfg.Particles.BlastPower,
		count:  g.cfg.Particles.BlastCount,
	})
}

// updateParticles moves and ages every particle, dropping expired ones.
// Displacement grows with age, so fragments burst outward and keep spreading.
// Y is inverted: positive VY moves up the screen.
func (g *Game) updateParticles() {
	lifetime := g.cfg.Particles.Lifetime
	g.particles = lo.Map(g.particles, func(p Particle, _ int) Particle {
		p.Age += Dt
		p.X += p.VX * p.Age * Dt
		if p.Carrier != nil {
			p.X += p.Carrier.VelocityX * Dt
		}
		p.Y -= p.VY * p.Age * Dt
		p.Alpha -= Dt * p.Fade
		return p
	})
	g.particles = lo.Filter(g.particles, func(p Particle, _ int) bool {
		return p.Age < lifetime
	})
}
