package invasion

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// World is a read-only copy of everything a renderer needs for one frame.
type World struct {
	Tick   uint64
	Screen Screen
	Score  int
	Paused bool
	Debug  bool

	Player    Player
	Enemies   []Enemy
	Laser     *Laser // nil when no laser is in flight
	Bomb      *Bomb  // nil when no bomb is falling
	Particles []Particle
	Stars     []Star

	Swarm        Swarm
	BombInterval float64
	ReadyLeft    float64 // Seconds until play resumes, only meaningful on ScreenReady
	MaxHealth    int
}

// World copies the current session state.
func (g *Game) World() World {
	w := World{
		Tick:         g.tick,
		Screen:       g.screen,
		Score:        g.score,
		Paused:       g.paused,
		Debug:        g.debug,
		Player:       *g.player,
		Enemies:      append([]Enemy(nil), g.enemies...),
		Stars:        append([]Star(nil), g.stars...),
		Swarm:        *g.swarm,
		BombInterval: g.bombInterval,
		ReadyLeft:    g.cfg.Session.ReadySeconds - g.readyCounter,
		MaxHealth:    g.cfg.Player.Health,
	}

	w.Particles = make([]Particle, len(g.particles))
	for i, p := range g.particles {
		p.Carrier = nil
		w.Particles[i] = p
	}

	if g.laser != nil {
		laser := *g.laser
		w.Laser = &laser
	}
	if g.bomb != nil {
		bomb := *g.bomb
		w.Bomb = &bomb
	}
	return w
}

// Hash folds the simulation-relevant state into a 64-bit FNV-1a digest.
// Two sessions with the same seed and input script hash equal at every tick.
func (w World) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	putU := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	putF := func(v float64) { putU(math.Float64bits(v)) }
	putI := func(v int) { putU(uint64(int64(v))) } //#nosec G115 -- hash computation
	putB := func(v bool) {
		if v {
			putU(1)
		} else {
			putU(0)
		}
	}

	putU(w.Tick)
	putI(int(w.Screen))
	putI(w.Score)
	putB(w.Paused)

	putF(w.Player.X)
	putF(w.Player.Y)
	putF(w.Player.VelocityX)
	putI(w.Player.Health)
	putB(w.Player.Dead)

	putI(len(w.Enemies))
	for _, e := range w.Enemies {
		putI(e.Row)
		putI(e.Col)
		putF(e.X)
		putF(e.Y)
	}

	putB(w.Laser != nil)
	if w.Laser != nil {
		putF(w.Laser.X)
		putF(w.Laser.Y)
	}
	putB(w.Bomb != nil)
	if w.Bomb != nil {
		putF(w.Bomb.X)
		putF(w.Bomb.Y)
		putF(w.Bomb.VelocityY)
	}

	putI(len(w.Particles))
	for _, p := range w.Particles {
		putF(p.X)
		putF(p.Y)
		putF(p.Age)
	}
	for _, s := range w.Stars {
		putF(s.X)
		putF(s.Y)
	}

	putI(w.Swarm.RowIndex)
	putF(w.Swarm.Direction)
	putF(w.Swarm.Down)
	putF(w.Swarm.Cycle)
	putF(w.Swarm.Frame)
	putF(w.Swarm.VelocityX)
	putF(w.Swarm.VelocityY)
	putF(w.BombInterval)

	return h.Sum64()
}

// StateHash digests the current world.
func (g *Game) StateHash() uint64 {
	return g.World().Hash()
}
