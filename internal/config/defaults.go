package config

import (
	_ "embed"
)

//go:embed defaults/invasion.yaml
var defaultInvasionYAML []byte

// DefaultInvasionConfig returns the default invasion configuration.
func DefaultInvasionConfig() InvasionConfig {
	return InvasionConfig{
		Player: PlayerConfig{
			Accel:     1200,
			Drag:      10,
			Health:    5,
			Size:      32,
			WallWidth: 32,
		},
		Laser: LaserConfig{
			Speed:  500,
			Width:  5,
			Height: 15,
		},
		Bomb: BombConfig{
			Gravity:         400,
			Size:            10,
			Cooldown:        1,
			InitialCooldown: 1.5,
			TrailParticles:  4,
			TrailPower:      200,
		},
		Swarm: SwarmConfig{
			Rows:         5,
			Cols:         9,
			EnemySize:    32,
			Spacing:      48,
			TopBuffer:    30,
			CycleMax:     1.4,
			CycleBias:    0.2,
			MovePhase:    0.85,
			StepDistance: 24,
			WallWidth:    96,
			FloorHeight:  64,
		},
		Particles: ParticlesConfig{
			Lifetime:     0.5,
			Fade:         2.5,
			BlastCount:   30,
			BlastPower:   500,
			ExhaustCount: 2,
			ExhaustPower: 300,
			StarRegion:   40,
			StarScroll:   0.5,
		},
		Session: SessionConfig{
			ReadySeconds:    2,
			GameOverSeconds: 4,
			WinSeconds:      2,
			EnemyPoints:     10,
		},
	}
}

// DefaultYAML returns the embedded default YAML, used as a starting point
// for custom config files.
func DefaultYAML() []byte {
	return defaultInvasionYAML
}
