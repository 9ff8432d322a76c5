// Package config provides YAML-based tuning for the invasion simulation.
package config

import (
	"errors"
	"fmt"
)

// InvasionConfig contains all tunable constants of the simulation.
// Screen geometry is fixed and not configurable.
type InvasionConfig struct {
	Player    PlayerConfig    `yaml:"player"`
	Laser     LaserConfig     `yaml:"laser"`
	Bomb      BombConfig      `yaml:"bomb"`
	Swarm     SwarmConfig     `yaml:"swarm"`
	Particles ParticlesConfig `yaml:"particles"`
	Session   SessionConfig   `yaml:"session"`
}

// PlayerConfig defines ship movement and shield parameters.
type PlayerConfig struct {
	Accel     float64 `yaml:"accel"`      // Horizontal thrust from input, px/s²
	Drag      float64 `yaml:"drag"`       // Velocity-proportional drag coefficient
	Health    int     `yaml:"health"`     // Shield pips at start
	Size      float64 `yaml:"size"`       // Ship width and height
	WallWidth float64 `yaml:"wall_width"` // Width of the edge probes the ship collides with
}

// LaserConfig defines the player's projectile.
type LaserConfig struct {
	Speed  float64 `yaml:"speed"` // Upward speed, px/s
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BombConfig defines enemy bombs.
type BombConfig struct {
	Gravity         float64 `yaml:"gravity"`          // Base of the self-reinforcing acceleration
	Size            float64 `yaml:"size"`             // Width and height
	Cooldown        float64 `yaml:"cooldown"`         // Seconds between drops
	InitialCooldown float64 `yaml:"initial_cooldown"` // Seconds before the first drop of a session
	TrailParticles  int     `yaml:"trail_particles"`  // Particles emitted per tick
	TrailPower      float64 `yaml:"trail_power"`
}

// SwarmConfig defines the enemy formation and its march.
type SwarmConfig struct {
	Rows         int     `yaml:"rows"`
	Cols         int     `yaml:"cols"`
	EnemySize    float64 `yaml:"enemy_size"`
	Spacing      float64 `yaml:"spacing"`       // Distance between neighbouring enemy centers
	TopBuffer    float64 `yaml:"top_buffer"`    // Extra offset of the first row
	CycleMax     float64 `yaml:"cycle_max"`     // Cycle length contribution of a full swarm, seconds
	CycleBias    float64 `yaml:"cycle_bias"`    // Minimum cycle length, seconds
	MovePhase    float64 `yaml:"move_phase"`    // Fraction of a cycle spent moving
	StepDistance float64 `yaml:"step_distance"` // Pixels travelled per half movement phase
	WallWidth    float64 `yaml:"wall_width"`    // Width of the edge probes that trigger descent
	FloorHeight  float64 `yaml:"floor_height"`  // Height of the floor strip centered on the bottom edge
}

// ParticlesConfig defines blast and exhaust particles.
type ParticlesConfig struct {
	Lifetime     float64 `yaml:"lifetime"` // Seconds a particle survives
	Fade         float64 `yaml:"fade"`     // Alpha lost per second
	BlastCount   int     `yaml:"blast_count"`
	BlastPower   float64 `yaml:"blast_power"`
	ExhaustCount int     `yaml:"exhaust_count"`
	ExhaustPower float64 `yaml:"exhaust_power"`
	StarRegion   float64 `yaml:"star_region"` // Side of the grid cell holding one star
	StarScroll   float64 `yaml:"star_scroll"` // Pixels a star moves up per tick
}

// SessionConfig defines screen timers and scoring.
type SessionConfig struct {
	ReadySeconds    float64 `yaml:"ready_seconds"`
	GameOverSeconds float64 `yaml:"game_over_seconds"`
	WinSeconds      float64 `yaml:"win_seconds"`
	EnemyPoints     int     `yaml:"enemy_points"`
}

// Validate checks that every timing and size is usable by the simulation.
func (c InvasionConfig) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("player.accel", c.Player.Accel)
	positive("player.size", c.Player.Size)
	positive("laser.speed", c.Laser.Speed)
	positive("bomb.size", c.Bomb.Size)
	positive("bomb.cooldown", c.Bomb.Cooldown)
	positive("swarm.enemy_size", c.Swarm.EnemySize)
	positive("swarm.spacing", c.Swarm.Spacing)
	positive("swarm.cycle_bias", c.Swarm.CycleBias)
	positive("swarm.step_distance", c.Swarm.StepDistance)
	positive("particles.lifetime", c.Particles.Lifetime)
	positive("particles.star_region", c.Particles.StarRegion)

	if c.Player.Health <= 0 {
		errs = append(errs, fmt.Errorf("player.health must be positive, got %d", c.Player.Health))
	}
	if c.Swarm.Rows <= 0 || c.Swarm.Cols <= 0 {
		errs = append(errs, fmt.Errorf("swarm must have at least one row and column, got %dx%d", c.Swarm.Rows, c.Swarm.Cols))
	}
	if c.Swarm.MovePhase <= 0 || c.Swarm.MovePhase >= 1 {
		errs = append(errs, fmt.Errorf("swarm.move_phase must be in (0, 1), got %v", c.Swarm.MovePhase))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid invasion config: %w", errors.Join(errs...))
	}
	return nil
}
