package invasion

import (
	"math"

	"github.com/samber/lo"

	"github.com/vovakirdan/tui-invasion/internal/config"
	"github.com/vovakirdan/tui-invasion/internal/core"
)

// Swarm is the collective kinematic state of all live enemies.
//
// The swarm velocity is computed as if the whole formation were one body,
// but only the row at RowIndex receives it on any given tick. Each cycle is a
// rest phase followed by a symmetric accelerate/decelerate phase. Rows take
// turns bottom to top; when the selection wraps past row 0 the cycle timing
// and the wall test are re-evaluated.
type Swarm struct {
	core.Rect // Bounding box of the live enemies, refreshed at cycle start

	RowIndex  int     // Row allowed to move this cycle
	Direction float64 // Horizontal sign, +1 right, -1 left
	Down      float64 // Vertical sign while descending, 0 while marching sideways
	Cycle     float64 // Seconds per cycle
	Frame     float64 // Seconds elapsed in the current cycle

	AccelX, AccelY       float64
	VelocityX, VelocityY float64

	// RowRestart is set when row selection wrapped during the last advance.
	RowRestart bool

	InitRows int
	InitCols int
	InitSize int

	tuning config.SwarmConfig
}

// NewSwarm returns a swarm ready to choreograph a fresh formation.
// It starts flagged as descending so that the first wrap clears the flag
// and the march begins sideways.
func NewSwarm(cfg config.SwarmConfig) *Swarm {
	return &Swarm{
		RowIndex:  cfg.Rows - 1,
		Direction: 1,
		Down:      1,
		InitRows:  cfg.Rows,
		InitCols:  cfg.Cols,
		InitSize:  cfg.Rows * cfg.Cols,
		tuning:    cfg,
	}
}

// restPhase is the fraction of a cycle spent motionless.
func (s *Swarm) restPhase() float64 {
	return 1.0 - s.tuning.MovePhase
}

// accelPhase is the fraction of a cycle spent accelerating (and, equally, decelerating).
func (s *Swarm) accelPhase() float64 {
	return s.tuning.MovePhase * 0.5
}

// CycleFor returns the cycle length for the given number of live enemies.
// It shrinks linearly with the swarm and never drops below the bias.
func (s *Swarm) CycleFor(live int) float64 {
	return s.tuning.CycleMax*(float64(live)/float64(s.InitSize)) + s.tuning.CycleBias
}

// accelFor solves a = 2s/t² for the configured step distance over the
// acceleration half of the movement phase.
func (s *Swarm) accelFor(cycle float64) float64 {
	return 2 * s.tuning.StepDistance / math.Pow(cycle*s.accelPhase(), 2)
}

// BeginTick advances the cycle kinematics before enemies move.
// It reports whether the swarm touches the floor strip; that check only
// runs at cycle start. enemies must not be empty.
func (s *Swarm) BeginTick(enemies []Enemy, dt float64) (landed bool) {
	switch {
	case s.Frame == 0:
		if s.RowRestart {
			s.Cycle = s.CycleFor(len(enemies))
			accel := s.accelFor(s.Cycle)
			if s.Down != 0 {
				s.AccelY = s.Down * accel
			} else {
				s.AccelX = s.Direction * accel
			}
		}
		s.measure(enemies)
		landed = s.Overlaps(floorProbe(s.tuning.FloorHeight))
		s.VelocityX = 0
		s.VelocityY = 0

	case s.Frame >= s.Cycle*s.restPhase():
		if s.Frame < s.Cycle*(s.restPhase()+s.accelPhase()) {
			s.VelocityX += s.AccelX * dt
			s.VelocityY += s.AccelY * dt
		} else {
			s.VelocityX -= s.AccelX * dt
			s.VelocityY -= s.AccelY * dt
		}
	}
	return landed
}

// Move applies this tick's displacement to e if its row is active.
func (s *Swarm) Move(e *Enemy, dt float64) {
	if e.Row != s.RowIndex {
		return
	}
	if s.Down != 0 {
		e.Y += s.VelocityY * dt
	} else {
		e.X += s.VelocityX * dt
	}
}

// EndTick advances the cycle clock. When the cycle completes it hands the
// turn to the next occupied row, and on a wrap decides whether the swarm
// descends (touching a wall while marching sideways) or marches on.
// enemies is the surviving set after this tick's collisions.
func (s *Swarm) EndTick(enemies []Enemy, dt float64) {
	s.Frame += dt
	if s.Frame < s.Cycle {
		return
	}

	s.Frame = 0
	s.findNextRow(enemies)
	if !s.RowRestart {
		return
	}
	if !s.measure(enemies) {
		return
	}

	left, right := wallProbes(s.tuning.WallWidth)
	switch {
	case s.Overlaps(left) && s.Down == 0:
		s.Down = 1
		s.Direction = 1
	case s.Overlaps(right) && s.Down == 0:
		s.Down = 1
		s.Direction = -1
	default:
		s.Down = 0
	}
}

// findNextRow moves RowIndex to the next row (upwards, wrapping to the
// bottom) that still has an enemy. It gives up after InitRows attempts, so
// an empty swarm cannot loop forever.
func (s *Swarm) findNextRow(enemies []Enemy) {
	s.RowRestart = false
	for attempts := s.InitRows; attempts > 0; attempts-- {
		s.RowIndex--
		if s.RowIndex < 0 {
			s.RowRestart = true
			s.RowIndex = s.InitRows - 1
		}
		if rowOccupied(enemies, s.RowIndex) {
			return
		}
	}
}

// measure refreshes the bounding box. Returns false for an empty swarm,
// leaving the previous box in place.
func (s *Swarm) measure(enemies []Enemy) bool {
	box, ok := core.Bounds(lo.Map(enemies, func(e Enemy, _ int) core.Rect {
		return e.Rect
	}))
	if ok {
		s.Rect = box
	}
	return ok
}

func rowOccupied(enemies []Enemy, row int) bool {
	return lo.ContainsBy(enemies, func(e Enemy) bool {
		return e.Row == row
	})
}

// floorProbe is a strip centered on the bottom edge spanning the screen width.
func floorProbe(height float64) core.Rect {
	return core.NewRect(ScreenWidth*0.5, ScreenHeight, ScreenWidth, height)
}

// wallProbes are full-height bands centered on the left and right edges.
func wallProbes(width float64) (left, right core.Rect) {
	left = core.NewRect(0, ScreenHeight*0.5, width, ScreenHeight)
	right = core.NewRect(ScreenWidth, ScreenHeight*0.5, width, ScreenHeight)
	return left, right
}
