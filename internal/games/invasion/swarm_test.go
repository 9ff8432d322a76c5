package invasion

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-invasion/internal/config"
	"github.com/vovakirdan/tui-invasion/internal/core"
)

// stepSwarm runs one choreographer tick without bombs or lasers.
func stepSwarm(s *Swarm, enemies []Enemy) bool {
	landed := s.BeginTick(enemies, Dt)
	for i := range enemies {
		s.Move(&enemies[i], Dt)
	}
	s.EndTick(enemies, Dt)
	return landed
}

func TestFormationLayout(t *testing.T) {
	cfg := config.DefaultInvasionConfig().Swarm
	enemies := newFormation(cfg)

	if len(enemies) != 45 {
		t.Fatalf("formation has %d enemies, expected 45", len(enemies))
	}

	first, last := enemies[0], enemies[len(enemies)-1]
	if first.X != 32 || first.Y != 62 {
		t.Errorf("first enemy at (%v, %v), expected (32, 62)", first.X, first.Y)
	}
	if last.Row != 4 || last.Col != 8 {
		t.Errorf("last enemy is r%d c%d, expected r4 c8", last.Row, last.Col)
	}
	if last.X != 8*48+32 || last.Y != 4*48+62 {
		t.Errorf("last enemy at (%v, %v)", last.X, last.Y)
	}

	for i, e := range enemies {
		for j := i + 1; j < len(enemies); j++ {
			if e.Overlaps(enemies[j].Rect) {
				t.Fatalf("enemies %d and %d overlap at spawn", i, j)
			}
		}
	}
}

func TestEnemyKindByRow(t *testing.T) {
	tests := []struct {
		row  int
		want EnemyKind
	}{
		{0, KindHorse},
		{1, KindPig},
		{2, KindDeer},
		{3, KindWolf},
		{4, KindBird},
		{5, KindHorse},
	}
	for _, tc := range tests {
		if got := (Enemy{Row: tc.row}).Kind(); got != tc.want {
			t.Errorf("row %d kind = %s, expected %s", tc.row, got, tc.want)
		}
	}
}

func TestCycleShrinksWithSwarm(t *testing.T) {
	s := NewSwarm(config.DefaultInvasionConfig().Swarm)

	if got := s.CycleFor(45); math.Abs(got-1.6) > 1e-9 {
		t.Errorf("full swarm cycle = %v, expected 1.6", got)
	}
	if got := s.CycleFor(0); got != s.tuning.CycleBias {
		t.Errorf("empty swarm cycle = %v, expected bias %v", got, s.tuning.CycleBias)
	}
	for n := 1; n <= 45; n++ {
		if s.CycleFor(n-1) > s.CycleFor(n) {
			t.Fatalf("cycle grew when swarm shrank from %d to %d", n, n-1)
		}
	}
}

func TestFindNextRow(t *testing.T) {
	cfg := config.DefaultInvasionConfig().Swarm

	tests := []struct {
		name        string
		rows        []int // Rows that still have an enemy
		start       int
		wantRow     int
		wantRestart bool
	}{
		{"next row up", []int{0, 1, 2, 3, 4}, 4, 3, false},
		{"skips empty rows", []int{0, 3}, 2, 0, false},
		{"wraps to bottom", []int{0, 1, 2, 3, 4}, 0, 4, true},
		{"single row reselects itself", []int{2}, 2, 2, true},
		{"single row above", []int{1}, 3, 1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSwarm(cfg)
			s.RowIndex = tc.start
			var enemies []Enemy
			for _, r := range tc.rows {
				enemies = append(enemies, Enemy{Rect: core.NewRect(100, 100, 32, 32), Row: r})
			}

			s.findNextRow(enemies)

			if s.RowIndex != tc.wantRow {
				t.Errorf("RowIndex = %d, expected %d", s.RowIndex, tc.wantRow)
			}
			if s.RowRestart != tc.wantRestart {
				t.Errorf("RowRestart = %v, expected %v", s.RowRestart, tc.wantRestart)
			}
		})
	}
}

func TestFindNextRowEmptySwarmTerminates(t *testing.T) {
	s := NewSwarm(config.DefaultInvasionConfig().Swarm)
	s.RowIndex = 3

	s.findNextRow(nil)

	if s.RowIndex < 0 || s.RowIndex >= s.InitRows {
		t.Errorf("RowIndex = %d out of range after empty search", s.RowIndex)
	}
}

func TestSwarmStartsMarchingSideways(t *testing.T) {
	cfg := config.DefaultInvasionConfig().Swarm
	s := NewSwarm(cfg)
	enemies := newFormation(cfg)

	// Cycle is zero until the first wrap, so rows 3..0 are visited in one tick each.
	for range 5 {
		stepSwarm(s, enemies)
	}
	if !s.RowRestart || s.RowIndex != 4 {
		t.Fatalf("expected wrap to row 4 after five ticks, got row %d restart %v", s.RowIndex, s.RowRestart)
	}
	if s.Down != 0 {
		t.Errorf("first wrap should clear the descent flag, Down = %v", s.Down)
	}

	stepSwarm(s, enemies)
	if math.Abs(s.Cycle-1.6) > 1e-9 {
		t.Errorf("cycle after first restart = %v, expected 1.6", s.Cycle)
	}
	if s.AccelX <= 0 || s.AccelY != 0 {
		t.Errorf("expected rightward acceleration, got (%v, %v)", s.AccelX, s.AccelY)
	}
}

func TestOnlyActiveRowMovesOneStep(t *testing.T) {
	cfg := config.DefaultInvasionConfig().Swarm
	s := NewSwarm(cfg)
	enemies := newFormation(cfg)
	spawn := append([]Enemy(nil), enemies...)

	for range 5 {
		stepSwarm(s, enemies)
	}

	// Run row 4's cycle to completion.
	for i := 0; s.RowIndex == 4; i++ {
		if i > 200 {
			t.Fatal("row 4 cycle never completed")
		}
		stepSwarm(s, enemies)
	}

	for i, e := range enemies {
		dx := e.X - spawn[i].X
		if e.Y != spawn[i].Y {
			t.Fatalf("enemy r%d c%d moved vertically while marching sideways", e.Row, e.Col)
		}
		if e.Row == 4 {
			if math.Abs(dx-2*cfg.StepDistance) > 3 {
				t.Errorf("row 4 moved %.2fpx, expected about %v", dx, 2*cfg.StepDistance)
			}
		} else if dx != 0 {
			t.Errorf("enemy r%d c%d moved %.2fpx outside its turn", e.Row, e.Col, dx)
		}
	}
}

func TestSwarmDescendsAtWall(t *testing.T) {
	cfg := config.DefaultInvasionConfig().Swarm

	tests := []struct {
		name    string
		x       float64
		wantDir float64
	}{
		{"right wall", ScreenWidth - 40, -1},
		{"left wall", 40, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSwarm(cfg)
			s.Down = 0
			s.Direction = -tc.wantDir
			s.RowIndex = 0
			s.Cycle = 1
			s.Frame = 1 - Dt/2
			enemies := []Enemy{{Rect: core.NewRect(tc.x, 200, 32, 32), Row: 0}}

			s.EndTick(enemies, Dt)

			if !s.RowRestart {
				t.Fatal("expected a wrap")
			}
			if s.Down != 1 || s.Direction != tc.wantDir {
				t.Errorf("Down=%v Direction=%v, expected 1 and %v", s.Down, s.Direction, tc.wantDir)
			}
		})
	}
}

func TestSwarmStopsDescendingAfterOneWrap(t *testing.T) {
	cfg := config.DefaultInvasionConfig().Swarm
	s := NewSwarm(cfg)
	s.Down = 1
	s.RowIndex = 0
	s.Cycle = 1
	s.Frame = 1
	// Still touching the wall, but already descended.
	enemies := []Enemy{{Rect: core.NewRect(ScreenWidth-40, 200, 32, 32), Row: 0}}

	s.EndTick(enemies, Dt)

	if s.Down != 0 {
		t.Errorf("Down = %v, expected 0 after a descent step", s.Down)
	}
}

func TestSwarmLandsOnFloor(t *testing.T) {
	cfg := config.DefaultInvasionConfig().Swarm
	s := NewSwarm(cfg)

	high := []Enemy{{Rect: core.NewRect(200, 300, 32, 32)}}
	if s.BeginTick(high, Dt) {
		t.Error("swarm well above the floor should not land")
	}

	low := []Enemy{{Rect: core.NewRect(200, 400, 32, 32)}}
	if !s.BeginTick(low, Dt) {
		t.Error("swarm touching the floor strip should land")
	}
}
