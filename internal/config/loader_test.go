package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultInvasionConfig() {
		t.Errorf("embedded YAML and DefaultInvasionConfig() disagree:\nyaml: %+v\ncode: %+v", cfg, DefaultInvasionConfig())
	}
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte(`
laser:
  speed: 650
session:
  enemy_points: 25
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Laser.Speed != 650 {
		t.Errorf("laser.speed = %v, expected 650", cfg.Laser.Speed)
	}
	if cfg.Session.EnemyPoints != 25 {
		t.Errorf("session.enemy_points = %d, expected 25", cfg.Session.EnemyPoints)
	}
	// Untouched keys keep their defaults.
	if cfg.Laser.Width != 5 || cfg.Swarm.Rows != 5 {
		t.Errorf("partial override should keep defaults, got laser.width=%v swarm.rows=%d", cfg.Laser.Width, cfg.Swarm.Rows)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"malformed", "player: [", "parse yaml"},
		{"zero rows", "swarm:\n  rows: 0\n", "at least one row"},
		{"negative cooldown", "bomb:\n  cooldown: -1\n", "bomb.cooldown"},
		{"move phase out of range", "swarm:\n  move_phase: 1.5\n", "move_phase"},
		{"no health", "player:\n  health: 0\n", "player.health"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadInvasionCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("player:\n  health: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadInvasion(path)
	if err != nil {
		t.Fatalf("LoadInvasion() failed: %v", err)
	}
	if cfg.Player.Health != 3 {
		t.Errorf("player.health = %d, expected 3", cfg.Player.Health)
	}
}

func TestLoadInvasionMissingCustomPath(t *testing.T) {
	cfg, err := LoadInvasion(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing custom config")
	}
	// Callers may ignore the error and still get a usable config.
	if cfg != DefaultInvasionConfig() {
		t.Error("failed load should return defaults")
	}
}

func TestLoadInvasionFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadInvasion("")
	if err != nil {
		t.Fatalf("LoadInvasion(\"\") failed: %v", err)
	}
	if cfg != DefaultInvasionConfig() {
		t.Error("without any files, the embedded defaults should be used")
	}
}
