package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invasion/internal/config"
	"github.com/vovakirdan/tui-invasion/internal/core"
	"github.com/vovakirdan/tui-invasion/internal/engine"
	"github.com/vovakirdan/tui-invasion/internal/games/invasion"
	"github.com/vovakirdan/tui-invasion/internal/storage"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "recordings.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

// pumpFrames sends n display frames spaced wider than one tick, so each
// frame runs exactly one simulation step.
func pumpFrames(t *testing.T, m Model, n int) Model {
	t.Helper()
	base := time.Now()
	for i := 1; i <= n; i++ {
		m = update(t, m, FrameMsg(base.Add(time.Duration(i)*20*time.Millisecond)))
	}
	return m
}

func TestModelRecordsAndReplays(t *testing.T) {
	store := newTestStore(t)
	live := invasion.NewWithConfig(config.DefaultInvasionConfig())

	m := NewModel(live, testConfig(), Options{Store: store, Record: true, Player: "tester"})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = pumpFrames(t, m, 30)

	if m.Result().Ticks != 30 {
		t.Fatalf("ran %d ticks, expected 30", m.Result().Ticks)
	}
	if live.Screen() != invasion.ScreenReady {
		t.Fatalf("enter should leave the title, screen = %s", live.Screen())
	}

	m = update(t, m, runeKey('q'))
	id := m.Result().RecordingID
	if id == 0 {
		t.Fatal("quitting should save the recording")
	}

	rec, err := store.Recording(id)
	if err != nil || rec == nil {
		t.Fatalf("Recording(%d) = %v, %v", id, rec, err)
	}
	if rec.Ticks != 30 || rec.Seed != 42 || rec.Player != "tester" || rec.GameID != "invasion" {
		t.Errorf("unexpected recording: %+v", rec)
	}
	if !core.FrameFromBits(rec.Inputs[0]).Has(core.ActionConfirm) {
		t.Error("first recorded frame should carry the confirm press")
	}
	for i, b := range rec.Inputs[1:] {
		if b != 0 {
			t.Errorf("frame %d = %08b, expected no input", i+1, b)
		}
	}

	// A headless replay lands on the same world.
	replayed := invasion.NewWithConfig(config.DefaultInvasionConfig())
	engine.Replay(replayed, testConfig(), engine.Script(rec.Inputs), nil)
	if replayed.World().Hash() != live.World().Hash() {
		t.Error("replayed world differs from the live session")
	}

	// Paced playback through the model also matches, then stops.
	watched := invasion.NewWithConfig(config.DefaultInvasionConfig())
	p := NewModel(watched, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, Options{Playback: rec})
	p = pumpFrames(t, p, 35)

	if p.Result().Ticks != 30 {
		t.Errorf("playback ran %d ticks, expected 30", p.Result().Ticks)
	}
	if watched.World().Hash() != live.World().Hash() {
		t.Error("playback world differs from the live session")
	}

	p = update(t, p, runeKey('q'))
	if p.Result().RecordingID != 0 {
		t.Error("playback must not save a new recording")
	}
}

func TestModelWithoutRecordSavesNothing(t *testing.T) {
	store := newTestStore(t)
	game := invasion.NewWithConfig(config.DefaultInvasionConfig())

	m := NewModel(game, testConfig(), Options{Store: store})
	m = pumpFrames(t, m, 5)
	m = update(t, m, runeKey('q'))

	if m.Result().RecordingID != 0 {
		t.Error("recording disabled, nothing should be saved")
	}
	recs, err := store.ListRecordings("invasion", 10)
	if err != nil {
		t.Fatalf("ListRecordings() failed: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected no recordings, got %d", len(recs))
	}
}

func TestModelPlaybackIgnoresGameKeys(t *testing.T) {
	rec := &storage.Recording{ID: 7, Seed: 3, TickRate: 60, Ticks: 3, Inputs: []byte{0, 0, 0}}
	game := invasion.NewWithConfig(config.DefaultInvasionConfig())

	m := NewModel(game, testConfig(), Options{Playback: rec})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = pumpFrames(t, m, 3)

	if game.Screen() != invasion.ScreenTitle {
		t.Errorf("viewer input leaked into playback, screen = %s", game.Screen())
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	game := invasion.NewWithConfig(config.DefaultInvasionConfig())

	m := NewModel(game, testConfig(), Options{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = pumpFrames(t, m, 10)
	tick := game.Tick()

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if game.Tick() != tick || game.Screen() != invasion.ScreenReady {
		t.Error("resizing must not reset the game")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, expected 120x40", m.screen.Width(), m.screen.Height())
	}
	if m.View() == "" {
		t.Error("View() should render the game")
	}
}
