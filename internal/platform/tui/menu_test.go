package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestMenuWithoutStoreHidesRecordings(t *testing.T) {
	m := NewMenuModel(nil, "invasion", testConfig())

	for _, item := range m.items {
		if item.Choice == MenuPlayRecorded || item.Choice == MenuRecordings {
			t.Errorf("%q needs a store", item.Title)
		}
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(newTestStore(t), "invasion", testConfig())

	steps := []tea.KeyMsg{
		{Type: tea.KeyDown},
		{Type: tea.KeyDown},
		{Type: tea.KeyDown}, // Quit entry
		{Type: tea.KeyDown}, // Clamped
		{Type: tea.KeyUp},
	}
	for _, msg := range steps {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	if m.Selected() != MenuNone {
		t.Fatal("navigation alone must not select")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if m.Selected() != MenuRecordings {
		t.Errorf("Selected() = %d, expected recordings", m.Selected())
	}
	if cmd == nil {
		t.Error("selecting should close the menu")
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(nil, "invasion", testConfig())

	next, _ := m.Update(runeKey('q'))
	if next.(MenuModel).Selected() != MenuQuit {
		t.Error("q should quit")
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := NewMenuModel(nil, "invasion", testConfig())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	cfg := next.(MenuModel).Config()
	if cfg.ScreenW != 100 || cfg.ScreenH != 50 || cfg.Seed != testConfig().Seed {
		t.Errorf("unexpected config after resize: %+v", cfg)
	}
}
