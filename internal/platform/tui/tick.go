// Package tui provides the Bubble Tea integration for Invasion.
// It handles the terminal UI loop, input mapping, recording and playback.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent on every display refresh. The simulation itself runs at
// its own fixed rate; see engine.Driver.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the specified rate.
func frameCmd(refreshRate int) tea.Cmd {
	if refreshRate <= 0 {
		refreshRate = DefaultRefreshRate
	}
	interval := time.Second / time.Duration(refreshRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
