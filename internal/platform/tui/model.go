package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invasion/internal/core"
	"github.com/vovakirdan/tui-invasion/internal/engine"
	"github.com/vovakirdan/tui-invasion/internal/logging"
	"github.com/vovakirdan/tui-invasion/internal/registry"
	"github.com/vovakirdan/tui-invasion/internal/storage"
)

// DefaultRefreshRate is how often the display redraws, in frames per second.
// It runs faster than the simulation so ticks land close to their due time.
const DefaultRefreshRate = 120

const statusDuration = 2 * time.Second

// ScreenshotDir is where ctrl+s writes plain-text captures.
const ScreenshotDir = "~/.invasion/screenshots"

// Options controls an interactive session.
type Options struct {
	Store       *storage.Store     // Where recordings are saved; nil disables saving
	Logger      *log.Logger        // Receives game events; nil discards them
	Record      bool               // Save the session's inputs on quit
	Player      string             // Name stored with the recording
	Playback    *storage.Recording // Replays this recording instead of reading keys
	RefreshRate int                // Display refreshes per second
}

// Result summarizes a finished session.
type Result struct {
	RecordingID int64 // Zero if nothing was saved
	Ticks       int
	BestScore   int
	State       core.GameState
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	driver      *engine.Driver
	screen      *core.Screen
	config      core.RuntimeConfig
	opts        Options
	logger      *log.Logger
	keys        GameKeyMap
	input       *heldInput
	recorder    *engine.Recorder
	playback    *engine.Player
	state       core.GameState
	ticks       int
	bestScore   int
	savedID     int64
	status      string
	statusUntil time.Time
	finished    bool // Playback ran out of frames
	quitting    bool
}

// NewModel resets the game and wraps it in a model.
// In playback mode the recording's seed and tick rate replace cfg's.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if opts.Playback != nil {
		cfg.Seed = opts.Playback.Seed
		cfg.TickRate = opts.Playback.TickRate
	}
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.RefreshRate <= 0 {
		opts.RefreshRate = DefaultRefreshRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	game.Reset(cfg)

	m := Model{
		driver:   engine.NewDriver(game, cfg.TickRate, time.Now()),
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:   cfg,
		opts:     opts,
		logger:   logger,
		keys:     DefaultGameKeyMap(),
		input:    newHeldInput(),
		recorder: &engine.Recorder{},
		state:    game.State(),
	}
	if opts.Playback != nil {
		m.playback = engine.NewPlayer(engine.Script(opts.Playback.Inputs))
	}

	logger.Info("session started",
		"game", game.ID(), "seed", cfg.Seed, "tick_rate", cfg.TickRate, "playback", opts.Playback != nil)

	return m
}

// Init starts the display loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.opts.RefreshRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := time.Now()

	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot(now)
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.finish(now)
		m.quitting = true
		return m, tea.Quit
	}

	// Recorded input must come from the script during playback; only the
	// debug overlay stays under the viewer's control.
	if m.playback != nil && action != core.ActionDebug {
		return m, nil
	}

	m.input.Press(action, now)
	return m, nil
}

// handleResize follows the terminal size. The simulation works in logical
// pixels, so resizing only changes how the world is drawn.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleFrame runs at the display rate and lets the driver decide whether a
// simulation tick is due.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.finished {
		return m, frameCmd(m.opts.RefreshRate)
	}

	frame := m.input.Frame(now)
	if m.playback != nil {
		scripted, ok := m.playback.Peek()
		if !ok {
			m.finished = true
			m.setStatus("replay finished, q to quit", time.Time{})
			m.logger.Info("replay finished", "ticks", m.ticks, "score", m.state.Score)
			return m, frameCmd(m.opts.RefreshRate)
		}
		if frame.Has(core.ActionDebug) {
			scripted.Set(core.ActionDebug)
		}
		frame = scripted
	}

	res, stepped := m.driver.Pump(now, frame)
	if !stepped {
		return m, frameCmd(m.opts.RefreshRate)
	}

	m.input.Consume()
	if m.playback != nil {
		m.playback.Next()
	} else if m.opts.Record {
		m.recorder.Record(frame)
	}

	m.ticks++
	m.state = res.State
	m.bestScore = max(m.bestScore, res.State.Score)
	logging.Events(m.logger, res.Events)

	// Keys held through a screen change do not carry into the next screen.
	for _, e := range res.Events {
		if e.Kind == core.EventScreenChanged {
			m.input.Release()
			break
		}
	}

	return m, frameCmd(m.opts.RefreshRate)
}

// finish saves the recording once, when the session ends.
func (m *Model) finish(now time.Time) {
	if !m.opts.Record || m.playback != nil || m.savedID != 0 {
		return
	}
	if m.opts.Store == nil || m.recorder.Len() == 0 {
		return
	}

	rec := storage.Recording{
		GameID:     m.driver.Game().ID(),
		Player:     m.opts.Player,
		Seed:       m.config.Seed,
		TickRate:   m.config.TickRate,
		Ticks:      m.recorder.Len(),
		FinalScore: m.state.Score,
		BestScore:  m.bestScore,
		Inputs:     []byte(m.recorder.Script()),
	}

	id, err := m.opts.Store.SaveRecording(rec)
	if err != nil {
		m.logger.Error("cannot save recording", "err", err)
		m.setStatus("recording not saved", now.Add(statusDuration))
		return
	}

	m.savedID = id
	m.logger.Info("recording saved", "id", id, "ticks", rec.Ticks, "best", rec.BestScore)
}

// saveScreenshot writes the current screen to a text file.
func (m *Model) saveScreenshot(now time.Time) {
	m.driver.Game().Render(m.screen)

	dir, err := storage.ExpandHome(ScreenshotDir)
	if err == nil {
		err = os.MkdirAll(dir, 0o755)
	}
	if err != nil {
		m.logger.Warn("cannot create screenshot directory", "err", err)
		m.setStatus("screenshot failed", now.Add(statusDuration))
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.driver.Game().ID(), now.Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot write screenshot", "path", path, "err", err)
		m.setStatus("screenshot failed", now.Add(statusDuration))
		return
	}

	m.logger.Info("screenshot saved", "path", path)
	m.setStatus("screenshot saved", now.Add(statusDuration))
}

// setStatus shows a message on the bottom row until the given time.
// A zero time keeps it up for the rest of the session.
func (m *Model) setStatus(text string, until time.Time) {
	m.status = text
	m.statusUntil = until
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.driver.Game().Render(m.screen)

	bottom := m.screen.Height() - 1
	if m.playback != nil {
		played, total := m.playback.Progress()
		m.screen.DrawText(1, bottom, fmt.Sprintf("REPLAY #%d  %d/%d", m.opts.Playback.ID, played, total), core.ColorPink)
	}
	if m.status != "" && (m.statusUntil.IsZero() || time.Now().Before(m.statusUntil)) {
		m.screen.DrawText(m.screen.Width()-len(m.status)-1, bottom, m.status, core.ColorGray)
	}

	return RenderScreen(m.screen)
}

// Result returns the summary of the session so far.
func (m Model) Result() Result {
	return Result{
		RecordingID: m.savedID,
		Ticks:       m.ticks,
		BestScore:   m.bestScore,
		State:       m.state,
	}
}

// Run starts the Bubble Tea program for game and blocks until the player quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (Result, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return Result{}, nil
	}
	return m.Result(), nil
}
