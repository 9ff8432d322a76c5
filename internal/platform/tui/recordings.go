package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invasion/internal/storage"
)

// Recordings browser layout constants
const (
	maxRecordings = 100 // Max recordings to load
	tableMargin   = 4
)

// RecordingsKeyMap defines the key bindings for the recordings browser.
type RecordingsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Replay key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RecordingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Replay, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RecordingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Replay, k.Delete, k.Quit},
	}
}

// DefaultRecordingsKeyMap returns default key bindings.
func DefaultRecordingsKeyMap() RecordingsKeyMap {
	return RecordingsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Replay: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "replay"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RecordingsModel is the Bubble Tea model for browsing saved sessions.
type RecordingsModel struct {
	gameID     string
	store      *storage.Store
	recordings []storage.Recording
	stats      *storage.Stats
	table      table.Model
	help       help.Model
	keys       RecordingsKeyMap
	width      int
	height     int
	selected   int64 // Recording chosen for replay
	err        error
	quitting   bool
}

// NewRecordingsModel creates a browser over gameID's recordings.
func NewRecordingsModel(store *storage.Store, gameID string, width, height int) RecordingsModel {
	h := help.New()
	h.ShowAll = false

	m := RecordingsModel{
		gameID: gameID,
		store:  store,
		keys:   DefaultRecordingsKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	m.table = m.createTable()
	m.load()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *RecordingsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Best", Width: 7},
		{Title: "Final", Width: 7},
		{Title: "Time", Width: 7},
		{Title: "Player", Width: 12},
		{Title: "Date", Width: 14},
	}

	// Give leftover width to the player column
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if extra := m.width - tableMargin - used; extra > 0 {
		columns[4].Width += min(extra, 20)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // Leave room for header, stats and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the recordings and stats for the current game.
func (m *RecordingsModel) load() {
	m.recordings = nil
	m.stats = nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	recs, err := m.store.ListRecordings(m.gameID, maxRecordings)
	if err != nil {
		m.err = err
	} else {
		m.recordings = recs
	}

	if stats, err := m.store.GameStats(m.gameID); err == nil {
		m.stats = stats
	}

	m.updateTableRows()
}

// updateTableRows updates the table with the loaded recordings.
func (m *RecordingsModel) updateTableRows() {
	rows := make([]table.Row, len(m.recordings))
	for i, r := range m.recordings {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", r.ID),
			strconv.Itoa(r.BestScore),
			strconv.Itoa(r.FinalScore),
			formatTicks(int64(r.Ticks), r.TickRate),
			r.Player,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)

	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

// formatTicks renders a tick count as m:ss of game time.
func formatTicks(ticks int64, tickRate int) string {
	if tickRate <= 0 {
		tickRate = 60
	}
	d := time.Duration(ticks) * time.Second / time.Duration(tickRate)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// current returns the recording under the cursor.
func (m RecordingsModel) current() (storage.Recording, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.recordings) {
		return storage.Recording{}, false
	}
	return m.recordings[i], true
}

// Init initializes the recordings model.
func (m RecordingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the recordings browser.
func (m RecordingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Replay):
			if rec, ok := m.current(); ok {
				m.selected = rec.ID
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if rec, ok := m.current(); ok && m.store != nil {
				if err := m.store.DeleteRecording(rec.ID); err != nil {
					m.err = err
				}
				m.load()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the recordings browser.
func (m RecordingsModel) View() string {
	if m.quitting || m.selected != 0 {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	b.WriteString(titleStyle.Render(centerText("RECORDINGS - "+strings.ToUpper(m.gameID), m.width)))
	b.WriteString("\n")

	statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	if m.stats != nil && m.stats.Count > 0 {
		line := fmt.Sprintf("%d sessions  best %d  played %s  last %s",
			m.stats.Count,
			m.stats.BestScore,
			formatTicks(m.stats.TotalTicks, 60),
			m.stats.LastPlayed.Format("Jan 02 15:04"),
		)
		b.WriteString(statsStyle.Render(centerText(line, m.width)))
	}
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))
	b.WriteString("\n")

	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		b.WriteString(errStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m RecordingsModel) renderTableContent() string {
	if len(m.recordings) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No recordings yet.\nPlay with --record to save a session!")
	}

	return m.table.View()
}

// Selected returns the ID of the recording chosen for replay, or 0.
func (m RecordingsModel) Selected() int64 {
	return m.selected
}

// RunRecordings runs the recordings browser.
// Returns the ID of the recording to replay, or 0 if the user quit.
func RunRecordings(store *storage.Store, gameID string, width, height int) (int64, error) {
	model := NewRecordingsModel(store, gameID, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, err
	}

	m, ok := finalModel.(RecordingsModel)
	if !ok {
		return 0, nil
	}

	return m.Selected(), nil
}
