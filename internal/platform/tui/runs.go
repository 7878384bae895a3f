package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-climber/internal/storage"
)

// Runs board layout constants
const (
	maxRuns        = 100 // Max runs to load
	boardChrome    = 9   // Rows used by title, stats, borders and help
	minTableHeight = 3
)

var boardBorder = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

// RunsBoardModel lists the runs finished in this process, best first.
type RunsBoardModel struct {
	gameID    string
	title     string
	store     *storage.Store
	runs      []storage.Run
	stats     storage.Stats
	loadErr   error
	table     table.Model
	help      help.Model
	keys      MenuKeyMap
	width     int
	height    int
	goingBack bool
	quitting  bool
}

// NewRunsBoardModel creates a runs board for the given game.
func NewRunsBoardModel(gameID, title string, store *storage.Store, width, height int) RunsBoardModel {
	m := RunsBoardModel{
		gameID: gameID,
		title:  title,
		store:  store,
		help:   help.New(),
		keys:   DefaultMenuKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the terminal.
func (m *RunsBoardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Cause", Width: 8},
		{Title: "Ticks", Width: 7},
		{Title: "Player", Width: 12},
		{Title: "Time", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-boardChrome, minTableHeight)),
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

// load reads the runs and stats for the board's game.
func (m *RunsBoardModel) load() {
	m.runs, m.loadErr = nil, nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	runs, err := m.store.TopRuns(m.gameID, maxRuns)
	if err != nil {
		m.loadErr = err
	} else {
		m.runs = runs
	}
	if stats, err := m.store.GameStats(m.gameID); err == nil {
		m.stats = stats
	}
	m.updateTableRows()
}

// updateTableRows fills the table from the loaded runs.
func (m *RunsBoardModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			strconv.Itoa(r.Score),
			r.Cause,
			strconv.FormatUint(r.Ticks, 10),
			r.Player,
			r.CreatedAt.Format("15:04:05"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the runs board.
func (m RunsBoardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the runs board.
func (m RunsBoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil
		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Select):
			m.goingBack = true
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the runs board.
func (m RunsBoardModel) View() string {
	var b strings.Builder

	b.WriteString(centerText(titleStyle.Render("SESSION RUNS - "+m.title), m.width))
	b.WriteString("\n\n")

	summary := "No runs finished yet"
	if m.stats.Runs > 0 {
		summary = fmt.Sprintf("Runs: %d  |  Best: %d  |  Average: %.0f",
			m.stats.Runs, m.stats.BestScore, m.stats.AvgScore)
	}
	b.WriteString(centerText(mutedStyle.Render(summary), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(boardBorder.Render(m.tableContent()), m.width))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// tableContent renders the table or an explanatory message.
func (m RunsBoardModel) tableContent() string {
	empty := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(1, 4)

	switch {
	case m.loadErr != nil:
		return empty.Render("Could not load runs:\n" + m.loadErr.Error())
	case len(m.runs) == 0:
		return empty.Render("Runs are kept until the program exits.\nPlay a game to fill this board!")
	}
	return m.table.View()
}

// Runs returns the loaded runs, best first.
func (m RunsBoardModel) Runs() []storage.Run {
	return m.runs
}

// IsGoingBack returns true if user wants to go back to menu.
func (m RunsBoardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m RunsBoardModel) IsQuitting() bool {
	return m.quitting
}
