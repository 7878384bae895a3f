package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/storage"
)

// MenuChoice is an entry of the title menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceRuns
	ChoiceQuit
)

// String returns the label shown in the menu.
func (c MenuChoice) String() string {
	switch c {
	case ChoicePlay:
		return "Play"
	case ChoiceRuns:
		return "Session runs"
	case ChoiceQuit:
		return "Quit"
	default:
		return ""
	}
}

var menuChoices = []MenuChoice{ChoicePlay, ChoiceRuns, ChoiceQuit}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// MenuModel is the title screen: play, look at this session's runs, or quit.
type MenuModel struct {
	title    string
	gameID   string
	cursor   int
	width    int
	height   int
	store    *storage.Store
	keys     MenuKeyMap
	help     help.Model
	chosen   MenuChoice
	best     int
	runCount int
}

// NewMenuModel creates a new menu model for the given game.
func NewMenuModel(gameID, title string, store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		title:  title,
		gameID: gameID,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		store:  store,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
	m.loadStats()
	return m
}

// loadStats reads the session best and run count. Errors leave zeros.
func (m *MenuModel) loadStats() {
	if m.store == nil {
		return
	}
	if best, err := m.store.BestScore(m.gameID); err == nil {
		m.best = best
	}
	if n, err := m.store.RunCount(m.gameID); err == nil {
		m.runCount = n
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.chosen = ChoiceQuit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(menuChoices)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			m.chosen = menuChoices[m.cursor]
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(spaced(m.title)), m.width))
	b.WriteString("\n\n")

	if m.runCount > 0 {
		stats := fmt.Sprintf("Best this session: %d  |  Runs: %d", m.best, m.runCount)
		b.WriteString(centerText(mutedStyle.Render(stats), m.width))
	} else {
		b.WriteString(centerText(mutedStyle.Render("Climb as high as you can"), m.width))
	}
	b.WriteString("\n\n")

	for i, c := range menuChoices {
		line := "  " + c.String() + "  "
		if i == m.cursor {
			line = selectedStyle.Render("> " + c.String() + "  ")
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(mutedStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Chosen returns the selected entry, or ChoiceNone while the menu is open.
func (m MenuModel) Chosen() MenuChoice {
	return m.chosen
}

// spaced puts a space between the letters of a title.
func spaced(s string) string {
	return strings.Join(strings.Split(strings.ToUpper(s), ""), " ")
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
