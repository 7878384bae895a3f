package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/registry"
	"github.com/vovakirdan/tui-climber/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenRuns
)

// SessionModel manages the full session flow: menu -> game or runs -> menu.
// It is the top-level model of the local menu and of every SSH session.
type SessionModel struct {
	gameID   string
	title    string
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	player   string
	screen   sessionScreen
	menu     MenuModel
	game     *GameModel
	runs     RunsBoardModel
	quitting bool
}

// NewSessionModel creates a session for the registered game gameID.
func NewSessionModel(gameID string, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, player string) (SessionModel, error) {
	if !registry.Exists(gameID) {
		return SessionModel{}, fmt.Errorf("registry: unknown game %q", gameID)
	}
	title := registry.Title(gameID)
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return SessionModel{
		gameID: gameID,
		title:  title,
		store:  store,
		logger: logger,
		config: cfg,
		player: player,
		menu:   NewMenuModel(gameID, title, store, cfg),
	}, nil
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenRuns:
		return m.updateRuns(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Chosen() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoicePlay:
		game, err := registry.Create(m.gameID)
		if err != nil {
			// The session was built for a registered game
			m.logger.Error("cannot create game", "err", err)
			m.menu = NewMenuModel(m.gameID, m.title, m.store, m.config)
			return m, nil
		}
		gm := NewGameModel(game, m.store, m.logger, m.config, m.player)
		m.game = &gm
		m.screen = screenGame
		return m, m.game.Init()

	case ChoiceRuns:
		m.runs = NewRunsBoardModel(m.gameID, m.title, m.store, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenRuns
		return m, m.runs.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.toMenu()
		return m, nil
	}

	return m, cmd
}

// updateRuns handles updates when the runs board is shown.
func (m SessionModel) updateRuns(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.runs.Update(msg)
	if runs, ok := newModel.(RunsBoardModel); ok {
		m.runs = runs
	}

	if m.runs.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.runs.IsGoingBack() {
		m.toMenu()
		return m, nil
	}

	return m, cmd
}

func (m *SessionModel) toMenu() {
	m.game = nil
	m.screen = screenMenu
	m.menu = NewMenuModel(m.gameID, m.title, m.store, m.config)
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenRuns:
		return m.runs.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs a menu session for gameID in the local terminal.
func RunSession(gameID string, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, player string) error {
	model, err := NewSessionModel(gameID, store, logger, cfg, player)
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
