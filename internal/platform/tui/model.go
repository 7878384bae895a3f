package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-climber/internal/climb"
	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/registry"
	"github.com/vovakirdan/tui-climber/internal/storage"
)

// Recorder is implemented by games that can summarize their current run.
type Recorder interface {
	Record() climb.RunRecord
}

// Pauser is implemented by games that draw a pause overlay.
type Pauser interface {
	SetPaused(paused bool)
}

// GameModel runs one game: it latches keys, drives the scheduler, records
// finished runs and renders the game with a help footer.
//
// Standalone models end the program on quit; models embedded in a session
// only raise flags for the session to act on.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	player     string
	keys       GameKeyMap
	help       help.Model
	latch      *InputLatch
	sched      *Scheduler
	gameState  core.GameState
	paused     bool
	runSaved   bool // Whether the current run has been recorded
	standalone bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model. store may be nil.
func NewGameModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, player string) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		store:  store,
		logger: logger.With("game", game.ID()),
		config: cfg,
		player: player,
		keys:   DefaultGameKeyMap(),
		help:   h,
		latch:  NewInputLatch(),
		sched:  NewScheduler(cfg.TickRate),
	}
}

// playHeight leaves the last terminal row for the help footer.
func playHeight(h int) int {
	return max(h-1, 0)
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	if e, ok := m.game.(interface{ Err() error }); ok && e.Err() != nil {
		m.logger.Warn("using default tuning", "err", e.Err())
	}
	m.logRunStart()
	return m.sched.Start()
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.sched.Stop()
		m.quitting = true
		if m.standalone {
			return m, tea.Quit
		}

	case core.ActionBack:
		if m.gameState.GameOver || m.paused {
			m.sched.Stop()
			m.backToMenu = true
			if m.standalone {
				return m, tea.Quit
			}
		}

	case core.ActionPause:
		if m.gameState.GameOver {
			return m, nil
		}
		return m.setPaused(!m.paused)

	case core.ActionRestart:
		if !m.gameState.GameOver {
			return m, nil
		}
		m.latch.Press(action)
		return m, m.sched.Start()

	case core.ActionLeft, core.ActionRight, core.ActionJump:
		if !m.paused {
			m.latch.Press(action)
		}
	}

	return m, nil
}

func (m GameModel) setPaused(paused bool) (tea.Model, tea.Cmd) {
	m.paused = paused
	m.gameState.Paused = paused
	if p, ok := m.game.(Pauser); ok {
		p.SetPaused(paused)
	}
	if paused {
		m.sched.Stop()
		m.latch.Reset()
		return m, nil
	}
	return m, m.sched.Start()
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.sched.Accept(msg) {
		return m, nil
	}

	result := m.game.Step(m.latch.Frame())
	m.gameState = result.State

	if result.Reset {
		m.runSaved = false
		m.logRunStart()
	}

	if m.gameState.GameOver {
		if !m.runSaved {
			m.recordRun()
			m.runSaved = true
		}
		m.sched.Stop()
		m.latch.Reset()
		return m, nil
	}

	return m, m.sched.Next()
}

func (m GameModel) logRunStart() {
	if r, ok := m.game.(Recorder); ok {
		m.logger.Debug("run started", "player", m.player, "seed", r.Record().Seed)
		return
	}
	m.logger.Debug("run started", "player", m.player)
}

// recordRun logs the finished run and saves it to the session history.
// Storage failures are logged and otherwise ignored.
func (m GameModel) recordRun() {
	run := storage.Run{
		GameID: m.game.ID(),
		Player: m.player,
		Score:  m.gameState.Score,
	}
	if r, ok := m.game.(Recorder); ok {
		rec := r.Record()
		run.Score = rec.Score
		run.Height = rec.Height
		run.Ticks = rec.Ticks
		run.Cause = rec.Cause.String()
		run.Seed = rec.Seed
	}

	m.logger.Info("run ended",
		"player", run.Player,
		"score", run.Score,
		"height", run.Height,
		"ticks", run.Ticks,
		"cause", run.Cause,
	)

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".climber", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderFrame(m.screen, m.help.View(m.keys))
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Paused reports whether the game is paused.
func (m GameModel) Paused() bool {
	return m.paused
}

// Run plays a single game in its own Bubble Tea program until the player
// quits. store may be nil.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, player string) error {
	model := NewGameModel(game, store, logger, cfg, player)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
