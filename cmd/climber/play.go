package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/platform/tui"
	"github.com/vovakirdan/tui-climber/internal/registry"
	"github.com/vovakirdan/tui-climber/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to climb.

Controls:
  Left/A, Right/D  - Move (hold)
  Space/Up/W       - Jump, again in the air for a double jump
  P                - Pause
  R                - Restart (after game over)
  Esc/B            - Leave (when paused or after game over)
  Ctrl+S           - Save a screenshot to ~/.climber/screenshots
  Q/Ctrl+C         - Quit

Configuration is read from --config, ~/.climber/configs/climb.yaml,
./configs/climb.yaml or the built-in defaults, in that order.

Difficulty options:
  easy   - Slower hazard that wakes later, longer-lived vanishing platforms
  normal - The configured values
  hard   - Faster hazard that wakes sooner, quicker platforms

Examples:
  climber play
  climber play --difficulty hard
  climber play --config ./my-climb.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags that tune the game itself.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := defaultGame
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'climber list' to see available games)", gameID)
	}
	if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	// Run history for this process only
	store, err := storage.Open()
	if err != nil {
		logger.Warn("run history unavailable", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	cfg := runtimeConfig()
	cfg.ConfigPath = flagConfig
	cfg.Difficulty = flagDifficulty

	if err := tui.Run(game, store, logger, cfg, playerName()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
