package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/platform/tui"
	"github.com/vovakirdan/tui-climber/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start in interactive menu mode.

Play as many runs as you like; the Session runs board lists every run
finished since the program started, best first. Nothing is kept after
you quit.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  climber menu
  climber menu --fps 30 --difficulty easy`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

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

	if err := tui.RunSession(defaultGame, store, logger, cfg, playerName()); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
