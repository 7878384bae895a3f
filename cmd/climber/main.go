// climber is a vertical platformer for the terminal: climb an endless tower
// of platforms while a hazard rises from below.
//
// Usage:
//
//	climber list              - List available games
//	climber play [game]       - Play a game (default: climb)
//	climber menu              - Title menu with this session's runs
//	climber serve             - Start SSH server for remote play
//	climber sim               - Run the autopilot headless and print results
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file (TUI modes discard them otherwise)
package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	// Import games to register them
	_ "github.com/vovakirdan/tui-climber/internal/climb"
	"github.com/vovakirdan/tui-climber/internal/core"
)

const defaultGame = "climb"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "climber",
	Short: "Sky Climber - a vertical platformer in your terminal",
	Long: `Sky Climber is a terminal platformer. Jump from platform to platform,
use your air jump wisely and stay ahead of the rising hazard.

Available commands:
  list     - Show all available games
  play     - Play directly
  menu     - Title menu with the runs of this session
  serve    - Start SSH server for remote play
  sim      - Let the autopilot play headless

Examples:
  climber play
  climber play --difficulty hard
  climber menu
  climber serve --ssh :2222
  climber sim --runs 20 --seed 42`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger builds the process logger. Without --log-file it writes to
// fallback; TUI modes pass io.Discard because the alternate screen owns the
// terminal. The returned close function releases the log file, if any.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "climber",
		ReportTimestamp: true,
	})
	return logger, closeFn, nil
}

// runtimeConfig builds the game config from the global flags and the
// terminal size, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// playerName is the local account name shown in the runs board.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}
