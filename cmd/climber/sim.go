package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-climber/internal/climb"
	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/storage"
)

var (
	flagSimRuns  int
	flagSimTicks int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Let the autopilot play without a terminal",
	Long: `Run the built-in autopilot against the simulation and print the results.

Every run starts from the previous run's reset, so a fixed --seed makes the
whole batch reproducible. A run that survives --ticks ticks is cut off.

Examples:
  climber sim
  climber sim --runs 20 --seed 42
  climber sim --difficulty hard --ticks 5000`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 5, "Number of runs to play")
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 20000, "Tick limit per run")
	addGameFlags(simCmd)
}

func runSim(cmd *cobra.Command, _ []string) error {
	if flagSimRuns < 1 || flagSimTicks < 1 {
		return fmt.Errorf("--runs and --ticks must be positive")
	}
	if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open()
	if err != nil {
		return err
	}
	defer store.Close()

	cfg := runtimeConfig()
	cfg.ConfigPath = flagConfig
	cfg.Difficulty = flagDifficulty
	if cfg.Seed == 0 {
		cfg.Seed = 1
	}

	game := climb.NewGame()
	game.Reset(cfg)
	if err := game.Err(); err != nil {
		logger.Warn("using default tuning", "err", err)
	}

	pilot := climb.NewAutopilot()
	for run := 1; run <= flagSimRuns; run++ {
		if game.Snapshot().State == climb.StateGameOver {
			game.Step(climb.Intents{Reset: true}.Frame())
		}
		snap := game.Snapshot()
		for snap.State == climb.StatePlaying && int(snap.Tick) < flagSimTicks {
			game.Step(pilot.Next(snap).Frame())
			snap = game.Snapshot()
		}

		rec := game.Record()
		cause := rec.Cause.String()
		if snap.State == climb.StatePlaying {
			cause = "cutoff"
			// A live run ignores reset, so start the next one from scratch
			game = restartAt(cfg, rec.Seed+1)
		}
		logger.Debug("run finished", "run", run, "score", rec.Score, "height", rec.Height, "cause", cause, "ticks", rec.Ticks)

		if _, err := store.SaveRun(storage.Run{
			GameID: game.ID(),
			Player: "autopilot",
			Score:  rec.Score,
			Height: rec.Height,
			Ticks:  rec.Ticks,
			Cause:  cause,
			Seed:   rec.Seed,
		}); err != nil {
			return err
		}
	}

	return printSimSummary(cmd, store, game.ID())
}

// restartAt builds a fresh game at seed for runs that hit the tick limit.
func restartAt(cfg core.RuntimeConfig, seed int64) *climb.Game {
	cfg.Seed = seed
	g := climb.NewGame()
	g.Reset(cfg)
	return g
}

func printSimSummary(cmd *cobra.Command, store *storage.Store, gameID string) error {
	runs, err := store.TopRuns(gameID, flagSimRuns)
	if err != nil {
		return err
	}
	stats, err := store.GameStats(gameID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tSCORE\tHEIGHT\tTICKS\tCAUSE\tSEED")
	for i, r := range runs {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%s\t%d\n", i+1, r.Score, r.Height, r.Ticks, r.Cause, r.Seed)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Runs: %d  Best: %d  Average: %.1f  Ticks: %d\n",
		stats.Runs, stats.BestScore, stats.AvgScore, stats.TotalTicks)
	return nil
}
