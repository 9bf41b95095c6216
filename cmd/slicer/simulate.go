package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slicer/internal/games/slicer"
	"github.com/vovakirdan/tui-slicer/internal/games/slicer/sim"
	"github.com/vovakirdan/tui-slicer/internal/logging"
	"github.com/vovakirdan/tui-slicer/internal/storage"
)

var (
	flagSimTicks    int
	flagSimWidth    int
	flagSimHeight   int
	flagSimRealtime bool
	flagSimRecord   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Let the autopilot play a headless round",
	Long: `Run one round without a terminal UI. A simple autopilot swipes through
fruit near the top of its arc and avoids bombs. The same seed always plays
the same round.

Examples:
  slicer simulate --seed 42
  slicer simulate --ticks 0 --difficulty hard   # play until game over
  slicer simulate --realtime --fps 30
  slicer simulate --record                      # save the result to the scoreboard`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Stop after this many ticks (0 = until game over)")
	simulateCmd.Flags().IntVar(&flagSimWidth, "width", 80, "Emulated terminal width")
	simulateCmd.Flags().IntVar(&flagSimHeight, "height", 24, "Emulated terminal height")
	simulateCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Pace ticks at --fps instead of running flat out")
	simulateCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save the round to the scores database")
}

func runSimulate(_ *cobra.Command, _ []string) {
	logger, err := logging.New(os.Stderr, flagLogLevel, "slicer-sim")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadGameConfig(preset())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var interval time.Duration
	if flagSimRealtime && flagFPS > 0 {
		interval = time.Second / time.Duration(flagFPS)
	}

	var store *storage.Store
	opts := slicer.HeadlessOptions{
		Config:   cfg,
		Seed:     seed,
		Width:    flagSimWidth,
		Height:   flagSimHeight,
		MaxTicks: flagSimTicks,
		Interval: interval,
		Logger:   logger,
	}
	if flagSimRecord {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
		opts.Store = store.ForGame(slicer.ID)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := slicer.RunHeadless(ctx, opts)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if store != nil && res.Score > 0 {
		if _, err := store.SaveScore(slicer.ID, res.Score); err != nil {
			logger.Warn("could not save score", "error", err)
		}
	}

	reason := "tick limit"
	switch {
	case errors.Is(err, context.Canceled):
		reason = "interrupted"
	case res.Reason != sim.EndNone:
		reason = res.Reason.String()
	}

	fmt.Printf("Seed:    %d\n", seed)
	fmt.Printf("Score:   %d\n", res.Score)
	fmt.Printf("Best:    %d", res.HighScore)
	if res.NewHighScore {
		fmt.Print("  (new high score)")
	}
	fmt.Println()
	fmt.Printf("Ticks:   %d\n", res.Ticks)
	fmt.Printf("Swipes:  %d\n", res.Swipes)
	fmt.Printf("Ended:   %s\n", reason)
	fmt.Printf("Cues:    throw=%d slice=%d combo=%d freeze=%d hazard=%d\n",
		res.Cues[sim.CueThrow], res.Cues[sim.CueSlice], res.Cues[sim.CueCombo],
		res.Cues[sim.CueFreeze], res.Cues[sim.CueHazard])
}
