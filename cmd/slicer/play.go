package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slicer/internal/games/slicer"
	"github.com/vovakirdan/tui-slicer/internal/logging"
	"github.com/vovakirdan/tui-slicer/internal/platform/tui"
	"github.com/vovakirdan/tui-slicer/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round right away",
	Long: `Start a round of Slicer without the menu.

Controls:
  Mouse drag  - Slice
  Space/Enter - Start
  P/Esc       - Pause
  R           - Restart (after game over)
  B           - Back to the menu (when paused or after game over)
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at lowest difficulty, two extra lives, longer combo window
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, one life less, more bombs
  fixed  - No progression, stays at config's initial level

Examples:
  slicer play
  slicer play --difficulty hard
  slicer play --seed 42
  slicer play --config ./my-slicer.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := runSession(true); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// runSession runs the local TUI, logging to a file since the terminal is taken.
func runSession(skipMenu bool) error {
	logger, closeLog := fileLogger()
	defer closeLog()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.RunSession(tui.SessionOptions{
		GameID:   slicer.ID,
		NewGame:  gameFactory(logger),
		Preset:   preset(),
		Store:    store,
		Logger:   logger,
		Runtime:  runtimeConfig(),
		SkipMenu: skipMenu,
	})
}

// fileLogger opens the log file. Without one, logs are dropped.
func fileLogger() (*log.Logger, func()) {
	f, err := logging.OpenFile(logging.DefaultLogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return logging.Discard(), func() {}
	}

	logger, err := logging.New(f, flagLogLevel, "slicer")
	if err != nil {
		f.Close()
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return logging.Discard(), func() {}
	}
	return logger, func() { f.Close() }
}
