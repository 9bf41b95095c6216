// slicer is a swipe-to-cut arcade game for the terminal.
//
// Usage:
//
//	slicer play              - Play a round right away
//	slicer menu              - Start with the main menu
//	slicer serve             - Start SSH server for remote play
//	slicer scores            - Show high scores
//	slicer simulate          - Let the autopilot play a headless round
//	slicer list              - List available games
//	slicer config            - Print or check the game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//
// Flags left unset fall back to SLICER_* environment variables, which may
// also come from a .env file in the working directory.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-slicer/internal/config"
	"github.com/vovakirdan/tui-slicer/internal/core"
	"github.com/vovakirdan/tui-slicer/internal/games/slicer"
	"github.com/vovakirdan/tui-slicer/internal/platform/tui"
	"github.com/vovakirdan/tui-slicer/internal/registry"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slicer",
	Short: "Slicer - slice flying fruit with your mouse, in your terminal",
	Long: `Slicer throws fruit up from the bottom of your terminal.
Drag the mouse across it to cut it, and never cut a bomb.

Available commands:
  play      - Play a round right away
  menu      - Main menu with difficulty picker and scoreboard
  serve     - Start SSH server for remote play
  scores    - View high scores
  simulate  - Let the autopilot play a headless round
  list      - Show all available games
  config    - Print or check the game config

Examples:
  slicer play
  slicer play --difficulty hard
  slicer menu --fps 30
  slicer serve --ssh :2222
  slicer simulate --seed 42`,
	PersistentPreRunE: applyEnv,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// applyEnv loads .env and fills flags the user did not set from SLICER_* variables.
func applyEnv(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnv(); err != nil {
		return err
	}

	fromEnv := []struct {
		flag   string
		env    string
		target *string
	}{
		{"db", config.EnvDB, &flagDBPath},
		{"config", config.EnvConfig, &flagConfig},
		{"difficulty", config.EnvDifficulty, &flagDifficulty},
		{"log-level", config.EnvLogLevel, &flagLogLevel},
	}
	for _, f := range fromEnv {
		if !cmd.Flags().Changed(f.flag) {
			*f.target = config.GetEnv(f.env, *f.target)
		}
	}

	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	return nil
}

// loadGameConfig loads the game config and applies a difficulty preset.
func loadGameConfig(preset config.DifficultyPreset) (config.SlicerConfig, error) {
	cfg, err := config.LoadSlicer(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplySlicerPreset(&cfg, preset)
	return cfg, nil
}

// gameFactory builds games from the config file for the chosen preset.
func gameFactory(logger *log.Logger) tui.GameFactory {
	return func(preset config.DifficultyPreset) (registry.Game, error) {
		cfg, err := loadGameConfig(preset)
		if err != nil {
			return nil, err
		}
		game, err := slicer.New(slicer.Options{Config: cfg, Logger: logger})
		if err != nil {
			return nil, err
		}
		return game, nil
	}
}

// runtimeConfig sizes the game to the current terminal.
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

// preset returns the validated --difficulty value.
func preset() config.DifficultyPreset {
	p, _ := config.ParsePreset(flagDifficulty) // validated in applyEnv
	return p
}
