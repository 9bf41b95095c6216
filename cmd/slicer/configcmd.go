package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slicer/internal/config"
	"github.com/vovakirdan/tui-slicer/internal/games/slicer"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config or check a custom one",
	Long: `Without --config, prints the built-in configuration as YAML. Save it to
~/.arcade/configs/slicer.yaml or ./configs/slicer.yaml and edit it; keys you
leave out keep their defaults.

With --config, loads and validates the given file instead.

Examples:
  slicer config > ~/.arcade/configs/slicer.yaml
  slicer config --config ./my-slicer.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfig == "" {
		os.Stdout.Write(config.GetDefaultYAML(slicer.ID))
		return
	}

	cfg, err := loadGameConfig(preset())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s is valid (lives %d, spawn every %d-%d ticks, difficulty enabled: %v)\n",
		flagConfig, cfg.Gameplay.Lives, cfg.Spawn.MinInterval, cfg.Spawn.BaseInterval, cfg.Difficulty.Enabled)
}
