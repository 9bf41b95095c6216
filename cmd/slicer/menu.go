package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Slicer with the main menu",
	Long: `Start Slicer in interactive menu mode.

Pick a difficulty, play, and browse your score history.
After a round you can press B to return to the menu.

Controls:
  Up/Down/j/k      - Navigate menu
  Left/Right/h/l   - Change difficulty
  Enter/Space      - Select
  Tab              - High scores
  Q                - Quit

Examples:
  slicer menu
  slicer menu --fps 30
  slicer menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := runSession(false); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
