package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slicer/internal/registry"
	"github.com/vovakirdan/tui-slicer/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered with the platform.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	// Stats are optional; a missing database just leaves the columns blank
	stats := map[string]*storage.GameStats{}
	if store, err := storage.Open(flagDBPath); err == nil {
		if all, err := store.GetAllGamesStats(); err == nil {
			stats = all
		}
		store.Close()
	}

	fmt.Printf("  %-*s  %-10s  %-6s  %s\n", maxIDLen, "ID", "Title", "Best", "Rounds")
	fmt.Printf("  %-*s  %-10s  %-6s  %s\n", maxIDLen, "--", "-----", "----", "------")
	for _, g := range games {
		best, rounds := 0, 0
		if st, ok := stats[g.ID]; ok {
			best, rounds = st.HighScore, st.GamesCount
		}
		fmt.Printf("  %-*s  %-10s  %-6d  %d\n", maxIDLen, g.ID, g.Title, best, rounds)
	}

	fmt.Println()
	fmt.Println("Run 'slicer play' to play.")
}
