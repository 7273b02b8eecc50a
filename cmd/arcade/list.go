package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/registry"
	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	games := registry.List()

	if len(games) == 0 {
		fmt.Fprintln(out, "No games available.")
		return
	}

	fmt.Fprintln(out, "Available games:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	// Play counts are a bonus; the list works without a database.
	stats := map[string]*storage.GameStats{}
	if store, err := storage.Open(flagDBPath); err == nil {
		if all, err := store.GetAllGamesStats(); err == nil {
			stats = all
		}
		store.Close()
	}

	fmt.Fprintf(out, "  %-*s  %-12s  %s\n", maxIDLen, "ID", "Title", "Played / Best")
	fmt.Fprintf(out, "  %-*s  %-12s  %s\n", maxIDLen, "--", "-----", "-------------")
	for _, g := range games {
		played := "-"
		if st, ok := stats[g.ID]; ok {
			played = fmt.Sprintf("%d / %d", st.GamesCount, st.HighScore)
		}
		fmt.Fprintf(out, "  %-*s  %-12s  %s\n", maxIDLen, g.ID, g.Title, played)
		if game, err := registry.Create(g.ID); err == nil {
			if c, ok := game.(registry.ControlsProvider); ok {
				fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "", c.Controls())
			}
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'arcade play <id>' to play a game.")
}
