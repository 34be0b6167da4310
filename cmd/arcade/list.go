package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kiro-arcade/internal/registry"
	"github.com/vovakirdan/kiro-arcade/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade, with play counts when a scores database exists.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	var stats map[string]*storage.GameStats
	if store, err := storage.Open(settings.DBPath); err == nil {
		stats, err = store.GetAllGamesStats()
		if err != nil {
			logger.Warn("could not load game stats", "error", err)
		}
		store.Close()
	}

	printGames(os.Stdout, registry.List(), stats)
}

// printGames writes the game list. stats may be nil.
func printGames(w io.Writer, games []registry.GameInfo, stats map[string]*storage.GameStats) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No games available.")
		return
	}

	fmt.Fprintln(w, "Available games:")
	fmt.Fprintln(w)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	// Print header
	fmt.Fprintf(w, "  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Played")
	fmt.Fprintf(w, "  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "------")

	for _, g := range games {
		played := "-"
		if st, ok := stats[g.ID]; ok {
			played = fmt.Sprintf("%d (best %d)", st.GamesCount, st.HighScore)
		}
		fmt.Fprintf(w, "  %-*s  %-*s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, played)
		if g.Controls != "" {
			fmt.Fprintf(w, "  %-*s    %s\n", maxIDLen, "", g.Controls)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'arcade play <id>' to play a game.")
}
