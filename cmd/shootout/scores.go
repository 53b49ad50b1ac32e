package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkazakov/tui-shootout/internal/platform/tui"
	"github.com/mkazakov/tui-shootout/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show past match results",
	Long: `Display past match results and the aggregated save breakdown.

In an interactive terminal this opens the scrollable scoreboard screen;
when output is piped or redirected it prints a plain listing instead.

Examples:
  shootout scores
  shootout scores --db ./results.db
  shootout scores > results.txt`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
			width = w
			height = h
		}
		if _, sbErr := tui.RunScoreboard(store, width, height); sbErr == nil {
			return
		}
		// Fall through to the plain listing if the screen could not start
	}

	printScores(store)
}

// printScores writes the plain (non-interactive) listing to stdout.
func printScores(store *storage.Store) {
	matches, err := store.TopMatches(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Match Results - Penalty Shootout")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'shootout play' to make history!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-6s  %s\n", "Rank", "Saves", "Goals", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range matches {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-6d  %s\n", i+1, entry.Saves, entry.Goals, dateStr)
	}

	fmt.Println()
	if best, err := store.BestSaves(); err == nil {
		fmt.Printf("Best: %d saves\n", best)
	}

	stats, err := store.SaveTypeBreakdown()
	if err != nil || len(stats) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Saves by type:")
	for _, st := range stats {
		fmt.Printf("  %-12s %d\n", st.SaveType, st.Count)
	}
}
