// shootout is a terminal penalty-shot hockey game: you are the goaltender,
// the machine is the shooter, ten rounds decide the match.
//
// Usage:
//
//	shootout play            - Play a match in the local terminal
//	shootout serve           - Start SSH server for remote play
//	shootout scores          - Show past match results
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible matches
//	--db <path>     - Set database path (default: ~/.shootout/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/mkazakov/tui-shootout/internal/shootout"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shootout",
	Short: "Penalty Shootout - Guard the net in your terminal",
	Long: `Shootout is a terminal penalty-shot hockey game. You control the
goaltender; an AI shooter attacks your net for ten rounds, getting faster
and smarter each time.

Available commands:
  play     - Play a match in the local terminal
  serve    - Start SSH server for remote play
  scores   - View past match results

Examples:
  shootout play
  shootout play --seed 42
  shootout serve --ssh :2222
  shootout scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shootout/results.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
