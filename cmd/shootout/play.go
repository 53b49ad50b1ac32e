package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkazakov/tui-shootout/internal/commentary"
	"github.com/mkazakov/tui-shootout/internal/config"
	"github.com/mkazakov/tui-shootout/internal/core"
	"github.com/mkazakov/tui-shootout/internal/platform/tui"
	"github.com/mkazakov/tui-shootout/internal/registry"
	"github.com/mkazakov/tui-shootout/internal/shootout"
	"github.com/mkazakov/tui-shootout/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a shootout match",
	Long: `Start a ten-round penalty shootout in the local terminal.

Controls:
  W/A/S/D, Arrows  - Move the goalie
  U or 1           - Raise the stick (glove side)
  I or 2           - Stick straight
  O or 3           - Drop the stick (butterfly)
  Mouse drag       - Position the goalie directly
  P                - Pause
  R                - Restart (after the match ends)
  Q/Ctrl+C         - Quit

Examples:
  shootout play
  shootout play --seed 42
  shootout play --config ./my-shootout.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	// Set config path before creation so the factory picks it up
	shootout.SetConfigPath(flagConfig)

	game, err := registry.Create("shootout")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// The commentary client is built from the same config file as the
	// simulation tuning; without a URL it degrades to canned lines.
	gameCfg, err := config.LoadShootout(flagConfig)
	if err != nil {
		gameCfg = config.DefaultShootoutConfig()
	}
	announcer := commentary.NewClient(gameCfg.Commentary)

	runErr := tui.Run(game, store, announcer, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
