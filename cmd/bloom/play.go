package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bloom/internal/platform/tui"
	"github.com/vovakirdan/tui-bloom/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open your garden",
	Long: `Open your garden. A saved flower is restored where you left it;
otherwise you start by planting a seed.

Controls:
  Left/Right/Tab  - Move through the menu
  Enter/Space     - Select
  Esc/B           - Back
  W F G X Z       - Water, fertilizer, light, weeds, pests
  Y/N             - Kind or harsh words
  [ ]             - Slower / faster
  P               - Pause
  Q/Ctrl+C        - Save and quit

Examples:
  bloom play
  bloom play --speed 600
  bloom play --difficulty hard
  bloom play --config ./my-garden.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog := interactiveLogger()
	defer closeLog()

	cfg := gardenConfig(logger)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open garden database: %v\n", err)
		// Continue without storage, the garden just won't be saved
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Garden:  cfg,
		Runtime: runtimeConfig(),
		Store:   gardenStore(store),
		Owner:   storage.LocalOwner,
		Logger:  logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running garden: %v\n", runErr)
		os.Exit(1)
	}
}
