package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bloom/internal/engine"
	"github.com/vovakirdan/tui-bloom/internal/garden"
	"github.com/vovakirdan/tui-bloom/internal/platform/tui"
	"github.com/vovakirdan/tui-bloom/internal/storage"
)

// runLauncher loops launcher -> garden or history -> launcher until quit.
func runLauncher(_ *cobra.Command, _ []string) {
	logger, closeLog := interactiveLogger()
	defer closeLog()

	cfg := gardenConfig(logger)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open garden database: %v\n", err)
		store = nil
	}

	rt := runtimeConfig()

	for {
		choice, updated, err := tui.RunLauncher(rt, savedGardenLine(store, cfg.Gate.StartHour), hasBlooms(store))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		rt = updated

		if choice == tui.LaunchQuit {
			break
		}

		if choice == tui.LaunchHistory {
			var source tui.BloomSource
			if store != nil {
				source = store
			}
			goBack, histErr := tui.RunHistory(source, rt.ScreenW, rt.ScreenH)
			if histErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", histErr)
			}
			if goBack {
				continue
			}
			break
		}

		if err := tui.Run(tui.Options{
			Garden:  cfg,
			Runtime: rt,
			Store:   gardenStore(store),
			Owner:   storage.LocalOwner,
			Logger:  logger,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error running garden: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}

// savedGardenLine describes the local save slot for the launcher.
func savedGardenLine(store *storage.Store, startHour int) string {
	if store == nil {
		return "Gardens will not be saved"
	}
	rec, err := store.LoadGarden(storage.LocalOwner)
	if err != nil || rec == nil {
		return "No flower planted yet"
	}
	seed, okSeed := garden.ParseSeed(rec.Seed)
	stage, okStage := garden.ParseStage(rec.Stage)
	if !okSeed || !okStage {
		return "Saved garden cannot be read"
	}
	return fmt.Sprintf("%s %s, %s", seed, stage, engine.FormatClock(rec.AgeSeconds+float64(startHour)*3600))
}

func hasBlooms(store *storage.Store) bool {
	if store == nil {
		return false
	}
	entries, err := store.Blooms("", 1)
	return err == nil && len(entries) > 0
}
