package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-bloom/internal/garden"
	"github.com/vovakirdan/tui-bloom/internal/rng"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the saved garden from YAML",
	Long: `Load a garden written by 'bloom export' into a save slot,
replacing whatever was saved there.

The file must carry a version field. Records from older versions are
upgraded on import. A record that cannot be turned into a plant is
refused and the slot is left alone.

Examples:
  bloom import my-garden.yaml
  bloom import --owner alice alice.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runImport,
}

func runImport(_ *cobra.Command, args []string) {
	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", args[0], err)
		os.Exit(1)
	}

	var rec garden.Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", args[0], err)
		os.Exit(1)
	}

	cfg := gardenConfig(newLogger(os.Stderr))
	plant, err := garden.Restore(rec, cfg, rng.New(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !plant.IsAlive() {
		fmt.Fprintln(os.Stderr, "Error: the garden in this file has withered")
		os.Exit(1)
	}

	store := openStore()
	defer store.Close()

	normalized := plant.Serialize()
	if err := store.SaveGarden(flagOwner, normalized); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving garden: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Imported %s %s into %s\n", plant.State().Seed, plant.State().Stage, flagOwner)
}
