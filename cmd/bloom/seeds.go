package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bloom/internal/garden"
)

var seedsCmd = &cobra.Command{
	Use:   "seeds",
	Short: "List seed kinds",
	Long: `Shows each seed kind with the traits the active config gives it.

Bias shifts the score that decides the stem shape; Base starts the
score that decides the flower.`,
	Args: cobra.NoArgs,
	Run:  runSeeds,
}

func runSeeds(_ *cobra.Command, _ []string) {
	cfg := gardenConfig(newLogger(os.Stderr))

	fmt.Println("Seeds:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, s := range garden.Seeds {
		if len(s.ID()) > maxIDLen {
			maxIDLen = len(s.ID())
		}
	}

	fmt.Printf("  %-3s  %-*s  %-6s  %-5s  %s\n", "Key", maxIDLen, "ID", "Bias", "Base", "Name")
	fmt.Printf("  %-3s  %-*s  %-6s  %-5s  %s\n", "---", maxIDLen, "--", "----", "----", "----")

	for i, s := range garden.Seeds {
		bias := cfg.Branches.Phase2.SeedBias[s.ID()]
		base := cfg.Branches.Phase3.SeedBase[s.ID()]
		fmt.Printf("  %-3d  %-*s  %+6.1f  %5d  %s\n", i+1, maxIDLen, s.ID(), bias, base, s)
	}

	fmt.Println()
	fmt.Println("Run 'bloom play' and pick a seed to plant it.")
}
