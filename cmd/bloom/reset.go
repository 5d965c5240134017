package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagResetBlooms bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the saved garden",
	Long: `Delete the flower in a save slot so the next session starts from the
title screen. Bloom history is kept unless --blooms is given.

Examples:
  bloom reset
  bloom reset --owner alice
  bloom reset --blooms`,
	Args: cobra.NoArgs,
	Run:  runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetBlooms, "blooms", false, "Also clear this owner's bloom history")
}

func runReset(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	if err := store.DeleteGarden(flagOwner); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting garden: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Garden %q cleared\n", flagOwner)

	if flagResetBlooms {
		if err := store.ClearBlooms(flagOwner); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing blooms: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Bloom history for %q cleared\n", flagOwner)
	}
}
