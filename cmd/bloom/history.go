package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bloom/internal/platform/tui"
	"github.com/vovakirdan/tui-bloom/internal/storage"
)

var (
	flagHistoryOwner  string
	flagHistoryLimit  int
	flagHistoryCSV    string
	flagHistoryBrowse bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show finished blooms",
	Long: `Display the flowers that have bloomed, newest first, with a summary
of how long they took to grow.

Examples:
  bloom history
  bloom history --owner alice
  bloom history --csv blooms.csv
  bloom history --browse`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagHistoryOwner, "owner", "", "Only show this gardener (default: everyone)")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of blooms to show")
	historyCmd.Flags().StringVar(&flagHistoryCSV, "csv", "", "Write the blooms to a CSV file instead")
	historyCmd.Flags().BoolVar(&flagHistoryBrowse, "browse", false, "Open the interactive history browser")
}

func runHistory(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	if flagHistoryBrowse {
		rt := runtimeConfig()
		if _, err := tui.RunHistory(store, rt.ScreenW, rt.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flagHistoryCSV != "" {
		exportBloomsCSV(store)
		return
	}

	entries, err := store.Blooms(flagHistoryOwner, flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving blooms: %v\n", err)
		os.Exit(1)
	}

	who := "everyone"
	if flagHistoryOwner != "" {
		who = flagHistoryOwner
	}
	fmt.Printf("Bloom History - %s\n", who)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No flowers have bloomed yet.")
		fmt.Println()
		fmt.Println("Run 'bloom play' to raise the first one!")
		return
	}

	fmt.Printf("  %-12s  %-6s  %-9s  %-8s  %-12s  %s\n", "Gardener", "Seed", "Shape", "Bloom", "Grown in", "Date")
	fmt.Printf("  %-12s  %-6s  %-9s  %-8s  %-12s  %s\n", "--------", "----", "-----", "-----", "--------", "----")

	for _, e := range entries {
		fmt.Printf("  %-12s  %-6s  %-9s  %-8s  %-12s  %s\n",
			e.Owner, e.Seed, dash(e.Phase2), dash(e.Phase3),
			gameDuration(e.AgeSeconds), e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.BloomStats(flagHistoryOwner)
	if err == nil && stats.Count > 0 {
		fmt.Println()
		fmt.Printf("Blooms: %d  Average: %s  Spread: %s  Most common: %s\n",
			stats.Count, gameDuration(stats.MeanAge), gameDuration(stats.StdDevAge), dash(stats.TopOutcome))
	}
}

func exportBloomsCSV(store *storage.Store) {
	entries, err := store.Blooms(flagHistoryOwner, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving blooms: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Create(flagHistoryCSV)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", flagHistoryCSV, err)
		os.Exit(1)
	}

	if err := errors.Join(storage.WriteBloomsCSV(f, entries), f.Close()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", flagHistoryCSV, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d blooms to %s\n", len(entries), flagHistoryCSV)
}

// gameDuration renders game seconds as days, hours and minutes.
func gameDuration(seconds float64) string {
	total := int64(seconds)
	d := total / 86400
	h := (total % 86400) / 3600
	m := (total % 3600) / 60
	if d > 0 {
		return fmt.Sprintf("%dd %02dh %02dm", d, h, m)
	}
	return fmt.Sprintf("%02dh %02dm", h, m)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
