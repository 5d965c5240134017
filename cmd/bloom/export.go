package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-bloom/internal/storage"
)

var flagOwner string

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the saved garden as YAML",
	Long: `Write the saved garden to a YAML file, or to stdout when no file is
given. The file can be loaded back with 'bloom import'.

Examples:
  bloom export
  bloom export my-garden.yaml
  bloom export --owner alice alice.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runExport,
}

func init() {
	for _, c := range []*cobra.Command{exportCmd, importCmd, resetCmd} {
		c.Flags().StringVar(&flagOwner, "owner", storage.LocalOwner, "Save slot (SSH user name, or local)")
	}
}

func runExport(_ *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	rec, err := store.LoadGarden(flagOwner)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading garden: %v\n", err)
		os.Exit(1)
	}
	if rec == nil {
		fmt.Fprintf(os.Stderr, "Error: no saved garden for %q\n", flagOwner)
		os.Exit(1)
	}

	data, err := yaml.Marshal(rec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding garden: %v\n", err)
		os.Exit(1)
	}

	if len(args) == 0 {
		//nolint:errcheck // Writing to stdout
		io.WriteString(os.Stdout, string(data))
		return
	}

	if err := os.WriteFile(args[0], data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", args[0], err)
		os.Exit(1)
	}
	fmt.Printf("Exported %s garden to %s\n", flagOwner, args[0])
}
