// bloom is a terminal flower-raising simulation.
//
// Usage:
//
//	bloom                    - Start the launcher (garden, history, quit)
//	bloom play               - Open your garden directly
//	bloom seeds              - List seed kinds and their traits
//	bloom history            - Show finished blooms
//	bloom serve              - Start SSH server, one garden per user
//	bloom export [file]      - Write the saved garden as YAML
//	bloom import <file>      - Replace the saved garden from YAML
//	bloom reset              - Delete the saved garden
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible sessions
//	--db <path>          - Set database path (default: ~/.bloom/bloom.db)
//	--config <path>      - Custom garden config YAML
//	--difficulty <name>  - easy, normal or hard
//	--speed <scale>      - Game seconds per real second (default: 1)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bloom/internal/config"
	"github.com/vovakirdan/tui-bloom/internal/core"
	"github.com/vovakirdan/tui-bloom/internal/platform/tui"
	"github.com/vovakirdan/tui-bloom/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagSpeed      float64
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bloom",
	Short: "Bloom - Raise a flower in your terminal",
	Long: `Bloom is a terminal simulation where you raise a single flower from
seed to bloom. Water it, give it light, keep weeds and pests away and
talk to it. How you care for it decides what it grows into.

Available commands:
  play     - Open your garden directly
  seeds    - List seed kinds
  history  - View finished blooms
  serve    - Start SSH server for remote gardens
  export   - Write the saved garden as YAML
  import   - Replace the saved garden from YAML
  reset    - Delete the saved garden

Examples:
  bloom
  bloom play --speed 60
  bloom history --csv blooms.csv
  bloom serve --ssh :2222`,
	Run: runLauncher,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bloom/bloom.db", "Path to garden database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom garden config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().Float64Var(&flagSpeed, "speed", 1, "Game seconds per real second")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(seedsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "bloom",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// gardenConfig loads the garden config and applies the difficulty flag.
func gardenConfig(logger *log.Logger) config.GardenConfig {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadGarden(flagConfig, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.ApplyGardenPreset(&cfg, preset)
	return cfg
}

// runtimeConfig sizes the session to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		TickRate:  flagFPS,
		Seed:      flagSeed,
		TimeScale: flagSpeed,
	}
}

// openStore opens the database or exits.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening garden database: %v\n", err)
		os.Exit(1)
	}
	return store
}

// gardenStore returns store as a tui.GardenStore, keeping a nil store a nil interface.
func gardenStore(store *storage.Store) tui.GardenStore {
	if store == nil {
		return nil
	}
	return store
}

// interactiveLogger logs to the log file, or nowhere if it cannot be opened.
// The returned func closes the file.
func interactiveLogger() (*log.Logger, func()) {
	f, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return newLogger(io.Discard), func() {}
	}
	//nolint:errcheck // Best-effort close on exit
	return newLogger(f), func() { f.Close() }
}

// openLogFile opens ~/.bloom/bloom.log so logs stay off the alt screen.
func openLogFile() (io.WriteCloser, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".bloom")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "bloom.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}
