// flap is a side-scrolling flying game for the terminal and the desktop.
//
// Usage:
//
//	flap play      - Play in this terminal
//	flap window    - Play in a desktop window
//	flap serve     - Start SSH server for remote play
//	flap scores    - Show the high-score table
//	flap config    - Print the default game config
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible worlds
//	--db <path>           - Set database path (default: ~/.flap/scores.db)
//	--config <path>       - Load game tuning from a YAML file
//	--difficulty <preset> - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
//	--mute                - Disable sound effects
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flap/internal/config"
	"github.com/vovakirdan/flap/internal/core"
	"github.com/vovakirdan/flap/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flap",
	Short: "Flap - a side-scrolling flying game",
	Long: `Flap is a one-button game: keep the bird in the air and fly it through
the gaps between pipes. Every pipe pair passed scores a point.

Available commands:
  play     - Play in this terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the default game config

Examples:
  flap play
  flap play --difficulty hard
  flap window --mute
  flap serve --addr :2222
  flap scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flap/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound effects")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flap",
		Level:           level,
	}), nil
}

// openLogFile opens ~/.flap/flap.log for appending.
func openLogFile() (*os.File, error) {
	dir := config.DataDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return os.OpenFile(filepath.Join(dir, "flap.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// loadGameConfig applies --config and --difficulty.
func loadGameConfig() (config.FlapConfig, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.FlapConfig{}, err
	}
	return config.LoadWithPreset(flagConfig, preset)
}

func runtimeConfig() core.RuntimeConfig {
	rt := core.DefaultRuntimeConfig()
	if flagFPS > 0 {
		rt.FPS = flagFPS
	}
	rt.Seed = flagSeed
	rt.Muted = flagMute
	return rt
}

// openBoard opens the score database. A database that cannot be opened is
// logged and the game keeps scores in memory.
func openBoard(cfg config.FlapConfig, logger *log.Logger) (*storage.Board, func()) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "err", err)
		store = nil
	}
	board := storage.NewBoard(store, cfg.Scores.MaxEntries, cfg.Scores.DefaultInitials, logger)
	return board, func() {
		if store != nil {
			if err := store.Close(); err != nil {
				logger.Warn("closing scores database", "err", err)
			}
		}
	}
}
