package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flap/internal/platform/sound"
	"github.com/vovakirdan/flap/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in the current terminal.

Controls:
  Space/Up/W  - Flap
  P           - Pause
  Enter       - Start, play again, save initials
  ?/H         - How to play
  Esc         - Back
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Logs are written to ~/.flap/flap.log.

Examples:
  flap play
  flap play --difficulty easy
  flap play --config ./my-flap.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger, err := newLogger(logFile)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	board, closeBoard := openBoard(cfg, logger)
	defer closeBoard()

	rt := runtimeConfig()
	logger.Info("starting terminal game", "width", width, "height", height, "seed", rt.Seed)

	if err := tui.Run(tui.Options{
		Config:  cfg,
		Runtime: rt,
		Width:   width,
		Height:  height,
		Scores:  board,
		Audio:   sound.NewPlayer(logger, rt.Muted),
		Logger:  logger,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
