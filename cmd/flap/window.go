package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flap/internal/platform/gui"
)

var (
	flagWidth   int
	flagHeight  int
	flagShowTPS bool
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a resizable desktop window.

Controls:
  Space/Up/W/click - Flap
  P                - Pause
  Enter            - Start, play again, save initials
  H                - How to play
  Esc              - Back
  Q                - Quit

Examples:
  flap window
  flap window --width 1280 --height 512 --tps`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", gui.DefaultWidth, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", gui.DefaultHeight, "Window height in pixels")
	windowCmd.Flags().BoolVar(&flagShowTPS, "tps", false, "Show frame rate counters")
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	board, closeBoard := openBoard(cfg, logger)
	defer closeBoard()

	return gui.Run(gui.Options{
		Config:  cfg,
		Runtime: runtimeConfig(),
		Width:   flagWidth,
		Height:  flagHeight,
		Scores:  board,
		Logger:  logger,
		ShowTPS: flagShowTPS,
	})
}
