package core

// Terminal cells are mapped onto virtual pixels so the simulation always runs
// in pixel units regardless of the frontend.
const (
	CellPixelsX = 8
	CellPixelsY = 16
)

// RuntimeConfig contains options supplied by the command line that are not
// part of the game tuning file.
type RuntimeConfig struct {
	FPS   int   // Frame rate of the host loop
	Seed  int64 // RNG seed; 0 means seed from the clock
	Muted bool  // Disable sound effects
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		FPS:  60,
		Seed: 0,
	}
}

// CellsToPixels converts a terminal size into the virtual pixel viewport.
func CellsToPixels(cols, rows int) (float64, float64) {
	return float64(cols * CellPixelsX), float64(rows * CellPixelsY)
}
