package core

import "math"

// Reference playfield the game was tuned for. Everything that depends on the
// viewport is expressed in these units and multiplied by the scale factors.
const (
	DefaultOriginalWidth  = 500.0
	DefaultOriginalHeight = 200.0
)

// Base hero dimensions in reference units, before the doubling rule.
const (
	heroBaseWidth  = 15.0
	heroBaseHeight = 10.0
)

// Scaling describes how the reference playfield maps onto the current
// viewport. It is recomputed on every resize and passed by value to whatever
// needs it.
type Scaling struct {
	ViewW  float64 // Viewport width in world pixels
	ViewH  float64 // Viewport height in world pixels
	ScaleX float64
	ScaleY float64
	Bottom float64 // Floor line, equal to the viewport height
}

// NewScaling computes scale factors for a viewport against the reference size.
// Non-positive reference sizes fall back to the defaults.
func NewScaling(viewW, viewH, originalW, originalH float64) Scaling {
	if originalW <= 0 {
		originalW = DefaultOriginalWidth
	}
	if originalH <= 0 {
		originalH = DefaultOriginalHeight
	}
	return Scaling{
		ViewW:  viewW,
		ViewH:  viewH,
		ScaleX: viewW / originalW,
		ScaleY: viewH / originalH,
		Bottom: viewH,
	}
}

// HeroSize returns the hero's visual size for this scale. The hero is drawn at
// twice its base dimensions.
func (s Scaling) HeroSize() Size {
	return Size{
		Width:  heroBaseWidth * s.ScaleX * 2,
		Height: heroBaseHeight * s.ScaleY * 2,
	}
}

// MinScale returns the smaller of the two scale factors.
func (s Scaling) MinScale() float64 {
	return math.Min(s.ScaleX, s.ScaleY)
}
