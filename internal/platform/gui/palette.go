package gui

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/flap/internal/core"
)

// Extra shades the window frontend uses on top of the shared palette.
const (
	colorPipeBright  core.Color = "#32CD32"
	colorPipeForest  core.Color = "#228B22"
	colorHeroOutline core.Color = "#FF8F00"
	colorBelly       core.Color = "#FFF8E1"
	colorWing        core.Color = "#FF9800"
	colorWingOutline core.Color = "#E65100"
	colorTail        core.Color = "#FF5722"
	colorBlush       core.Color = "#FFB6C1"
	colorEyeWhite    core.Color = "#FFFFFF"
)

// rgba converts a palette colour to an image colour with the given alpha.
// Unparseable colours become opaque magenta so they stand out.
func rgba(c core.Color, alpha float64) color.NRGBA {
	cc, err := colorful.Hex(string(c))
	if err != nil {
		return color.NRGBA{R: 0xFF, B: 0xFF, A: 0xFF}
	}
	r, g, b := cc.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(core.ClampF(alpha, 0, 1)*255 + 0.5)}
}

// shade mixes c toward white (amount > 0) or black (amount < 0).
func shade(c core.Color, amount float64) core.Color {
	cc, err := colorful.Hex(string(c))
	if err != nil {
		return c
	}
	target := colorful.Color{R: 1, G: 1, B: 1}
	if amount < 0 {
		target = colorful.Color{}
		amount = -amount
	}
	return core.Color(cc.BlendRgb(target, amount).Clamped().Hex())
}

// gradient samples a vertical sky gradient at t in [0, 1].
func gradient(top, bottom core.Color, t float64) core.Color {
	a, err1 := colorful.Hex(string(top))
	b, err2 := colorful.Hex(string(bottom))
	if err1 != nil || err2 != nil {
		return top
	}
	return core.Color(a.BlendRgb(b, core.ClampF(t, 0, 1)).Clamped().Hex())
}
