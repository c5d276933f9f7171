package tui

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/flap/internal/core"
	"github.com/vovakirdan/flap/internal/games/flappy"
	"github.com/vovakirdan/flap/internal/games/flappy/world"
)

// DrawScene paints the playfield into dst, back to front. It only reads s.
func DrawScene(dst *core.Screen, s *flappy.State, env flappy.Env) {
	drawSky(dst)
	drawClouds(dst, s.Clouds, 0.6)
	drawSkyline(dst, s.Skyline)
	drawPipes(dst, s, env)
	drawHero(dst, s, env)
	drawClouds(dst, s.ForegroundClouds, 0.5)

	if s.Mode == flappy.ModePlaying {
		dst.DrawTextCentered(0, fmt.Sprintf(" %d ", s.Score), core.ColorText)
	}
}

// blend mixes over into base by alpha. Unparseable colours leave base as is.
func blend(base, over core.Color, alpha float64) core.Color {
	a, err := colorful.Hex(string(base))
	if err != nil {
		return base
	}
	b, err := colorful.Hex(string(over))
	if err != nil {
		return base
	}
	return core.Color(a.BlendRgb(b, alpha).Clamped().Hex())
}

// cellRange returns the half-open cell span covering [lo, lo+size) pixels.
func cellRange(lo, size, cell float64) (int, int) {
	return int(math.Floor(lo / cell)), int(math.Ceil((lo + size) / cell))
}

func fillPixels(dst *core.Screen, x, y, w, h float64, bg core.Color) {
	x0, x1 := cellRange(x, w, core.CellPixelsX)
	y0, y1 := cellRange(y, h, core.CellPixelsY)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			dst.SetBg(cx, cy, bg)
		}
	}
}

func drawSky(dst *core.Screen) {
	h := dst.Height()
	for y := 0; y < h; y++ {
		t := 0.0
		if h > 1 {
			t = float64(y) / float64(h-1)
		}
		bg := blend(core.ColorSkyTop, core.ColorSkyBottom, t)
		dst.FillRect(0, y, dst.Width(), 1, core.Cell{Rune: ' ', Bg: bg})
	}
}

// drawClouds tints every cell whose centre falls inside the cloud's ellipse.
func drawClouds(dst *core.Screen, clouds []world.Cloud, squash float64) {
	for _, c := range clouds {
		rx := c.Size * c.Stretch
		ry := c.Size * c.Puffiness * squash
		if rx <= 0 || ry <= 0 {
			continue
		}
		x0, x1 := cellRange(c.Pos.X-rx, 2*rx, core.CellPixelsX)
		y0, y1 := cellRange(c.Pos.Y-ry, 2*ry, core.CellPixelsY)
		for cy := y0; cy < y1; cy++ {
			for cx := x0; cx < x1; cx++ {
				px := (float64(cx) + 0.5) * core.CellPixelsX
				py := (float64(cy) + 0.5) * core.CellPixelsY
				dx, dy := (px-c.Pos.X)/rx, (py-c.Pos.Y)/ry
				if dx*dx+dy*dy > 1 {
					continue
				}
				bg := dst.GetCell(cx, cy).Bg
				dst.SetBg(cx, cy, blend(bg, c.Color, c.Opacity))
			}
		}
	}
}

func drawSkyline(dst *core.Screen, buildings []world.Building) {
	for _, b := range buildings {
		fillPixels(dst, b.Pos.X, b.Pos.Y, b.Size.Width, b.Size.Height, b.Color)

		x0, x1 := cellRange(b.Pos.X, b.Size.Width, core.CellPixelsX)
		y0, y1 := cellRange(b.Pos.Y, b.Size.Height, core.CellPixelsY)
		if b.Windows {
			for cy := y0 + 1; cy < y1-1; cy += 2 {
				for cx := x0 + 1; cx < x1-1; cx += 2 {
					dst.DrawText(cx, cy, "▪", core.ColorWindow)
				}
			}
		}
		if b.Antenna {
			dst.DrawText((x0+x1)/2, y0-1, "╻", b.Color)
		}
	}
}

func drawPipes(dst *core.Screen, s *flappy.State, env flappy.Env) {
	for i, p := range s.Pipes {
		x := flappy.ScreenX(p.Pos.X, s, env)
		fillPixels(dst, x, p.Pos.Y, p.Size.Width, p.Size.Height, core.ColorPipe)

		x0, x1 := cellRange(x, p.Size.Width, core.CellPixelsX)
		y0, y1 := cellRange(p.Pos.Y, p.Size.Height, core.CellPixelsY)
		for cy := y0; cy < y1; cy++ {
			dst.SetBg(x0, cy, core.ColorPipeLight)
			dst.SetBg(x1-1, cy, core.ColorPipeDark)
		}

		// The lip faces the gap: bottom row of a top pipe, top row of a
		// bottom pipe.
		lip := y1 - 1
		if i%2 == 1 {
			lip = y0
		}
		for cx := x0 - 1; cx <= x1; cx++ {
			dst.SetBg(cx, lip, core.ColorPipeLight)
		}
	}
}

// heroGlyph picks a beak that follows the render tilt.
func heroGlyph(tilt float64) string {
	switch {
	case tilt < -0.25:
		return "↗"
	case tilt > 0.4:
		return "↘"
	default:
		return ">"
	}
}

func drawHero(dst *core.Screen, s *flappy.State, env flappy.Env) {
	h := s.Hero
	x := env.RenderX()
	fillPixels(dst, x, h.Pos.Y, h.Size.Width, h.Size.Height, core.ColorHero)

	x0, x1 := cellRange(x, h.Size.Width, core.CellPixelsX)
	y0, _ := cellRange(h.Pos.Y, h.Size.Height, core.CellPixelsY)
	if x1-x0 > 1 {
		dst.DrawText(x1-2, y0, "•", core.ColorHeroEye)
	}
	dst.DrawText(x1, y0, heroGlyph(flappy.HeroTilt(h.Vel.Y)), core.ColorBeak)
}
