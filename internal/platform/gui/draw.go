package gui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/flap/internal/core"
	"github.com/vovakirdan/flap/internal/games/flappy"
	"github.com/vovakirdan/flap/internal/games/flappy/world"
)

const skyBands = 32

// DrawScene paints the playfield back to front. It only reads s.
func DrawScene(dst *ebiten.Image, s *flappy.State, env flappy.Env) {
	sc := env.Scaling
	drawSky(dst, sc)
	drawClouds(dst, s.Clouds)
	drawSkyline(dst, s.Skyline, sc)
	drawPipes(dst, s, env)
	drawHero(dst, s, env)
	drawClouds(dst, s.ForegroundClouds)
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, c core.Color, alpha float64) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), rgba(c, alpha), true)
}

func fillCircle(dst *ebiten.Image, cx, cy, r float64, c core.Color, alpha float64) {
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(r), rgba(c, alpha), true)
}

func drawSky(dst *ebiten.Image, sc core.Scaling) {
	band := sc.ViewH / skyBands
	for i := 0; i < skyBands; i++ {
		t := float64(i) / (skyBands - 1)
		// One pixel of overlap hides seams between bands.
		fillRect(dst, 0, float64(i)*band, sc.ViewW, band+1, gradient(core.ColorSkyTop, core.ColorSkyBottom, t), 1)
	}
}

// cloudPuffs returns the circles a cloud is built from as (dx, dy, r).
func cloudPuffs(c world.Cloud) [][3]float64 {
	s, p, st := c.Size, c.Puffiness, c.Stretch
	puffs := [][3]float64{
		{0, 0, s * 0.5 * p},
		{-s * 0.4 * st, s * 0.1, s * 0.4 * p},
		{s * 0.4 * st, s * 0.1, s * 0.4 * p},
		{-s * 0.2 * st, -s * 0.2, s * 0.35 * p},
		{s * 0.2 * st, -s * 0.2, s * 0.35 * p},
	}
	if s > 40 {
		puffs = append(puffs,
			[3]float64{-s * 0.7 * st, s * 0.15, s * 0.3 * p},
			[3]float64{s * 0.7 * st, s * 0.15, s * 0.3 * p},
		)
	}
	if s > 70 {
		puffs = append(puffs, [3]float64{0, -s * 0.35, s * 0.3 * p})
	}
	return puffs
}

func drawClouds(dst *ebiten.Image, clouds []world.Cloud) {
	for _, c := range clouds {
		for _, pf := range cloudPuffs(c) {
			fillCircle(dst, c.Pos.X+pf[0], c.Pos.Y+pf[1], pf[2], c.Color, c.Opacity)
		}
	}
}

func drawSkyline(dst *ebiten.Image, buildings []world.Building, sc core.Scaling) {
	for _, b := range buildings {
		fillRect(dst, b.Pos.X, b.Pos.Y, b.Size.Width, b.Size.Height, b.Color, 1)

		if b.Windows && b.Size.Width > 20*sc.ScaleX {
			ws := math.Max(2, b.Size.Width*0.15)
			gap := ws * 2
			for wy := b.Pos.Y + ws; wy+ws < b.Pos.Y+b.Size.Height; wy += gap {
				for wx := b.Pos.X + ws; wx+ws < b.Pos.X+b.Size.Width; wx += gap {
					fillRect(dst, wx, wy, ws, ws, core.ColorWindow, 0.8)
				}
			}
		}

		if b.Antenna {
			cx := float32(b.Pos.X + b.Size.Width/2)
			top := float32(b.Pos.Y - b.Size.Height*0.2)
			vector.StrokeLine(dst, cx, float32(b.Pos.Y), cx, top, float32(math.Max(1, sc.ScaleX)), rgba(shade(b.Color, -0.3), 1), true)
		}
	}
}

func drawPipes(dst *ebiten.Image, s *flappy.State, env flappy.Env) {
	sc := env.Scaling
	capH := 8 * sc.ScaleY
	for i, p := range s.Pipes {
		x := flappy.ScreenX(p.Pos.X, s, env)
		w, h := p.Size.Width, p.Size.Height

		fillRect(dst, x+3, p.Pos.Y+3, w, h, "#000000", 0.2)
		fillRect(dst, x, p.Pos.Y, w, h, core.ColorPipe, 1)
		fillRect(dst, x+w*0.15, p.Pos.Y, w*0.25, h, colorPipeBright, 1)
		fillRect(dst, x+w*0.7, p.Pos.Y, w*0.3, h, colorPipeForest, 1)

		// Caps face the gap.
		capY := p.Pos.Y + h - capH
		if i%2 == 1 {
			capY = p.Pos.Y
		}
		fillRect(dst, x-w*0.1, capY, w*1.2, capH, core.ColorPipeDark, 1)
		fillRect(dst, x-w*0.1, capY, w*1.2, capH*0.3, colorPipeBright, 1)
	}
}

// rotate turns (dx, dy) by angle around the origin.
func rotate(dx, dy, angle float64) (float64, float64) {
	sin, cos := math.Sincos(angle)
	return dx*cos - dy*sin, dx*sin + dy*cos
}

func drawHero(dst *ebiten.Image, s *flappy.State, env flappy.Env) {
	h := s.Hero
	r := math.Min(h.Size.Width, h.Size.Height) / 2
	cx := env.RenderX() + h.Size.Width/2
	cy := h.Pos.Y + h.Size.Height/2
	tilt := flappy.HeroTilt(h.Vel.Y)

	at := func(dx, dy float64) (float64, float64) {
		rx, ry := rotate(dx*r, dy*r, tilt)
		return cx + rx, cy + ry
	}

	tx, ty := at(-1.05, 0)
	fillCircle(dst, tx, ty, r*0.35, colorTail, 1)

	fillCircle(dst, cx, cy, r+1, colorHeroOutline, 1)
	fillCircle(dst, cx, cy, r, core.ColorHero, 1)

	bx, by := at(0.1, 0.35)
	fillCircle(dst, bx, by, r*0.55, colorBelly, 1)

	wx, wy := at(-0.3, 0.1)
	fillCircle(dst, wx, wy, r*0.45, colorWingOutline, 1)
	fillCircle(dst, wx, wy, r*0.38, colorWing, 1)

	ex, ey := at(0.35, -0.3)
	fillCircle(dst, ex, ey, r*0.3, colorEyeWhite, 1)
	px, py := at(0.45, -0.3)
	fillCircle(dst, px, py, r*0.15, core.ColorHeroEye, 1)

	kx, ky := at(0.65, 0.2)
	fillCircle(dst, kx, ky, r*0.15, colorBlush, 0.6)

	b0x, b0y := at(0.8, 0)
	b1x, b1y := at(1.35, 0.05)
	vector.StrokeLine(dst, float32(b0x), float32(b0y), float32(b1x), float32(b1y), float32(math.Max(2, r*0.35)), rgba(core.ColorBeak, 1), true)
}
