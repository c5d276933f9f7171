package flappy

import "github.com/vovakirdan/flap/internal/core"

// Resize recomputes scaling for a new viewport. The hero gets its new size
// and speed, live pipes are stretched by the change in scale, and the world
// layers are regenerated for the new bounds. The hero keeps its position.
func (g *Game) Resize(width, height float64) {
	old := g.env.Scaling
	cfg := g.env.Config
	g.env.Scaling = core.NewScaling(width, height, cfg.Viewport.OriginalWidth, cfg.Viewport.OriginalHeight)
	sc := g.env.Scaling

	s := g.state
	s.Hero.Size = sc.HeroSize()
	s.Hero.Vel.X = g.env.HeroSpeed()

	rx, ry := 1.0, 1.0
	if old.ScaleX != 0 {
		rx = sc.ScaleX / old.ScaleX
	}
	if old.ScaleY != 0 {
		ry = sc.ScaleY / old.ScaleY
	}
	for i := range s.Pipes {
		p := &s.Pipes[i]
		p.Pos.X *= rx
		p.Pos.Y *= ry
		p.Size.Width *= rx
		p.Size.Height *= ry
	}

	g.regenerateWorld()
	g.logger.Debug("resized", "width", width, "height", height, "scale_x", sc.ScaleX, "scale_y", sc.ScaleY)

	if g.requestRender != nil {
		g.requestRender()
	}
}
