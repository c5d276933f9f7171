package world

import "github.com/vovakirdan/flap/internal/core"

var cloudColors = []core.Color{
	"#FFFFFF", "#F8F8FF", "#F0F8FF", "#E6F3FF", "#F5F5F5",
	"#FFFAFA", "#F0FFFF", "#E0F6FF", "#F7F7F7", "#E8F4F8",
}

// Foreground clouds use only the lightest shades.
var foregroundColors = []core.Color{
	"#FFFFFF", "#F8F8FF", "#F0F8FF", "#F5F5F5", "#FFFAFA",
}

// cloudSize draws a background cloud radius: 30% small, 40% medium, 30% large.
func (g *Generator) cloudSize(sc core.Scaling) float64 {
	var base float64
	switch v := g.rng.Float64(); {
	case v < 0.3:
		base = g.between(8, 20)
	case v < 0.7:
		base = g.between(25, 40)
	default:
		base = g.between(45, 80)
	}
	return base * sc.MinScale()
}

// foregroundSize draws a foreground radius: 40% medium, 60% large.
func (g *Generator) foregroundSize(sc core.Scaling) float64 {
	var base float64
	if g.rng.Float64() < 0.4 {
		base = g.between(40, 60)
	} else {
		base = g.between(60, 120)
	}
	return base * sc.MinScale()
}

// reshapeCloud gives c fresh size, speed and look.
func (g *Generator) reshapeCloud(c *Cloud, sc core.Scaling) {
	c.Size = g.cloudSize(sc)
	c.Speed = g.between(0.05, 0.4)
	c.Opacity = g.between(0.25, 0.5)
	c.Color = g.pick(cloudColors)
	c.Puffiness = g.between(0.5, 0.5)
	c.Stretch = g.between(0.8, 0.4)
}

func (g *Generator) reshapeForeground(c *Cloud, sc core.Scaling) {
	c.Size = g.foregroundSize(sc)
	c.Speed = g.between(0.1, 0.2)
	c.Opacity = g.between(0.05, 0.1)
	c.Color = g.pick(foregroundColors)
	c.Puffiness = g.between(0.7, 0.3)
	c.Stretch = g.between(0.8, 0.6)
}

// GenerateClouds scatters the sky clouds across and beyond the viewport,
// confined to the upper half.
func (g *Generator) GenerateClouds(sc core.Scaling) []Cloud {
	clouds := make([]Cloud, NumClouds)
	for i := range clouds {
		c := &clouds[i]
		c.Pos = core.Pt(
			g.between(-100*sc.ScaleX, sc.ViewW+200*sc.ScaleX),
			g.between(10*sc.ScaleY, sc.ViewH*0.5),
		)
		g.reshapeCloud(c, sc)
	}
	return clouds
}

// GenerateForegroundClouds creates the few large, nearly transparent clouds
// drawn over the playfield. They may sit at any height.
func (g *Generator) GenerateForegroundClouds(sc core.Scaling) []Cloud {
	clouds := make([]Cloud, NumForegroundClouds)
	for i := range clouds {
		c := &clouds[i]
		c.Pos = core.Pt(
			g.between(-150*sc.ScaleX, sc.ViewW+300*sc.ScaleX),
			g.between(0, sc.ViewH),
		)
		g.reshapeForeground(c, sc)
	}
	return clouds
}

// UpdateClouds scrolls sky clouds by the hero's travel this frame. A cloud
// that leaves on the left respawns right of the viewport with a new shape.
func (g *Generator) UpdateClouds(clouds []Cloud, heroVelX, delta float64, sc core.Scaling) {
	travel := heroVelX * delta
	for i := range clouds {
		c := &clouds[i]
		c.Pos.X -= travel * c.Speed

		if c.Pos.X < -c.Size-50*sc.ScaleX {
			c.Pos.X = sc.ViewW + g.rng.Float64()*100*sc.ScaleX
			c.Pos.Y = g.between(10*sc.ScaleY, sc.ViewH*0.5)
			g.reshapeCloud(c, sc)
		}
	}
}

// UpdateForegroundClouds is UpdateClouds for the foreground layer, with a
// wider off-screen margin.
func (g *Generator) UpdateForegroundClouds(clouds []Cloud, heroVelX, delta float64, sc core.Scaling) {
	travel := heroVelX * delta
	for i := range clouds {
		c := &clouds[i]
		c.Pos.X -= travel * c.Speed

		if c.Pos.X < -c.Size-100*sc.ScaleX {
			c.Pos.X = sc.ViewW + g.rng.Float64()*200*sc.ScaleX
			c.Pos.Y = g.rng.Float64() * sc.ViewH
			g.reshapeForeground(c, sc)
		}
	}
}
