package world

import (
	"math"

	"github.com/vovakirdan/flap/internal/core"
)

// Muted greys and browns with a blue undertone.
var buildingColors = []core.Color{
	"#3F4147", "#4B4D52", "#5A4741", "#6B5D56",
	"#525459", "#4A5451", "#3A4C4C", "#504C49",
}

// buildingGap is the random spacing between neighbouring buildings.
func (g *Generator) buildingGap(sc core.Scaling) float64 {
	return g.between(5, 20) * sc.ScaleX
}

// shapeBuilding assigns a fresh size and look and stands b on the ground.
// Heights: 60% short, 25% medium, 15% tall and narrower.
func (g *Generator) shapeBuilding(b *Building, sc core.Scaling) {
	width := g.between(30, 60) * sc.ScaleX

	var height float64
	switch v := g.rng.Float64(); {
	case v < 0.6:
		height = g.between(20, 60) * sc.ScaleY
	case v < 0.85:
		height = g.between(80, 120) * sc.ScaleY
	default:
		height = g.between(150, 200) * sc.ScaleY
		width *= g.between(0.6, 0.4)
	}

	b.Size = core.Size{Width: width, Height: height}
	b.Pos.Y = sc.ViewH - height
	b.Color = g.pick(buildingColors)
	b.Windows = g.rng.Float64() > 0.3
	b.Antenna = g.rng.Float64() > 0.7
	b.Speed = g.between(0.4, 0.2)
}

// GenerateSkyline tiles buildings left to right from just off-screen until
// the strip covers the viewport plus a margin.
func (g *Generator) GenerateSkyline(sc core.Scaling) []Building {
	count := int(sc.ViewW/(40*sc.ScaleX)) + 2
	buildings := make([]Building, count)

	x := -50 * sc.ScaleX
	for i := range buildings {
		b := &buildings[i]
		g.shapeBuilding(b, sc)
		b.Pos.X = x
		x += b.Size.Width + g.buildingGap(sc)
	}
	return buildings
}

// UpdateSkyline scrolls the buildings. One that leaves on the left is rebuilt
// after the rightmost building's trailing edge, found by scanning since list
// order says nothing about position after recycling.
func (g *Generator) UpdateSkyline(buildings []Building, heroVelX, delta float64, sc core.Scaling) {
	travel := heroVelX * delta
	for i := range buildings {
		b := &buildings[i]
		b.Pos.X -= travel * b.Speed

		if b.Right() < -100*sc.ScaleX {
			rightmost := Rightmost(buildings)
			g.shapeBuilding(b, sc)
			b.Pos.X = rightmost + g.buildingGap(sc)
		}
	}
}

// Rightmost returns the largest trailing edge in the skyline.
func Rightmost(buildings []Building) float64 {
	if len(buildings) == 0 {
		return 0
	}
	r := buildings[0].Right()
	for _, b := range buildings[1:] {
		r = math.Max(r, b.Right())
	}
	return r
}
