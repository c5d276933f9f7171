// Package world generates and scrolls the decorative parallax layers behind
// and in front of the playfield: sky clouds, a city skyline and faint
// foreground clouds. Nothing here affects collisions or score.
package world

import (
	"math/rand"

	"github.com/vovakirdan/flap/internal/core"
)

// Layer sizes.
const (
	NumClouds           = 8
	NumForegroundClouds = 4
)

// Cloud is a soft elliptical shape drawn as a cluster of puffs.
type Cloud struct {
	Pos       core.Vec2
	Size      float64 // base radius in pixels
	Speed     float64 // parallax multiplier of the hero's speed
	Opacity   float64
	Color     core.Color
	Puffiness float64 // 0.5-1.0; how round the puffs are
	Stretch   float64 // horizontal stretch factor
}

// Building is one segment of the skyline.
type Building struct {
	Pos     core.Vec2
	Size    core.Size
	Color   core.Color
	Windows bool
	Antenna bool
	Speed   float64
}

// Right returns the building's trailing edge.
func (b Building) Right() float64 {
	return b.Pos.X + b.Size.Width
}

// Generator produces world elements from a single random source so a seeded
// game replays identically.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// between returns a uniform value in [lo, lo+span).
func (g *Generator) between(lo, span float64) float64 {
	return g.rng.Float64()*span + lo
}

func (g *Generator) pick(colors []core.Color) core.Color {
	return colors[g.rng.Intn(len(colors))]
}
