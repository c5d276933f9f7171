// Package config provides YAML-based game configuration loading and
// difficulty presets for flap.
package config

import "github.com/vovakirdan/flap/internal/core"

// FlapConfig contains all tuning for the game. Distances are in reference
// pixels of the original viewport and get scaled at runtime.
type FlapConfig struct {
	Physics  Physics  `yaml:"physics"`
	Pipes    Pipes    `yaml:"pipes"`
	Hero     Hero     `yaml:"hero"`
	Viewport Viewport `yaml:"viewport"`
	Scores   Scores   `yaml:"scores"`
}

// Physics defines the hero's motion. Gravity and jump velocity are not scaled.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpVelocity float64 `yaml:"jump_velocity"` // negative is up
	HeroSpeed    float64 `yaml:"hero_speed"`
}

// Pipes defines the obstacle stream.
type Pipes struct {
	Width      float64 `yaml:"width"`
	Padding    float64 `yaml:"padding"`     // horizontal distance between pairs
	Buffer     int     `yaml:"buffer"`      // pipes kept alive, always even
	StartX     float64 `yaml:"start_x"`     // minimum lead ahead of the hero
	HoleFactor float64 `yaml:"hole_factor"` // hole height in hero heights
}

// Hero defines the player sprite placement.
type Hero struct {
	StartX  float64 `yaml:"start_x"`
	StartY  float64 `yaml:"start_y"`
	RenderX float64 `yaml:"render_x"` // fixed screen column the hero is drawn at
}

// Viewport is the reference size the scale factors are computed against.
type Viewport struct {
	OriginalWidth  float64 `yaml:"original_width"`
	OriginalHeight float64 `yaml:"original_height"`
}

// Scores configures the high-score table.
type Scores struct {
	DefaultInitials string `yaml:"default_initials"`
	MaxEntries      int    `yaml:"max_entries"`
}

// Validate fills zero values with defaults and normalises the pipe buffer to
// an even count so pairs never split.
func (c *FlapConfig) Validate() {
	def := DefaultFlapConfig()

	if c.Physics.Gravity <= 0 {
		c.Physics.Gravity = def.Physics.Gravity
	}
	if c.Physics.JumpVelocity == 0 {
		c.Physics.JumpVelocity = -0.8 * c.Physics.Gravity
	}
	if c.Physics.HeroSpeed <= 0 {
		c.Physics.HeroSpeed = def.Physics.HeroSpeed
	}
	if c.Pipes.Width <= 0 {
		c.Pipes.Width = def.Pipes.Width
	}
	if c.Pipes.Padding <= 0 {
		c.Pipes.Padding = c.Pipes.Width * 4
	}
	if c.Pipes.Buffer < 2 {
		c.Pipes.Buffer = def.Pipes.Buffer
	}
	if c.Pipes.Buffer%2 != 0 {
		c.Pipes.Buffer++
	}
	if c.Pipes.StartX <= 0 {
		c.Pipes.StartX = def.Pipes.StartX
	}
	if c.Hero.RenderX <= 0 {
		c.Hero.RenderX = def.Hero.RenderX
	}
	if c.Viewport.OriginalWidth <= 0 || c.Viewport.OriginalHeight <= 0 {
		c.Viewport = def.Viewport
	}
	if c.Pipes.HoleFactor <= 0 || c.Pipes.HoleFactor >= c.MaxHoleFactor() {
		c.Pipes.HoleFactor = def.Pipes.HoleFactor
	}
	if c.Scores.DefaultInitials == "" {
		c.Scores.DefaultInitials = def.Scores.DefaultInitials
	}
	if c.Scores.MaxEntries <= 0 {
		c.Scores.MaxEntries = def.Scores.MaxEntries
	}
}

// MaxHoleFactor is the exclusive upper bound for Pipes.HoleFactor: two hole
// heights must fit in the playfield or the gap centre has no valid range.
// It does not depend on the window size because hero and floor scale alike.
func (c *FlapConfig) MaxHoleFactor() float64 {
	ref := core.NewScaling(c.Viewport.OriginalWidth, c.Viewport.OriginalHeight, c.Viewport.OriginalWidth, c.Viewport.OriginalHeight)
	return ref.Bottom / (2 * ref.HeroSize().Height)
}
