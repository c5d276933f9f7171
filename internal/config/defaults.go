package config

import (
	_ "embed"
)

//go:embed defaults/flap.yaml
var defaultFlapYAML []byte

// Reference constants of the original 500x200 playfield.
const (
	GravityFactor   = 15
	DefaultGravity  = 20 * GravityFactor
	DefaultJumpVel  = -0.8 * DefaultGravity
	DefaultPipeWid  = 50
	DefaultInitials = "WIN"
)

// DefaultFlapConfig returns the hard-coded configuration used when neither a
// file nor the embedded YAML can be read.
func DefaultFlapConfig() FlapConfig {
	return FlapConfig{
		Physics: Physics{
			Gravity:      DefaultGravity,
			JumpVelocity: DefaultJumpVel,
			HeroSpeed:    80,
		},
		Pipes: Pipes{
			Width:      DefaultPipeWid,
			Padding:    DefaultPipeWid * 4,
			Buffer:     20,
			StartX:     200,
			HoleFactor: 2.5,
		},
		Hero: Hero{
			StartX:  20,
			StartY:  20,
			RenderX: 60,
		},
		Viewport: Viewport{
			OriginalWidth:  500,
			OriginalHeight: 200,
		},
		Scores: Scores{
			DefaultInitials: DefaultInitials,
			MaxEntries:      5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlapYAML
}
