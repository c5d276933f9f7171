package flappy

import "github.com/vovakirdan/flap/internal/core"

// Hero tilt limits in radians, reached at |vel.y| = tiltMaxVelocity.
const (
	TiltMaxUp       = -0.5
	TiltMaxDown     = 0.8
	tiltMaxVelocity = 300
)

// HeroTilt converts vertical velocity into a draw rotation: nose up while
// climbing, nose down while falling.
func HeroTilt(velY float64) float64 {
	return core.ClampF(velY/tiltMaxVelocity*TiltMaxDown, TiltMaxUp, TiltMaxDown)
}

// ScreenX maps a world x coordinate to the screen. The hero is pinned at the
// render column, so the world slides under it.
func ScreenX(worldX float64, s *State, env Env) float64 {
	return worldX - (s.Hero.Pos.X - env.RenderX())
}
