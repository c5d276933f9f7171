package flappy

import (
	"github.com/vovakirdan/flap/internal/core"
	"github.com/vovakirdan/flap/internal/games/flappy/world"
)

// IntegrateHero advances the hero by dt seconds under gravity using the
// kinematic step: position moves by v*dt + g*dt²/2, then velocity gains g*dt.
func IntegrateHero(h *Hero, gravity, dt float64) {
	dPos := core.Pt(h.Vel.X*dt, h.Vel.Y*dt+0.5*gravity*dt*dt)
	dVel := core.Pt(0, gravity*dt)
	h.Pos.AddTo(dPos)
	h.Vel.AddTo(dVel)
}

// UpdateWorld scrolls every parallax layer. Layers only move during active,
// unpaused play.
func UpdateWorld(s *State, gen *world.Generator, sc core.Scaling, dt float64) {
	if s.Mode != ModePlaying || s.Paused || s.GameOver {
		return
	}
	velX := s.Hero.Vel.X
	gen.UpdateClouds(s.Clouds, velX, dt, sc)
	gen.UpdateForegroundClouds(s.ForegroundClouds, velX, dt, sc)
	gen.UpdateSkyline(s.Skyline, velX, dt, sc)
}

// Tick advances the game by dt seconds.
func (g *Game) Tick(dt float64) {
	s := g.state
	UpdateWorld(s, g.world, g.env.Scaling, dt)

	if s.Mode != ModePlaying {
		return
	}
	if s.Paused || s.GameOver {
		return
	}

	// No integration on the frame the crash is detected.
	if IsGameOver(s, g.env) {
		s.GameOver = true
		g.audio.PlayGameOver()
		g.ShowGameOver()
		return
	}

	if s.JumpRequested {
		s.Hero.Vel.Y = g.env.Config.Physics.JumpVelocity
		g.audio.PlayBounce()
		s.JumpRequested = false
	}

	IntegrateHero(&s.Hero, g.env.Config.Physics.Gravity, dt)
	s.Hero.Vel.X = g.env.HeroSpeed()

	HandlePipes(s, g.env)
}
