package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flap/internal/config"
	"github.com/vovakirdan/flap/internal/core"
	"github.com/vovakirdan/flap/internal/games/flappy/world"
)

// Mode is the top-level screen the game is on.
type Mode int

const (
	ModeTitle Mode = iota
	ModeInstructions
	ModePlaying
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeTitle:
		return "title"
	case ModeInstructions:
		return "instructions"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Hero is the player's bird.
type Hero struct {
	core.Box
	Vel core.Vec2
}

// Pipe is one half of an obstacle pair. Pairs sit at adjacent even/odd
// indices of State.Pipes, top first.
type Pipe struct {
	core.Box
	Passed bool
}

// State is the whole mutable game. One value lives for the program's
// lifetime and is soft-reset on every new round.
type State struct {
	Hero             Hero
	Pipes            []Pipe
	Clouds           []world.Cloud
	ForegroundClouds []world.Cloud
	Skyline          []world.Building

	Score    int
	LastHole *float64 // centre of the previous gap, nil before the first pair

	Mode          Mode
	GameOver      bool
	Paused        bool
	JumpRequested bool // one-shot latch consumed by the next tick
}

// Env bundles what the simulation reads but does not own: tuning, the
// current viewport scaling and the random source.
type Env struct {
	Config  config.FlapConfig
	Scaling core.Scaling
	Rand    *rand.Rand
}

// NewEnv builds an Env for a viewport of the given pixel size.
func NewEnv(cfg config.FlapConfig, viewW, viewH float64, rng *rand.Rand) Env {
	return Env{
		Config:  cfg,
		Scaling: core.NewScaling(viewW, viewH, cfg.Viewport.OriginalWidth, cfg.Viewport.OriginalHeight),
		Rand:    rng,
	}
}

// HeroSpeed is the scaled horizontal velocity.
func (e Env) HeroSpeed() float64 {
	return e.Config.Physics.HeroSpeed * e.Scaling.ScaleX
}

// HeroStart is the scaled spawn point.
func (e Env) HeroStart() core.Vec2 {
	return core.Pt(e.Config.Hero.StartX*e.Scaling.ScaleX, e.Config.Hero.StartY*e.Scaling.ScaleY)
}

// RenderX is the scaled screen column the hero is drawn at.
func (e Env) RenderX() float64 {
	return e.Config.Hero.RenderX * e.Scaling.ScaleX
}

// NewGame returns a state on the title screen with no pipes and empty world
// layers; the caller populates the world.
func NewGame(env Env) *State {
	s := &State{Mode: ModeTitle}
	resetHero(s, env)
	return s
}

func resetHero(s *State, env Env) {
	s.Hero = Hero{
		Box: core.Box{Pos: env.HeroStart(), Size: env.Scaling.HeroSize()},
		Vel: core.Pt(env.HeroSpeed(), 0),
	}
}

// resetRound reinitialises everything a new round needs. The world layers
// are regenerated by the caller.
func resetRound(s *State, env Env) {
	s.Mode = ModePlaying
	s.GameOver = false
	s.Paused = false
	s.JumpRequested = false
	s.Score = 0
	s.Pipes = s.Pipes[:0]
	s.LastHole = nil
	resetHero(s, env)
}

// SetGameOver ends the round.
func SetGameOver(s *State) {
	s.GameOver = true
	s.Mode = ModeGameOver
}

// TogglePause flips the pause flag while playing and reports the new value.
// Outside play it does nothing.
func TogglePause(s *State) bool {
	if s.Mode == ModePlaying {
		s.Paused = !s.Paused
	}
	return s.Paused
}
