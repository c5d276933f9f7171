package flappy

import (
	"math"

	"github.com/vovakirdan/flap/internal/core"
)

// MaxHoleAttempts bounds how many gap centres NewPipes draws while trying to
// avoid repeating the previous one. The last draw is kept regardless.
const MaxHoleAttempts = 5

// IsGameOver reports whether the hero fell below the floor or hit any pipe.
func IsGameOver(s *State, env Env) bool {
	if core.IsOutOfBounds(s.Hero.Box, env.Scaling.Bottom) {
		return true
	}
	for i := range s.Pipes {
		if core.Collides(s.Hero.Box, s.Pipes[i].Box) {
			return true
		}
	}
	return false
}

// HoleHeight is the vertical gap of a pipe pair, tied to the hero's size.
func HoleHeight(s *State, env Env) float64 {
	return s.Hero.Size.Height * env.Config.Pipes.HoleFactor
}

// NewPipes generates one top/bottom pair after the last pipe and records its
// gap centre in s.LastHole. It does not append the pair.
func NewPipes(s *State, env Env) [2]Pipe {
	sc := env.Scaling
	width := env.Config.Pipes.Width * sc.ScaleX
	pad := env.Config.Pipes.Padding * sc.ScaleX

	holeH := HoleHeight(s, env)
	minHole := holeH
	maxHole := sc.Bottom - holeH

	var hole float64
	for attempts := 1; ; attempts++ {
		hole = math.Floor(env.Rand.Float64()*(maxHole-minHole)) + minHole
		if s.LastHole == nil || math.Abs(hole-*s.LastHole) >= holeH*0.5 || attempts >= MaxHoleAttempts {
			break
		}
	}
	last := hole
	s.LastHole = &last

	minX := s.Hero.Pos.X + env.Config.Pipes.StartX*sc.ScaleX
	x := minX
	if n := len(s.Pipes); n > 0 {
		x = s.Pipes[n-1].Pos.X + pad
	}
	if x < minX {
		x = minX
	}

	half := holeH / 2
	top := Pipe{Box: core.Box{
		Pos:  core.Pt(x, 0),
		Size: core.Size{Width: width, Height: hole - half},
	}}
	bottom := Pipe{Box: core.Box{
		Pos:  core.Pt(x, hole+half),
		Size: core.Size{Width: width, Height: sc.Bottom - (hole + half)},
	}}
	return [2]Pipe{top, bottom}
}

// CleanupPipes drops pipes from the front while their trailing edge is
// behind the hero's leading edge minus one hero width.
func CleanupPipes(s *State) {
	limit := s.Hero.Pos.X - s.Hero.Size.Width
	for len(s.Pipes) > 0 && s.Pipes[0].Right() < limit {
		s.Pipes = s.Pipes[1:]
	}
}

// AddPipes tops the buffer up to the configured number of pipes.
func AddPipes(s *State, env Env) {
	for len(s.Pipes) < env.Config.Pipes.Buffer {
		pair := NewPipes(s, env)
		s.Pipes = append(s.Pipes, pair[0], pair[1])
	}
}

// CheckScore awards one point per pair whose top pipe the hero's trailing
// edge has cleared. Both pipes of the pair are marked so it never scores
// twice.
func CheckScore(s *State) {
	heroRight := s.Hero.Right()
	for i := 0; i < len(s.Pipes); i += 2 {
		top := &s.Pipes[i]
		if top.Passed || heroRight <= top.Right() {
			continue
		}
		top.Passed = true
		if i+1 < len(s.Pipes) {
			s.Pipes[i+1].Passed = true
		}
		s.Score++
	}
}

// HandlePipes runs the pipe lifecycle for one tick: cleanup, refill, score.
func HandlePipes(s *State, env Env) {
	CleanupPipes(s)
	AddPipes(s, env)
	CheckScore(s)
}
