package flappy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flap/internal/core"
	"github.com/vovakirdan/flap/internal/games/flappy/world"
)

func TestIntegrateHero(t *testing.T) {
	h := Hero{Vel: core.Pt(50, -100)}

	IntegrateHero(&h, 300, 1.0)

	// dPos = (50, -100 + 150), dVel = (0, 300)
	assert.Equal(t, core.Pt(50, 50), h.Pos)
	assert.Equal(t, core.Pt(50, 200), h.Vel)
}

func TestTickFallsToGameOver(t *testing.T) {
	r := newRig(1)
	g := r.game
	g.StartGame()
	s := g.State()

	overAt := -1
	var frozen core.Vec2
	for i := 0; i < 1000; i++ {
		g.Tick(1.0 / 60)
		if s.GameOver && overAt < 0 {
			overAt = i
			frozen = s.Hero.Pos
			assert.Greater(t, frozen.Y, g.Env().Scaling.Bottom, "game over once below the floor")
		}
	}

	require.GreaterOrEqual(t, overAt, 0, "falling hero must end the game")
	assert.InDelta(t, 66, overAt, 2)
	assert.Equal(t, frozen, s.Hero.Pos, "no integration after game over")
	assert.Equal(t, ModeGameOver, s.Mode)
	assert.Equal(t, 1, r.audio.gameOvers)
	assert.Zero(t, r.audio.bounces)
	assert.Zero(t, s.Score)
}

func TestTickNoIntegrationOnDetectionFrame(t *testing.T) {
	r := newRig(1)
	g := r.game
	g.StartGame()
	s := g.State()
	s.Hero.Pos.Y = 500
	s.JumpRequested = true
	before := s.Hero

	g.Tick(1.0 / 60)

	assert.True(t, s.GameOver)
	assert.Equal(t, before, s.Hero, "hero untouched on the detecting frame")
	assert.Zero(t, r.audio.bounces, "pending jump is not applied")
}

func TestTickJump(t *testing.T) {
	r := newRig(1)
	g := r.game
	g.StartGame()
	s := g.State()

	g.RequestJump()
	require.True(t, s.JumpRequested)
	g.Tick(0.5)

	assert.False(t, s.JumpRequested, "latch consumed")
	assert.Equal(t, 1, r.audio.bounces)
	// vel.y = -240 then +300*0.5; y = 20 - 120 + 37.5
	assert.Equal(t, -90.0, s.Hero.Vel.Y)
	assert.Equal(t, -62.5, s.Hero.Pos.Y)
	assert.Equal(t, 60.0, s.Hero.Pos.X)

	// Flying above the top edge is allowed.
	g.Tick(0.01)
	assert.False(t, s.GameOver)
	assert.Equal(t, 1, r.audio.bounces, "one bounce per request")
}

func TestTickResetsHorizontalVelocity(t *testing.T) {
	r := newRig(1)
	g := r.game
	g.StartGame()
	s := g.State()
	s.Hero.Vel.X = 999

	g.Tick(1.0 / 60)
	assert.Equal(t, g.Env().HeroSpeed(), s.Hero.Vel.X)
}

func TestTickIdleOutsidePlay(t *testing.T) {
	r := newRig(1)
	g := r.game
	s := g.State()
	hero := s.Hero
	clouds := append([]world.Cloud(nil), s.Clouds...)

	g.Tick(1)

	assert.Equal(t, ModeTitle, s.Mode)
	assert.Equal(t, hero, s.Hero)
	assert.Equal(t, clouds, s.Clouds, "world is frozen on the title screen")
	assert.Empty(t, s.Pipes)
}

func TestTickPausedFreezesEverything(t *testing.T) {
	r := newRig(1)
	g := r.game
	g.StartGame()
	g.Tick(1.0 / 60)
	s := g.State()

	g.TogglePause()
	require.True(t, s.Paused)
	g.RequestJump()

	hero := s.Hero
	skyline := append([]world.Building(nil), s.Skyline...)
	g.Tick(1)

	assert.Equal(t, hero, s.Hero)
	assert.Equal(t, skyline, s.Skyline)
	assert.True(t, s.JumpRequested, "jump stays latched while paused")

	g.TogglePause()
	g.Tick(1.0 / 60)
	assert.False(t, s.JumpRequested)
	assert.Equal(t, 1, r.audio.bounces)
}

func TestTickScrollsWorldWhilePlaying(t *testing.T) {
	r := newRig(1)
	g := r.game
	g.StartGame()
	s := g.State()
	x := s.Skyline[0].Pos.X

	g.Tick(1.0 / 60)
	assert.Less(t, s.Skyline[0].Pos.X, x)
}

func TestTickFillsPipes(t *testing.T) {
	r := newRig(1)
	g := r.game
	g.StartGame()
	g.Tick(1.0 / 60)

	s := g.State()
	assert.Len(t, s.Pipes, g.Env().Config.Pipes.Buffer)
}

func TestGameDeterminism(t *testing.T) {
	play := func() *State {
		r := newRig(42)
		g := r.game
		g.StartGame()
		for i := 0; i < 300; i++ {
			if i%20 == 0 {
				g.RequestJump()
			}
			g.Tick(1.0 / 60)
		}
		return g.State()
	}

	a, b := play(), play()
	assert.Equal(t, a.Hero, b.Hero)
	assert.Equal(t, a.Pipes, b.Pipes)
	assert.Equal(t, a.Score, b.Score)
	assert.Equal(t, a.Skyline, b.Skyline)
}
