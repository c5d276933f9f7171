package flappy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flap/internal/core"
)

func TestResizeRescalesHero(t *testing.T) {
	sizes := []struct{ w, h float64 }{
		{1000, 400},
		{640, 384},
		{1920, 1080},
		{333, 77},
	}

	for _, sz := range sizes {
		r := newRig(1)
		g := r.game
		g.Resize(sz.w, sz.h)

		sc := g.Env().Scaling
		assert.Equal(t, sz.w/500, sc.ScaleX)
		assert.Equal(t, sz.h/200, sc.ScaleY)
		assert.Equal(t, sz.h, sc.Bottom)

		want := core.Size{Width: 15 * 2 * sc.ScaleX, Height: 10 * 2 * sc.ScaleY}
		assert.Equal(t, want, g.State().Hero.Size, "hero size at %vx%v", sz.w, sz.h)
		assert.Equal(t, 80*sc.ScaleX, g.State().Hero.Vel.X)
	}
}

func TestResizeScalesPipes(t *testing.T) {
	r := newRig(1)
	g := r.game
	g.StartGame()
	g.Tick(1.0 / 60)

	s := g.State()
	before := append([]Pipe(nil), s.Pipes...)
	heroPos := s.Hero.Pos

	g.Resize(1000, 300) // ratios 2 and 1.5

	require.Len(t, s.Pipes, len(before))
	for i := range before {
		assert.InDelta(t, before[i].Pos.X*2, s.Pipes[i].Pos.X, 1e-9)
		assert.InDelta(t, before[i].Pos.Y*1.5, s.Pipes[i].Pos.Y, 1e-9)
		assert.InDelta(t, before[i].Size.Width*2, s.Pipes[i].Size.Width, 1e-9)
		assert.InDelta(t, before[i].Size.Height*1.5, s.Pipes[i].Size.Height, 1e-9)
	}
	assert.Equal(t, heroPos, s.Hero.Pos, "hero keeps its position")
}

func TestResizeRegeneratesWorldAndRequestsRender(t *testing.T) {
	r := newRig(1)
	g := r.game
	renders := 0
	g.OnRenderRequest(func() { renders++ })

	g.Resize(2000, 800)

	s := g.State()
	assert.Equal(t, 1, renders)
	assert.Len(t, s.Clouds, 8)
	assert.Len(t, s.Skyline, 14, "floor(2000/(40*4)) + 2 buildings")
	for _, b := range s.Skyline {
		assert.InDelta(t, 800, b.Pos.Y+b.Size.Height, 1e-9)
	}
}
