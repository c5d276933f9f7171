package flappy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flap/internal/core"
)

// crash ends the running round with the given score.
func crash(g *Game, score int) {
	s := g.State()
	s.Score = score
	s.Hero.Pos.Y = g.Env().Scaling.Bottom * 2
	g.Tick(1.0 / 60)
}

func TestStartGameSoftReset(t *testing.T) {
	r := newRig(1)
	g := r.game
	s := g.State()

	hole := 77.0
	s.Score = 12
	s.LastHole = &hole
	s.Pipes = []Pipe{pipeAt(1, 0, 50, 10), pipeAt(1, 100, 50, 100)}
	s.GameOver = true
	s.Paused = true
	s.JumpRequested = true
	s.Hero.Pos = core.Pt(300, 300)
	s.Hero.Vel = core.Pt(1, 1)
	s.Clouds = nil

	g.StartGame()

	assert.Same(t, s, g.State(), "state object survives restarts")
	assert.Equal(t, ModePlaying, s.Mode)
	assert.Zero(t, s.Score)
	assert.Nil(t, s.LastHole)
	assert.Empty(t, s.Pipes)
	assert.False(t, s.GameOver)
	assert.False(t, s.Paused)
	assert.False(t, s.JumpRequested)
	assert.Equal(t, core.Pt(20, 20), s.Hero.Pos)
	assert.Equal(t, core.Pt(80, 0), s.Hero.Vel)
	assert.Len(t, s.Clouds, 8)
	assert.Len(t, s.ForegroundClouds, 4)
	assert.NotEmpty(t, s.Skyline)

	assert.Equal(t, 1, r.audio.inits)
	assert.Equal(t, []Screen{ScreenNone}, r.overlay.screens)
}

func TestGameOverWithoutHighScore(t *testing.T) {
	r := newRig(1)
	g := r.game
	g.StartGame()
	crash(g, 0)

	s := g.State()
	assert.True(t, s.GameOver)
	assert.Equal(t, ModeGameOver, s.Mode)
	assert.Nil(t, r.overlay.prompt)
	assert.False(t, g.PromptOpen())

	require.Len(t, r.overlay.views, 1)
	v := r.overlay.lastView()
	assert.False(t, v.NewHighScore)
	assert.Len(t, v.Rows, 5, "zero score adds no player row")
	assert.Empty(t, r.scores.saved)
}

func TestGameOverHighScoreFlow(t *testing.T) {
	r := newRig(1)
	g := r.game
	g.StartGame()
	crash(g, 30)

	require.NotNil(t, r.overlay.prompt)
	assert.True(t, g.PromptOpen())
	assert.True(t, r.overlay.lastView().NewHighScore)

	// Enter goes to the prompt, not the game.
	assert.False(t, g.HandleAction(core.ActionConfirm))
	assert.Equal(t, ModeGameOver, g.State().Mode)

	r.overlay.prompt("  bob  ")

	assert.False(t, g.PromptOpen())
	assert.Equal(t, []core.ScoreRecord{{Score: 30, Initials: "bob"}}, r.scores.saved)

	v := r.overlay.lastView()
	require.Len(t, v.Rows, 5)
	assert.Equal(t, ScoreRow{Score: 30, Initials: "bob", Player: true}, v.Rows[2])
	for i, row := range v.Rows {
		if i != 2 {
			assert.False(t, row.Player)
		}
	}

	// A second callback is ignored.
	r.overlay.prompt("eve")
	assert.Len(t, r.scores.saved, 1)

	assert.True(t, g.HandleAction(core.ActionConfirm))
	assert.Equal(t, ModePlaying, g.State().Mode)
}

func TestGameOverSkippedInitialsUseDefault(t *testing.T) {
	r := newRig(1)
	g := r.game
	g.StartGame()
	crash(g, 30)

	r.overlay.prompt("")

	assert.Equal(t, []core.ScoreRecord{{Score: 30, Initials: "WIN"}}, r.scores.saved)
	rows := r.overlay.lastView().Rows
	assert.True(t, rows[2].Player)
	assert.False(t, rows[4].Player, "the older WIN entry is not highlighted")
}

func TestNormalizeInitials(t *testing.T) {
	tests := []struct {
		raw, want string
	}{
		{"", "WIN"},
		{"   ", "WIN"},
		{"ab", "ab"},
		{"  abc  ", "abc"},
		{"abcdefgh", "abcde"},
		{"ÄÖÜßéè", "ÄÖÜßé"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, NormalizeInitials(tc.raw, "WIN"), "raw %q", tc.raw)
	}
}

func TestScreenTransitions(t *testing.T) {
	r := newRig(1)
	g := r.game
	s := g.State()

	// Title: jump and pause do nothing.
	assert.False(t, g.HandleAction(core.ActionJump))
	assert.False(t, g.HandleAction(core.ActionPause))
	assert.False(t, s.JumpRequested)
	assert.False(t, s.Paused)
	assert.False(t, g.HandleAction(core.ActionBack))

	assert.True(t, g.HandleAction(core.ActionHelp))
	assert.Equal(t, ModeInstructions, s.Mode)
	assert.False(t, g.HandleAction(core.ActionHelp))

	assert.True(t, g.HandleAction(core.ActionBack))
	assert.Equal(t, ModeTitle, s.Mode)

	g.ShowInstructions()
	assert.True(t, g.HandleAction(core.ActionConfirm), "enter leaves the instructions")
	assert.Equal(t, ModeTitle, s.Mode)

	assert.True(t, g.HandleAction(core.ActionConfirm))
	assert.Equal(t, ModePlaying, s.Mode)

	assert.True(t, g.HandleAction(core.ActionJump))
	assert.True(t, s.JumpRequested)
	assert.True(t, g.HandleAction(core.ActionPause))
	assert.True(t, s.Paused)
	assert.Equal(t, ModePlaying, s.Mode, "pause does not change the mode")
	assert.True(t, g.HandleAction(core.ActionPause))
	assert.False(t, s.Paused)

	assert.False(t, g.HandleAction(core.ActionConfirm), "enter does nothing mid-round")
	assert.False(t, g.HandleAction(core.ActionQuit))

	assert.Equal(t, []Screen{ScreenInstructions, ScreenTitle, ScreenInstructions, ScreenTitle, ScreenNone}, r.overlay.screens)
}

func TestRequestJumpIgnoredAfterGameOver(t *testing.T) {
	r := newRig(1)
	g := r.game
	g.StartGame()
	crash(g, 0)

	g.RequestJump()
	assert.False(t, g.State().JumpRequested)

	g.TogglePause()
	assert.False(t, g.State().Paused, "pause only works while playing")
}

func TestTogglePauseHelper(t *testing.T) {
	s := &State{Mode: ModeTitle}
	assert.False(t, TogglePause(s))

	s.Mode = ModePlaying
	assert.True(t, TogglePause(s))
	assert.False(t, TogglePause(s))
}
