package flappy

import "github.com/vovakirdan/flap/internal/core"

// RequestJump latches a flap for the next tick. Ignored unless a round is
// running; a latch set while paused fires after unpausing.
func (g *Game) RequestJump() {
	if g.state.Mode == ModePlaying && !g.state.GameOver {
		g.state.JumpRequested = true
	}
}

// TogglePause pauses or resumes a running round.
func (g *Game) TogglePause() {
	paused := TogglePause(g.state)
	if g.state.Mode == ModePlaying {
		g.logger.Debug("pause toggled", "paused", paused)
	}
}

// HandleAction applies a semantic input action and reports whether the game
// consumed it. Input only sets flags or switches screens; physics happens in
// Tick.
func (g *Game) HandleAction(a core.Action) bool {
	mode := g.state.Mode
	switch a {
	case core.ActionJump:
		if mode != ModePlaying {
			return false
		}
		g.RequestJump()
		return true

	case core.ActionPause:
		if mode != ModePlaying {
			return false
		}
		g.TogglePause()
		return true

	case core.ActionConfirm:
		if g.promptOpen {
			return false
		}
		switch mode {
		case ModeTitle, ModeGameOver:
			g.StartGame()
			return true
		case ModeInstructions:
			g.ShowTitleScreen()
			return true
		}

	case core.ActionBack:
		if mode == ModeInstructions {
			g.ShowTitleScreen()
			return true
		}

	case core.ActionHelp:
		if mode == ModeTitle {
			g.ShowInstructions()
			return true
		}
	}
	return false
}
