package flappy

import (
	"strings"
)

// MaxInitials is the longest initials string kept in the score table.
const MaxInitials = 5

// ShowTitleScreen switches to the title screen.
func (g *Game) ShowTitleScreen() {
	g.state.Mode = ModeTitle
	g.overlay.ShowScreen(ScreenTitle)
}

// ShowInstructions switches to the help screen.
func (g *Game) ShowInstructions() {
	g.state.Mode = ModeInstructions
	g.overlay.ShowScreen(ScreenInstructions)
}

// StartGame fully resets the round and begins play. It is the only way into
// ModePlaying.
func (g *Game) StartGame() {
	resetRound(g.state, g.env)
	g.regenerateWorld()
	g.promptOpen = false
	g.overlay.ShowScreen(ScreenNone)
	g.audio.Init()
	g.logger.Debug("round started")
}

// ShowGameOver moves to the game-over screen and consults the score table.
// A qualifying score opens the initials prompt; the list is shown again with
// the player's entry once it is saved.
func (g *Game) ShowGameOver() {
	s := g.state
	SetGameOver(s)
	score := s.Score
	g.logger.Info("game over", "score", score)

	if !g.scores.IsNewHighScore(score) {
		g.overlay.ShowGameOver(GameOverView{
			Score: score,
			Rows:  BuildScoreList(g.scores.HighScores(), score, ""),
		})
		return
	}

	g.overlay.ShowGameOver(GameOverView{
		Score:        score,
		NewHighScore: true,
		Rows:         BuildScoreList(g.scores.HighScores(), score, ""),
	})
	g.promptOpen = true
	g.overlay.PromptInitials(func(raw string) {
		g.submitInitials(score, raw)
	})
}

func (g *Game) submitInitials(score int, raw string) {
	if !g.promptOpen {
		return
	}
	g.promptOpen = false

	initials := NormalizeInitials(raw, g.env.Config.Scores.DefaultInitials)
	if !g.scores.SaveHighScore(score, initials) {
		g.logger.Info("score fell off the table", "score", score, "initials", initials)
	} else {
		g.logger.Info("new high score", "score", score, "initials", initials)
	}

	g.overlay.ShowGameOver(GameOverView{
		Score:        score,
		NewHighScore: true,
		Rows:         BuildScoreList(g.scores.HighScores(), score, initials),
	})
}

// NormalizeInitials trims input and cuts it to MaxInitials runes. Empty
// input becomes def.
func NormalizeInitials(raw, def string) string {
	s := strings.TrimSpace(raw)
	if r := []rune(s); len(r) > MaxInitials {
		s = string(r[:MaxInitials])
	}
	if s == "" {
		return def
	}
	return s
}
