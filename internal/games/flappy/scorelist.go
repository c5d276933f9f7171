package flappy

import "github.com/vovakirdan/flap/internal/core"

// PlayerPlaceholder labels the player's row when they entered no initials.
const PlayerPlaceholder = "You"

// ScoreRow is one line of the game-over score list.
type ScoreRow struct {
	Score    int
	Initials string
	Player   bool // highlight: this row is the player's result
	Ellipsis bool // separator before a player row outside the table
}

// BuildScoreList lays out the table for the game-over screen. The first entry
// matching the player's score and initials is highlighted. A player who did
// not make the table but scored gets an ellipsis and their own row below it.
func BuildScoreList(scores []core.ScoreRecord, playerScore int, playerInitials string) []ScoreRow {
	if len(scores) == 0 {
		return nil
	}

	playerIdx := -1
	for i, r := range scores {
		if r.Score == playerScore && r.Initials == playerInitials {
			playerIdx = i
			break
		}
	}

	rows := make([]ScoreRow, 0, len(scores)+2)
	for i, r := range scores {
		rows = append(rows, ScoreRow{
			Score:    r.Score,
			Initials: r.Initials,
			Player:   i == playerIdx,
		})
	}

	if playerIdx < 0 && playerScore > 0 {
		name := playerInitials
		if name == "" {
			name = PlayerPlaceholder
		}
		rows = append(rows,
			ScoreRow{Ellipsis: true},
			ScoreRow{Score: playerScore, Initials: name, Player: true},
		)
	}
	return rows
}
