package core

// ScoreRecord is one entry of the high-score table.
type ScoreRecord struct {
	Score    int
	Initials string
}
