package flappy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/flap/internal/core"
)

func TestBuildScoreList(t *testing.T) {
	table := []core.ScoreRecord{
		{Score: 50, Initials: "ACE"},
		{Score: 40, Initials: "FLY"},
		{Score: 25, Initials: "SKY"},
	}

	tests := []struct {
		name     string
		scores   []core.ScoreRecord
		score    int
		initials string
		want     []ScoreRow
	}{
		{
			name:   "empty table",
			scores: nil,
			score:  10,
			want:   nil,
		},
		{
			name:     "player in table",
			scores:   table,
			score:    40,
			initials: "FLY",
			want: []ScoreRow{
				{Score: 50, Initials: "ACE"},
				{Score: 40, Initials: "FLY", Player: true},
				{Score: 25, Initials: "SKY"},
			},
		},
		{
			name:   "player below table",
			scores: table,
			score:  7,
			want: []ScoreRow{
				{Score: 50, Initials: "ACE"},
				{Score: 40, Initials: "FLY"},
				{Score: 25, Initials: "SKY"},
				{Ellipsis: true},
				{Score: 7, Initials: "You", Player: true},
			},
		},
		{
			name:     "player below table with initials",
			scores:   table,
			score:    7,
			initials: "ZED",
			want: []ScoreRow{
				{Score: 50, Initials: "ACE"},
				{Score: 40, Initials: "FLY"},
				{Score: 25, Initials: "SKY"},
				{Ellipsis: true},
				{Score: 7, Initials: "ZED", Player: true},
			},
		},
		{
			name:   "zero score adds nothing",
			scores: table,
			score:  0,
			want: []ScoreRow{
				{Score: 50, Initials: "ACE"},
				{Score: 40, Initials: "FLY"},
				{Score: 25, Initials: "SKY"},
			},
		},
		{
			name: "only first duplicate highlighted",
			scores: []core.ScoreRecord{
				{Score: 10, Initials: "WIN"},
				{Score: 10, Initials: "WIN"},
			},
			score:    10,
			initials: "WIN",
			want: []ScoreRow{
				{Score: 10, Initials: "WIN", Player: true},
				{Score: 10, Initials: "WIN"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BuildScoreList(tc.scores, tc.score, tc.initials))
		})
	}
}
