package flappy

import (
	"math/rand"
	"sort"

	"github.com/vovakirdan/flap/internal/config"
	"github.com/vovakirdan/flap/internal/core"
)

// scriptedSource feeds math/rand a fixed sequence so Float64 returns exactly
// the listed values, repeating the last one.
type scriptedSource struct {
	vals  []float64
	calls int
}

func (s *scriptedSource) Int63() int64 {
	i := s.calls
	if i >= len(s.vals) {
		i = len(s.vals) - 1
	}
	s.calls++
	return int64(s.vals[i] * (1 << 63))
}

func (s *scriptedSource) Seed(int64) {}

// testEnv is a 500x200 viewport, so every scale factor is exactly 1.
func testEnv(seed int64) Env {
	return NewEnv(config.DefaultFlapConfig(), 500, 200, rand.New(rand.NewSource(seed)))
}

func scriptedEnv(src *scriptedSource) Env {
	return NewEnv(config.DefaultFlapConfig(), 500, 200, rand.New(src))
}

type fakeAudio struct {
	inits, bounces, gameOvers int
}

func (a *fakeAudio) Init()         { a.inits++ }
func (a *fakeAudio) PlayBounce()   { a.bounces++ }
func (a *fakeAudio) PlayGameOver() { a.gameOvers++ }

type fakeScores struct {
	list  []core.ScoreRecord
	saved []core.ScoreRecord
}

func newFakeScores() *fakeScores {
	return &fakeScores{list: []core.ScoreRecord{
		{Score: 50, Initials: "ACE"},
		{Score: 40, Initials: "FLY"},
		{Score: 25, Initials: "SKY"},
		{Score: 10, Initials: "WIN"},
		{Score: 1, Initials: "TRY"},
	}}
}

func (f *fakeScores) IsNewHighScore(score int) bool {
	return len(f.list) < 5 || score > f.list[len(f.list)-1].Score
}

func (f *fakeScores) SaveHighScore(score int, initials string) bool {
	rec := core.ScoreRecord{Score: score, Initials: initials}
	f.saved = append(f.saved, rec)
	f.list = append(f.list, rec)
	sort.SliceStable(f.list, func(i, j int) bool { return f.list[i].Score > f.list[j].Score })
	if len(f.list) > 5 {
		f.list = f.list[:5]
	}
	return true
}

func (f *fakeScores) TopScore() core.ScoreRecord {
	if len(f.list) == 0 {
		return core.ScoreRecord{}
	}
	return f.list[0]
}

func (f *fakeScores) HighScores() []core.ScoreRecord {
	return append([]core.ScoreRecord(nil), f.list...)
}

type fakeOverlay struct {
	screens []Screen
	views   []GameOverView
	prompt  func(string)
}

func (o *fakeOverlay) ShowScreen(s Screen)            { o.screens = append(o.screens, s) }
func (o *fakeOverlay) ShowGameOver(v GameOverView)    { o.views = append(o.views, v) }
func (o *fakeOverlay) PromptInitials(fn func(string)) { o.prompt = fn }

func (o *fakeOverlay) lastView() GameOverView {
	return o.views[len(o.views)-1]
}

type testRig struct {
	game    *Game
	audio   *fakeAudio
	scores  *fakeScores
	overlay *fakeOverlay
}

func newRig(seed int64) *testRig {
	r := &testRig{
		audio:   &fakeAudio{},
		scores:  newFakeScores(),
		overlay: &fakeOverlay{},
	}
	r.game = New(Options{
		Config:  config.DefaultFlapConfig(),
		Width:   500,
		Height:  200,
		Seed:    seed,
		Audio:   r.audio,
		Scores:  r.scores,
		Overlay: r.overlay,
	})
	return r
}

// runTicks advances the game n frames at 60 fps.
func runTicks(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Tick(1.0 / 60)
	}
}
