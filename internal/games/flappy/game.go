// Package flappy implements the side-scrolling flap game: a bird with a
// constant forward speed falls under gravity and must fly through the gaps
// of an endless stream of pipe pairs.
//
// The package owns the simulation only. Drawing, sound, overlays and score
// persistence are reached through the Audio, Overlay and HighScores
// interfaces so the same Game runs in a terminal, over SSH or in a window.
package flappy

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flap/internal/config"
	"github.com/vovakirdan/flap/internal/core"
	"github.com/vovakirdan/flap/internal/games/flappy/world"
)

// Audio plays fire-and-forget sound effects. Implementations must never
// block or panic into the tick.
type Audio interface {
	Init()
	PlayBounce()
	PlayGameOver()
}

// NopAudio is a silent Audio.
type NopAudio struct{}

func (NopAudio) Init()         {}
func (NopAudio) PlayBounce()   {}
func (NopAudio) PlayGameOver() {}

// HighScores is the persisted score table. The game only touches it on the
// game-over transition.
type HighScores interface {
	IsNewHighScore(score int) bool
	// SaveHighScore reports whether the entry made the table.
	SaveHighScore(score int, initials string) bool
	TopScore() core.ScoreRecord
	HighScores() []core.ScoreRecord
}

// Screen identifies which overlay is visible.
type Screen int

const (
	ScreenNone Screen = iota // playing, no overlay
	ScreenTitle
	ScreenInstructions
	ScreenGameOver
)

// GameOverView is everything the game-over overlay shows.
type GameOverView struct {
	Score        int
	NewHighScore bool
	Rows         []ScoreRow
}

// Overlay shows and hides the UI layered over the playfield.
type Overlay interface {
	ShowScreen(screen Screen)
	ShowGameOver(view GameOverView)
	// PromptInitials asks for initials and calls done exactly once with the
	// raw input, or an empty string when skipped.
	PromptInitials(done func(initials string))
}

type nopOverlay struct{}

func (nopOverlay) ShowScreen(Screen)           {}
func (nopOverlay) ShowGameOver(GameOverView)   {}
func (nopOverlay) PromptInitials(func(string)) {}

// noScores is used when no table is supplied: nothing ever qualifies.
type noScores struct{}

func (noScores) IsNewHighScore(int) bool        { return false }
func (noScores) SaveHighScore(int, string) bool { return false }
func (noScores) TopScore() core.ScoreRecord     { return core.ScoreRecord{} }
func (noScores) HighScores() []core.ScoreRecord { return nil }

// Options configures a new Game.
type Options struct {
	Config  config.FlapConfig
	Width   float64 // viewport in pixels
	Height  float64
	Seed    int64 // 0 seeds from the clock
	Audio   Audio
	Scores  HighScores
	Overlay Overlay
	Logger  *log.Logger
}

// Game owns the single State and drives it through screens, input and ticks.
type Game struct {
	state   *State
	env     Env
	world   *world.Generator
	audio   Audio
	scores  HighScores
	overlay Overlay
	logger  *log.Logger

	promptOpen    bool
	requestRender func()
}

// New creates a game on the title screen with a populated world.
func New(opts Options) *Game {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g := &Game{
		env:     NewEnv(opts.Config, opts.Width, opts.Height, rng),
		world:   world.NewGenerator(rng),
		audio:   opts.Audio,
		scores:  opts.Scores,
		overlay: opts.Overlay,
		logger:  opts.Logger,
	}
	if g.audio == nil {
		g.audio = NopAudio{}
	}
	if g.scores == nil {
		g.scores = noScores{}
	}
	if g.overlay == nil {
		g.overlay = nopOverlay{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	g.state = NewGame(g.env)
	g.regenerateWorld()
	g.logger.Debug("game created", "seed", seed, "width", opts.Width, "height", opts.Height)
	return g
}

// State returns the live game state. Renderers must treat it as read-only.
func (g *Game) State() *State {
	return g.state
}

// Env returns the current environment, including scaling.
func (g *Game) Env() Env {
	return g.env
}

// Scores returns the high-score table the game reports to.
func (g *Game) Scores() HighScores {
	return g.scores
}

// PromptOpen reports whether the initials prompt is waiting for input.
func (g *Game) PromptOpen() bool {
	return g.promptOpen
}

// OnRenderRequest registers the hook used to force a redraw, typically
// FrameLoop.RequestRender.
func (g *Game) OnRenderRequest(fn func()) {
	g.requestRender = fn
}

func (g *Game) regenerateWorld() {
	sc := g.env.Scaling
	g.state.Clouds = g.world.GenerateClouds(sc)
	g.state.ForegroundClouds = g.world.GenerateForegroundClouds(sc)
	g.state.Skyline = g.world.GenerateSkyline(sc)
}
