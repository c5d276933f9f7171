package gui

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/flap/internal/platform/sound"
)

// Audio plays the effects through ebiten's audio context. It implements
// flappy.Audio.
type Audio struct {
	logger *log.Logger
	muted  bool

	mu       sync.Mutex
	ctx      *audio.Context
	bounce   []byte
	gameOver []byte
}

// NewAudio creates the window audio. Nothing is synthesized until Init.
func NewAudio(logger *log.Logger, muted bool) *Audio {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Audio{logger: logger, muted: muted}
}

// Init creates or reuses the process-wide audio context.
func (a *Audio) Init() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.muted || a.ctx != nil {
		return
	}

	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sound.SampleRate)
	}
	if ctx.SampleRate() != sound.SampleRate {
		a.logger.Warn("audio context has a different sample rate, sound disabled", "rate", ctx.SampleRate())
		a.muted = true
		return
	}
	if err := ctx.Err(); err != nil {
		a.logger.Warn("audio unavailable, sound disabled", "err", err)
		a.muted = true
		return
	}

	a.ctx = ctx
	a.bounce = sound.EncodeS16Stereo(sound.Synthesize(sound.Bounce, sound.SampleRate))
	a.gameOver = sound.EncodeS16Stereo(sound.Synthesize(sound.GameOver, sound.SampleRate))
	a.logger.Debug("audio ready")
}

// PlayBounce implements flappy.Audio.
func (a *Audio) PlayBounce() {
	a.play(a.bounce)
}

// PlayGameOver implements flappy.Audio.
func (a *Audio) PlayGameOver() {
	a.play(a.gameOver)
}

func (a *Audio) play(data []byte) {
	a.mu.Lock()
	ctx, muted := a.ctx, a.muted
	a.mu.Unlock()
	if ctx == nil || muted || len(data) == 0 {
		return
	}
	if err := ctx.Err(); err != nil {
		a.logger.Warn("audio failed, sound disabled", "err", err)
		a.mu.Lock()
		a.muted = true
		a.mu.Unlock()
		return
	}
	ctx.NewPlayerFromBytes(data).Play()
}
