package sound

import (
	"bytes"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/oto/v2"
)

// oto allows one context per process.
var (
	ctxOnce sync.Once
	ctx     *oto.Context
	ready   chan struct{}
	ctxErr  error
)

func sharedContext() (*oto.Context, chan struct{}, error) {
	ctxOnce.Do(func() {
		ctx, ready, ctxErr = oto.NewContext(SampleRate, 2, oto.FormatFloat32LE)
	})
	return ctx, ready, ctxErr
}

// Player plays the effects on the local audio device. A failed Init leaves
// it silent.
type Player struct {
	logger *log.Logger
	muted  bool

	mu       sync.Mutex
	enabled  bool
	bounce   []byte
	gameOver []byte
}

// NewPlayer creates a player. Nothing touches the audio device until Init.
func NewPlayer(logger *log.Logger, muted bool) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{logger: logger, muted: muted}
}

// Init opens the audio device on first use. Failures are logged only.
func (p *Player) Init() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.muted || p.enabled {
		return
	}
	if _, _, err := sharedContext(); err != nil {
		p.logger.Warn("audio unavailable, sound disabled", "err", err)
		p.muted = true
		return
	}
	p.bounce = EncodeF32Stereo(Synthesize(Bounce, SampleRate))
	p.gameOver = EncodeF32Stereo(Synthesize(GameOver, SampleRate))
	p.enabled = true
	p.logger.Debug("audio ready")
}

// PlayBounce plays the flap chirp.
func (p *Player) PlayBounce() {
	p.play(p.bounce)
}

// PlayGameOver plays the crash tone.
func (p *Player) PlayGameOver() {
	p.play(p.gameOver)
}

func (p *Player) play(data []byte) {
	p.mu.Lock()
	enabled := p.enabled
	p.mu.Unlock()
	if !enabled {
		return
	}

	c, rdy, _ := sharedContext()
	select {
	case <-rdy:
	default:
		return
	}
	go func() {
		player := c.NewPlayer(bytes.NewReader(data))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}
