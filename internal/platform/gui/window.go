// Package gui runs the game in a desktop window with Ebitengine.
package gui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flap/internal/config"
	"github.com/vovakirdan/flap/internal/core"
	"github.com/vovakirdan/flap/internal/games/flappy"
)

// Options configures the window frontend.
type Options struct {
	Config  config.FlapConfig
	Runtime core.RuntimeConfig
	Width   int
	Height  int
	Scores  flappy.HighScores
	Logger  *log.Logger
	ShowTPS bool
}

// DefaultWidth and DefaultHeight keep the reference 5:2 aspect.
const (
	DefaultWidth  = 1000
	DefaultHeight = 400
)

// frames is the FrameRequester driven by ebiten's Update.
type frames struct {
	pending core.FrameFunc
	start   time.Time
}

func (f *frames) RequestFrame(fn core.FrameFunc) {
	f.pending = fn
}

func (f *frames) fire(now time.Time) {
	if f.start.IsZero() {
		f.start = now
	}
	fn := f.pending
	if fn == nil {
		return
	}
	f.pending = nil
	fn(now.Sub(f.start))
}

// Window implements ebiten.Game.
type Window struct {
	game    *flappy.Game
	loop    *core.FrameLoop
	frames  *frames
	overlay *Overlay
	logger  *log.Logger
	showTPS bool

	canvas   *ebiten.Image
	width    int
	height   int
	pendingW int
	pendingH int
	drawErr  error
}

// NewWindow creates the game on its title screen.
func NewWindow(opts Options, audio flappy.Audio) *Window {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		w, h = DefaultWidth, DefaultHeight
	}

	win := &Window{
		frames:  &frames{},
		logger:  logger,
		showTPS: opts.ShowTPS,
		width:   w,
		height:  h,
	}
	win.overlay = NewOverlay(opts.Scores, func() {
		if win.loop != nil {
			win.loop.RequestRender()
		}
	})
	win.game = flappy.New(flappy.Options{
		Config:  opts.Config,
		Width:   float64(w),
		Height:  float64(h),
		Seed:    opts.Runtime.Seed,
		Audio:   audio,
		Scores:  opts.Scores,
		Overlay: win.overlay,
		Logger:  logger,
	})
	win.loop = core.NewFrameLoop(win.game.Tick, func() bool { return win.game.State().Paused }, win.render, win.frames)
	win.game.OnRenderRequest(win.loop.RequestRender)
	win.game.ShowTitleScreen()
	win.loop.Start()
	return win
}

// Game exposes the running game.
func (w *Window) Game() *flappy.Game {
	return w.game
}

func (w *Window) render() {
	if w.canvas == nil {
		w.canvas = ebiten.NewImage(w.width, w.height)
	}
	s := w.game.State()
	DrawScene(w.canvas, s, w.game.Env())
	if err := w.overlay.Draw(w.canvas, s); err != nil {
		w.drawErr = err
	}
}

// Update polls input and advances one frame.
func (w *Window) Update() error {
	if w.drawErr != nil {
		return w.drawErr
	}
	w.applyResize()

	if w.overlay.Prompting() {
		w.overlay.Update(promptInput{
			chars:     ebiten.AppendInputChars(nil),
			backspace: inpututil.IsKeyJustPressed(ebiten.KeyBackspace),
			enter:     inpututil.IsKeyJustPressed(ebiten.KeyEnter),
			escape:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		})
	} else {
		action := keyAction(inpututil.IsKeyJustPressed)
		if action == core.ActionNone && pointerPressed() {
			action = core.ActionJump
		}
		if action == core.ActionQuit {
			w.loop.Stop()
			return ebiten.Termination
		}
		w.game.HandleAction(action)
	}

	w.frames.fire(time.Now())
	return nil
}

// keyAction maps the keys pressed this frame to an action.
func keyAction(justPressed func(ebiten.Key) bool) core.Action {
	switch {
	case justPressed(ebiten.KeySpace), justPressed(ebiten.KeyArrowUp), justPressed(ebiten.KeyW):
		return core.ActionJump
	case justPressed(ebiten.KeyP):
		return core.ActionPause
	case justPressed(ebiten.KeyEnter):
		return core.ActionConfirm
	case justPressed(ebiten.KeyEscape):
		return core.ActionBack
	case justPressed(ebiten.KeyH), justPressed(ebiten.KeySlash):
		return core.ActionHelp
	case justPressed(ebiten.KeyQ):
		return core.ActionQuit
	}
	return core.ActionNone
}

func pointerPressed() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

func (w *Window) applyResize() {
	if w.pendingW == 0 || (w.pendingW == w.width && w.pendingH == w.height) {
		return
	}
	w.width, w.height = w.pendingW, w.pendingH
	if w.canvas != nil {
		w.canvas.Deallocate()
		w.canvas = nil
	}
	w.game.Resize(float64(w.width), float64(w.height))
	w.loop.RequestRender()
	w.logger.Debug("window resized", "width", w.width, "height", w.height)
}

// Draw copies the last finished frame to the screen.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.canvas != nil {
		screen.DrawImage(w.canvas, nil)
	}
	if w.showTPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()), 4, 4)
	}
}

// Layout uses the window size as the logical size; a change is applied on
// the next Update.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		w.pendingW, w.pendingH = outsideWidth, outsideHeight
	}
	return core.Max(outsideWidth, 1), core.Max(outsideHeight, 1)
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = DefaultWidth, DefaultHeight
	}
	fps := opts.Runtime.FPS
	if fps <= 0 {
		fps = 60
	}

	audio := NewAudio(opts.Logger, opts.Runtime.Muted)
	win := NewWindow(opts, audio)

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle("Flap")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(fps)

	if err := ebiten.RunGame(win); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
