// Package tui runs the game in a terminal with Bubble Tea, locally or over
// SSH. Terminal cells are treated as blocks of virtual pixels so the
// simulation is identical to the window frontend.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flap/internal/core"
)

// TickMsg is sent once per display frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// teaFrames is the FrameRequester backed by TickMsg. A requested callback
// runs on the next tick with the time elapsed since the first tick.
type teaFrames struct {
	pending core.FrameFunc
	origin  time.Time
}

func (f *teaFrames) RequestFrame(fn core.FrameFunc) {
	f.pending = fn
}

// fire runs the pending callback, if any.
func (f *teaFrames) fire(t time.Time) {
	if f.origin.IsZero() {
		f.origin = t
	}
	fn := f.pending
	if fn == nil {
		return
	}
	f.pending = nil
	fn(t.Sub(f.origin))
}
