package core

import "time"

// FrameFunc is invoked by the host once per display frame with a monotonic
// timestamp measured from an arbitrary origin.
type FrameFunc func(ts time.Duration)

// FrameRequester schedules a single callback for the next display frame.
// Hosts (terminal tick, window update loop, tests) implement it.
type FrameRequester interface {
	RequestFrame(fn FrameFunc)
}

// FrameLoop drives a simulation from host frame callbacks. Each frame it
// computes the elapsed time, ticks the simulation, decides whether a render is
// due and re-arms itself for the next frame.
type FrameLoop struct {
	tick      func(dt float64)
	paused    func() bool
	render    func()
	requester FrameRequester

	lastTimestamp time.Duration
	started       bool
	needsRender   bool
	lastPaused    bool
	stopped       bool
}

// NewFrameLoop creates a loop. paused reports the simulation's current pause
// flag; render draws the current state and must not mutate it.
func NewFrameLoop(tick func(dt float64), paused func() bool, render func(), requester FrameRequester) *FrameLoop {
	return &FrameLoop{
		tick:        tick,
		paused:      paused,
		render:      render,
		requester:   requester,
		needsRender: true,
	}
}

// Start arms the first frame.
func (l *FrameLoop) Start() {
	l.stopped = false
	l.requester.RequestFrame(l.Frame)
}

// Stop prevents the loop from re-arming after the current frame.
func (l *FrameLoop) Stop() {
	l.stopped = true
}

// RequestRender forces exactly one render on the next frame, even while paused.
func (l *FrameLoop) RequestRender() {
	l.needsRender = true
}

// Frame runs one iteration of the loop for the given timestamp.
func (l *FrameLoop) Frame(ts time.Duration) {
	last := ts
	if l.started {
		last = l.lastTimestamp
	}
	elapsed := (ts - last).Seconds()

	paused := l.paused()
	pauseChanged := paused != l.lastPaused
	l.lastPaused = paused

	l.tick(elapsed)

	if !paused || pauseChanged || l.needsRender {
		l.render()
		l.needsRender = false
	}

	l.lastTimestamp = ts
	l.started = true

	if !l.stopped {
		l.requester.RequestFrame(l.Frame)
	}
}
