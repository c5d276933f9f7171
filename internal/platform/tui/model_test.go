package tui

import (
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flap/internal/config"
	"github.com/vovakirdan/flap/internal/core"
	"github.com/vovakirdan/flap/internal/games/flappy"
	"github.com/vovakirdan/flap/internal/storage"
)

type modelRig struct {
	m     Model
	board *storage.Board
	dir   string
	now   time.Time
}

func newModelRig(t *testing.T) *modelRig {
	t.Helper()
	board := storage.NewBoard(nil, 5, "WIN", nil)
	dir := t.TempDir()
	m := NewModel(Options{
		Config:        config.DefaultFlapConfig(),
		Runtime:       core.RuntimeConfig{FPS: 60, Seed: 3},
		Width:         80,
		Height:        25,
		Scores:        board,
		ScreenshotDir: dir,
	})
	return &modelRig{m: m, board: board, dir: dir, now: time.Unix(1000, 0)}
}

func (r *modelRig) send(msg tea.Msg) tea.Cmd {
	next, cmd := r.m.Update(msg)
	r.m = next.(Model)
	return cmd
}

func (r *modelRig) tick() {
	r.now = r.now.Add(time.Second / 60)
	r.send(TickMsg(r.now))
}

func TestModelStartsOnTitle(t *testing.T) {
	r := newModelRig(t)
	if r.m.Game().State().Mode != flappy.ModeTitle {
		t.Fatalf("mode = %v, want title", r.m.Game().State().Mode)
	}

	r.tick()
	view := r.m.View()
	if !strings.Contains(view, "F L A P") || !strings.Contains(view, "High Score: 50 ACE") {
		t.Errorf("title view missing:\n%s", view)
	}
	if n := len(strings.Split(view, "\n")); n != 25 {
		t.Errorf("view has %d lines, want 25", n)
	}
}

func TestModelPlayFlow(t *testing.T) {
	r := newModelRig(t)
	r.tick()

	r.send(tea.KeyMsg{Type: tea.KeyEnter})
	s := r.m.Game().State()
	if s.Mode != flappy.ModePlaying {
		t.Fatalf("mode = %v, want playing", s.Mode)
	}

	r.send(runes("w"))
	if !s.JumpRequested {
		t.Error("jump not latched")
	}
	r.tick()
	if s.JumpRequested || s.Hero.Vel.Y >= 0 {
		t.Errorf("jump not applied: vel %v", s.Hero.Vel)
	}

	r.send(runes("p"))
	if !s.Paused {
		t.Error("p should pause")
	}
	r.tick()
	if !strings.Contains(r.m.View(), "PAUSED") {
		t.Error("pause panel not rendered")
	}
}

func TestModelHighScorePrompt(t *testing.T) {
	r := newModelRig(t)
	r.tick()
	r.send(tea.KeyMsg{Type: tea.KeyEnter})

	s := r.m.Game().State()
	s.Score = 60
	s.Hero.Pos.Y = 1e6
	r.tick()

	if !s.GameOver || !r.m.Game().PromptOpen() {
		t.Fatal("expected game over with an open prompt")
	}

	// q belongs to the prompt, not the quit binding.
	for _, k := range "qz" {
		r.send(runes(string(k)))
	}
	if r.m.quitting {
		t.Fatal("typing initials must not quit")
	}
	r.send(tea.KeyMsg{Type: tea.KeyEnter})

	if r.m.Game().PromptOpen() {
		t.Error("prompt should be closed")
	}
	if top := r.board.TopScore(); top != (core.ScoreRecord{Score: 60, Initials: "qz"}) {
		t.Errorf("top score = %v", top)
	}
	if s.Mode != flappy.ModeGameOver {
		t.Error("submitting initials must not restart")
	}

	r.tick()
	if !strings.Contains(r.m.View(), "60 - qz") {
		t.Errorf("saved entry not shown:\n%s", r.m.View())
	}

	r.send(tea.KeyMsg{Type: tea.KeyEnter})
	if s.Mode != flappy.ModePlaying {
		t.Error("enter should start a new round")
	}
}

func TestModelResize(t *testing.T) {
	r := newModelRig(t)
	r.send(tea.WindowSizeMsg{Width: 120, Height: 41})

	sc := r.m.Game().Env().Scaling
	if sc.ViewW != 120*core.CellPixelsX || sc.ViewH != 40*core.CellPixelsY {
		t.Errorf("viewport = %vx%v", sc.ViewW, sc.ViewH)
	}

	r.tick()
	if n := len(strings.Split(r.m.View(), "\n")); n != 41 {
		t.Errorf("view has %d lines, want 41", n)
	}
}

func TestModelScreenshot(t *testing.T) {
	r := newModelRig(t)
	r.tick()
	r.send(tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := os.ReadDir(r.dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || !strings.HasPrefix(files[0].Name(), "flap_") {
		t.Fatalf("screenshots = %v", files)
	}
	data, _ := os.ReadFile(r.dir + "/" + files[0].Name())
	if !strings.Contains(string(data), "F L A P") {
		t.Error("screenshot does not hold the frame")
	}
}

func TestModelQuit(t *testing.T) {
	r := newModelRig(t)
	cmd := r.send(runes("q"))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if r.m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
