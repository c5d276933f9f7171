package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flap/internal/core"
	"github.com/vovakirdan/flap/internal/games/flappy"
)

// Overlay draws the title, help and game-over panels over the playfield and
// owns the initials prompt.
type Overlay struct {
	scores  flappy.HighScores
	changed func()

	screen flappy.Screen
	top    core.ScoreRecord
	view   flappy.GameOverView

	input     textinput.Model
	prompting bool
	done      func(string)
}

// NewOverlay creates an overlay reading the title's top score from scores.
// changed is called whenever the overlay needs a redraw.
func NewOverlay(scores flappy.HighScores, changed func()) *Overlay {
	if changed == nil {
		changed = func() {}
	}
	return &Overlay{scores: scores, changed: changed}
}

// ShowScreen implements flappy.Overlay.
func (o *Overlay) ShowScreen(screen flappy.Screen) {
	o.screen = screen
	if screen == flappy.ScreenTitle && o.scores != nil {
		o.top = o.scores.TopScore()
	}
	o.changed()
}

// ShowGameOver implements flappy.Overlay.
func (o *Overlay) ShowGameOver(view flappy.GameOverView) {
	o.screen = flappy.ScreenGameOver
	o.view = view
	o.changed()
}

// PromptInitials implements flappy.Overlay.
func (o *Overlay) PromptInitials(done func(string)) {
	in := textinput.New()
	in.CharLimit = flappy.MaxInitials
	in.Prompt = ""
	in.Focus()

	o.input = in
	o.prompting = true
	o.done = done
	o.changed()
}

// Prompting reports whether key presses belong to the initials prompt.
func (o *Overlay) Prompting() bool {
	return o.prompting
}

// Screen returns the visible overlay.
func (o *Overlay) Screen() flappy.Screen {
	return o.screen
}

// Update feeds a message to the initials prompt. Enter submits, Esc skips.
func (o *Overlay) Update(msg tea.Msg) tea.Cmd {
	if !o.prompting {
		return nil
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyEnter:
			o.finish(o.input.Value())
			return nil
		case tea.KeyEsc:
			o.finish("")
			return nil
		}
	}

	var cmd tea.Cmd
	o.input, cmd = o.input.Update(msg)
	o.changed()
	return cmd
}

func (o *Overlay) finish(value string) {
	done := o.done
	o.prompting = false
	o.done = nil
	o.input.Blur()
	if done != nil {
		done(value)
	}
	o.changed()
}

type line struct {
	text string
	fg   core.Color
}

// Draw paints the visible panel into dst.
func (o *Overlay) Draw(dst *core.Screen, s *flappy.State) {
	switch o.screen {
	case flappy.ScreenTitle:
		top := fmt.Sprintf("High Score: %d", o.top.Score)
		if o.top.Initials != "" {
			top += " " + o.top.Initials
		}
		panel(dst, []line{
			{"F L A P", core.ColorHero},
			{"", ""},
			{top, core.ColorText},
			{"", ""},
			{"enter  start", core.ColorText},
			{"?  how to play", core.ColorDim},
		})

	case flappy.ScreenInstructions:
		panel(dst, []line{
			{"HOW TO PLAY", core.ColorHero},
			{"", ""},
			{"space / up / w  flap", core.ColorText},
			{"p  pause", core.ColorText},
			{"fly through the gaps", core.ColorText},
			{"one point per pipe", core.ColorText},
			{"", ""},
			{"esc  back", core.ColorDim},
		})

	case flappy.ScreenGameOver:
		panel(dst, o.gameOverLines())

	case flappy.ScreenNone:
		if s.Paused && s.Mode == flappy.ModePlaying {
			panel(dst, []line{{"PAUSED", core.ColorText}, {"p  resume", core.ColorDim}})
		}
	}
}

func (o *Overlay) gameOverLines() []line {
	lines := []line{
		{"GAME OVER", core.ColorHero},
		{fmt.Sprintf("Score: %d", o.view.Score), core.ColorText},
	}
	if o.view.NewHighScore {
		lines = append(lines, line{"NEW HIGH SCORE!", core.ColorHighlight})
	}
	lines = append(lines, line{"", ""})

	if len(o.view.Rows) == 0 {
		lines = append(lines, line{"No High Scores Yet", core.ColorDim})
	} else {
		lines = append(lines, line{"High Scores", core.ColorText})
	}
	for _, r := range o.view.Rows {
		switch {
		case r.Ellipsis:
			lines = append(lines, line{"...", core.ColorDim})
		case r.Player:
			lines = append(lines, line{fmt.Sprintf("%5d - %-5s <", r.Score, r.Initials), core.ColorHighlight})
		default:
			lines = append(lines, line{fmt.Sprintf("%5d - %-5s  ", r.Score, r.Initials), core.ColorText})
		}
	}

	lines = append(lines, line{"", ""})
	if o.prompting {
		lines = append(lines,
			line{fmt.Sprintf("Initials: %-5s", o.input.Value()+"_"), core.ColorHighlight},
			line{"enter  save   esc  skip", core.ColorDim},
		)
	} else {
		lines = append(lines, line{"enter  play again", core.ColorDim})
	}
	return lines
}

// panel draws lines centred in a bordered box in the middle of dst.
func panel(dst *core.Screen, lines []line) {
	w := 0
	for _, l := range lines {
		w = core.Max(w, len([]rune(l.text)))
	}
	w += 4
	h := len(lines) + 2
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2

	dst.FillRect(x, y, w, h, core.Cell{Rune: ' ', Bg: core.ColorPanel})
	dst.DrawBox(x, y, w, h, core.ColorDim)
	for i, l := range lines {
		lx := x + (w-len([]rune(l.text)))/2
		dst.DrawText(lx, y+1+i, l.text, l.fg)
	}
}
