package gui

import (
	"bytes"
	"fmt"
	"math"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/flap/internal/core"
	"github.com/vovakirdan/flap/internal/games/flappy"
)

// promptInput is one frame of keyboard input for the initials prompt.
type promptInput struct {
	chars     []rune
	backspace bool
	enter     bool
	escape    bool
}

func (in promptInput) empty() bool {
	return len(in.chars) == 0 && !in.backspace && !in.enter && !in.escape
}

// editInitials applies typed characters and backspace to value. Only
// printable runes are kept and the result never exceeds limit runes.
func editInitials(value string, in promptInput, limit int) string {
	r := []rune(value)
	if in.backspace && len(r) > 0 {
		r = r[:len(r)-1]
	}
	for _, c := range in.chars {
		if len(r) >= limit {
			break
		}
		if unicode.IsPrint(c) {
			r = append(r, c)
		}
	}
	return string(r)
}

// Overlay draws the title, help and game-over panels and owns the initials
// prompt. It implements flappy.Overlay.
type Overlay struct {
	scores  flappy.HighScores
	changed func()

	screen flappy.Screen
	top    core.ScoreRecord
	view   flappy.GameOverView

	value     string
	prompting bool
	done      func(string)

	face *text.GoTextFace
}

// NewOverlay creates an overlay reading the title's top score from scores.
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
	o.value = ""
	o.prompting = true
	o.done = done
	o.changed()
}

// Prompting reports whether keyboard input belongs to the prompt.
func (o *Overlay) Prompting() bool {
	return o.prompting
}

// Update feeds one frame of input to the prompt. Enter submits, Escape skips.
func (o *Overlay) Update(in promptInput) {
	if !o.prompting || in.empty() {
		return
	}
	switch {
	case in.escape:
		o.finish("")
	case in.enter:
		o.finish(editInitials(o.value, promptInput{chars: in.chars, backspace: in.backspace}, flappy.MaxInitials))
	default:
		o.value = editInitials(o.value, in, flappy.MaxInitials)
		o.changed()
	}
}

func (o *Overlay) finish(value string) {
	done := o.done
	o.prompting = false
	o.done = nil
	o.value = ""
	if done != nil {
		done(value)
	}
	o.changed()
}

type line struct {
	text  string
	color core.Color
}

// lines returns the visible panel content, or nil when nothing is shown.
func (o *Overlay) lines(s *flappy.State) []line {
	switch o.screen {
	case flappy.ScreenTitle:
		top := fmt.Sprintf("High Score: %d", o.top.Score)
		if o.top.Initials != "" {
			top += " " + o.top.Initials
		}
		return []line{
			{"FLAP", core.ColorHero},
			{"", ""},
			{top, core.ColorText},
			{"", ""},
			{"ENTER  start", core.ColorText},
			{"H  how to play", core.ColorDim},
		}

	case flappy.ScreenInstructions:
		return []line{
			{"HOW TO PLAY", core.ColorHero},
			{"", ""},
			{"SPACE / click  flap", core.ColorText},
			{"P  pause", core.ColorText},
			{"fly through the gaps", core.ColorText},
			{"one point per pipe", core.ColorText},
			{"", ""},
			{"ESC  back", core.ColorDim},
		}

	case flappy.ScreenGameOver:
		return o.gameOverLines()

	case flappy.ScreenNone:
		if s.Paused && s.Mode == flappy.ModePlaying {
			return []line{{"PAUSED", core.ColorText}, {"P  resume", core.ColorDim}}
		}
	}
	return nil
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
			line{fmt.Sprintf("Initials: %-5s", o.value+"_"), core.ColorHighlight},
			line{"ENTER save  ESC skip", core.ColorDim},
		)
	} else {
		lines = append(lines, line{"ENTER  play again", core.ColorDim})
	}
	return lines
}

// fontFace lazily loads the bundled pixel font at a size fitting the window.
func (o *Overlay) fontFace(height float64) (*text.GoTextFace, error) {
	size := math.Max(8, math.Round(height/40))
	if o.face != nil && o.face.Size == size {
		return o.face, nil
	}
	src, err := fontSource()
	if err != nil {
		return nil, err
	}
	o.face = &text.GoTextFace{Source: src, Size: size}
	return o.face, nil
}

var faceSource *text.GoTextFaceSource

func fontSource() (*text.GoTextFaceSource, error) {
	if faceSource != nil {
		return faceSource, nil
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("gui: load font: %w", err)
	}
	faceSource = src
	return src, nil
}

// Draw paints the score and the visible panel.
func (o *Overlay) Draw(dst *ebiten.Image, s *flappy.State) error {
	b := dst.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	face, err := o.fontFace(h)
	if err != nil {
		return err
	}

	if s.Mode == flappy.ModePlaying {
		drawText(dst, face, fmt.Sprintf("%d", s.Score), w/2, face.Size, core.ColorText)
	}

	lines := o.lines(s)
	if len(lines) == 0 {
		return nil
	}

	lh := face.Size * 1.6
	pw := 0.0
	for _, l := range lines {
		pw = math.Max(pw, float64(len([]rune(l.text))))
	}
	pw = pw*face.Size + 4*face.Size
	ph := float64(len(lines))*lh + 2*face.Size
	px, py := (w-pw)/2, (h-ph)/2

	fillRect(dst, px, py, pw, ph, core.ColorPanel, 0.85)
	vector.StrokeRect(dst, float32(px), float32(py), float32(pw), float32(ph), 2, rgba(core.ColorDim, 1), true)

	for i, l := range lines {
		if l.text == "" {
			continue
		}
		drawText(dst, face, l.text, w/2, py+face.Size+float64(i)*lh, l.color)
	}
	return nil
}

// drawText draws str horizontally centred on cx with its top at y.
func drawText(dst *ebiten.Image, face *text.GoTextFace, str string, cx, y float64, c core.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, y)
	op.ColorScale.ScaleWithColor(rgba(c, 1))
	op.PrimaryAlign = text.AlignCenter
	text.Draw(dst, str, face, op)
}
