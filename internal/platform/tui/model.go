package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flap/internal/config"
	"github.com/vovakirdan/flap/internal/core"
	"github.com/vovakirdan/flap/internal/games/flappy"
)

// Options configures a terminal game session.
type Options struct {
	Config  config.FlapConfig
	Runtime core.RuntimeConfig
	Width   int // terminal columns
	Height  int // terminal rows, including the help line
	Scores  flappy.HighScores
	Audio   flappy.Audio
	Logger  *log.Logger

	// Renderer styles output for a specific terminal; nil uses stdout's.
	Renderer *lipgloss.Renderer
	// ScreenshotDir receives ctrl+s captures; empty uses ~/.flap/screenshots.
	ScreenshotDir string
}

// canvas is the render target the frame loop draws into. View only ever
// returns the last finished frame.
type canvas struct {
	game     *flappy.Game
	overlay  *Overlay
	screen   *core.Screen
	renderer *lipgloss.Renderer
	out      string
}

func (c *canvas) draw() {
	s := c.game.State()
	DrawScene(c.screen, s, c.game.Env())
	c.overlay.Draw(c.screen, s)
	c.out = RenderScreen(c.screen, c.renderer)
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	game    *flappy.Game
	loop    *core.FrameLoop
	frames  *teaFrames
	overlay *Overlay
	canvas  *canvas

	keys      KeyMap
	help      help.Model
	helpStyle lipgloss.Style

	fps           int
	logger        *log.Logger
	screenshotDir string
	quitting      bool
}

// NewModel creates the game on its title screen.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	r := opts.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	cols, rows := playfieldSize(opts.Width, opts.Height)

	frames := &teaFrames{}
	c := &canvas{screen: core.NewScreen(cols, rows), renderer: r}

	var loop *core.FrameLoop
	overlay := NewOverlay(opts.Scores, func() {
		if loop != nil {
			loop.RequestRender()
		}
	})

	w, h := core.CellsToPixels(cols, rows)
	game := flappy.New(flappy.Options{
		Config:  opts.Config,
		Width:   w,
		Height:  h,
		Seed:    opts.Runtime.Seed,
		Audio:   opts.Audio,
		Scores:  opts.Scores,
		Overlay: overlay,
		Logger:  logger,
	})
	c.game = game
	c.overlay = overlay

	loop = core.NewFrameLoop(game.Tick, func() bool { return game.State().Paused }, c.draw, frames)
	game.OnRenderRequest(loop.RequestRender)
	game.ShowTitleScreen()
	loop.Start()

	dir := opts.ScreenshotDir
	if dir == "" {
		dir = filepath.Join(config.DataDir(), "screenshots")
	}

	return Model{
		game:          game,
		loop:          loop,
		frames:        frames,
		overlay:       overlay,
		canvas:        c,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		helpStyle:     r.NewStyle().Foreground(lipgloss.Color("241")),
		fps:           opts.Runtime.FPS,
		logger:        logger,
		screenshotDir: dir,
	}
}

// playfieldSize leaves the bottom row for the key help.
func playfieldSize(cols, rows int) (int, int) {
	return core.Max(cols, 1), core.Max(rows-1, 1)
}

// Game exposes the running game.
func (m Model) Game() *flappy.Game {
	return m.game
}

// Init starts the frame ticker.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		m.frames.fire(time.Time(msg))
		return m, tickCmd(m.fps)
	}

	return m, m.overlay.Update(msg)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m.quit()
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	if m.overlay.Prompting() {
		return m, m.overlay.Update(msg)
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		return m.quit()
	}
	m.game.HandleAction(action)
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.loop.Stop()
	return m, tea.Quit
}

func (m Model) resize(width, height int) {
	cols, rows := playfieldSize(width, height)
	m.canvas.screen.Resize(cols, rows)
	w, h := core.CellsToPixels(cols, rows)
	m.game.Resize(w, h)
}

// saveScreenshot writes the last frame as plain text.
func (m Model) saveScreenshot() {
	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	name := fmt.Sprintf("flap_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.screenshotDir, name)
	if err := os.WriteFile(path, []byte(m.canvas.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View returns the last rendered frame and the key help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.canvas.out + "\n" + m.helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for a local terminal.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
