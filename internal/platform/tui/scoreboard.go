package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flap/internal/core"
	"github.com/vovakirdan/flap/internal/storage"
)

// ScoreboardKeyMap holds the score viewer's bindings.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Reload key.Binding
	Quit   key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Reload, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns the viewer bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreLoader fetches the table and its summary.
type ScoreLoader func() ([]storage.ScoreEntry, *storage.Stats, error)

// StoreLoader reads the top limit entries from store.
func StoreLoader(store *storage.Store, limit int) ScoreLoader {
	return func() ([]storage.ScoreEntry, *storage.Stats, error) {
		entries, err := store.Top(limit)
		if err != nil {
			return nil, nil, err
		}
		stats, err := store.Stats()
		if err != nil {
			return nil, nil, err
		}
		return entries, stats, nil
	}
}

var scoreColumns = []table.Column{
	{Title: "#", Width: 4},
	{Title: "Score", Width: 7},
	{Title: "Initials", Width: 9},
	{Title: "When", Width: 13},
}

// scoreRows formats entries for the table, best first.
func scoreRows(entries []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, 0, len(entries))
	for i, e := range entries {
		when := "-"
		if !e.CreatedAt.IsZero() {
			when = e.CreatedAt.Local().Format("Jan 02 15:04")
		}
		rows = append(rows, table.Row{
			fmt.Sprint(i + 1),
			fmt.Sprint(e.Score),
			e.Initials,
			when,
		})
	}
	return rows
}

// ScoreboardModel is a read-only viewer for the high-score table.
type ScoreboardModel struct {
	load    ScoreLoader
	entries []storage.ScoreEntry
	stats   *storage.Stats
	err     error

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap
	done  bool
}

// NewScoreboardModel creates the viewer and loads the first snapshot.
func NewScoreboardModel(load ScoreLoader) ScoreboardModel {
	t := table.New(table.WithColumns(scoreColumns), table.WithFocused(true))
	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(borderGray)).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color(string(core.ColorHero))).
		Background(lipgloss.Color(string(core.ColorPanel))).
		Bold(false)
	t.SetStyles(st)

	m := ScoreboardModel{load: load, table: t, help: help.New(), keys: DefaultScoreboardKeyMap()}
	m.reload()
	return m
}

const borderGray = "240"

func (m *ScoreboardModel) reload() {
	m.entries, m.stats, m.err = m.load()
	m.table.SetRows(scoreRows(m.entries))
	m.table.SetHeight(max(len(m.entries)+2, 3))
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reload):
			m.reload()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.done {
		return ""
	}
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(string(core.ColorDim)))

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(string(core.ColorHero))).Render("FLAP HIGH SCORES"))
	b.WriteString("\n\n")

	var body string
	switch {
	case m.err != nil:
		body = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1, 2).Render("error: " + m.err.Error())
	case len(m.entries) == 0:
		body = dim.Italic(true).Padding(1, 4).Render("No High Scores Yet")
	default:
		body = m.table.View()
	}
	b.WriteString(lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderGray)).
		Padding(0, 1).
		Render(body))
	b.WriteString("\n")

	if m.stats != nil && m.stats.Entries > 0 {
		line := fmt.Sprintf("best %d · avg %.1f · %d stored", m.stats.HighScore, m.stats.AvgScore, m.stats.Entries)
		if !m.stats.LastPlayed.IsZero() {
			line += " · last " + m.stats.LastPlayed.Local().Format("Jan 02 15:04")
		}
		b.WriteString(dim.Render(line))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// RunScoreboard opens the viewer over store.
func RunScoreboard(store *storage.Store, limit int) error {
	_, err := tea.NewProgram(NewScoreboardModel(StoreLoader(store, limit))).Run()
	return err
}
