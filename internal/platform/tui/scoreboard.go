package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hongjigr-sebon/tmposegame/internal/registry"
	"github.com/hongjigr-sebon/tmposegame/internal/storage"
)

const (
	narrowWidth = 64  // below this the warnings and time columns are hidden
	maxRows     = 100 // sessions loaded per listing
)

// Listing selects which sessions the scoreboard shows.
type Listing int

const (
	ListingBest Listing = iota
	ListingRecent
)

func (l Listing) String() string {
	if l == ListingRecent {
		return "RECENT SESSIONS"
	}
	return "HIGH SCORES"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Next    key.Binding
	Prev    key.Binding
	Listing key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Listing, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Listing, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next:    key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next game")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev game")),
		Listing: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "best/recent")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardDimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardLossRow  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// ScoreboardModel browses persisted sessions per game.
type ScoreboardModel struct {
	games   []registry.GameInfo
	cursor  int
	listing Listing
	store   *storage.Store

	records []storage.SessionRecord
	stats   *storage.GameStats
	loadErr error

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel creates a scoreboard showing the best sessions of the first game.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.reload()
	return m
}

// GameID returns the game currently shown, or "" without games.
func (m ScoreboardModel) GameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.cursor].ID
}

// Listing returns the current listing.
func (m ScoreboardModel) Listing() Listing {
	return m.listing
}

// Records returns the sessions currently listed.
func (m ScoreboardModel) Records() []storage.SessionRecord {
	return m.records
}

// reload fetches the listing and stats for the current game and rebuilds the table.
func (m *ScoreboardModel) reload() {
	m.records, m.stats, m.loadErr = nil, nil, nil
	if id := m.GameID(); id != "" && m.store != nil {
		if m.listing == ListingRecent {
			m.records, m.loadErr = m.store.RecentSessions(id, maxRows)
		} else {
			m.records, m.loadErr = m.store.TopScores(id, maxRows)
		}
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.GetGameStats(id)
		}
	}
	m.table = m.buildTable()
}

// progressColumn is the variant-specific column: level for timed games,
// distance for the others.
func (m ScoreboardModel) progressColumn() string {
	if m.GameID() == "catcher" {
		return "Level"
	}
	return "Distance"
}

func (m ScoreboardModel) buildTable() table.Model {
	narrow := m.width < narrowWidth
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 9},
		{Title: m.progressColumn(), Width: 8},
		{Title: "Result", Width: 9},
	}
	if !narrow {
		columns = append(columns,
			table.Column{Title: "Warn", Width: 5},
			table.Column{Title: "Time", Width: 7},
		)
	}
	columns = append(columns, table.Column{Title: "Date", Width: 12})

	rows := make([]table.Row, len(m.records))
	for i, r := range m.records {
		progress := fmt.Sprintf("%dm", int(r.Progress))
		if m.GameID() == "catcher" {
			progress = fmt.Sprintf("%d", r.Level)
		}
		row := table.Row{fmt.Sprintf("%d", i+1), fmt.Sprintf("%d", r.Score), progress, r.Reason}
		if !narrow {
			row = append(row, fmt.Sprintf("%d", r.Warnings), r.Duration.Round(time.Second).String())
		}
		rows[i] = append(row, r.CreatedAt.Local().Format("Jan 02 15:04"))
	}

	height := m.height - 10
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		case key.Matches(msg, m.keys.Listing):
			m.listing = 1 - m.listing
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.buildTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) step(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.games)) % len(m.games)
	m.reload()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	sections := []string{
		boardTitleStyle.Render(m.listing.String()),
		m.renderTabs(),
		boardFrameStyle.Render(m.renderBody()),
	}
	if line := m.statsLine(); line != "" {
		sections = append(sections, line)
	}
	sections = append(sections, boardDimStyle.Render(m.help.View(m.keys)))

	body := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)
}

func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.cursor {
			tabs[i] = boardActiveTab.Render(g.Title)
		} else {
			tabs[i] = boardTabStyle.Render(g.Title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n"
}

func (m ScoreboardModel) renderBody() string {
	empty := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 4)
	switch {
	case m.store == nil:
		return empty.Render("Scores are unavailable without a database.")
	case m.loadErr != nil:
		return boardLossRow.Padding(1, 4).Render("Could not load scores: " + m.loadErr.Error())
	case len(m.records) == 0:
		return empty.Render("No sessions recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	parts := []string{
		fmt.Sprintf("Games: %d", m.stats.GamesCount),
		fmt.Sprintf("Best: %d", m.stats.HighScore),
		fmt.Sprintf("Average: %.0f", m.stats.AvgScore),
	}
	if m.GameID() == "catcher" {
		parts = append(parts, fmt.Sprintf("Best level: %d", m.stats.BestLevel))
	}
	parts = append(parts, boardLossRow.Render(fmt.Sprintf("Losses: %d", m.stats.Losses)))
	return strings.Join(parts, "  ")
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
