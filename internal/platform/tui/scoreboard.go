package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/core"
	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/registry"
	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/storage"
)

const (
	leaderboardLimit = 100
	// leaderboardChrome is the rows taken by the title, filter line, stats,
	// table border and help bar.
	leaderboardChrome = 10
)

// leaderboardFilter selects whose results the table lists.
type leaderboardFilter int

const (
	allPlayers leaderboardFilter = iota
	onePlayer
)

var (
	boardBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	emptyBoardStyle = dimStyle.Italic(true).Padding(1, 4)
)

// ScoreboardKeyMap defines the key bindings for the leaderboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Filter key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Filter, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Filter}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Filter: key.NewBinding(key.WithKeys("tab", "p"), key.WithHelp("tab", "mine/all")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel is the leaderboard of one game. Tab switches between every
// player's results and the current player's own.
type ScoreboardModel struct {
	store  *storage.Store
	gameID string
	player string
	filter leaderboardFilter

	scores []storage.ScoreEntry
	stats  *storage.GameStats
	err    error

	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int

	standalone bool // Quit the program on back/quit instead of reporting it
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates the leaderboard for gameID. An empty player
// disables the personal view.
func NewScoreboardModel(store *storage.Store, gameID, player string, width, height int) ScoreboardModel {
	keys := DefaultScoreboardKeyMap()
	keys.Filter.SetEnabled(player != "")

	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		store:  store,
		gameID: gameID,
		player: player,
		keys:   keys,
		help:   h,
		width:  width,
		height: height,
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	m.table = table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(m.tableHeight()),
		table.WithStyles(styles),
	)
	m.reload()
	return m
}

// columns sizes the player column to whatever the terminal leaves free.
func (m ScoreboardModel) columns() []table.Column {
	const fixed = 5 + 8 + 5 + 6 + 12 // rank, score, level, lines, date
	const padding = 2 * 6            // cell padding
	const frame = 4 + 4              // box border, box padding, margins
	player := core.Clamp(m.width-fixed-padding-frame, 8, 20)

	return []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: player},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 5},
		{Title: "Lines", Width: 6},
		{Title: "Date", Width: 12},
	}
}

func (m ScoreboardModel) tableHeight() int {
	return max(m.height-leaderboardChrome, 3)
}

// reload queries the store for the active filter and refreshes the table.
func (m *ScoreboardModel) reload() {
	m.scores, m.stats, m.err = nil, nil, nil
	if m.store != nil {
		if m.filter == onePlayer {
			m.scores, m.err = m.store.PlayerScores(m.gameID, m.player, leaderboardLimit)
		} else {
			m.scores, m.err = m.store.TopScores(m.gameID, leaderboardLimit)
		}
		if m.err == nil {
			m.stats, m.err = m.store.GetGameStats(m.gameID)
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			playerName(s.Player),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Level),
			fmt.Sprintf("%d", s.Lines),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
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
			if m.standalone {
				return m, tea.Quit
			}
			return m, nil
		case key.Matches(msg, m.keys.Filter):
			if m.filter == allPlayers {
				m.filter = onePlayer
			} else {
				m.filter = allPlayers
			}
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table.SetColumns(m.columns())
		m.table.SetHeight(m.tableHeight())
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("HIGH SCORES · "+registry.Title(m.gameID)), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(m.filterLabel()), m.width))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(centerText(emptyBoardStyle.Render("Cannot load scores: "+m.err.Error()), m.width))
	case len(m.scores) == 0:
		b.WriteString(centerText(emptyBoardStyle.Render(m.emptyMessage()), m.width))
	default:
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boardBoxStyle.Render(m.table.View())))
	}
	b.WriteString("\n")

	if line := m.statsLine(); line != "" {
		b.WriteString(centerText(dimStyle.Render(line), m.width))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) filterLabel() string {
	if m.filter == onePlayer {
		return "Your results, " + m.player
	}
	return "All players"
}

func (m ScoreboardModel) emptyMessage() string {
	if m.filter == onePlayer {
		return "You have no results yet."
	}
	return "No scores recorded yet.\nPlay a game to set a high score!"
}

// statsLine summarises every result of the game, whatever the filter.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("%d games  |  best %d  |  avg %.0f  |  %d lines  |  top level %d",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.TotalLines, m.stats.BestLevel)
}

// playerName shows anonymous local results as "-".
func playerName(p string) string {
	if p == "" {
		return "-"
	}
	return p
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the leaderboard of gameID until the user leaves.
// goBack reports whether they asked for the menu rather than to quit.
func RunScoreboard(store *storage.Store, gameID, player string, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, gameID, player, width, height)
	model.standalone = true

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
