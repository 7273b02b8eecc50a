package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/storage"
)

func seedScores(t *testing.T) *storage.Store {
	t.Helper()
	store := openTestStore(t)
	for _, r := range []storage.Result{
		{GameID: "tetris", Score: 500, Level: 1, Lines: 10},
		{GameID: "tetris", Player: "carol", Score: 800, Level: 2, Lines: 15},
		{GameID: "tetris", Player: "alice", Score: 300, Level: 0, Lines: 4},
		{GameID: "tetris", Player: "alice", Score: 650, Level: 1, Lines: 12},
	} {
		_, err := store.SaveResult(r)
		require.NoError(t, err)
	}
	return store
}

func updateScoreboard(t *testing.T, m ScoreboardModel, msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sb, ok := next.(ScoreboardModel)
	require.True(t, ok)
	return sb, cmd
}

func TestScoreboardListsAllPlayers(t *testing.T) {
	sb := NewScoreboardModel(seedScores(t), "tetris", "alice", 100, 30)

	rows := sb.table.Rows()
	require.Len(t, rows, 4)
	assert.Equal(t, "#1", rows[0][0])
	assert.Equal(t, "carol", rows[0][1])
	assert.Equal(t, "800", rows[0][2])
	assert.Equal(t, "alice", rows[1][1])
	assert.Equal(t, "-", rows[2][1], "anonymous local result")
	assert.Equal(t, "1", rows[2][3])
	assert.Equal(t, "10", rows[2][4])

	view := sb.View()
	assert.Contains(t, view, "HIGH SCORES · Tetris")
	assert.Contains(t, view, "All players")
	assert.Contains(t, view, "4 games")
	assert.Contains(t, view, "best 800")
}

func TestScoreboardFilterTogglesPlayerView(t *testing.T) {
	sb := NewScoreboardModel(seedScores(t), "tetris", "alice", 100, 30)

	sb, cmd := updateScoreboard(t, sb, typeKey(tea.KeyTab))
	assert.Nil(t, cmd)
	rows := sb.table.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "650", rows[0][2])
	assert.Equal(t, "300", rows[1][2])
	assert.Contains(t, sb.View(), "Your results, alice")
	assert.Contains(t, sb.View(), "4 games", "stats cover the whole game")

	sb, _ = updateScoreboard(t, sb, typeKey(tea.KeyTab))
	assert.Len(t, sb.table.Rows(), 4)
	assert.Contains(t, sb.View(), "All players")
}

func TestScoreboardWithoutPlayerHasNoPersonalView(t *testing.T) {
	sb := NewScoreboardModel(seedScores(t), "tetris", "", 100, 30)
	assert.False(t, sb.keys.Filter.Enabled())

	sb, _ = updateScoreboard(t, sb, typeKey(tea.KeyTab))
	assert.Equal(t, allPlayers, sb.filter)
	assert.Len(t, sb.table.Rows(), 4)
}

func TestScoreboardEmptyAndStoreless(t *testing.T) {
	sb := NewScoreboardModel(nil, "tetris", "alice", 80, 24)
	assert.Empty(t, sb.table.Rows())
	assert.Contains(t, sb.View(), "No scores recorded yet.")

	sb, _ = updateScoreboard(t, sb, typeKey(tea.KeyTab))
	assert.Contains(t, sb.View(), "You have no results yet.")
}

func TestScoreboardResizeFitsPlayerColumn(t *testing.T) {
	sb := NewScoreboardModel(nil, "tetris", "", 40, 12)
	assert.Equal(t, 8, sb.table.Columns()[1].Width, "narrow terminals keep a minimum")
	assert.Equal(t, 3, sb.tableHeight())

	sb, _ = updateScoreboard(t, sb, tea.WindowSizeMsg{Width: 200, Height: 40})
	assert.Equal(t, 20, sb.table.Columns()[1].Width, "wide terminals cap the column")
	assert.Equal(t, 30, sb.tableHeight())
}

func TestScoreboardBackAndQuit(t *testing.T) {
	sb := NewScoreboardModel(nil, "tetris", "", 80, 24)
	back, cmd := updateScoreboard(t, sb, typeKey(tea.KeyEsc))
	assert.True(t, back.IsGoingBack())
	assert.Nil(t, cmd, "embedded scoreboard reports back to its parent")
	assert.Empty(t, back.View())

	quit, cmd := updateScoreboard(t, sb, runeKey("q"))
	assert.True(t, quit.IsQuitting())
	assert.NotNil(t, cmd)
}
