package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/config"
	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/core"
	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/games/tetris"
	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/storage"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 42}
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	require.True(t, ok)
	return gm, cmd
}

func newTestGameModel(t *testing.T, store *storage.Store) (GameModel, *tetris.Game) {
	t.Helper()
	g := tetris.New()
	m := NewGameModel(g, store, testConfig(), "alice")
	require.NotNil(t, m.Init())
	require.NotNil(t, g.Session())
	return m, g
}

func TestGameModelReservesHelpRow(t *testing.T) {
	m, _ := newTestGameModel(t, nil)
	assert.Equal(t, 24, m.screen.Height())
	assert.NotEmpty(t, m.View())
	assert.Contains(t, m.screen.String(), "T E T R I S")
}

func TestGameModelAppliesInputOnTick(t *testing.T) {
	m, g := newTestGameModel(t, nil)
	start, ok := g.Session().Piece()
	require.True(t, ok)

	m, _ = update(t, m, typeKey(tea.KeyLeft))
	m, cmd := update(t, m, TickMsg{})
	assert.NotNil(t, cmd)

	moved, ok := g.Session().Piece()
	require.True(t, ok)
	assert.Equal(t, start.X-1, moved.X)
	assert.Empty(t, m.inputFrame.Actions, "input is consumed by the tick")
}

func TestGameModelRestartIgnoredWhilePlaying(t *testing.T) {
	m, _ := newTestGameModel(t, nil)
	m, _ = update(t, m, runeKey("r"))
	assert.False(t, m.inputFrame.Has(core.ActionRestart))
}

func TestGameModelBackAndQuit(t *testing.T) {
	m, _ := newTestGameModel(t, nil)

	back, cmd := update(t, m, typeKey(tea.KeyEsc))
	assert.True(t, back.BackToMenu())
	assert.Nil(t, cmd, "embedded model reports back instead of quitting")

	m.standalone = true
	_, cmd = update(t, m, typeKey(tea.KeyEsc))
	assert.NotNil(t, cmd)

	quit, cmd := update(t, m, runeKey("q"))
	assert.True(t, quit.IsQuitting())
	assert.NotNil(t, cmd)
	assert.Empty(t, quit.View())
}

func TestGameModelResizeKeepsSession(t *testing.T) {
	m, g := newTestGameModel(t, nil)
	s := g.Session()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Same(t, s, g.Session())
	assert.Equal(t, 39, m.screen.Height())
	assert.Equal(t, 100, m.screen.Width())
}

func TestGameModelSavesScoreOnce(t *testing.T) {
	store := openTestStore(t)
	m, _ := newTestGameModel(t, store)

	m.gameState = core.GameState{Score: 1200, Level: 2, Lines: 24}
	m.saveScore()
	m.saveScore()

	scores, err := store.TopScores("tetris", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, "alice", scores[0].Player)
	assert.Equal(t, 1200, scores[0].Score)
	assert.Equal(t, 2, scores[0].Level)
	assert.Equal(t, 24, scores[0].Lines)
}

func TestGameModelSkipsEmptyScore(t *testing.T) {
	store := openTestStore(t)
	m, _ := newTestGameModel(t, store)

	_, _ = update(t, m, runeKey("q"))

	scores, err := store.TopScores("tetris", 10)
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestSessionModelFlow(t *testing.T) {
	var m tea.Model = NewSessionModel(nil, testConfig(), config.DefaultTetrisConfig(), "bob")
	step := func(msg tea.Msg) SessionModel {
		t.Helper()
		m, _ = m.Update(msg)
		sm, ok := m.(SessionModel)
		require.True(t, ok)
		return sm
	}

	sm := step(typeKey(tea.KeyEnter))
	assert.Equal(t, viewLevelSelect, sm.view)
	assert.Equal(t, "tetris", sm.gameID)

	sm = step(typeKey(tea.KeyEnter))
	assert.Equal(t, viewGame, sm.view)
	require.NotNil(t, sm.gameModel)
	assert.Equal(t, "bob", sm.gameModel.player)

	sm = step(typeKey(tea.KeyEsc))
	assert.Equal(t, viewMenu, sm.view)
	assert.Nil(t, sm.gameModel)

	sm = step(typeKey(tea.KeyTab))
	assert.Equal(t, viewScoreboard, sm.view)
	assert.Equal(t, "tetris", sm.scoreboard.gameID)
	assert.Equal(t, "bob", sm.scoreboard.player)
	assert.Contains(t, sm.View(), "HIGH SCORES · Tetris")

	sm = step(typeKey(tea.KeyEsc))
	assert.Equal(t, viewMenu, sm.view)

	sm = step(runeKey("q"))
	assert.True(t, sm.quitting)
	assert.Empty(t, sm.View())
}

func TestMenuListsTetris(t *testing.T) {
	store := openTestStore(t)
	_, err := store.SaveResult(storage.Result{GameID: "tetris", Score: 900})
	require.NoError(t, err)

	menu := NewMenuModel(store, testConfig())
	require.NotEmpty(t, menu.items)

	var found bool
	for _, item := range menu.items {
		if item.GameID == "tetris" {
			found = true
			assert.Equal(t, 900, item.HighScore)
		}
	}
	assert.True(t, found)
	assert.Contains(t, menu.View(), "Tetris")
}
