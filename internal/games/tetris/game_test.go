package tetris

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/config"
	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/core"
	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/registry"
)

func testRuntimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(testRuntimeConfig())
	require.NoError(t, g.Err())
	require.NotNil(t, g.Session())
	return g
}

func TestRegistered(t *testing.T) {
	require.True(t, registry.Exists("tetris"))
	g, err := registry.Create("tetris")
	require.NoError(t, err)
	assert.Equal(t, "tetris", g.ID())
	assert.Equal(t, "Tetris", g.Title())
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		switch {
		case i%45 == 44:
			inputs[i] = frame(core.ActionDrop)
		case i%7 == 0:
			inputs[i] = frame(core.ActionLeft)
		case i%11 == 0:
			inputs[i] = frame(core.ActionRotate)
		case i%13 == 0:
			inputs[i] = frame(core.ActionRight, core.ActionDown)
		default:
			inputs[i] = core.NewInputFrame()
		}
	}

	run := func() Snapshot {
		g := newTestGame(t)
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	assert.Equal(t, snap1.Hash(), snap2.Hash())
	assert.Equal(t, snap1, snap2)
	assert.NotZero(t, snap1.Tick)
}

func TestDifferentSeedsDiverge(t *testing.T) {
	kinds := func(seed int64) []int {
		g := New()
		rc := testRuntimeConfig()
		rc.Seed = seed
		g.Reset(rc)
		var out []int
		for range 10 {
			snap := g.Snapshot()
			out = append(out, snap.Kind)
			g.Step(frame(core.ActionDrop))
		}
		return out
	}
	assert.NotEqual(t, kinds(1), kinds(2))
}

func TestGravityFollowsTickRate(t *testing.T) {
	rc := testRuntimeConfig()
	rc.TickRate = 50
	g := New()
	g.Reset(rc)
	start, _ := g.Session().Piece()

	// 500ms at 50 ticks per second is 25 ticks.
	for range 24 {
		g.Step(core.NewInputFrame())
	}
	p, _ := g.Session().Piece()
	assert.Equal(t, start.Y, p.Y)

	g.Step(core.NewInputFrame())
	p, _ = g.Session().Piece()
	assert.Equal(t, start.Y+1, p.Y)
}

func TestPauseFreezesGame(t *testing.T) {
	g := newTestGame(t)

	res := g.Step(frame(core.ActionPause))
	require.True(t, res.State.Paused)
	before := g.Snapshot()

	for range 120 {
		g.Step(frame(core.ActionLeft, core.ActionDrop))
	}
	after := g.Snapshot()
	assert.Equal(t, before.PieceX, after.PieceX)
	assert.Equal(t, before.PieceY, after.PieceY)
	assert.Equal(t, before.Cells, after.Cells)

	res = g.Step(frame(core.ActionPause))
	assert.False(t, res.State.Paused)
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(t)

	var res core.StepResult
	for range 500 {
		res = g.Step(frame(core.ActionDrop))
		if res.State.GameOver {
			break
		}
	}
	require.True(t, res.State.GameOver)

	// Pause and moves are ignored once the game is over.
	res = g.Step(frame(core.ActionPause, core.ActionLeft))
	assert.True(t, res.State.GameOver)
	assert.False(t, res.State.Paused)

	res = g.Step(frame(core.ActionRestart))
	assert.False(t, res.State.GameOver)
	assert.Zero(t, res.State.Score)
	assert.Zero(t, g.Session().board.FilledCount())
}

func TestLineClearBanner(t *testing.T) {
	g := newTestGame(t)
	s, err := NewSession(config.DefaultTetrisConfig(), 1, WithOpening(KindI, KindO))
	require.NoError(t, err)
	g.session = s
	fillRow(s.board, 19, 3, 4, 5, 6)

	g.Step(frame(core.ActionDrop))

	assert.Equal(t, 40, g.State().Score)
	assert.Equal(t, "SINGLE", g.banner)
	assert.Equal(t, 60, g.bannerTicks)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "SINGLE")

	for range 60 {
		g.Step(core.NewInputFrame())
	}
	assert.Zero(t, g.bannerTicks)
}

func TestClearNames(t *testing.T) {
	assert.Equal(t, "SINGLE", clearName(1))
	assert.Equal(t, "DOUBLE", clearName(2))
	assert.Equal(t, "TRIPLE", clearName(3))
	assert.Equal(t, "TETRIS!", clearName(4))
	assert.Empty(t, clearName(0))
}

func TestRender(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	assert.Contains(t, out, "T E T R I S")
	assert.Contains(t, out, "NEXT")
	assert.Contains(t, out, "SCORE")
	assert.Contains(t, out, "LINES")

	cells, color := g.Session().PieceCells()
	l, ok := g.layoutFor(80, 24)
	require.True(t, ok)
	for _, p := range cells {
		if p.Y < 0 {
			continue
		}
		c := screen.GetCell(l.well.X+1+p.X*cellW, l.well.Y+1+p.Y)
		assert.Equal(t, '█', c.Rune)
		assert.Equal(t, color, c.Color)
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame(core.ActionPause))
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(30, 10)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")
}

func TestResizeKeepsProgress(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame(core.ActionDrop))
	before := g.Snapshot()

	g.Resize(20, 10)
	res := g.Step(frame(core.ActionDrop))
	assert.Equal(t, before.Cells, g.Snapshot().Cells, "no play while the window is too small")
	assert.False(t, res.State.GameOver)

	g.Resize(100, 30)
	assert.Equal(t, before.Score, g.State().Score)
	assert.False(t, g.tooSmall())
}

func TestStartLevel(t *testing.T) {
	SetStartLevel(4)
	assert.Equal(t, 4, GetStartLevel())

	g := newTestGame(t)
	assert.Equal(t, 4, g.State().Level)
	assert.Equal(t, -1, GetStartLevel(), "consumed by the first reset")

	// Restarts keep the chosen level.
	g.Reset(testRuntimeConfig())
	assert.Equal(t, 4, g.State().Level)

	g.SetStartLevel(2)
	g.Reset(testRuntimeConfig())
	assert.Equal(t, 2, g.State().Level)
}

func TestStartLevelIsClamped(t *testing.T) {
	t.Cleanup(func() { SetStartLevel(-1) })

	SetStartLevel(-5)
	assert.Equal(t, -1, GetStartLevel(), "any negative level means use config")
	SetStartLevel(42)
	assert.Equal(t, MaxStartLevel, GetStartLevel())

	g := newTestGame(t)
	g.SetStartLevel(-7)
	assert.Equal(t, -1, g.startLevel)
	g.SetStartLevel(42)
	g.Reset(testRuntimeConfig())
	assert.Equal(t, MaxStartLevel, g.State().Level)
}

func TestConfigErrorIsReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scoring:\n  line_points: [0, 1]\n"), 0o600))
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(testRuntimeConfig())

	assert.True(t, errors.Is(g.Err(), config.ErrInvalidConfig))
	assert.Nil(t, g.Session())
	assert.True(t, g.State().GameOver)
	assert.True(t, g.Step(frame(core.ActionRestart)).State.GameOver)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.True(t, strings.Contains(screen.String(), "Cannot start Tetris"))
}

func TestDifficultyPreset(t *testing.T) {
	SetDifficultyPreset(config.DifficultyHard)
	t.Cleanup(func() { SetDifficultyPreset("") })

	g := newTestGame(t)
	assert.Equal(t, 6, g.State().Level)
	assert.Equal(t, 200*time.Millisecond, g.Session().FallInterval())
}

func TestInstanceDifficultyOverridesGlobal(t *testing.T) {
	SetDifficultyPreset(config.DifficultyHard)
	t.Cleanup(func() { SetDifficultyPreset("") })

	g := New()
	g.SetDifficulty(config.DifficultyFixed)
	g.SetStartLevel(3)
	g.Reset(testRuntimeConfig())
	require.NoError(t, g.Err())

	assert.Equal(t, 3, g.State().Level)
	assert.False(t, g.cfg.Difficulty.Progression)
	assert.Equal(t, 350*time.Millisecond, g.Session().FallInterval())
}
