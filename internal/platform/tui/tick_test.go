package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/core"
	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/games/tetris"
)

func TestTickerInterval(t *testing.T) {
	assert.Equal(t, 20*time.Millisecond, newTicker(50).interval)
	assert.Equal(t, time.Second/core.DefaultTickRate, newTicker(0).interval)
	assert.Equal(t, time.Second/core.DefaultTickRate, newTicker(-3).interval)
	assert.NotNil(t, newTicker(30).next())
}

func TestGameModelKeepsItsTicker(t *testing.T) {
	cfg := testConfig()
	cfg.TickRate = 25
	m := NewGameModel(tetris.New(), nil, cfg, "alice")
	assert.Equal(t, 40*time.Millisecond, m.ticker.interval)
}
