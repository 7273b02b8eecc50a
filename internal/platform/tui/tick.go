// Package tui runs arcade games in a terminal with Bubble Tea, locally or over SSH.
// It owns the tick loop, key mapping, menus and score saving; games stay pure.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/core"
)

// TickMsg carries the wall-clock time of one simulation step.
type TickMsg time.Time

// ticker paces a game at a fixed number of steps per second.
type ticker struct {
	interval time.Duration
}

// newTicker builds a ticker for rate steps per second. Non-positive rates use
// core.DefaultTickRate.
func newTicker(rate int) ticker {
	if rate <= 0 {
		rate = core.DefaultTickRate
	}
	return ticker{interval: time.Second / time.Duration(rate)}
}

// next schedules the following TickMsg.
func (t ticker) next() tea.Cmd {
	return tea.Tick(t.interval, func(at time.Time) tea.Msg {
		return TickMsg(at)
	})
}
