package tetris

import (
	"time"

	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/config"
)

// Policy converts cleared lines into score, level and gravity speed.
type Policy struct {
	linePoints    []int
	linesPerLevel int
	baseInterval  time.Duration
	step          time.Duration
	minInterval   time.Duration
}

// NewPolicy builds a policy from a validated config.
func NewPolicy(cfg config.TetrisConfig) Policy {
	return Policy{
		linePoints:    append([]int(nil), cfg.Scoring.LinePoints...),
		linesPerLevel: cfg.Scoring.LinesPerLevel,
		baseInterval:  cfg.Timing.BaseInterval,
		step:          cfg.Timing.Step,
		minInterval:   cfg.Timing.MinInterval,
	}
}

// ScoreDelta returns the points for clearing lines rows at once at the given level.
// Counts outside the table score nothing.
func (p Policy) ScoreDelta(lines, level int) int {
	if lines < 0 || lines >= len(p.linePoints) {
		return 0
	}
	return p.linePoints[lines] * (level + 1)
}

// Level returns the level reached after totalLines cleared lines.
func (p Policy) Level(totalLines int) int {
	if p.linesPerLevel <= 0 || totalLines < 0 {
		return 0
	}
	return totalLines / p.linesPerLevel
}

// FallInterval returns the gravity period at level, never below the floor.
func (p Policy) FallInterval(level int) time.Duration {
	return max(p.minInterval, p.baseInterval-time.Duration(level)*p.step)
}
