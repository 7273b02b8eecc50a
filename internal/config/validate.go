package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) for any configuration the engine cannot run with.
var ErrInvalidConfig = errors.New("invalid configuration")

// MinBoardSize is the smallest width or height that still fits every piece.
const MinBoardSize = 4

// Validate reports the first problem found, wrapping ErrInvalidConfig.
func (c TetrisConfig) Validate() error {
	switch {
	case c.Board.Width < MinBoardSize:
		return fmt.Errorf("%w: board width %d, need at least %d", ErrInvalidConfig, c.Board.Width, MinBoardSize)
	case c.Board.Height < MinBoardSize:
		return fmt.Errorf("%w: board height %d, need at least %d", ErrInvalidConfig, c.Board.Height, MinBoardSize)
	case c.Timing.BaseInterval <= 0:
		return fmt.Errorf("%w: base_interval must be positive, got %s", ErrInvalidConfig, c.Timing.BaseInterval)
	case c.Timing.MinInterval <= 0:
		return fmt.Errorf("%w: min_interval must be positive, got %s", ErrInvalidConfig, c.Timing.MinInterval)
	case c.Timing.MinInterval > c.Timing.BaseInterval:
		return fmt.Errorf("%w: min_interval %s exceeds base_interval %s", ErrInvalidConfig, c.Timing.MinInterval, c.Timing.BaseInterval)
	case c.Timing.Step < 0:
		return fmt.Errorf("%w: step must not be negative, got %s", ErrInvalidConfig, c.Timing.Step)
	case len(c.Scoring.LinePoints) != 5:
		return fmt.Errorf("%w: line_points needs 5 entries (0-4 rows), got %d", ErrInvalidConfig, len(c.Scoring.LinePoints))
	case c.Scoring.LinesPerLevel <= 0:
		return fmt.Errorf("%w: lines_per_level must be positive, got %d", ErrInvalidConfig, c.Scoring.LinesPerLevel)
	case c.Difficulty.StartLevel < 0:
		return fmt.Errorf("%w: start_level must not be negative, got %d", ErrInvalidConfig, c.Difficulty.StartLevel)
	}
	for i, p := range c.Scoring.LinePoints {
		if p < 0 {
			return fmt.Errorf("%w: line_points[%d] is negative", ErrInvalidConfig, i)
		}
	}
	return nil
}
