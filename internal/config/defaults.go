package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration: a 10x20 board,
// 500ms gravity that speeds up by 50ms per level down to 100ms,
// and the classic 40/100/300/1200 line rewards.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: TetrisBoard{
			Width:  10,
			Height: 20,
		},
		Timing: TetrisTiming{
			BaseInterval: 500 * time.Millisecond,
			Step:         50 * time.Millisecond,
			MinInterval:  100 * time.Millisecond,
		},
		Scoring: TetrisScoring{
			LinePoints:    []int{0, 40, 100, 300, 1200},
			LinesPerLevel: 10,
		},
		Difficulty: TetrisDifficulty{
			StartLevel:  0,
			Progression: true,
		},
	}
}

// DefaultTetrisYAML returns the embedded default configuration file.
func DefaultTetrisYAML() []byte {
	return append([]byte(nil), defaultTetrisYAML...)
}
