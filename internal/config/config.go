// Package config handles game configuration loading and validation.
package config

import "time"

// TetrisConfig holds all configurable parameters for the falling-block game.
type TetrisConfig struct {
	Board      TetrisBoard      `yaml:"board"`
	Timing     TetrisTiming     `yaml:"timing"`
	Scoring    TetrisScoring    `yaml:"scoring"`
	Difficulty TetrisDifficulty `yaml:"difficulty"`
}

// TetrisBoard defines the playfield dimensions in cells.
type TetrisBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TetrisTiming defines gravity timing.
// The fall interval at level n is max(MinInterval, BaseInterval - n*Step).
type TetrisTiming struct {
	BaseInterval time.Duration `yaml:"base_interval"`
	Step         time.Duration `yaml:"step"`
	MinInterval  time.Duration `yaml:"min_interval"`
}

// TetrisScoring defines line-clear rewards and level pacing.
type TetrisScoring struct {
	// LinePoints is indexed by the number of rows cleared at once (0..4).
	LinePoints    []int `yaml:"line_points"`
	LinesPerLevel int   `yaml:"lines_per_level"`
}

// TetrisDifficulty defines the starting level and whether it rises with cleared lines.
type TetrisDifficulty struct {
	StartLevel  int  `yaml:"start_level"`
	Progression bool `yaml:"progression"`
}

// Clone returns a deep copy of the config.
func (c TetrisConfig) Clone() TetrisConfig {
	out := c
	out.Scoring.LinePoints = append([]int(nil), c.Scoring.LinePoints...)
	return out
}
