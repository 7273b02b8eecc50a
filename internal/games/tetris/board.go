package tetris

import (
	"fmt"

	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/config"
	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/core"
)

// Point is an absolute board coordinate. Row 0 is the top; Y may be negative
// while a piece is still entering the board.
type Point struct {
	X, Y int
}

// Cell is a single board cell. The zero value is empty.
type Cell struct {
	Filled bool
	Color  core.Color
}

// Board is the fixed-size grid of settled cells.
type Board struct {
	width  int
	height int
	rows   [][]Cell
}

// NewBoard creates an empty board.
func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: board size %dx%d", config.ErrInvalidConfig, width, height)
	}
	b := &Board{width: width, height: height, rows: make([][]Cell, height)}
	for y := range b.rows {
		b.rows[y] = make([]Cell, width)
	}
	return b, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Cell returns the cell at (x, y), or an empty cell when out of bounds.
func (b *Board) Cell(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.rows[y][x]
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// IsOccupied reports whether (x, y) blocks a piece.
// Cells above the board are free; cells beside or below it are walls.
func (b *Board) IsOccupied(x, y int) bool {
	if x < 0 || x >= b.width || y >= b.height {
		return true
	}
	if y < 0 {
		return false
	}
	return b.rows[y][x].Filled
}

// CanPlace reports whether every cell is inside the walls and floor and no
// on-board cell overlaps a filled cell.
func (b *Board) CanPlace(cells []Point) bool {
	for _, c := range cells {
		if b.IsOccupied(c.X, c.Y) {
			return false
		}
	}
	return true
}

// Lock paints the on-board cells with color. Cells above row 0 are dropped.
func (b *Board) Lock(cells []Point, color core.Color) {
	for _, c := range cells {
		if b.inBounds(c.X, c.Y) {
			b.rows[c.Y][c.X] = Cell{Filled: true, Color: color}
		}
	}
}

// RowFull reports whether every cell in row y is filled.
func (b *Board) RowFull(y int) bool {
	if y < 0 || y >= b.height {
		return false
	}
	for _, c := range b.rows[y] {
		if !c.Filled {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row in one pass, shifts the remaining rows
// down keeping their order, and fills the top with empty rows.
// It returns the number of rows removed.
func (b *Board) ClearFullRows() int {
	kept := make([][]Cell, 0, b.height)
	for y := range b.rows {
		if !b.RowFull(y) {
			kept = append(kept, b.rows[y])
		}
	}
	cleared := b.height - len(kept)
	if cleared == 0 {
		return 0
	}

	rows := make([][]Cell, 0, b.height)
	for range cleared {
		rows = append(rows, make([]Cell, b.width))
	}
	b.rows = append(rows, kept...)
	return cleared
}

// Clear empties every cell in place.
func (b *Board) Clear() {
	for _, row := range b.rows {
		clear(row)
	}
}

// Snapshot returns a deep copy of the grid, indexed [y][x].
func (b *Board) Snapshot() [][]Cell {
	out := make([][]Cell, b.height)
	for y, row := range b.rows {
		out[y] = append([]Cell(nil), row...)
	}
	return out
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{width: b.width, height: b.height, rows: b.Snapshot()}
}

// FilledCount returns the number of filled cells.
func (b *Board) FilledCount() int {
	n := 0
	for _, row := range b.rows {
		for _, c := range row {
			if c.Filled {
				n++
			}
		}
	}
	return n
}
