package tetris

// Piece is the falling tetromino. Its cells are derived from the catalog on demand.
type Piece struct {
	Kind     Kind
	Rotation int
	X, Y     int
}

// SpawnPiece places kind at rotation 0, horizontally centred for a 4-wide box,
// with its lowest cells on row 0 and the rest above the board.
func SpawnPiece(kind Kind, boardWidth int) Piece {
	return Piece{
		Kind:     kind,
		Rotation: 0,
		X:        (boardWidth - 4) / 2,
		Y:        -Height(kind, 0),
	}
}

// Cells returns the absolute board coordinates of the piece.
func (p Piece) Cells() []Point {
	offs := Cells(p.Kind, p.Rotation)
	out := make([]Point, len(offs))
	for i, o := range offs {
		out[i] = Point{X: p.X + o.DX, Y: p.Y + o.DY}
	}
	return out
}

// Moved returns a copy shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy turned one step clockwise.
func (p Piece) Rotated() Piece {
	p.Rotation = normRotation(p.Rotation + 1)
	return p
}
