package tetris

import (
	"encoding/binary"
	"hash/fnv"
)

// Snapshot contains the complete observable game state for determinism tests.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick     uint64
	Score    int
	Lines    int
	Level    int
	GameOver bool
	Paused   bool

	// Falling piece; Kind is -1 when there is none.
	Kind     int
	Rotation int
	PieceX   int
	PieceY   int
	Next     int

	Width  int
	Height int
	// Board cells flattened row-major: 0 = empty, otherwise color+1.
	Cells []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:   g.tick,
		Paused: g.paused,
		Kind:   -1,
	}
	s := g.session
	if s == nil {
		snap.GameOver = true
		return snap
	}

	snap.Score = s.Score()
	snap.Lines = s.Lines()
	snap.Level = s.Level()
	snap.GameOver = s.IsGameOver()
	snap.Next = int(s.Next())
	snap.Width = s.Width()
	snap.Height = s.Height()

	if p, ok := s.Piece(); ok {
		snap.Kind = int(p.Kind)
		snap.Rotation = p.Rotation
		snap.PieceX = p.X
		snap.PieceY = p.Y
	}

	snap.Cells = make([]int, 0, snap.Width*snap.Height)
	for _, row := range s.Board() {
		for _, c := range row {
			v := 0
			if c.Filled {
				v = int(c.Color) + 1
			}
			snap.Cells = append(snap.Cells, v)
		}
	}
	return snap
}

// Hash returns an FNV-1a digest of the snapshot.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(v int64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v)) //#nosec G115 -- hash computation
		_, _ = h.Write(buf[:])
	}

	put(int64(snap.Tick)) //#nosec G115 -- hash computation
	put(int64(snap.Score))
	put(int64(snap.Lines))
	put(int64(snap.Level))
	put(boolInt(snap.GameOver))
	put(boolInt(snap.Paused))
	put(int64(snap.Kind))
	put(int64(snap.Rotation))
	put(int64(snap.PieceX))
	put(int64(snap.PieceY))
	put(int64(snap.Next))
	put(int64(snap.Width))
	put(int64(snap.Height))
	for _, v := range snap.Cells {
		put(int64(v))
	}
	return h.Sum64()
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
