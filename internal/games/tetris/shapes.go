// Package tetris implements the falling-block board engine and its arcade adapter.
//
// The engine (Board, Piece, Session, Policy) is pure logic driven by intents and
// elapsed time. Game wraps a Session for the platform loop.
package tetris

import (
	"fmt"
	"strings"

	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/core"
)

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL

	kindCount
)

// Offset is a cell position relative to a piece's origin. Both components are non-negative.
type Offset struct {
	DX, DY int
}

// shapes holds the four rotation states of every kind, in clockwise order.
var shapes = [kindCount][4][4]Offset{
	KindI: {
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
	},
	KindO: {
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	KindT: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	KindS: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	KindZ: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	},
	KindJ: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {0, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	KindL: {
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{0, 0}, {0, 1}, {0, 2}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
}

var kindColors = [kindCount]core.Color{
	KindI: core.ColorCyan,
	KindO: core.ColorYellow,
	KindT: core.ColorMagenta,
	KindS: core.ColorGreen,
	KindZ: core.ColorRed,
	KindJ: core.ColorBlue,
	KindL: core.ColorOrange,
}

var kindNames = [kindCount]string{"I", "O", "T", "S", "Z", "J", "L"}

// AllKinds returns the seven kinds in catalog order.
func AllKinds() []Kind {
	return []Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}
}

// Valid reports whether k is one of the seven kinds.
func (k Kind) Valid() bool {
	return k >= KindI && k < kindCount
}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Color returns the display color of the kind, or ColorDefault for an invalid kind.
func (k Kind) Color() core.Color {
	if !k.Valid() {
		return core.ColorDefault
	}
	return kindColors[k]
}

// ParseKind converts a letter (case-insensitive) into a Kind.
func ParseKind(s string) (Kind, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("tetris: unknown piece kind %q", s)
}

// Cells returns the four offsets of kind at the given rotation.
// Rotation is taken modulo 4; negative values wrap around.
func Cells(kind Kind, rotation int) [4]Offset {
	if !kind.Valid() {
		return [4]Offset{}
	}
	return shapes[kind][normRotation(rotation)]
}

// Height returns the largest DY of kind at the given rotation.
func Height(kind Kind, rotation int) int {
	h := 0
	for _, o := range Cells(kind, rotation) {
		h = max(h, o.DY)
	}
	return h
}

func normRotation(r int) int {
	r %= 4
	if r < 0 {
		r += 4
	}
	return r
}
