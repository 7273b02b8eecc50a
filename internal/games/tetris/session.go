package tetris

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/config"
	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/core"
)

// maxPendingEvents bounds the undrained event queue. When it fills, the oldest
// half is discarded.
const maxPendingEvents = 256

// Session owns one game: the board, the falling piece, the next kind, and the
// score/lines/level counters. It is not safe for concurrent use.
//
// Events queue until DrainEvents is called. A caller that never drains keeps
// at most maxPendingEvents of the most recent ones.
type Session struct {
	cfg    config.TetrisConfig
	policy Policy
	rng    *rand.Rand

	opening     []Kind
	board       *Board
	piece       Piece
	hasPiece    bool
	next        Kind
	score       int
	lines       int
	level       int
	accumulated time.Duration
	gameOver    bool

	events []Event
}

// Option configures a Session at construction.
type Option func(*Session) error

// WithOpening fixes the first two kinds of every game the session plays.
func WithOpening(current, next Kind) Option {
	return func(s *Session) error {
		if !current.Valid() || !next.Valid() {
			return fmt.Errorf("%w: opening %s, %s", config.ErrInvalidConfig, current, next)
		}
		s.opening = []Kind{current, next}
		return nil
	}
}

// WithRand replaces the seeded random source used to pick next kinds.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) error {
		if rng == nil {
			return fmt.Errorf("%w: nil random source", config.ErrInvalidConfig)
		}
		s.rng = rng
		return nil
	}
}

// NewSession validates cfg and starts a fresh game.
func NewSession(cfg config.TetrisConfig, seed int64, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		cfg:    cfg.Clone(),
		policy: NewPolicy(cfg),
		rng:    rand.New(rand.NewSource(seed)), //#nosec G404 -- gameplay randomness
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	board, err := NewBoard(cfg.Board.Width, cfg.Board.Height)
	if err != nil {
		return nil, err
	}
	s.board = board
	s.reset()
	return s, nil
}

// Reset starts a new game on an empty board. It is the only intent honoured after game over.
func (s *Session) Reset() bool {
	s.reset()
	return s.gameOver
}

func (s *Session) reset() {
	s.board.Clear()
	s.score = 0
	s.lines = 0
	s.level = s.cfg.Difficulty.StartLevel
	s.accumulated = 0
	s.gameOver = false
	s.hasPiece = false
	s.events = nil

	var current Kind
	if len(s.opening) == 2 {
		current, s.next = s.opening[0], s.opening[1]
	} else {
		current, s.next = s.randomKind(), s.randomKind()
	}
	s.spawn(current)
}

func (s *Session) randomKind() Kind {
	return Kind(s.rng.Intn(int(kindCount)))
}

// spawn places kind at the top, or ends the game if its on-board cells are blocked.
func (s *Session) spawn(kind Kind) {
	p := SpawnPiece(kind, s.board.Width())
	if !s.board.CanPlace(p.Cells()) {
		s.gameOver = true
		s.hasPiece = false
		s.emit(GameOverEvent{Score: s.score})
		return
	}
	s.piece = p
	s.hasPiece = true
}

func (s *Session) emit(e Event) {
	if len(s.events) >= maxPendingEvents {
		n := copy(s.events, s.events[len(s.events)/2:])
		clear(s.events[n:])
		s.events = s.events[:n]
	}
	s.events = append(s.events, e)
}

// TryMove shifts the piece by (dx, dy) if the target is free. Nothing changes on failure.
func (s *Session) TryMove(dx, dy int) bool {
	if s.gameOver || !s.hasPiece {
		return false
	}
	moved := s.piece.Moved(dx, dy)
	if !s.board.CanPlace(moved.Cells()) {
		return false
	}
	s.piece = moved
	return true
}

// TryRotate turns the piece clockwise if the result fits. There are no wall kicks.
func (s *Session) TryRotate() bool {
	if s.gameOver || !s.hasPiece {
		return false
	}
	rotated := s.piece.Rotated()
	if !s.board.CanPlace(rotated.Cells()) {
		return false
	}
	s.piece = rotated
	return true
}

// MoveLeft shifts the piece one column left. It reports whether the game is over.
func (s *Session) MoveLeft() bool {
	return s.shift(-1, 0)
}

// MoveRight shifts the piece one column right. It reports whether the game is over.
func (s *Session) MoveRight() bool {
	return s.shift(1, 0)
}

// SoftDrop moves the piece one row down. It never locks and never scores.
func (s *Session) SoftDrop() bool {
	return s.shift(0, 1)
}

func (s *Session) shift(dx, dy int) bool {
	if s.TryMove(dx, dy) {
		s.emit(PieceMovedEvent{DX: dx, DY: dy})
	}
	return s.gameOver
}

// Rotate turns the piece clockwise. It reports whether the game is over.
func (s *Session) Rotate() bool {
	if s.TryRotate() {
		s.emit(PieceRotatedEvent{Rotation: s.piece.Rotation})
	}
	return s.gameOver
}

// HardDrop lets the piece fall until blocked and locks it immediately.
func (s *Session) HardDrop() bool {
	if s.gameOver || !s.hasPiece {
		return s.gameOver
	}
	for s.TryMove(0, 1) {
	}
	s.lock()
	return s.gameOver
}

// Advance adds dt of elapsed time. Once the accumulated time reaches the fall
// interval the piece falls one row, locking if it cannot. At most one gravity
// step happens per call. It reports whether the game is over.
func (s *Session) Advance(dt time.Duration) bool {
	if s.gameOver {
		return true
	}
	s.accumulated += dt
	if s.accumulated < s.FallInterval() {
		return false
	}
	s.accumulated = 0
	if !s.TryMove(0, 1) {
		s.lock()
	}
	return s.gameOver
}

// lock settles the piece, clears rows, updates counters and spawns the next piece.
func (s *Session) lock() {
	kind := s.piece.Kind
	s.board.Lock(s.piece.Cells(), kind.Color())
	s.hasPiece = false
	s.emit(PieceLockedEvent{Kind: kind})

	if cleared := s.board.ClearFullRows(); cleared > 0 {
		points := s.policy.ScoreDelta(cleared, s.level)
		s.score += points
		s.lines += cleared
		s.emit(LinesClearedEvent{Count: cleared, Points: points})

		if level := s.levelFor(s.lines); level > s.level {
			s.level = level
			s.emit(LevelUpEvent{Level: level})
		}
	}

	s.accumulated = 0
	current := s.next
	s.next = s.randomKind()
	s.spawn(current)
}

func (s *Session) levelFor(lines int) int {
	start := s.cfg.Difficulty.StartLevel
	if !s.cfg.Difficulty.Progression {
		return start
	}
	return max(start, s.policy.Level(lines))
}

// DrainEvents returns the events emitted since the previous call and clears them.
func (s *Session) DrainEvents() []Event {
	out := s.events
	s.events = nil
	return out
}

// Board returns a deep copy of the settled cells, indexed [y][x].
func (s *Session) Board() [][]Cell {
	return s.board.Snapshot()
}

// Width returns the board width.
func (s *Session) Width() int { return s.board.Width() }

// Height returns the board height.
func (s *Session) Height() int { return s.board.Height() }

// Piece returns the falling piece and whether one is active.
// After game over there is no active piece.
func (s *Session) Piece() (Piece, bool) {
	return s.piece, s.hasPiece
}

// PieceCells returns the falling piece's cells and color, or nil after game over.
func (s *Session) PieceCells() ([]Point, core.Color) {
	if !s.hasPiece {
		return nil, core.ColorDefault
	}
	return s.piece.Cells(), s.piece.Kind.Color()
}

// GhostCells returns where the falling piece would land on a hard drop.
func (s *Session) GhostCells() []Point {
	if !s.hasPiece {
		return nil
	}
	ghost := s.piece
	for s.board.CanPlace(ghost.Moved(0, 1).Cells()) {
		ghost = ghost.Moved(0, 1)
	}
	return ghost.Cells()
}

// Next returns the kind that spawns after the current piece locks.
func (s *Session) Next() Kind { return s.next }

// Score returns the total score.
func (s *Session) Score() int { return s.score }

// Lines returns the total number of cleared lines.
func (s *Session) Lines() int { return s.lines }

// Level returns the current level.
func (s *Session) Level() int { return s.level }

// FallInterval returns the gravity period at the current level.
func (s *Session) FallInterval() time.Duration {
	return s.policy.FallInterval(s.level)
}

// IsGameOver reports whether a spawn has failed since the last reset.
func (s *Session) IsGameOver() bool { return s.gameOver }
