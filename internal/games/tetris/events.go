package tetris

// Event is something that happened inside a session since the last drain.
// The arcade shell turns events into banners; an audio layer would map them to cues.
type Event interface {
	isEvent()
}

// PieceMovedEvent is emitted after a successful sideways move or soft drop.
type PieceMovedEvent struct {
	DX, DY int
}

// PieceRotatedEvent is emitted after a successful rotation.
type PieceRotatedEvent struct {
	Rotation int
}

// PieceLockedEvent is emitted when the falling piece settles into the board.
type PieceLockedEvent struct {
	Kind Kind
}

// LinesClearedEvent is emitted when a lock completes one or more rows.
type LinesClearedEvent struct {
	Count  int
	Points int
}

// LevelUpEvent is emitted when the level increases.
type LevelUpEvent struct {
	Level int
}

// GameOverEvent is emitted once when a spawned piece cannot enter the board.
type GameOverEvent struct {
	Score int
}

func (PieceMovedEvent) isEvent()   {}
func (PieceRotatedEvent) isEvent() {}
func (PieceLockedEvent) isEvent()  {}
func (LinesClearedEvent) isEvent() {}
func (LevelUpEvent) isEvent()      {}
func (GameOverEvent) isEvent()     {}
