package tetris

// Snapshot captures the engine state for determinism testing and debugging.
type Snapshot struct {
	Tick     uint64
	Shape    Shape
	X        int
	Y        int
	Active   bool
	Lines    int
	Locked   int // pieces locked so far
	Occupied int // settled cells on the board
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:     e.tick,
		Shape:    e.piece.Piece.Shape(),
		X:        int(e.piece.Position.X),
		Y:        int(e.piece.Position.Y),
		Active:   e.piece.Active,
		Lines:    e.lines,
		Locked:   e.locked,
		Occupied: e.board.Occupied(),
	}
}
