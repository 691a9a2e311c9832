package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// bufferRows is the number of rows at the top of the grid (border row plus
// spawn row) that the line-clear scan skips.
const bufferRows = 2

// Cell is one settled grid position.
type Cell struct {
	Valid bool
	Color core.Color
	Glyph rune
}

// Board is the settled playfield. The outer ring of the grid is border:
// columns 0 and width-1, the top row 0 and the floor row height-1.
// Pieces may only occupy the interior.
type Board struct {
	width  int
	height int
	cells  [][]Cell
}

// NewBoard creates an empty board with the given grid dimensions.
func NewBoard(width, height int) *Board {
	b := &Board{
		width:  width,
		height: height,
	}
	b.cells = make([][]Cell, height)
	for y := range b.cells {
		b.cells[y] = make([]Cell, width)
	}
	return b
}

// Width returns the grid width, walls included.
func (b *Board) Width() int {
	return b.width
}

// Height returns the grid height, border and floor included.
func (b *Board) Height() int {
	return b.height
}


// Cell returns the settled cell at (x, y). Coordinates outside the grid panic.
func (b *Board) Cell(x, y int) Cell {
	return b.cells[y][x]
}

// Interior is the region inside the border ring where pieces may sit.
func (b *Board) Interior() core.Rect {
	return core.NewRect(1, 1, b.width-2, b.height-2)
}

// inInterior reports whether (x, y) is a position a piece block may occupy.
func (b *Board) inInterior(x, y int) bool {
	return b.Interior().Contains(x, y)
}

// IsOccupied reports whether (x, y) is blocked, either by a locked cell or
// because it lies on or beyond the border.
func (b *Board) IsOccupied(x, y int) bool {
	if !b.inInterior(x, y) {
		return true
	}
	return b.cells[y][x].Valid
}

// Collides reports whether a single block offset collides when the piece
// anchor is at anchor.
func (b *Board) Collides(offset, anchor core.Vec2) bool {
	abs := core.Add(anchor, offset)
	return b.IsOccupied(int(abs.X), int(abs.Y))
}

// PieceCollides reports whether any block of t collides with anchor at anchor.
func (b *Board) PieceCollides(t Tetromino, anchor core.Vec2) bool {
	for _, offset := range t.blocks {
		if b.Collides(offset, anchor) {
			return true
		}
	}
	return false
}

// Lock settles every block of t at anchor into the grid. Locking the same
// piece twice leaves the board unchanged. The caller guarantees anchor is a
// non-colliding position; blocks outside the grid panic.
func (b *Board) Lock(t Tetromino, anchor core.Vec2) {
	for _, offset := range t.blocks {
		abs := core.Add(anchor, offset)
		b.cells[abs.Y][abs.X] = Cell{Valid: true, Color: t.color, Glyph: t.glyph}
	}
}

// rowFull reports whether every cell in columns 1..width-3 of row y is valid.
// Column width-2 is not part of the fullness test.
func (b *Board) rowFull(y int) bool {
	row := b.cells[y]
	for x := 1; x <= b.width-3; x++ {
		if !row[x].Valid {
			return false
		}
	}
	return true
}

// shiftDown removes row y by copying each row above it one row down.
// Row 0 is border and never holds locked cells, so row 1 ends up empty.
func (b *Board) shiftDown(y int) {
	for i := y; i >= 1; i-- {
		copy(b.cells[i], b.cells[i-1])
	}
}

// ClearFullLines scans the interior rows below the spawn buffer from top to
// bottom in a single pass, removing each full row as soon as it is found.
// Returns the number of rows removed.
func (b *Board) ClearFullLines() int {
	cleared := 0
	for y := bufferRows; y <= b.height-2; y++ {
		if b.rowFull(y) {
			b.shiftDown(y)
			cleared++
		}
	}
	return cleared
}

// Occupied returns the number of locked cells.
func (b *Board) Occupied() int {
	n := 0
	for y := range b.cells {
		for x := range b.cells[y] {
			if b.cells[y][x].Valid {
				n++
			}
		}
	}
	return n
}
