// Package tetris implements the falling-block simulation: pieces, the settled
// board, collision, line clearing and the fixed-tick loop that drives them.
// It draws through the Display interface and has no terminal dependencies.
package tetris

import (
	"math"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Shape identifies one of the catalog pieces.
type Shape string

const (
	ShapeI Shape = "I"
	ShapeJ Shape = "J"
	ShapeL Shape = "L"
	ShapeO Shape = "O"
	ShapeT Shape = "T"
	ShapeZ Shape = "Z"
)

// BlockCount is the number of blocks in every tetromino.
const BlockCount = 4

// Tetromino is an immutable piece shape: four block offsets relative to the
// piece anchor plus the color and glyph it is drawn with.
type Tetromino struct {
	shape  Shape
	color  core.Color
	glyph  rune
	blocks [BlockCount]core.Vec2
}

// NewTetromino builds a tetromino from explicit offsets.
func NewTetromino(shape Shape, color core.Color, glyph rune, blocks [BlockCount]core.Vec2) Tetromino {
	return Tetromino{shape: shape, color: color, glyph: glyph, blocks: blocks}
}

// Shape returns the catalog identity of the piece.
func (t Tetromino) Shape() Shape {
	return t.shape
}

// Color returns the color the piece is drawn and locked with.
func (t Tetromino) Color() core.Color {
	return t.color
}

// Glyph returns the character used in ASCII rendering.
func (t Tetromino) Glyph() rune {
	return t.glyph
}

// Elements returns the four block offsets.
func (t Tetromino) Elements() [BlockCount]core.Vec2 {
	return t.blocks
}

// At returns the i-th block offset. Indexes outside [0,4) panic.
func (t Tetromino) At(i int) core.Vec2 {
	return t.blocks[i]
}

// Rotate returns a copy of t rotated about the anchor by angleDegrees.
// Each coordinate is rounded half away from zero, so four quarter turns give
// back exactly the original offsets.
func (t Tetromino) Rotate(angleDegrees float64) Tetromino {
	sin, cos := math.Sincos(angleDegrees * math.Pi / 180)

	rotated := t
	for i, b := range t.blocks {
		x, y := float64(b.X), float64(b.Y)
		rotated.blocks[i] = core.Vec2{
			X: int16(math.Round(x*cos - y*sin)),
			Y: int16(math.Round(x*sin + y*cos)),
		}
	}
	return rotated
}


// catalog holds the six playable shapes. Colors follow the usual guideline
// palette; glyphs are used when rendering in ASCII mode.
var catalog = [...]Tetromino{
	// #
	// #
	// #
	// #
	NewTetromino(ShapeI, core.ColorCyan, '#', [4]core.Vec2{core.V(0, 0), core.V(0, 1), core.V(0, 2), core.V(0, 3)}),

	// &&&
	//   &
	NewTetromino(ShapeJ, core.ColorBlue, '&', [4]core.Vec2{core.V(0, 0), core.V(1, 0), core.V(2, 0), core.V(2, 1)}),

	// @@@
	// @
	NewTetromino(ShapeL, core.ColorOrange, '@', [4]core.Vec2{core.V(0, 0), core.V(1, 0), core.V(2, 0), core.V(0, 1)}),

	// $$
	// $$
	NewTetromino(ShapeO, core.ColorYellow, '$', [4]core.Vec2{core.V(0, 0), core.V(1, 0), core.V(0, 1), core.V(1, 1)}),

	// +++
	//  +
	NewTetromino(ShapeT, core.ColorMagenta, '+', [4]core.Vec2{core.V(0, 0), core.V(-1, 0), core.V(1, 0), core.V(0, 1)}),

	// %%
	//  %%
	NewTetromino(ShapeZ, core.ColorRed, '%', [4]core.Vec2{core.V(0, 0), core.V(-1, 0), core.V(0, 1), core.V(1, 1)}),
}

// Catalog returns a copy of the six catalog shapes in I, J, L, O, T, Z order.
func Catalog() [len(catalog)]Tetromino {
	return catalog
}

// Lookup returns the catalog tetromino for a shape.
func Lookup(s Shape) (Tetromino, bool) {
	for _, t := range catalog {
		if t.shape == s {
			return t, true
		}
	}
	return Tetromino{}, false
}

// MustLookup is Lookup for shapes known at compile time.
func MustLookup(s Shape) Tetromino {
	t, ok := Lookup(s)
	if !ok {
		panic("tetris: unknown shape " + string(s))
	}
	return t
}
