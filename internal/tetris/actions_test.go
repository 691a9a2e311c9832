package tetris

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func piece(shape Shape, x, y int) FallingPiece {
	return FallingPiece{Position: core.V(x, y), Active: true, Piece: MustLookup(shape)}
}

func TestMoveRejectedAtWalls(t *testing.T) {
	b := NewBoard(14, 20)

	tests := []struct {
		name   string
		action Action
		start  FallingPiece
		ok     bool
		want   core.Vec2
	}{
		{"left free", ActionMoveLeft, piece(ShapeO, 5, 5), true, core.V(4, 5)},
		{"left wall", ActionMoveLeft, piece(ShapeO, 1, 5), false, core.V(1, 5)},
		{"right free", ActionMoveRight, piece(ShapeO, 5, 5), true, core.V(6, 5)},
		{"right wall", ActionMoveRight, piece(ShapeO, 11, 5), false, core.V(11, 5)},
		{"down free", ActionSoftDrop, piece(ShapeO, 5, 5), true, core.V(5, 6)},
		{"down floor", ActionSoftDrop, piece(ShapeO, 5, 17), false, core.V(5, 17)},
		{"T left wall", ActionMoveLeft, piece(ShapeT, 2, 5), false, core.V(2, 5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			next, ok := Apply(tc.action, b, tc.start)
			assert.Equal(t, tc.ok, ok)
			if ok {
				assert.Equal(t, tc.want, next.Position)
			} else {
				assert.Equal(t, tc.start, next, "rejected move returns the piece unchanged")
			}
			assert.True(t, next.Active, "only hard drop deactivates")
		})
	}
}

func TestMoveRejectedBySettledCell(t *testing.T) {
	b := NewBoard(14, 20)
	b.cells[6][4].Valid = true

	p := piece(ShapeO, 5, 5)
	_, ok := MoveLeft(b, p)
	assert.False(t, ok)

	_, ok = SoftDrop(b, piece(ShapeO, 4, 4))
	assert.False(t, ok)
}

func TestRotate(t *testing.T) {
	b := NewBoard(14, 20)

	next, ok := Rotate(b, piece(ShapeI, 6, 5))
	require.True(t, ok)
	assert.Equal(t, core.V(6, 5), next.Position)
	assert.Equal(t, MustLookup(ShapeI).Rotate(RotationStep).Elements(), next.Piece.Elements())

	// A quarter turn swings I to the left of its anchor, through the wall.
	start := piece(ShapeI, 2, 5)
	next, ok = Rotate(b, start)
	assert.False(t, ok)
	assert.Equal(t, start, next, "no wall kicks")

	b.cells[5][5].Valid = true
	_, ok = Rotate(b, piece(ShapeI, 6, 5))
	assert.False(t, ok, "rotation into a settled cell is rejected")
}

func TestHardDropOnEmptyBoard(t *testing.T) {
	b := NewBoard(14, 20)

	next, ok := HardDrop(b, piece(ShapeO, 7, 1))
	require.True(t, ok)
	assert.Equal(t, core.V(7, 17), next.Position)
	assert.False(t, next.Active)

	next, _ = HardDrop(b, piece(ShapeI, 3, 1))
	assert.Equal(t, core.V(3, 15), next.Position)
}

func TestHardDropMatchesRepeatedSoftDrop(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for round := range 50 {
		b := NewBoard(14, 20)
		for range 30 {
			b.cells[4+rng.Intn(15)][1+rng.Intn(12)].Valid = true
		}

		for _, tet := range Catalog() {
			start := FallingPiece{Position: core.V(7, 1), Active: true, Piece: tet}
			if b.PieceCollides(start.Piece, start.Position) {
				continue
			}

			want := start
			for {
				next, ok := SoftDrop(b, want)
				if !ok {
					break
				}
				want = next
			}

			got, ok := HardDrop(b, start)
			require.True(t, ok)
			assert.Equal(t, want.Position, got.Position, "round %d shape %s", round, tet.Shape())
			assert.False(t, got.Active)
			assert.False(t, b.PieceCollides(got.Piece, got.Position))
		}
	}
}

func TestHardDropStopsAboveOverhang(t *testing.T) {
	b := NewBoard(14, 20)
	// Shelf at row 8 with a hole below it; the piece must not tunnel through.
	b.cells[8][7].Valid = true

	got, _ := HardDrop(b, piece(ShapeI, 7, 1))
	assert.Equal(t, core.V(7, 4), got.Position)
}

func TestCustomShapeCollision(t *testing.T) {
	b := NewBoard(14, 20)
	// A 1x4 horizontal bar that reaches left of its anchor.
	bar := NewTetromino("bar", core.ColorGreen, '=', [BlockCount]core.Vec2{core.V(-3, 0), core.V(-2, 0), core.V(-1, 0), core.V(0, 0)})
	p := FallingPiece{Position: core.V(4, 5), Active: true, Piece: bar}

	next, ok := MoveLeft(b, p)
	assert.False(t, ok, "leftmost block would enter the wall")
	assert.Equal(t, p, next)

	next, ok = MoveRight(b, p)
	require.True(t, ok)
	assert.Equal(t, core.V(5, 5), next.Position)

	dropped, _ := HardDrop(b, p)
	assert.Equal(t, core.V(4, 18), dropped.Position)
	b.Lock(dropped.Piece, dropped.Position)
	for x := 1; x <= 4; x++ {
		assert.Equal(t, '=', b.Cell(x, 18).Glyph)
	}
}

func TestApplyUnknownAction(t *testing.T) {
	p := piece(ShapeO, 5, 5)
	next, ok := Apply(Action(99), NewBoard(14, 20), p)
	assert.False(t, ok)
	assert.Equal(t, p, next)
	assert.Equal(t, "Unknown", Action(99).String())
}

type keySet map[core.Key]bool

func (k keySet) IsKeyPressed(key core.Key) bool {
	return k[key]
}

func TestInputResolver(t *testing.T) {
	r := NewInputResolver()

	tests := []struct {
		name     string
		keys     keySet
		expected []Action
	}{
		{"none", keySet{}, nil},
		{"single", keySet{core.KeyUp: true}, []Action{ActionRotate}},
		{"left and down", keySet{core.KeyDown: true, core.KeyLeft: true}, []Action{ActionMoveLeft, ActionSoftDrop}},
		{
			"all keys",
			keySet{core.KeySpace: true, core.KeyUp: true, core.KeyDown: true, core.KeyLeft: true, core.KeyRight: true},
			[]Action{ActionMoveRight, ActionMoveLeft, ActionSoftDrop, ActionRotate, ActionHardDrop},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, r.Resolve(tc.keys))
		})
	}
}
