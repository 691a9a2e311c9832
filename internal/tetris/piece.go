package tetris

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// spawnRow is the anchor row every new piece starts on.
const spawnRow = 1

// FallingPiece is the piece under player control.
type FallingPiece struct {
	Position core.Vec2 // absolute anchor position
	Active   bool      // false once the piece has come to rest
	Piece    Tetromino
}

// Moved returns a copy of p translated by (dx, dy).
func (p FallingPiece) Moved(dx, dy int) FallingPiece {
	p.Position = core.Add(p.Position, core.V(dx, dy))
	return p
}

// Blocks returns the absolute grid positions of the piece's blocks.
func (p FallingPiece) Blocks() [BlockCount]core.Vec2 {
	var out [BlockCount]core.Vec2
	for i, offset := range p.Piece.blocks {
		out[i] = core.Add(p.Position, offset)
	}
	return out
}

// Spawner supplies the tetromino for each new piece.
type Spawner interface {
	Next() Tetromino
}

// RandomSpawner picks catalog shapes uniformly at random.
type RandomSpawner struct {
	rng *rand.Rand
}

// NewRandomSpawner creates a spawner with a deterministic seed.
func NewRandomSpawner(seed int64) *RandomSpawner {
	return &RandomSpawner{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a random catalog tetromino.
func (r *RandomSpawner) Next() Tetromino {
	return catalog[r.rng.Intn(len(catalog))]
}

// QueueSpawner hands out a scripted sequence, then defers to a fallback.
type QueueSpawner struct {
	queue    []Tetromino
	fallback Spawner
}

// NewQueueSpawner creates a scripted spawner. A nil fallback panics once the
// queue runs dry.
func NewQueueSpawner(fallback Spawner, pieces ...Tetromino) *QueueSpawner {
	return &QueueSpawner{queue: pieces, fallback: fallback}
}


// Next pops the head of the queue.
func (q *QueueSpawner) Next() Tetromino {
	if len(q.queue) == 0 {
		if q.fallback == nil {
			panic("tetris: queue spawner exhausted")
		}
		return q.fallback.Next()
	}
	t := q.queue[0]
	q.queue = q.queue[1:]
	return t
}

// Spawn creates a new active piece at the top centre of a board of the given
// width. It never checks whether the spawn position is free.
func Spawn(s Spawner, boardWidth int) FallingPiece {
	return FallingPiece{
		Position: core.V(boardWidth/2, spawnRow),
		Active:   true,
		Piece:    s.Next(),
	}
}
