package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Action is a game-level intent resolved from key state.
type Action int

const (
	ActionMoveRight Action = iota
	ActionMoveLeft
	ActionSoftDrop
	ActionRotate
	ActionHardDrop
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionMoveRight:
		return "MoveRight"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotate:
		return "Rotate"
	case ActionHardDrop:
		return "HardDrop"
	default:
		return "Unknown"
	}
}

// RotationStep is the angle applied by a single rotate action.
const RotationStep = 90.0

// ActionFunc computes the piece after an action. ok is false when the move
// is rejected, in which case the returned piece must be ignored.
type ActionFunc func(b *Board, p FallingPiece) (next FallingPiece, ok bool)

var actionFuncs = map[Action]ActionFunc{
	ActionMoveRight: MoveRight,
	ActionMoveLeft:  MoveLeft,
	ActionSoftDrop:  SoftDrop,
	ActionRotate:    Rotate,
	ActionHardDrop:  HardDrop,
}

// Apply runs the function bound to a.
func Apply(a Action, b *Board, p FallingPiece) (FallingPiece, bool) {
	f, ok := actionFuncs[a]
	if !ok {
		return p, false
	}
	return f(b, p)
}

// translate moves p by (dx, dy) if the target position is free.
func translate(b *Board, p FallingPiece, dx, dy int) (FallingPiece, bool) {
	next := p.Moved(dx, dy)
	if b.PieceCollides(next.Piece, next.Position) {
		return p, false
	}
	return next, true
}

// MoveRight shifts the piece one column right.
func MoveRight(b *Board, p FallingPiece) (FallingPiece, bool) {
	return translate(b, p, 1, 0)
}

// MoveLeft shifts the piece one column left.
func MoveLeft(b *Board, p FallingPiece) (FallingPiece, bool) {
	return translate(b, p, -1, 0)
}

// SoftDrop moves the piece one row down. It never locks.
func SoftDrop(b *Board, p FallingPiece) (FallingPiece, bool) {
	return translate(b, p, 0, 1)
}

// Rotate turns the piece a quarter turn in place; there are no wall kicks.
func Rotate(b *Board, p FallingPiece) (FallingPiece, bool) {
	next := p
	next.Piece = p.Piece.Rotate(RotationStep)
	if b.PieceCollides(next.Piece, next.Position) {
		return p, false
	}
	return next, true
}

// HardDrop moves the piece to the lowest free row found by stepping down one
// row at a time, then deactivates it so the engine locks it.
func HardDrop(b *Board, p FallingPiece) (FallingPiece, bool) {
	next := p
	for !b.PieceCollides(next.Piece, core.Add(next.Position, core.V(0, 1))) {
		next.Position.Y++
	}
	next.Active = false
	return next, true
}

// Binding ties a polled key to the action it triggers.
type Binding struct {
	Key    core.Key
	Action Action
}

// DefaultBindings is the fixed key table, in the order actions are applied
// within one tick.
var DefaultBindings = []Binding{
	{Key: core.KeyRight, Action: ActionMoveRight},
	{Key: core.KeyLeft, Action: ActionMoveLeft},
	{Key: core.KeyDown, Action: ActionSoftDrop},
	{Key: core.KeyUp, Action: ActionRotate},
	{Key: core.KeySpace, Action: ActionHardDrop},
}

// KeyPoller answers whether a key is currently down.
type KeyPoller interface {
	IsKeyPressed(k core.Key) bool
}

// InputResolver turns polled key state into actions.
type InputResolver struct {
	bindings []Binding
}

// NewInputResolver creates a resolver over DefaultBindings.
func NewInputResolver() *InputResolver {
	return &InputResolver{bindings: DefaultBindings}
}

// Resolve returns the action of every pressed key in binding order.
// Simultaneous keys all produce actions.
func (r *InputResolver) Resolve(p KeyPoller) []Action {
	var actions []Action
	for _, bnd := range r.bindings {
		if p.IsKeyPressed(bnd.Key) {
			actions = append(actions, bnd.Action)
		}
	}
	return actions
}
