package tetris

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// TickResult reports what happened during one engine tick.
type TickResult struct {
	Tick         uint64
	Gravity      bool // gravity timer fired this tick
	Locked       bool // the falling piece was locked and replaced
	LinesCleared int
}

// Engine owns the board and the falling piece and advances them one fixed
// tick at a time.
type Engine struct {
	cfg      core.RuntimeConfig
	display  Display
	board    *Board
	piece    FallingPiece
	spawner  Spawner
	resolver *InputResolver
	logger   *log.Logger

	lastGravity time.Time
	tick        uint64
	lines       int
	locked      int
}

// Option configures an Engine.
type Option func(*Engine)

// WithSpawner replaces the seeded random spawner.
func WithSpawner(s Spawner) Option {
	return func(e *Engine) {
		e.spawner = s
	}
}

// WithLogger sets the logger used for spawn, lock and line-clear events.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates an engine with an empty board and a freshly spawned piece.
func New(cfg core.RuntimeConfig, d Display, opts ...Option) *Engine {
	e := &Engine{
		cfg:      cfg,
		display:  d,
		board:    NewBoard(cfg.BoardW, cfg.BoardH),
		resolver: NewInputResolver(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.spawner == nil {
		e.spawner = NewRandomSpawner(cfg.Seed)
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}

	e.spawn()
	return e
}

// Start prepares the display, draws the border and starts the gravity timer.
func (e *Engine) Start(now time.Time) error {
	if err := e.display.Initialise(); err != nil {
		return fmt.Errorf("tetris: cannot initialise display: %w", err)
	}
	e.display.SetTitle(e.cfg.Title)
	e.DrawBorder()
	e.lastGravity = now

	e.logger.Info("game started",
		"board", fmt.Sprintf("%dx%d", e.board.Width(), e.board.Height()),
		"tick_rate", e.cfg.TickRate,
		"gravity", e.cfg.GravityInterval,
	)
	return nil
}

// DrawBorder draws the wall columns, top border row and floor, then blanks
// the interior.
func (e *Engine) DrawBorder() {
	w, h := e.board.Width(), e.board.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !e.board.inInterior(x, y) {
				e.display.DrawCell(x, y, e.cfg.BorderGlyph, core.ColorGray)
			}
		}
	}
	e.clearInterior()
}

// Tick advances the simulation by one frame at wall-clock time now.
func (e *Engine) Tick(now time.Time) TickResult {
	e.tick++
	result := TickResult{Tick: e.tick}

	e.clearInterior()

	if now.Sub(e.lastGravity) > e.cfg.GravityInterval {
		result.Gravity = true
		e.lastGravity = now
	}

	e.drawPiece()

	spawnNew := false
	if e.piece.Active {
		for _, action := range e.resolver.Resolve(e.display) {
			if !e.piece.Active {
				break
			}
			if next, ok := Apply(action, e.board, e.piece); ok {
				e.piece = next
			}
		}
		if !e.piece.Active {
			spawnNew = true
		}

		if result.Gravity && e.piece.Active {
			if next, ok := SoftDrop(e.board, e.piece); ok {
				e.piece = next
			} else {
				e.piece.Active = false
				spawnNew = true
			}
		}
	}

	if spawnNew {
		e.lock()
		e.spawn()
		result.Locked = true
	}

	if n := e.board.ClearFullLines(); n > 0 {
		e.lines += n
		result.LinesCleared = n
		e.logger.Debug("lines cleared", "count", n, "total", e.lines)
	}

	e.drawBoard()
	return result
}

// Run starts the engine and ticks it at the configured rate until ctx is
// cancelled. Each frame sleeps until its deadline rather than for a fixed
// duration, so per-tick work does not accumulate as drift.
func (e *Engine) Run(ctx context.Context) error {
	if err := e.Start(time.Now()); err != nil {
		return err
	}

	frame := e.cfg.FrameDuration()
	presenter, _ := e.display.(Presenter)

	for {
		start := time.Now()
		e.Tick(start)
		if presenter != nil {
			presenter.Present()
		}

		if err := sleepUntil(ctx, start.Add(frame)); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
	}
}

// sleepUntil blocks until deadline or until ctx is done.
func sleepUntil(ctx context.Context, deadline time.Time) error {
	d := time.Until(deadline)
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// spawn replaces the falling piece with a new one.
func (e *Engine) spawn() {
	e.piece = Spawn(e.spawner, e.board.Width())
	e.logger.Debug("piece spawned",
		"shape", e.piece.Piece.Shape(),
		"x", e.piece.Position.X,
		"y", e.piece.Position.Y,
	)
}

// lock settles the falling piece at its current position.
func (e *Engine) lock() {
	e.board.Lock(e.piece.Piece, e.piece.Position)
	e.locked++
	e.logger.Debug("piece locked",
		"shape", e.piece.Piece.Shape(),
		"x", e.piece.Position.X,
		"y", e.piece.Position.Y,
	)
}

// clearInterior blanks the playable region and paints the interior glyph.
func (e *Engine) clearInterior() {
	r := e.board.Interior()
	e.display.ClearRegion(r.X, r.Y, r.W, r.H)

	if e.cfg.InteriorGlyph == 0 || e.cfg.InteriorGlyph == ' ' {
		return
	}
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			e.display.DrawCell(x, y, e.cfg.InteriorGlyph, core.ColorGray)
		}
	}
}

// glyph picks the character a block is drawn with.
func (e *Engine) glyph(shapeGlyph rune) rune {
	if e.cfg.ASCII || e.cfg.BlockGlyph == 0 {
		return shapeGlyph
	}
	return e.cfg.BlockGlyph
}

func (e *Engine) drawPiece() {
	g := e.glyph(e.piece.Piece.Glyph())
	for _, b := range e.piece.Blocks() {
		e.display.DrawCell(int(b.X), int(b.Y), g, e.piece.Piece.Color())
	}
}

func (e *Engine) drawBoard() {
	for y := 0; y < e.board.Height(); y++ {
		for x := 0; x < e.board.Width(); x++ {
			if c := e.board.cells[y][x]; c.Valid {
				e.display.DrawCell(x, y, e.glyph(c.Glyph), c.Color)
			}
		}
	}
}
