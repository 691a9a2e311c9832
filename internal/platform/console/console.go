// Package console runs tetris directly on a tcell screen, with the engine's
// own fixed-rate loop driving the frames.
package console

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// eventBuffer bounds the events queued between two ticks.
const eventBuffer = 100

// panelWidth is the width of the side panel in cells.
const panelWidth = 24

// colorStyles maps core.Color to tcell styles, using the same palette
// indices as the Bubble Tea renderer.
var colorStyles = map[core.Color]tcell.Style{
	core.ColorDefault: tcell.StyleDefault,
	core.ColorRed:     tcell.StyleDefault.Foreground(tcell.PaletteColor(1)),
	core.ColorGreen:   tcell.StyleDefault.Foreground(tcell.PaletteColor(2)),
	core.ColorYellow:  tcell.StyleDefault.Foreground(tcell.PaletteColor(3)),
	core.ColorBlue:    tcell.StyleDefault.Foreground(tcell.PaletteColor(4)),
	core.ColorMagenta: tcell.StyleDefault.Foreground(tcell.PaletteColor(5)),
	core.ColorCyan:    tcell.StyleDefault.Foreground(tcell.PaletteColor(6)),
	core.ColorWhite:   tcell.StyleDefault.Foreground(tcell.PaletteColor(7)),
	core.ColorOrange:  tcell.StyleDefault.Foreground(tcell.PaletteColor(208)),
	core.ColorGray:    tcell.StyleDefault.Foreground(tcell.PaletteColor(245)),
}

func styleFor(c core.Color) tcell.Style {
	if s, ok := colorStyles[c]; ok {
		return s
	}
	return tcell.StyleDefault
}

// StatusFunc returns the lines of the side panel, redrawn every frame.
type StatusFunc func() []string

// Console is a tetris.Display backed by a tcell screen.
//
// tcell only reports key presses, so a pressed key stays latched until
// Present ends the frame. Events are read by a pump goroutine and drained
// without blocking whenever the engine polls a key.
type Console struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
	keys   core.InputFrame
	onQuit func()
	status StatusFunc
	hudX   int
	hud    *core.Screen

	initialised bool
	finiOnce    sync.Once
}

// New wraps screen. onQuit runs when the player presses a quit key.
func New(screen tcell.Screen, onQuit func()) *Console {
	if onQuit == nil {
		onQuit = func() {}
	}
	return &Console{
		screen: screen,
		events: make(chan tcell.Event, eventBuffer),
		done:   make(chan struct{}),
		keys:   core.NewInputFrame(),
		onQuit: onQuit,
	}
}

// SetStatus installs a side panel drawn at column x on every Present.
func (c *Console) SetStatus(x int, f StatusFunc) {
	c.hudX = x
	c.status = f
}

// Initialise sets up the terminal and starts reading events.
func (c *Console) Initialise() error {
	if err := c.screen.Init(); err != nil {
		return fmt.Errorf("console: init screen: %w", err)
	}
	c.initialised = true
	c.screen.HideCursor()
	c.screen.Clear()

	go c.pump()
	return nil
}

// pump forwards screen events until the screen is finalised.
func (c *Console) pump() {
	for {
		ev := c.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case c.events <- ev:
		case <-c.done:
			return
		}
	}
}

// Fini restores the terminal. Safe to call more than once.
func (c *Console) Fini() {
	c.finiOnce.Do(func() {
		close(c.done)
		if c.initialised {
			c.screen.Fini()
		}
	})
}

func (c *Console) DrawCell(x, y int, glyph rune, color core.Color) {
	c.screen.SetContent(x, y, glyph, nil, styleFor(color))
}

func (c *Console) ClearRegion(x, y, w, h int) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			c.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
		}
	}
}

func (c *Console) SetTitle(title string) {
	c.screen.SetTitle(title)
}

// IsKeyPressed reports whether k was pressed since the last Present.
func (c *Console) IsKeyPressed(k core.Key) bool {
	c.drain()
	return c.keys.Has(k)
}

// Present flushes the frame to the terminal and releases latched keys.
func (c *Console) Present() {
	c.drawStatus()
	c.screen.Show()
	c.keys.Clear()
}

// drain handles every queued event without blocking.
func (c *Console) drain() {
	for {
		select {
		case ev := <-c.events:
			c.handle(ev)
		default:
			return
		}
	}
}

func (c *Console) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			c.onQuit()
			return
		}
		c.keys.Set(MapKey(ev))
	case *tcell.EventResize:
		c.screen.Sync()
	}
}

func (c *Console) drawStatus() {
	if c.status == nil {
		return
	}
	lines := c.status()
	if c.hud == nil || c.hud.Height() < len(lines) {
		c.hud = core.NewScreen(panelWidth, len(lines))
	}

	// First line is the title
	c.hud.Clear()
	for i, line := range lines {
		if i == 0 {
			c.hud.DrawTextColor(0, i, line, core.ColorCyan)
			continue
		}
		c.hud.DrawText(0, i, line)
	}

	for y := 0; y < c.hud.Height(); y++ {
		for x := 0; x < c.hud.Width(); x++ {
			cell := c.hud.GetCell(x, y)
			c.screen.SetContent(c.hudX+x, 1+y, cell.Rune, nil, styleFor(cell.Color))
		}
	}
}

// MapKey translates a tcell key event to a game key.
func MapKey(ev *tcell.EventKey) core.Key {
	switch ev.Key() {
	case tcell.KeyRight:
		return core.KeyRight
	case tcell.KeyLeft:
		return core.KeyLeft
	case tcell.KeyDown:
		return core.KeyDown
	case tcell.KeyUp:
		return core.KeyUp
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return core.KeySpace
		}
	}
	return core.KeyNone
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

func init() {
	registry.Register("console", "Direct tcell renderer driven by the engine's own loop", Run)
}

// Run plays on the real terminal until ctx is cancelled or the player quits.
func Run(ctx context.Context, cfg core.RuntimeConfig, opts registry.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("console: create screen: %w", err)
	}
	return RunOn(ctx, screen, cfg, opts)
}

// RunOn plays on the given screen. The screen is finalised on return.
func RunOn(ctx context.Context, screen tcell.Screen, cfg core.RuntimeConfig, opts registry.Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	c := New(screen, func() {
		logger.Info("quit requested")
		cancel()
	})
	defer c.Fini()

	engineOpts := append([]tetris.Option{tetris.WithLogger(logger)}, opts.EngineOptions...)
	e := tetris.New(cfg, c, engineOpts...)

	c.SetStatus(cfg.BoardW+2, func() []string {
		snap := e.Snapshot()
		return []string{
			cfg.Title,
			"",
			fmt.Sprintf("Lines  %d", snap.Lines),
			fmt.Sprintf("Pieces %d", snap.Locked),
			"",
			"←/→   move",
			"↓     soft drop",
			"↑     rotate",
			"space hard drop",
			"q     quit",
		}
	})

	return e.Run(ctx)
}
