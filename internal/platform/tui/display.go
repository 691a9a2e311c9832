package tui

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// screenDisplay is the engine's display when running under Bubble Tea.
// Drawing goes to an off-screen buffer that View renders; key presses
// arrive as messages and stay latched until the next tick consumes them.
type screenDisplay struct {
	screen *core.Screen
	input  core.InputFrame
	title  string
}

func newScreenDisplay(width, height int) *screenDisplay {
	return &screenDisplay{
		screen: core.NewScreen(width, height),
		input:  core.NewInputFrame(),
	}
}

// Initialise blanks the buffer. Bubble Tea owns the real terminal.
func (d *screenDisplay) Initialise() error {
	d.screen.Clear()
	return nil
}

func (d *screenDisplay) DrawCell(x, y int, glyph rune, color core.Color) {
	d.screen.DrawCell(x, y, glyph, color)
}

func (d *screenDisplay) ClearRegion(x, y, w, h int) {
	d.screen.ClearRegion(x, y, w, h)
}

// SetTitle records the title for the side panel and the window title command.
func (d *screenDisplay) SetTitle(title string) {
	d.title = title
}

func (d *screenDisplay) IsKeyPressed(k core.Key) bool {
	return d.input.Has(k)
}

// Present releases every latched key once a tick has consumed them.
func (d *screenDisplay) Present() {
	d.input.Clear()
}
