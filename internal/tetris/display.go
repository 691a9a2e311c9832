package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Display is the rendering and input surface the engine drives.
// Drawing is best-effort: implementations swallow their own errors.
type Display interface {
	KeyPoller

	// DrawCell renders one glyph at grid position (x, y).
	DrawCell(x, y int, glyph rune, color core.Color)

	// ClearRegion blanks a w×h rectangle with its top-left corner at (x, y).
	ClearRegion(x, y, w, h int)

	// SetTitle sets the window title, where the terminal supports one.
	SetTitle(title string)

	// Initialise prepares the surface. Called once before the first tick.
	Initialise() error
}

// Presenter is implemented by displays that buffer a frame and need an
// explicit flush after each tick. Run calls Present once per tick.
type Presenter interface {
	Present()
}
