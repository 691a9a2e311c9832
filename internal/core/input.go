package core

// Key is a logical key the game polls for. Platforms translate their own key
// events into these values.
type Key int

const (
	KeyNone  Key = iota
	KeyRight     // Right arrow - move right
	KeyLeft      // Left arrow - move left
	KeyDown      // Down arrow - soft drop
	KeyUp        // Up arrow - rotate
	KeySpace     // Space - hard drop
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyRight:
		return "Right"
	case KeyLeft:
		return "Left"
	case KeyDown:
		return "Down"
	case KeyUp:
		return "Up"
	case KeySpace:
		return "Space"
	default:
		return "Unknown"
	}
}

// InputFrame holds the keys seen as pressed during one simulation tick.
// Terminals only report presses, so a key stays "down" until the frame is cleared.
type InputFrame struct {
	Keys map[Key]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Keys: make(map[Key]bool),
	}
}

// Set marks a key as pressed for this frame.
func (f *InputFrame) Set(k Key) {
	if k == KeyNone {
		return
	}
	if f.Keys == nil {
		f.Keys = make(map[Key]bool)
	}
	f.Keys[k] = true
}

// Has returns true if the given key was pressed this frame.
func (f InputFrame) Has(k Key) bool {
	if f.Keys == nil {
		return false
	}
	return f.Keys[k]
}

// Clear resets all keys for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Keys {
		delete(f.Keys, k)
	}
}
