package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// KeyMap defines the fixed game key bindings.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Down       key.Binding
	Rotate     key.Binding
	Drop       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Down, k.Rotate, k.Drop, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Down},
		{k.Rotate, k.Drop},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the game key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "soft drop"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "rotate"),
		),
		Drop: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "hard drop"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// MapKey translates a key message to a game key.
// Returns KeyNone for keys the game does not poll.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Key {
	switch {
	case key.Matches(msg, k.Right):
		return core.KeyRight
	case key.Matches(msg, k.Left):
		return core.KeyLeft
	case key.Matches(msg, k.Down):
		return core.KeyDown
	case key.Matches(msg, k.Rotate):
		return core.KeyUp
	case key.Matches(msg, k.Drop):
		return core.KeySpace
	}
	return core.KeyNone
}

// MapKeyToFrame latches the game key for msg into frame.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	if key.Matches(msg, k.Quit) {
		return true
	}
	frame.Set(k.MapKey(msg))
	return false
}
