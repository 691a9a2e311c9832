// Package tui provides the Bubble Tea front end for tetris.
// It owns the terminal UI loop, latches key presses between ticks and
// renders the engine's screen buffer with a side panel.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that fires at deadline.
// A deadline already in the past fires immediately.
func tickCmd(deadline time.Time) tea.Cmd {
	return tea.Tick(max(time.Until(deadline), 0), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// nextDeadline advances prev by one frame. A loop that has fallen more than
// a frame behind resynchronises to now instead of bursting to catch up.
func nextDeadline(prev, now time.Time, frame time.Duration) time.Time {
	next := prev.Add(frame)
	if next.Before(now) {
		return now.Add(frame)
	}
	return next
}
