package core

import "time"

// RuntimeConfig contains configuration passed to the engine at initialization.
// The platform layer builds it from the YAML config and CLI flags.
type RuntimeConfig struct {
	BoardW int // Board width including the two wall columns
	BoardH int // Board height including the top border row and the floor

	TickRate        int           // Simulation ticks per second (default 30)
	GravityInterval time.Duration // Time between gravity steps (default 250ms)
	Seed            int64         // RNG seed for deterministic gameplay

	Title         string
	BorderGlyph   rune
	InteriorGlyph rune
	BlockGlyph    rune
	ASCII         bool // Draw each shape's own glyph instead of BlockGlyph
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		BoardW:          14,
		BoardH:          20,
		TickRate:        30,
		GravityInterval: 250 * time.Millisecond,
		Seed:            0, // 0 means use current time in platform layer
		Title:           "TETRIS",
		BorderGlyph:     '█',
		InteriorGlyph:   ' ',
		BlockGlyph:      '█',
	}
}

// FrameDuration returns the wall-clock budget of one tick.
func (c RuntimeConfig) FrameDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.TickRate)
}
