// Package config provides YAML-based game configuration loading and
// validation for tetris.
package config

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Limits enforced by Validate.
const (
	MinBoardWidth  = 8 // every catalog shape fits the spawn position
	MinBoardHeight = 6 // a vertical I fits between the border row and the floor
	MaxBoardSize   = 256
	MaxTickRate    = 240
)

// TetrisConfig contains all configuration for the game.
type TetrisConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
	Render RenderConfig `yaml:"render"`
}

// BoardConfig defines the playfield grid, border included.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the simulation clock.
type TimingConfig struct {
	TickRate  int `yaml:"tick_rate"`  // Ticks per second
	GravityMS int `yaml:"gravity_ms"` // Milliseconds between gravity steps
}

// RenderConfig defines how the board is drawn.
type RenderConfig struct {
	Title         string `yaml:"title"`
	BorderGlyph   string `yaml:"border_glyph"`
	InteriorGlyph string `yaml:"interior_glyph"`
	BlockGlyph    string `yaml:"block_glyph"`
	ASCII         bool   `yaml:"ascii"`
}

// Validate checks that the configuration can drive the engine.
func (c TetrisConfig) Validate() error {
	if c.Board.Width < MinBoardWidth {
		return fmt.Errorf("config: board width must be >= %d, got %d", MinBoardWidth, c.Board.Width)
	}
	if c.Board.Height < MinBoardHeight {
		return fmt.Errorf("config: board height must be >= %d, got %d", MinBoardHeight, c.Board.Height)
	}
	if c.Board.Width > MaxBoardSize || c.Board.Height > MaxBoardSize {
		return fmt.Errorf("config: board must be at most %dx%d, got %dx%d",
			MaxBoardSize, MaxBoardSize, c.Board.Width, c.Board.Height)
	}
	if c.Timing.TickRate < 1 || c.Timing.TickRate > MaxTickRate {
		return fmt.Errorf("config: tick rate must be between 1 and %d, got %d", MaxTickRate, c.Timing.TickRate)
	}
	if c.Timing.GravityMS < 1 {
		return fmt.Errorf("config: gravity interval must be positive, got %dms", c.Timing.GravityMS)
	}

	glyphs := []struct {
		name  string
		value string
	}{
		{"border_glyph", c.Render.BorderGlyph},
		{"interior_glyph", c.Render.InteriorGlyph},
		{"block_glyph", c.Render.BlockGlyph},
	}
	for _, g := range glyphs {
		if n := utf8.RuneCountInString(g.value); n != 1 {
			return fmt.Errorf("config: %s must be a single character, got %q", g.name, g.value)
		}
	}
	return nil
}

// ToRuntime converts the YAML config into the engine's runtime config.
// The screen size and seed are left at their defaults for the caller to fill.
func (c TetrisConfig) ToRuntime() core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.BoardW = c.Board.Width
	rc.BoardH = c.Board.Height
	rc.TickRate = c.Timing.TickRate
	rc.GravityInterval = time.Duration(c.Timing.GravityMS) * time.Millisecond
	rc.Title = c.Render.Title
	rc.BorderGlyph = firstRune(c.Render.BorderGlyph, rc.BorderGlyph)
	rc.InteriorGlyph = firstRune(c.Render.InteriorGlyph, rc.InteriorGlyph)
	rc.BlockGlyph = firstRune(c.Render.BlockGlyph, rc.BlockGlyph)
	rc.ASCII = c.Render.ASCII
	return rc
}

func firstRune(s string, fallback rune) rune {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return fallback
	}
	return r
}
