package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  14,
			Height: 20,
		},
		Timing: TimingConfig{
			TickRate:  30,
			GravityMS: 250,
		},
		Render: RenderConfig{
			Title:         "TETRIS",
			BorderGlyph:   "█",
			InteriorGlyph: " ",
			BlockGlyph:    "█",
			ASCII:         false,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
