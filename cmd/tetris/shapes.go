package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// cellWidth is the horizontal room given to each rotation in the listing.
const cellWidth = 6

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Show the tetromino catalog",
	Long:  `Draws every shape in the catalog in its four rotations, with its color and glyph.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		writeShapes(cmd.OutOrStdout())
	},
}

func writeShapes(w io.Writer) {
	fmt.Fprintln(w, "Tetrominoes:")
	fmt.Fprintln(w)

	for _, t := range tetris.Catalog() {
		fmt.Fprintf(w, "  %s  %-8s glyph %q\n", t.Shape(), t.Color(), t.Glyph())
		fmt.Fprintln(w, indent(tui.RenderScreen(drawRotations(t)), "    "))
		fmt.Fprintln(w)
	}
}

// drawRotations draws t and its three quarter turns side by side, each
// normalised so its top-left block sits in the corner of its cell.
func drawRotations(t tetris.Tetromino) *core.Screen {
	s := core.NewScreen(4*cellWidth, tetris.BlockCount)

	rot := t
	for i := range 4 {
		blocks := rot.Elements()
		minX, minY := blocks[0].X, blocks[0].Y
		for _, b := range blocks[1:] {
			minX = min(minX, b.X)
			minY = min(minY, b.Y)
		}
		for _, b := range blocks {
			s.DrawCell(i*cellWidth+int(b.X-minX), int(b.Y-minY), t.Glyph(), t.Color())
		}
		rot = rot.Rotate(tetris.RotationStep)
	}
	return s
}

func indent(text, prefix string) string {
	return prefix + strings.ReplaceAll(text, "\n", "\n"+prefix)
}
