// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris                   - Play (same as 'tetris play')
//	tetris play              - Play a game
//	tetris shapes            - Show the tetromino catalog
//	tetris config            - Print the effective configuration
//	tetris backends          - List the available renderers
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--fps <rate>        - Override the tick rate from the config
//	--seed <value>      - Set RNG seed for reproducible piece order
//	--log-file <path>   - Log destination (default: ~/.tetris/tetris.log)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `Tetris drops tetrominoes onto a bordered board. Steer them into place
and fill rows to clear them.

Available commands:
  play     - Play a game (default)
  shapes   - Show the tetromino catalog
  config   - Print the effective configuration
  backends - List the available renderers

Examples:
  tetris
  tetris play --backend console
  tetris play --seed 42 --fps 60
  tetris config --config ./my-tetris.yaml`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (default ~/.tetris/tetris.log)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(backendsCmd)
}
