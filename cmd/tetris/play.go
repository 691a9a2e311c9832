package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"

	// Import backends to register them
	_ "github.com/vovakirdan/tui-tetris/internal/platform/console"
	_ "github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

const defaultBackend = "tea"

// hudWidth is the room the side panel needs next to the board.
const hudWidth = 24

var flagBackend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of tetris.

Controls:
  Left/Right  - Move
  Down        - Soft drop
  Up          - Rotate
  Space       - Hard drop
  Ctrl+S      - Save a text screenshot (tea backend)
  Q/Esc       - Quit

Backends (see 'tetris backends'):
  tea      - Bubble Tea renderer (default)
  console  - Direct tcell renderer

Examples:
  tetris play
  tetris play --backend console
  tetris play --seed 42
  tetris play --config ./my-tetris.yaml --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagBackend, "backend", defaultBackend, "Renderer: "+backendNames())
}

func runPlay(cmd *cobra.Command, args []string) error {
	run, err := registry.Get(flagBackend)
	if err != nil {
		return fmt.Errorf("%w (available: %s)", err, backendNames())
	}

	cfg, src, err := loadConfig()
	if err != nil {
		return err
	}

	logger, logFile, err := openLogger()
	if err != nil {
		return err
	}
	defer logFile.Close()

	rc := runtimeConfig(cfg)
	// Use time-based seed if not specified
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	checkTerminal(logger, rc)

	logger.Info("starting",
		"backend", flagBackend,
		"config", src,
		"board", fmt.Sprintf("%dx%d", rc.BoardW, rc.BoardH),
		"tick_rate", rc.TickRate,
		"seed", rc.Seed,
	)

	ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = run(ctx, rc, registry.Options{
		Logger:        logger,
		ScreenshotDir: screenshotDir(),
	})
	if err != nil {
		logger.Error("game ended with error", "error", err)
		return err
	}
	logger.Info("game ended")
	return nil
}

// checkTerminal warns when the board and side panel will not fit the
// terminal.
func checkTerminal(logger *log.Logger, rc core.RuntimeConfig) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		logger.Debug("terminal size unavailable", "error", err)
		return
	}
	if !fitsTerminal(rc, w, h) {
		logger.Warn("terminal smaller than the board",
			"terminal", fmt.Sprintf("%dx%d", w, h),
			"board", fmt.Sprintf("%dx%d", rc.BoardW, rc.BoardH),
		)
	}
}

// fitsTerminal reports whether a w x h terminal holds the board, the side
// panel and the help line.
func fitsTerminal(rc core.RuntimeConfig, w, h int) bool {
	return w >= rc.BoardW+hudWidth && h >= rc.BoardH+1
}

// backendNames lists the registered backends, e.g. "console, tea".
func backendNames() string {
	var names []string
	for _, b := range registry.List() {
		names = append(names, b.Name)
	}
	return strings.Join(names, ", ")
}

func screenshotDir() string {
	dir := config.UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "screenshots")
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
