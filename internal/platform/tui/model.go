package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Model is the Bubble Tea model for a tetris session.
type Model struct {
	engine   *tetris.Engine
	display  *screenDisplay
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	shotDir  string
	frame    time.Duration
	next     time.Time // deadline of the next tick
	width    int
	height   int
	quitting bool
}

// NewModel creates the engine, starts it and returns a model ready to run.
func NewModel(cfg core.RuntimeConfig, opts registry.Options) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	display := newScreenDisplay(cfg.BoardW, cfg.BoardH)
	engineOpts := append([]tetris.Option{tetris.WithLogger(logger)}, opts.EngineOptions...)
	engine := tetris.New(cfg, display, engineOpts...)

	now := time.Now()
	if err := engine.Start(now); err != nil {
		return Model{}, err
	}

	return Model{
		engine:  engine,
		display: display,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger,
		shotDir: opts.ScreenshotDir,
		frame:   cfg.FrameDuration(),
		next:    now.Add(cfg.FrameDuration()),
	}, nil
}

// Init sets the window title and starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.display.title),
		tickCmd(m.next),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else if path != "" {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.display.input) {
		m.quitting = true
		snap := m.engine.Snapshot()
		m.logger.Info("quit", "ticks", snap.Tick, "lines", snap.Lines, "pieces", snap.Locked)
		return m, tea.Quit
	}
	return m, nil
}

// handleTick advances the engine by one frame and schedules the next one.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.engine.Tick(now)
	// Release latched keys for the next frame
	m.display.Present()

	m.next = nextDeadline(m.next, now, m.frame)
	return m, tickCmd(m.next)
}

// saveScreenshot writes the board as currently drawn, without colors, to a
// timestamped text file.
func (m Model) saveScreenshot() (string, error) {
	if m.shotDir == "" {
		return "", nil
	}
	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: create screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(m.shotDir, fmt.Sprintf("tetris_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.display.screen.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}
	return path, nil
}

// View renders the board, side panel and help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	board := RenderScreen(m.display.screen)
	body := lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", m.renderPanel())

	var b strings.Builder
	if !m.fits(body) {
		b.WriteString(warnStyle.Render("terminal too small for the board"))
		b.WriteString("\n")
	}
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) renderPanel() string {
	snap := m.engine.Snapshot()

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.display.title))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Lines "), valueStyle.Render(fmt.Sprint(snap.Lines)))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Pieces"), valueStyle.Render(fmt.Sprint(snap.Locked)))
	fmt.Fprintf(&b, "%s %s", labelStyle.Render("Shape "), valueStyle.Render(string(snap.Shape)))
	return panelStyle.Render(b.String())
}

// fits reports whether body and the help line fit the last known window
// size. Before the first WindowSizeMsg the size is unknown and assumed to fit.
func (m Model) fits(body string) bool {
	if m.width == 0 || m.height == 0 {
		return true
	}
	return lipgloss.Width(body) <= m.width && lipgloss.Height(body)+1 <= m.height
}

func init() {
	registry.Register("tea", "Bubble Tea renderer with side panel and help line", Run)
}

// Run starts the Bubble Tea program for a new game. Cancelling ctx stops
// the program.
func Run(ctx context.Context, cfg core.RuntimeConfig, opts registry.Options) error {
	model, err := NewModel(cfg, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
