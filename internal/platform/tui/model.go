package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/controller"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Options configures a terminal session.
type Options struct {
	TickRate   int
	Cell       core.Vec2i
	KeyRelease time.Duration

	// ScreenshotDir receives Ctrl+S captures. Empty means ~/.platformer/screenshots.
	ScreenshotDir string
	Logger        *log.Logger
}

// OptionsFromConfig builds session options from the loaded configuration.
func OptionsFromConfig(cfg config.Config, logger *log.Logger) Options {
	return Options{
		TickRate:   cfg.TickRate,
		Cell:       core.V(cfg.Terminal.CellWidth, cfg.Terminal.CellHeight),
		KeyRelease: cfg.Terminal.KeyRelease(),
		Logger:     logger,
	}
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model driving a controller.Host.
// Key and mouse messages are queued and delivered as one batch per tick.
type Model struct {
	host     *controller.Host
	renderer *Renderer
	hold     *KeyHold
	mouse    *MouseMapper
	opts     Options
	keys     GlobalKeyMap
	help     help.Model
	pending  []core.Event
	width    int
	height   int
	quitting bool
}

// NewModel creates a model for a terminal of cols x rows cells.
func NewModel(host *controller.Host, cols, rows int, opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Cell.X <= 0 || opts.Cell.Y <= 0 {
		opts.Cell = core.V(16, 32)
	}
	if opts.KeyRelease <= 0 {
		opts.KeyRelease = 200 * time.Millisecond
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		host:     host,
		renderer: NewRenderer(cols, rows, opts.Cell),
		hold:     NewKeyHold(opts.KeyRelease),
		mouse:    NewMouseMapper(opts.Cell),
		opts:     opts,
		keys:     DefaultGlobalKeyMap(),
		help:     h,
		width:    cols,
		height:   rows,
	}
	m.layout()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.pending = append(m.pending, m.mouse.Events(msg)...)
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.pending = append(m.pending, core.QuitEvent{})
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	k := KeyCodeOf(msg)
	if k == core.KeyOther {
		return m, nil
	}
	m.pending = append(m.pending, m.hold.Press(k, time.Now()))
	return m, nil
}

// handleTick runs one host frame over the queued events.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	events := append(m.hold.Expire(now), m.pending...)
	m.pending = nil

	m.host.Frame(events)
	if !m.host.Running() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.opts.TickRate)
}

// layout gives the renderer every row not taken by the help view.
func (m *Model) layout() {
	rows := m.height - lipgloss.Height(m.help.View(m.keys))
	m.renderer.Resize(max(m.width, 0), max(rows, 0))
}

// saveScreenshot saves the glyphs of the last frame to a file.
func (m *Model) saveScreenshot() {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		dir = config.ExpandHome(filepath.Join("~", ".platformer", "screenshots"))
	}
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("platformer_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.renderer.Screen().String()), 0o600); err != nil {
		m.opts.Logger.Warn("failed to save screenshot", "path", path, "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the active screen to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if err := m.host.Render(m.renderer); err != nil {
		m.opts.Logger.Error("render failed", "error", err)
	}

	return RenderScreen(m.renderer.Screen()) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Quitting reports whether the host has stopped.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for the host and blocks until it exits.
func Run(host *controller.Host, cols, rows int, opts Options) error {
	model := NewModel(host, cols, rows, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
