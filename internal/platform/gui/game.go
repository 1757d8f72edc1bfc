// Package gui hosts the screens in a desktop window through Ebitengine.
package gui

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/controller"
)

// Game adapts a controller.Host to ebiten.Game: one host frame per update tick.
type Game struct {
	host     *controller.Host
	renderer *Renderer
	poller   *Poller
	logger   *log.Logger
}

// NewGame creates the window adapter for host.
func NewGame(host *controller.Host, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		host:     host,
		renderer: NewRenderer(),
		poller:   &Poller{},
		logger:   logger,
	}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.host.Frame(g.poller.Poll())
	if !g.host.Running() {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Bind(screen)
	if err := g.host.Render(g.renderer); err != nil {
		g.logger.Error("render failed", "error", err)
	}
}

// Layout implements ebiten.Game. One screen unit is one device-independent pixel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until the host stops or the window closes.
func Run(host *controller.Host, cfg config.Config, logger *log.Logger) error {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.TickRate)

	return ebiten.RunGame(NewGame(host, logger))
}
