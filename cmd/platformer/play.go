package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/controller"
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the platformer in the terminal, beginning at the main menu.

Controls (game):
  A/D, Left/Right  - Move
  Space            - Jump
  Esc/Q            - Back to menu

Controls (editor):
  Arrows/HJKL      - Move cursor       Mouse       - Point, drag to select
  WASD             - Pan               =/-, Wheel  - Zoom
  G                - Toggle block      C / X       - Add / remove
  V                - Start selection   P           - Place player
  T                - Save and play     Esc/Q       - Save and leave

Terminals do not report key releases: a key counts as released once it has
not been seen for terminal.key_release_ms.

Examples:
  platformer play
  platformer play --store sqlite --slot castle
  platformer play --level-file ./my-level.yaml`,
	Run: runPlay,
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if err := playTerminal(cfg, nil); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// playTerminal runs a terminal session. A non-nil start level skips the menu
// straight into a game; leaving that game returns to the menu.
func playTerminal(cfg config.Config, start *level.Level) error {
	logger, closeLog := fileLogger(cfg)
	defer closeLog()

	store, closeStore, err := openLevelStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	host := controller.NewHost(controller.NewFactory(cfg, store, logger))
	if start != nil {
		host.Apply(controller.StartGame{Level: start})
	}

	width, height := terminalSize()
	logger.Info("terminal session started", "cols", width, "rows", height, "store", cfg.Storage.Backend)
	return tui.Run(host, width, height, tui.OptionsFromConfig(cfg, logger))
}
