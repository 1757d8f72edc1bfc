package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/controller"
	"github.com/vovakirdan/tui-platformer/internal/platform/gui"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play in a desktop window",
	Long: `Start the platformer in a desktop window using the same screens, level
storage and controls as the terminal version. Keys auto-repeat and report
real releases here.

Examples:
  platformer gui
  platformer gui --fps 120
  platformer gui --store sqlite --slot castle`,
	Run: runGUI,
}

func runGUI(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := newLogger(os.Stderr, cfg)

	store, closeStore, err := openLevelStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening level storage: %v\n", err)
		os.Exit(1)
	}

	host := controller.NewHost(controller.NewFactory(cfg, store, logger))
	logger.Info("window session started", "size", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height))

	runErr := gui.Run(host, cfg, logger)
	closeStore()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
