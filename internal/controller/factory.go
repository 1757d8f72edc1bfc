package controller

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// Factory builds the concrete screens from configuration and collaborators.
type Factory struct {
	Config config.Config
	Store  level.Store
	Logger *log.Logger
}

// NewFactory creates a factory. A nil logger discards output and a nil store keeps
// the edited level in memory only.
func NewFactory(cfg config.Config, store level.Store, logger *log.Logger) *Factory {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if store == nil {
		store = &level.MemoryStore{}
	}
	return &Factory{Config: cfg, Store: store, Logger: logger}
}

// Menu builds the main menu.
func (f *Factory) Menu() Controller {
	return NewMenu()
}

// InGame builds a game over l, or over the configured built-in layout when l is nil.
func (f *Factory) InGame(l *level.Level) Controller {
	var lvl level.Level
	if l != nil {
		lvl = l.Clone()
	} else {
		var err error
		lvl, err = registry.Create(f.Config.Game.DefaultLevel)
		if err != nil {
			f.Logger.Warn("unknown default level, using built-in", "level", f.Config.Game.DefaultLevel, "error", err)
			lvl, _ = registry.Create(registry.DefaultLayout)
		}
	}
	f.Logger.Debug("starting game", "blocks", len(lvl.Blocks), "spawn", lvl.PlayerInitialPos)
	return NewInGame(lvl, f.Config.PhysicsParams(), f.Config.View.Border)
}

// LevelEditor builds an editor over the persisted level, or an empty one when nothing
// is persisted or loading fails.
func (f *Factory) LevelEditor() Controller {
	l, err := f.Store.Load()
	if err != nil {
		f.Logger.Warn("failed to load level, starting empty", "error", err)
		l = nil
	}
	return NewLevelEditor(l, EditorOptions{
		Editor:     f.Config.Editor,
		PlayerSize: f.Config.PhysicsParams().Size,
		Store:      f.Store,
		Logger:     f.Logger,
	})
}
