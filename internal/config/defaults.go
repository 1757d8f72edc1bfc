package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultConfig returns the hard-coded configuration used when no YAML is available.
func DefaultConfig() Config {
	return Config{
		TickRate: 60,
		Physics: PhysicsConfig{
			Gravity:      2.0,
			MaxFallSpeed: 30.0,
			JumpSpeed:    -30.0,
			JumpTicks:    20,
			MoveAccel:    2.0,
			MaxMoveSpeed: 10.0,
		},
		Player: PlayerConfig{
			Width:  48,
			Height: 96,
		},
		View: ViewConfig{
			Border: 200,
		},
		Editor: EditorConfig{
			BlockSize:       64,
			ZoomSpeed:       1.02,
			ScrollZoomSpeed: 1.1,
			PanSpeed:        10,
		},
		Terminal: TerminalConfig{
			CellWidth:    16,
			CellHeight:   32,
			KeyReleaseMS: 200,
		},
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "Platformer",
		},
		Storage: StorageConfig{
			Backend:   BackendFile,
			LevelFile: "~/.platformer/level.yaml",
			DBPath:    "~/.platformer/levels.db",
			Slot:      "default",
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleMinutes: 30,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.platformer/platformer.log",
		},
		Game: GameConfig{
			DefaultLevel: "default",
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultPlatformerYAML
}
