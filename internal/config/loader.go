package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const configFileName = "platformer.yaml"

// Load loads the platformer configuration.
// Search order: customPath -> ~/.platformer/configs/platformer.yaml ->
// ./configs/platformer.yaml -> embedded default -> hard-coded default.
// Keys missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	return load(customPath, userConfigPath(configFileName), filepath.Join("configs", configFileName))
}

func load(customPath, userPath, localPath string) (Config, error) {
	cfg := DefaultConfig()

	// Try custom path first
	if customPath != "" {
		path := ExpandHome(customPath)
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
		return cfg.normalized(), nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userPath, localPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate.normalized(), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPlatformerYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg.normalized(), nil
}

// normalized replaces values that would break the simulation with their defaults.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	if c.Physics.JumpTicks <= 0 {
		c.Physics.JumpTicks = def.Physics.JumpTicks
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		c.Player = def.Player
	}
	if c.Editor.BlockSize <= 0 {
		c.Editor.BlockSize = def.Editor.BlockSize
	}
	if c.Editor.ZoomSpeed <= 0 {
		c.Editor.ZoomSpeed = def.Editor.ZoomSpeed
	}
	if c.Editor.ScrollZoomSpeed <= 0 {
		c.Editor.ScrollZoomSpeed = def.Editor.ScrollZoomSpeed
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		c.Terminal.CellWidth = def.Terminal.CellWidth
		c.Terminal.CellHeight = def.Terminal.CellHeight
	}
	if c.Terminal.KeyReleaseMS <= 0 {
		c.Terminal.KeyReleaseMS = def.Terminal.KeyReleaseMS
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		c.Window.Width = def.Window.Width
		c.Window.Height = def.Window.Height
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = def.Storage.Backend
	}
	if c.Storage.Slot == "" {
		c.Storage.Slot = def.Storage.Slot
	}
	if c.Game.DefaultLevel == "" {
		c.Game.DefaultLevel = def.Game.DefaultLevel
	}
	return c
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "configs", filename)
}

// ExpandHome replaces a leading "~" with the user's home directory.
// Paths without "~" are returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
