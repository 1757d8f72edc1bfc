// Package config provides YAML-based configuration loading for the platformer:
// physics tuning, camera and editor behaviour, terminal and window hosts, storage
// and logging.
package config

import (
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/physics"
)

// Config is the complete application configuration.
type Config struct {
	TickRate int            `yaml:"tick_rate"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Player   PlayerConfig   `yaml:"player"`
	View     ViewConfig     `yaml:"view"`
	Editor   EditorConfig   `yaml:"editor"`
	Terminal TerminalConfig `yaml:"terminal"`
	Window   WindowConfig   `yaml:"window"`
	Storage  StorageConfig  `yaml:"storage"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Game     GameConfig     `yaml:"game"`
}

// PhysicsConfig defines the player simulation constants, in world units per tick.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	JumpSpeed    float64 `yaml:"jump_speed"`
	JumpTicks    int     `yaml:"jump_ticks"`
	MoveAccel    float64 `yaml:"move_accel"`
	MaxMoveSpeed float64 `yaml:"max_move_speed"`
}

// PlayerConfig defines the player body.
type PlayerConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ViewConfig defines how the in-game camera follows the player.
type ViewConfig struct {
	Border int `yaml:"border"` // Minimum distance kept between the player and a viewport edge
}

// EditorConfig defines the level editor grid and camera controls.
type EditorConfig struct {
	BlockSize       int     `yaml:"block_size"`
	ZoomSpeed       float64 `yaml:"zoom_speed"`        // Per-tick multiplier while a zoom key is held
	ScrollZoomSpeed float64 `yaml:"scroll_zoom_speed"` // Multiplier per wheel notch
	PanSpeed        float64 `yaml:"pan_speed"`         // Screen units per tick while a pan key is held
}

// TerminalConfig defines the virtual pixel grid of the terminal host.
type TerminalConfig struct {
	CellWidth    int `yaml:"cell_width"`
	CellHeight   int `yaml:"cell_height"`
	KeyReleaseMS int `yaml:"key_release_ms"` // Silence after which a held key counts as released
}

// WindowConfig defines the desktop window host.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// StorageConfig selects where the edited level is persisted.
type StorageConfig struct {
	Backend   string `yaml:"backend"` // "file" or "sqlite"
	LevelFile string `yaml:"level_file"`
	DBPath    string `yaml:"db_path"`
	Slot      string `yaml:"slot"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address     string `yaml:"address"`
	HostKeyPath string `yaml:"host_key_path"`
	IdleMinutes int    `yaml:"idle_minutes"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// GameConfig defines gameplay defaults.
type GameConfig struct {
	DefaultLevel string `yaml:"default_level"` // Built-in layout used when a game starts without a level
}

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// PhysicsParams converts the physics and player sections into simulation parameters.
func (c Config) PhysicsParams() physics.Params {
	return physics.Params{
		Gravity:      c.Physics.Gravity,
		MaxFallSpeed: c.Physics.MaxFallSpeed,
		JumpSpeed:    c.Physics.JumpSpeed,
		JumpTicks:    c.Physics.JumpTicks,
		MoveAccel:    c.Physics.MoveAccel,
		MaxMoveSpeed: c.Physics.MaxMoveSpeed,
		Size:         core.V(c.Player.Width, c.Player.Height),
	}
}

// KeyRelease returns the key release timeout as a duration.
func (c TerminalConfig) KeyRelease() time.Duration {
	return time.Duration(c.KeyReleaseMS) * time.Millisecond
}

// IdleTimeout returns the SSH idle timeout as a duration.
func (c ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleMinutes) * time.Minute
}
