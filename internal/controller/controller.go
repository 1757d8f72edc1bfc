// Package controller implements the interactive screens (menu, game, level editor)
// and the Host that stacks them and applies their transition requests.
// It has no dependency on a concrete terminal or window backend: hosts feed it
// core.Events and hand it a core.Renderer.
package controller

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/level"
)

// Controller is one interactive screen.
type Controller interface {
	// HandleEvent consumes one input event and returns the transition it requests.
	HandleEvent(ev core.Event) Status

	// Tick advances the screen's simulation by one fixed step.
	Tick()

	// Render draws the screen. The renderer is cleared before and presented after.
	Render(r core.Renderer) error
}

// Screens builds the screens a Host switches between.
type Screens interface {
	Menu() Controller
	InGame(l *level.Level) Controller
	LevelEditor() Controller
}
