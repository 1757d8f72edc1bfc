package controller

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Host owns the active screen and the stack of suspended ones.
// It is driven by a platform loop: one Frame per polling batch, then Render.
// A Host is not safe for concurrent use.
type Host struct {
	screens Screens
	active  Controller
	stack   []Controller
	running bool
}

// NewHost creates a host with the menu active and an empty stack.
func NewHost(screens Screens) *Host {
	return &Host{
		screens: screens,
		active:  screens.Menu(),
		running: true,
	}
}

// Running reports whether Exit has not been requested yet.
func (h *Host) Running() bool {
	return h.running
}

// Active returns the screen currently receiving events.
func (h *Host) Active() Controller {
	return h.active
}

// Depth returns the number of suspended screens.
func (h *Host) Depth() int {
	return len(h.stack)
}

// Frame runs one frame: every event is handled by the screen that is active when the
// frame starts, the collected statuses are applied in order, and the active screen
// ticks once if the host is still running.
func (h *Host) Frame(events []core.Event) {
	if !h.running {
		return
	}

	statuses := make([]Status, 0, len(events))
	for _, ev := range events {
		statuses = append(statuses, h.active.HandleEvent(ev))
	}

	for _, s := range statuses {
		h.Apply(s)
		if !h.running {
			return
		}
	}

	h.active.Tick()
}

// Apply performs a single transition.
// Back with an empty stack means a screen popped more than it pushed; it panics.
func (h *Host) Apply(s Status) {
	switch s := s.(type) {
	case Continue:
	case Exit:
		h.running = false
	case StartGame:
		h.push(h.screens.InGame(s.Level))
	case Back:
		h.pop()
	case StartLevelEditor:
		h.push(h.screens.LevelEditor())
	default:
		// Unknown statuses are treated as Continue.
	}
}

func (h *Host) push(next Controller) {
	h.stack = append(h.stack, h.active)
	h.active = next
}

func (h *Host) pop() {
	if len(h.stack) == 0 {
		panic("controller: Back requested with an empty screen stack")
	}
	last := len(h.stack) - 1
	h.active = h.stack[last]
	h.stack[last] = nil
	h.stack = h.stack[:last]
}

// Render clears the renderer, draws the active screen and presents the result.
// On error nothing is presented; the host itself stays usable.
func (h *Host) Render(r core.Renderer) error {
	if err := r.Clear(); err != nil {
		return fmt.Errorf("controller: clear: %w", err)
	}
	if err := h.active.Render(r); err != nil {
		return fmt.Errorf("controller: render: %w", err)
	}
	r.Present()
	return nil
}
