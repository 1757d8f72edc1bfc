package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Poller collects the input that changed since the previous tick as events.
type Poller struct {
	cursor  core.Vec2i
	started bool
	keys    []ebiten.Key
}

// Poll returns this tick's events in a fixed order: window close, key
// releases, key presses and repeats, pointer motion, buttons, wheel.
func (p *Poller) Poll() []core.Event {
	var events []core.Event

	if ebiten.IsWindowBeingClosed() {
		events = append(events, core.QuitEvent{})
	}

	p.keys = inpututil.AppendJustReleasedKeys(p.keys[:0])
	for _, k := range p.keys {
		if code := KeyCodeOf(k); code != core.KeyOther {
			events = append(events, core.KeyboardEvent{Action: core.Release, Key: code})
		}
	}

	p.keys = inpututil.AppendPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		code := KeyCodeOf(k)
		if code == core.KeyOther {
			continue
		}
		switch d := inpututil.KeyPressDuration(k); {
		case d == 1:
			events = append(events, core.KeyboardEvent{Action: core.Press, Key: code})
		case isRepeat(d):
			events = append(events, core.KeyboardEvent{Action: core.Press, Key: code, Repeat: true})
		}
	}

	x, y := ebiten.CursorPosition()
	if cur := core.V(x, y); !p.started || cur != p.cursor {
		p.cursor, p.started = cur, true
		events = append(events, core.MouseMotionEvent{X: x, Y: y})
	}

	for _, b := range buttonTable {
		if inpututil.IsMouseButtonJustPressed(b.ebiten) {
			events = append(events, core.MouseButtonEvent{Action: core.Press, Button: b.button, X: x, Y: y})
		}
		if inpututil.IsMouseButtonJustReleased(b.ebiten) {
			events = append(events, core.MouseButtonEvent{Action: core.Release, Button: b.button, X: x, Y: y})
		}
	}

	if ev, ok := scrollEvent(ebiten.Wheel()); ok {
		events = append(events, ev)
	}

	return events
}
