package tui

import (
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// GlobalKeyMap holds the bindings handled by the terminal host itself rather
// than by the screens.
type GlobalKeyMap struct {
	Quit       key.Binding
	Screenshot key.Binding
	Help       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GlobalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Screenshot, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k GlobalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Quit, k.Screenshot, k.Help},
		{
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc/q", "back")),
			key.NewBinding(key.WithKeys("a", "d"), key.WithHelp("a/d", "run")),
			key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "jump")),
		},
		{
			key.NewBinding(key.WithKeys("h", "j", "k", "l"), key.WithHelp("hjkl", "cursor")),
			key.NewBinding(key.WithKeys("c", "x", "g"), key.WithHelp("c/x/g", "add/remove/toggle")),
			key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "select")),
			key.NewBinding(key.WithKeys("p", "t"), key.WithHelp("p/t", "spawn/play")),
		},
	}
}

// DefaultGlobalKeyMap returns default key bindings.
func DefaultGlobalKeyMap() GlobalKeyMap {
	return GlobalKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
	}
}

// KeyCodeOf translates a Bubble Tea key message into a backend-independent key.
func KeyCodeOf(msg tea.KeyMsg) core.KeyCode {
	switch msg.Type {
	case tea.KeyEsc:
		return core.KeyEscape
	case tea.KeyEnter:
		return core.KeyEnter
	case tea.KeySpace:
		return core.KeySpace
	case tea.KeyUp:
		return core.KeyUp
	case tea.KeyDown:
		return core.KeyDown
	case tea.KeyLeft:
		return core.KeyLeft
	case tea.KeyRight:
		return core.KeyRight
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return core.KeyFromRune(msg.Runes[0])
		}
	}
	return core.KeyOther
}

// KeyHold turns the terminal's press-only key stream into press, repeat and
// release events. A key counts as released once no press for it arrived within
// the release delay.
type KeyHold struct {
	release time.Duration
	held    map[core.KeyCode]time.Time
}

// NewKeyHold creates a tracker with the given release delay.
func NewKeyHold(release time.Duration) *KeyHold {
	return &KeyHold{release: release, held: make(map[core.KeyCode]time.Time)}
}

// Press records a key press at now. The first press of a held key is a plain
// press; later ones are repeats.
func (h *KeyHold) Press(k core.KeyCode, now time.Time) core.KeyboardEvent {
	_, repeat := h.held[k]
	h.held[k] = now
	return core.KeyboardEvent{Action: core.Press, Key: k, Repeat: repeat}
}

// Expire releases every key that has not been pressed since now minus the
// release delay. Events are ordered by key code.
func (h *KeyHold) Expire(now time.Time) []core.Event {
	var expired []core.KeyCode
	for k, last := range h.held {
		if now.Sub(last) >= h.release {
			expired = append(expired, k)
		}
	}
	slices.Sort(expired)

	events := make([]core.Event, 0, len(expired))
	for _, k := range expired {
		delete(h.held, k)
		events = append(events, core.KeyboardEvent{Action: core.Release, Key: k})
	}
	return events
}

// Held reports whether k is currently considered down.
func (h *KeyHold) Held(k core.KeyCode) bool {
	_, ok := h.held[k]
	return ok
}

// MouseMapper converts terminal cell coordinates into virtual pixel events.
type MouseMapper struct {
	cell core.Vec2i
	last core.MouseButton
	down bool
}

// NewMouseMapper creates a mapper for cells of the given pixel size.
func NewMouseMapper(cell core.Vec2i) *MouseMapper {
	return &MouseMapper{cell: cell}
}

// CellCentre returns the virtual pixel at the centre of terminal cell (cx, cy).
func (m *MouseMapper) CellCentre(cx, cy int) core.Vec2i {
	return core.V(cx*m.cell.X+m.cell.X/2, cy*m.cell.Y+m.cell.Y/2)
}

// Events translates one mouse message. Wheel messages report the pointer
// position first so that pivot zoom works without a preceding motion.
func (m *MouseMapper) Events(msg tea.MouseMsg) []core.Event {
	p := m.CellCentre(msg.X, msg.Y)
	motion := core.MouseMotionEvent{X: p.X, Y: p.Y}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return []core.Event{motion, core.MouseScrollEvent{Y: 1}}
	case tea.MouseButtonWheelDown:
		return []core.Event{motion, core.MouseScrollEvent{Y: -1}}
	case tea.MouseButtonWheelLeft:
		return []core.Event{motion, core.MouseScrollEvent{X: -1}}
	case tea.MouseButtonWheelRight:
		return []core.Event{motion, core.MouseScrollEvent{X: 1}}
	}

	switch msg.Action {
	case tea.MouseActionPress:
		b, ok := mouseButton(msg.Button)
		if !ok {
			return nil
		}
		m.last, m.down = b, true
		return []core.Event{core.MouseButtonEvent{Action: core.Press, Button: b, X: p.X, Y: p.Y}}
	case tea.MouseActionRelease:
		b, ok := mouseButton(msg.Button)
		if !ok {
			// X10-style releases do not say which button went up.
			if !m.down {
				return nil
			}
			b = m.last
		}
		m.down = false
		return []core.Event{core.MouseButtonEvent{Action: core.Release, Button: b, X: p.X, Y: p.Y}}
	case tea.MouseActionMotion:
		return []core.Event{motion}
	}
	return nil
}

func mouseButton(b tea.MouseButton) (core.MouseButton, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return core.MouseLeft, true
	case tea.MouseButtonMiddle:
		return core.MouseMiddle, true
	case tea.MouseButtonRight:
		return core.MouseRight, true
	case tea.MouseButtonBackward:
		return core.MouseX1, true
	case tea.MouseButtonForward:
		return core.MouseX2, true
	default:
		return 0, false
	}
}
