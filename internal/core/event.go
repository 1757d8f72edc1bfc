package core

// Event is a single input occurrence delivered by a host loop.
// The set of implementations is closed: QuitEvent, KeyboardEvent, MouseButtonEvent,
// MouseMotionEvent and MouseScrollEvent.
type Event interface {
	isEvent()
}

// PressAction distinguishes press from release for keys and mouse buttons.
type PressAction int

const (
	Press PressAction = iota
	Release
)

// String returns a human-readable name for the action.
func (a PressAction) String() string {
	switch a {
	case Press:
		return "Press"
	case Release:
		return "Release"
	default:
		return "Unknown"
	}
}

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
	MouseX1
	MouseX2
)

// String returns a human-readable name for the button.
func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "Left"
	case MouseMiddle:
		return "Middle"
	case MouseRight:
		return "Right"
	case MouseX1:
		return "X1"
	case MouseX2:
		return "X2"
	default:
		return "Unknown"
	}
}

// QuitEvent asks the application to close.
type QuitEvent struct{}

// KeyboardEvent reports a key press or release. Repeat is set on auto-repeated presses.
type KeyboardEvent struct {
	Action PressAction
	Key    KeyCode
	Repeat bool
}

// MouseButtonEvent reports a button press or release at screen position (X, Y).
type MouseButtonEvent struct {
	Action PressAction
	Button MouseButton
	X, Y   int
}

// MouseMotionEvent reports the pointer's new screen position.
type MouseMotionEvent struct {
	X, Y int
}

// MouseScrollEvent reports wheel movement. Positive Y scrolls up.
type MouseScrollEvent struct {
	X, Y int
}

func (QuitEvent) isEvent()        {}
func (KeyboardEvent) isEvent()    {}
func (MouseButtonEvent) isEvent() {}
func (MouseMotionEvent) isEvent() {}
func (MouseScrollEvent) isEvent() {}

// Pos returns the pointer position as a vector.
func (e MouseButtonEvent) Pos() Vec2i {
	return Vec2i{X: e.X, Y: e.Y}
}

// Pos returns the pointer position as a vector.
func (e MouseMotionEvent) Pos() Vec2i {
	return Vec2i{X: e.X, Y: e.Y}
}
