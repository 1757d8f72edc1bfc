package core

// KeyCode is a backend-independent physical key.
type KeyCode int

const (
	KeyOther KeyCode = iota
	KeyEscape
	KeySpace
	KeyEnter
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPlus
	KeyMinus
	KeyEqual
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

// KeyFromRune maps a printable character to its key. Letters are case-insensitive.
func KeyFromRune(r rune) KeyCode {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + KeyCode(r-'a')
	case r >= 'A' && r <= 'Z':
		return KeyA + KeyCode(r-'A')
	}
	switch r {
	case ' ':
		return KeySpace
	case '+':
		return KeyPlus
	case '-':
		return KeyMinus
	case '=':
		return KeyEqual
	default:
		return KeyOther
	}
}

// String returns a human-readable name for the key.
func (k KeyCode) String() string {
	if k >= KeyA && k <= KeyZ {
		return string(rune('A' + int(k-KeyA)))
	}
	switch k {
	case KeyEscape:
		return "Escape"
	case KeySpace:
		return "Space"
	case KeyEnter:
		return "Enter"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyPlus:
		return "Plus"
	case KeyMinus:
		return "Minus"
	case KeyEqual:
		return "Equal"
	default:
		return "Other"
	}
}

// KeyMapping is a many-to-one table from keys to a screen-specific action type.
// Each screen builds its own instance at construction.
type KeyMapping[A comparable] struct {
	bindings map[KeyCode]A
}

// NewKeyMapping creates an empty mapping.
func NewKeyMapping[A comparable]() *KeyMapping[A] {
	return &KeyMapping[A]{bindings: make(map[KeyCode]A)}
}

// Add binds every key in keys to action. A key bound twice keeps the latest action.
func (m *KeyMapping[A]) Add(action A, keys ...KeyCode) *KeyMapping[A] {
	for _, k := range keys {
		m.bindings[k] = action
	}
	return m
}

// Action returns the action bound to key.
func (m *KeyMapping[A]) Action(key KeyCode) (A, bool) {
	a, ok := m.bindings[key]
	return a, ok
}

// Keys returns every key bound to action, in KeyCode order.
func (m *KeyMapping[A]) Keys(action A) []KeyCode {
	var keys []KeyCode
	for k := KeyOther; k <= KeyZ; k++ {
		if a, ok := m.bindings[k]; ok && a == action {
			keys = append(keys, k)
		}
	}
	return keys
}
