package gui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Key repeat timing in ticks, matching common desktop defaults at 60 TPS.
const (
	repeatDelay    = 30
	repeatInterval = 3
)

var keyTable = map[ebiten.Key]core.KeyCode{
	ebiten.KeyEscape:         core.KeyEscape,
	ebiten.KeySpace:          core.KeySpace,
	ebiten.KeyEnter:          core.KeyEnter,
	ebiten.KeyNumpadEnter:    core.KeyEnter,
	ebiten.KeyArrowLeft:      core.KeyLeft,
	ebiten.KeyArrowRight:     core.KeyRight,
	ebiten.KeyArrowUp:        core.KeyUp,
	ebiten.KeyArrowDown:      core.KeyDown,
	ebiten.KeyEqual:          core.KeyEqual,
	ebiten.KeyMinus:          core.KeyMinus,
	ebiten.KeyNumpadAdd:      core.KeyPlus,
	ebiten.KeyNumpadSubtract: core.KeyMinus,
}

func init() {
	for k := ebiten.KeyA; k <= ebiten.KeyZ; k++ {
		keyTable[k] = core.KeyA + core.KeyCode(k-ebiten.KeyA)
	}
}

// KeyCodeOf maps an ebiten key to a backend-independent key.
func KeyCodeOf(k ebiten.Key) core.KeyCode {
	if code, ok := keyTable[k]; ok {
		return code
	}
	return core.KeyOther
}

// isRepeat reports whether a key held for d ticks produces a repeat this tick.
func isRepeat(d int) bool {
	return d > repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

var buttonTable = []struct {
	ebiten ebiten.MouseButton
	button core.MouseButton
}{
	{ebiten.MouseButtonLeft, core.MouseLeft},
	{ebiten.MouseButtonMiddle, core.MouseMiddle},
	{ebiten.MouseButtonRight, core.MouseRight},
	{ebiten.MouseButton3, core.MouseX1},
	{ebiten.MouseButton4, core.MouseX2},
}

// scrollEvent converts wheel offsets into a scroll event with unit steps.
// ok is false when the wheel did not move.
func scrollEvent(dx, dy float64) (core.MouseScrollEvent, bool) {
	ev := core.MouseScrollEvent{X: sign(dx), Y: sign(dy)}
	return ev, ev.X != 0 || ev.Y != 0
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
