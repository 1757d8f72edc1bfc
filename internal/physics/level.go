// Package physics implements the deterministic platformer simulation: axis-separated
// movement against static rectangles, jump timing and the player body.
// All functions are pure with respect to their inputs; there is no randomness and no
// dependency on wall-clock time.
package physics

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// LevelController owns the static obstacles of a level and sweeps bodies against them.
type LevelController struct {
	blocks []core.Recti
}

// NewLevelController creates a controller over a copy of blocks.
func NewLevelController(blocks []core.Recti) *LevelController {
	owned := make([]core.Recti, len(blocks))
	copy(owned, blocks)
	return &LevelController{blocks: owned}
}

// Blocks returns the obstacles. The slice must not be modified.
func (l *LevelController) Blocks() []core.Recti {
	return l.blocks
}

// MoveRect moves a body of the given size by *speed along axis, stopping at the near
// face of the first obstacle in the way.
//
// Obstacles that already intersect the body's current (truncated) rect are ignored.
// When any obstacle is hit, *speed is set to zero and the contact direction is
// returned with ok = true. *pos always receives the final position.
func (l *LevelController) MoveRect(axis core.Axis, speed *float64, pos *core.Vec2d, size core.Vec2i) (dir core.Dir, ok bool) {
	target := pos.With(axis, pos.Get(axis)+*speed)
	initial := core.Recti{Pos: core.Cast[int](*pos), Size: size}

	for _, block := range l.blocks {
		if block.Intersects(initial) {
			continue
		}
		if !block.Intersects(core.Recti{Pos: core.Cast[int](target), Size: size}) {
			continue
		}

		if *speed > 0 {
			target.Set(axis, float64(block.Pos.Get(axis)-size.Get(axis)))
			dir = core.AxisDir(axis, true)
		} else {
			target.Set(axis, float64(block.Pos.Get(axis)+block.Size.Get(axis)))
			dir = core.AxisDir(axis, false)
		}
		ok = true
	}

	if ok {
		*speed = 0
	}
	*pos = target
	return dir, ok
}
