package physics

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Params are the tunable constants of the player simulation, in world units per tick.
type Params struct {
	Gravity      float64    // downward acceleration
	MaxFallSpeed float64    // terminal vertical speed
	JumpSpeed    float64    // vertical speed while a jump accelerates (negative is up)
	JumpTicks    int        // length of the launch phase
	MoveAccel    float64    // horizontal acceleration and deceleration
	MaxMoveSpeed float64    // horizontal speed cap
	Size         core.Vec2i // body size
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		Gravity:      2.0,
		MaxFallSpeed: 30.0,
		JumpSpeed:    -30.0,
		JumpTicks:    DefaultJumpTicks,
		MoveAccel:    2.0,
		MaxMoveSpeed: 10.0,
		Size:         core.V(48, 96),
	}
}

// PlayerController simulates the player body: gravity, jumping and horizontal running.
type PlayerController struct {
	params Params
	jump   *JumpController

	pos   core.Vec2d
	speed core.Vec2d

	movingLeft     bool
	movingRight    bool
	touchingGround bool
}

// NewPlayerController creates a player at pos with zero speed.
func NewPlayerController(pos core.Vec2d, params Params) *PlayerController {
	return &PlayerController{
		params: params,
		jump:   NewJumpController(params.JumpTicks),
		pos:    pos,
	}
}

// SetJumping starts a jump request when pressed and cancels it when released.
func (p *PlayerController) SetJumping(jumping bool) {
	if jumping {
		p.jump.StartJumping()
		return
	}
	p.jump.StopJumping()
}

// SetMovingLeft updates the held state of the left direction.
func (p *PlayerController) SetMovingLeft(moving bool) {
	p.movingLeft = moving
}

// SetMovingRight updates the held state of the right direction.
func (p *PlayerController) SetMovingRight(moving bool) {
	p.movingRight = moving
}

// Tick advances the body one step: the vertical axis is resolved first, then the
// horizontal one.
func (p *PlayerController) Tick(level *LevelController) {
	p.tickVertical(level)
	p.tickHorizontal(level)
}

func (p *PlayerController) tickVertical(level *LevelController) {
	p.speed.Y = min(p.params.MaxFallSpeed, p.speed.Y+p.params.Gravity)
	if p.jump.IsAccelerating(p.touchingGround) {
		p.speed.Y = p.params.JumpSpeed
	}

	dir, hit := level.MoveRect(core.AxisY, &p.speed.Y, &p.pos, p.params.Size)
	p.touchingGround = hit && dir == core.DirDown
	if hit {
		p.jump.StopJumping()
	}
}

func (p *PlayerController) tickHorizontal(level *LevelController) {
	accel := p.params.MoveAccel
	if p.movingLeft {
		p.speed.X -= accel
	}
	if p.movingRight {
		p.speed.X += accel
	}
	if !p.movingLeft && !p.movingRight {
		if p.speed.X > 0 {
			p.speed.X = max(0, p.speed.X-accel)
		} else if p.speed.X < 0 {
			p.speed.X = min(0, p.speed.X+accel)
		}
	}
	p.speed.X = core.Clamp(p.speed.X, -p.params.MaxMoveSpeed, p.params.MaxMoveSpeed)

	level.MoveRect(core.AxisX, &p.speed.X, &p.pos, p.params.Size)
}

// Pos returns the body's top-left corner.
func (p *PlayerController) Pos() core.Vec2d {
	return p.pos
}

// Speed returns the current velocity.
func (p *PlayerController) Speed() core.Vec2d {
	return p.speed
}

// TouchingGround reports whether the last vertical sweep landed on an obstacle.
func (p *PlayerController) TouchingGround() bool {
	return p.touchingGround
}

// JumpState returns the phase of the jump controller.
func (p *PlayerController) JumpState() JumpState {
	return p.jump.State()
}

// Rect returns the body's rect at its truncated position.
func (p *PlayerController) Rect() core.Recti {
	return core.Recti{Pos: core.Cast[int](p.pos), Size: p.params.Size}
}
