package physics

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestMoveRectStopsAtObstacle(t *testing.T) {
	tests := []struct {
		name        string
		axis        core.Axis
		start       core.Vec2d
		speed       float64
		block       core.Recti
		expectedPos core.Vec2d
		expectedDir core.Dir
	}{
		{"falling onto floor", core.AxisY, core.V(0.0, 0.0), 55, core.NewRect(0, 50, 10, 10), core.V(0.0, 40.0), core.DirDown},
		{"rising into ceiling", core.AxisY, core.V(0.0, 100.0), -80, core.NewRect(0, 0, 10, 50), core.V(0.0, 50.0), core.DirUp},
		{"running into right wall", core.AxisX, core.V(0.0, 0.0), 30, core.NewRect(25, -5, 10, 40), core.V(15.0, 0.0), core.DirRight},
		{"running into left wall", core.AxisX, core.V(40.0, 0.0), -30, core.NewRect(0, 0, 25, 10), core.V(25.0, 0.0), core.DirLeft},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			level := NewLevelController([]core.Recti{tc.block})
			pos := tc.start
			speed := tc.speed
			size := core.V(10, 10)

			dir, hit := level.MoveRect(tc.axis, &speed, &pos, size)
			if !hit || dir != tc.expectedDir {
				t.Errorf("MoveRect() = (%v, %v), expected (%v, true)", dir, hit, tc.expectedDir)
			}
			if pos != tc.expectedPos {
				t.Errorf("pos = %v, expected %v", pos, tc.expectedPos)
			}
			if speed != 0 {
				t.Errorf("speed = %v, expected 0", speed)
			}
			body := core.Recti{Pos: core.Cast[int](pos), Size: size}
			if body.Intersects(tc.block) {
				t.Errorf("body %v penetrates obstacle %v", body, tc.block)
			}
		})
	}
}

func TestMoveRectFreeMovement(t *testing.T) {
	level := NewLevelController([]core.Recti{core.NewRect(100, 100, 10, 10)})
	pos := core.V(0.0, 0.0)
	speed := 7.5

	_, hit := level.MoveRect(core.AxisX, &speed, &pos, core.V(10, 10))
	if hit {
		t.Error("MoveRect() reported a contact with nothing in the way")
	}
	if pos != core.V(7.5, 0.0) || speed != 7.5 {
		t.Errorf("pos, speed = %v, %v, expected (7.5, 0), 7.5", pos, speed)
	}
}

func TestMoveRectIgnoresPenetratingObstacle(t *testing.T) {
	block := core.NewRect(5, 5, 10, 10)
	level := NewLevelController([]core.Recti{block})
	pos := core.V(0.0, 0.0)
	speed := 5.0

	_, hit := level.MoveRect(core.AxisY, &speed, &pos, core.V(10, 10))
	if hit {
		t.Error("an obstacle the body already overlaps must be ignored")
	}
	if pos.Y != 5 || speed != 5 {
		t.Errorf("pos.Y, speed = %v, %v, expected 5, 5", pos.Y, speed)
	}
}

func TestMoveRectTouchingIsNotContact(t *testing.T) {
	level := NewLevelController([]core.Recti{core.NewRect(0, 50, 10, 10)})
	pos := core.V(0.0, 39.5)
	speed := 0.9

	// Truncated target rect ends exactly at y=50, so nothing is hit
	_, hit := level.MoveRect(core.AxisY, &speed, &pos, core.V(10, 10))
	if hit {
		t.Errorf("MoveRect() reported contact at pos %v", pos)
	}
}

func TestJumpRequestedInAirIsCancelled(t *testing.T) {
	j := NewJumpController(0)
	j.StartJumping()

	if j.IsAccelerating(false) {
		t.Error("IsAccelerating(false) after an airborne request = true, expected false")
	}
	if j.State() != JumpIdle {
		t.Errorf("State() = %v, expected Idle", j.State())
	}
	if j.IsAccelerating(true) {
		t.Error("a cancelled request must not be resumed on landing")
	}
}

func TestJumpBudget(t *testing.T) {
	j := NewJumpController(DefaultJumpTicks)
	j.StartJumping()

	for i := 0; i < DefaultJumpTicks; i++ {
		if !j.IsAccelerating(i == 0) {
			t.Fatalf("tick %d: IsAccelerating() = false, expected true", i)
		}
	}
	if j.State() != JumpExhausted {
		t.Errorf("State() after budget = %v, expected Exhausted", j.State())
	}
	if j.IsAccelerating(false) {
		t.Error("IsAccelerating() after budget = true, expected false")
	}
	if j.State() != JumpIdle {
		t.Errorf("State() = %v, expected Idle", j.State())
	}
}

func TestJumpStopForcesIdle(t *testing.T) {
	j := NewJumpController(5)
	j.StartJumping()
	j.IsAccelerating(true)
	j.StopJumping()

	if j.State() != JumpIdle || j.IsAccelerating(true) {
		t.Errorf("StopJumping() should force Idle, got %v", j.State())
	}
}

func newDefaultLevel() *LevelController {
	return NewLevelController([]core.Recti{
		core.NewRect(0, 800, 1600, 1600),
		core.NewRect(1200, 500, 100, 100),
		core.NewRect(300, 700, 100, 100),
	})
}

func TestPlayerFallsOntoFloor(t *testing.T) {
	level := newDefaultLevel()
	p := NewPlayerController(core.V(0.0, 0.0), DefaultParams())

	for i := 0; i < 60; i++ {
		p.Tick(level)
	}

	if got := p.Rect().Bottom(); got != 800 {
		t.Errorf("Rect().Bottom() = %d, expected 800", got)
	}
	if p.Speed().Y != 0 {
		t.Errorf("Speed().Y = %v, expected 0", p.Speed().Y)
	}
	if !p.TouchingGround() {
		t.Error("TouchingGround() = false, expected true")
	}
}

func TestPlayerJumpFromGround(t *testing.T) {
	level := newDefaultLevel()
	p := NewPlayerController(core.V(0.0, 704.0), DefaultParams())
	p.Tick(level) // settle

	if !p.TouchingGround() {
		t.Fatal("player should be standing after one tick")
	}

	p.SetJumping(true)
	p.Tick(level)
	if p.Speed().Y != -30 {
		t.Errorf("Speed().Y after jump = %v, expected -30", p.Speed().Y)
	}
	if p.Pos().Y != 674 {
		t.Errorf("Pos().Y after jump = %v, expected 674", p.Pos().Y)
	}
	if p.JumpState() != JumpAscending {
		t.Errorf("JumpState() = %v, expected Ascending", p.JumpState())
	}

	// Releasing the key ends the launch; gravity takes over
	p.SetJumping(false)
	p.Tick(level)
	if p.Speed().Y != -28 {
		t.Errorf("Speed().Y after release = %v, expected -28", p.Speed().Y)
	}
}

func TestPlayerHorizontalMovement(t *testing.T) {
	level := NewLevelController(nil)
	params := DefaultParams()
	params.Gravity = 0
	p := NewPlayerController(core.V(0.0, 0.0), params)

	p.SetMovingRight(true)
	for i := 0; i < 10; i++ {
		p.Tick(level)
	}
	if p.Speed().X != 10 {
		t.Errorf("Speed().X while held = %v, expected cap 10", p.Speed().X)
	}

	p.SetMovingRight(false)
	p.Tick(level)
	if p.Speed().X != 8 {
		t.Errorf("Speed().X after release = %v, expected 8", p.Speed().X)
	}
	for i := 0; i < 10; i++ {
		p.Tick(level)
	}
	if p.Speed().X != 0 {
		t.Errorf("Speed().X after deceleration = %v, expected 0", p.Speed().X)
	}

	p.SetMovingLeft(true)
	p.Tick(level)
	if p.Speed().X != -2 {
		t.Errorf("Speed().X moving left = %v, expected -2", p.Speed().X)
	}
}

func TestPlayerStopsAtWall(t *testing.T) {
	level := NewLevelController([]core.Recti{core.NewRect(200, -1000, 64, 2000)})
	params := DefaultParams()
	params.Gravity = 0
	p := NewPlayerController(core.V(0.0, 0.0), params)

	p.SetMovingRight(true)
	for i := 0; i < 60; i++ {
		p.Tick(level)
	}

	if p.Rect().Right() != 200 {
		t.Errorf("Rect().Right() = %d, expected 200", p.Rect().Right())
	}
	if p.Speed().X != 0 {
		t.Errorf("Speed().X at wall = %v, expected 0", p.Speed().X)
	}
}
