package physics

// DefaultJumpTicks is the number of ticks a jump keeps accelerating upward.
const DefaultJumpTicks = 20

// JumpState is the phase of a jump.
type JumpState int

const (
	JumpIdle      JumpState = iota // no jump in progress
	JumpRequested                  // jump key pressed, waiting for ground contact
	JumpAscending                  // launch budget is being spent
	JumpExhausted                  // budget spent, next query returns to idle
)

// String returns a human-readable name for the state.
func (s JumpState) String() string {
	switch s {
	case JumpIdle:
		return "Idle"
	case JumpRequested:
		return "Requested"
	case JumpAscending:
		return "Ascending"
	case JumpExhausted:
		return "Exhausted"
	default:
		return "Unknown"
	}
}

// JumpController decides, tick by tick, whether the body is still being launched.
// A jump can only begin while touching the ground; requests made in the air are dropped.
type JumpController struct {
	budget    int
	state     JumpState
	remaining int
}

// NewJumpController creates a controller with the given tick budget.
// A non-positive budget uses DefaultJumpTicks.
func NewJumpController(ticks int) *JumpController {
	if ticks <= 0 {
		ticks = DefaultJumpTicks
	}
	return &JumpController{budget: ticks}
}

// State returns the current phase.
func (j *JumpController) State() JumpState {
	return j.state
}

// StartJumping requests a new jump.
func (j *JumpController) StartJumping() {
	j.state = JumpRequested
	j.remaining = 0
}

// StopJumping cancels any jump in progress.
func (j *JumpController) StopJumping() {
	j.state = JumpIdle
	j.remaining = 0
}

// IsAccelerating advances the controller by one tick and reports whether the body
// should be launched upward this tick.
func (j *JumpController) IsAccelerating(touchingGround bool) bool {
	switch j.state {
	case JumpRequested:
		if !touchingGround {
			j.StopJumping()
			return false
		}
		j.state = JumpAscending
		j.remaining = j.budget
	case JumpAscending:
	case JumpExhausted:
		j.StopJumping()
		return false
	default:
		return false
	}

	j.remaining--
	if j.remaining == 0 {
		j.state = JumpExhausted
	}
	return true
}
