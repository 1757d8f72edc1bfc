package core

// Axis selects one of the two coordinate axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Other returns the perpendicular axis.
func (a Axis) Other() Axis {
	if a == AxisX {
		return AxisY
	}
	return AxisX
}

// String returns a human-readable name for the axis.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	default:
		return "Unknown"
	}
}

// Dir is a cardinal direction in screen space (Y grows downward).
type Dir int

const (
	DirUp Dir = iota
	DirLeft
	DirDown
	DirRight
)

// String returns a human-readable name for the direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirLeft:
		return "Left"
	case DirDown:
		return "Down"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// AxisDir maps an axis and a sign to a direction:
// X+ is Right, X- is Left, Y+ is Down, Y- is Up.
func AxisDir(axis Axis, positive bool) Dir {
	switch axis {
	case AxisX:
		if positive {
			return DirRight
		}
		return DirLeft
	default:
		if positive {
			return DirDown
		}
		return DirUp
	}
}
