package core

// Rect is an axis-aligned box. Sizes are expected to be non-negative; negative sizes are
// not rejected and simply produce empty intersections.
type Rect[T Number] struct {
	Pos  Vec2[T]
	Size Vec2[T]
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect[T Number](x, y, w, h T) Rect[T] {
	return Rect[T]{Pos: Vec2[T]{X: x, Y: y}, Size: Vec2[T]{X: w, Y: h}}
}

// RectOfCorners returns the smallest rectangle spanning both corners.
func RectOfCorners[T Number](c1, c2 Vec2[T]) Rect[T] {
	lo := c1.Min(c2)
	hi := c1.Max(c2)
	return Rect[T]{Pos: lo, Size: hi.Sub(lo)}
}

// CastRect converts both corners' components to U, truncating like Cast.
func CastRect[U, T Number](r Rect[T]) Rect[U] {
	return Rect[U]{Pos: Cast[U](r.Pos), Size: Cast[U](r.Size)}
}

// MinCorner returns the top-left corner.
func (r Rect[T]) MinCorner() Vec2[T] {
	return r.Pos
}

// MaxCorner returns the bottom-right corner (exclusive).
func (r Rect[T]) MaxCorner() Vec2[T] {
	return r.Pos.Add(r.Size)
}

// Right returns the x-coordinate of the right edge.
func (r Rect[T]) Right() T {
	return r.Pos.X + r.Size.X
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect[T]) Bottom() T {
	return r.Pos.Y + r.Size.Y
}

// Intersects returns true if this rectangle overlaps with another.
// Rectangles that only share an edge do not intersect.
func (r Rect[T]) Intersects(other Rect[T]) bool {
	if r.Pos.Y >= other.Bottom() || r.Pos.X >= other.Right() {
		return false
	}
	if r.Bottom() <= other.Pos.Y || r.Right() <= other.Pos.X {
		return false
	}
	return true
}

// Contains returns true if p lies in [Pos, Pos+Size).
func (r Rect[T]) Contains(p Vec2[T]) bool {
	return p.X >= r.Pos.X && p.Y >= r.Pos.Y && p.X < r.Right() && p.Y < r.Bottom()
}

// Intersection returns the overlapping region. Each size component is clamped at zero,
// so rects that do not overlap yield a zero-size rect.
func (r Rect[T]) Intersection(other Rect[T]) Rect[T] {
	lo := r.MinCorner().Max(other.MinCorner())
	hi := r.MaxCorner().Min(other.MaxCorner())
	var zero Vec2[T]
	return Rect[T]{Pos: lo, Size: hi.Sub(lo).Max(zero)}
}

// Empty reports whether the rect has no area.
func (r Rect[T]) Empty() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}

// Translate moves the rect by t.
func (r Rect[T]) Translate(t Vec2[T]) Rect[T] {
	return Rect[T]{Pos: r.Pos.Add(t), Size: r.Size}
}

// Scale multiplies position and size by s.
func (r Rect[T]) Scale(s T) Rect[T] {
	return Rect[T]{Pos: r.Pos.MulScalar(s), Size: r.Size.MulScalar(s)}
}

// Sub returns the part of inner (expressed relative to r's origin) that lies within r.
func (r Rect[T]) Sub(inner Rect[T]) Rect[T] {
	return r.Intersection(inner.Translate(r.Pos))
}

// Recti and Rectd are the instantiations used across the codebase.
type (
	Recti = Rect[int]
	Rectd = Rect[float64]
)

// Clamp restricts a value to be within [lo, hi].
func Clamp[T Number](val, lo, hi T) T {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
