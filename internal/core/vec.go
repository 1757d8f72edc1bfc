// Package core provides fundamental types and utilities for the platformer.
// It contains no external dependencies (especially no Bubble Tea or Ebiten) to keep
// simulation logic pure and testable.
package core

import "cmp"

// Number is the set of numeric types a Vec2 or Rect can be built over.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Vec2 is an ordered (x, y) pair. It is a plain value: every operation returns a new Vec2.
type Vec2[T Number] struct {
	X, Y T
}

// V builds a Vec2 from its components.
func V[T Number](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// OfFirstAxis builds a vector whose component on first is v1 and on the other axis v2.
func OfFirstAxis[T Number](first Axis, v1, v2 T) Vec2[T] {
	if first == AxisX {
		return Vec2[T]{X: v1, Y: v2}
	}
	return Vec2[T]{X: v2, Y: v1}
}

// Cast converts every component to U. Float to integer conversion truncates toward zero.
func Cast[U, T Number](v Vec2[T]) Vec2[U] {
	return Vec2[U]{X: U(v.X), Y: U(v.Y)}
}

// Add returns the component-wise sum.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul returns the component-wise product.
func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X * o.X, Y: v.Y * o.Y}
}

// Div returns the component-wise quotient.
func (v Vec2[T]) Div(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X / o.X, Y: v.Y / o.Y}
}

// AddScalar adds s to both components.
func (v Vec2[T]) AddScalar(s T) Vec2[T] {
	return Vec2[T]{X: v.X + s, Y: v.Y + s}
}

// SubScalar subtracts s from both components.
func (v Vec2[T]) SubScalar(s T) Vec2[T] {
	return Vec2[T]{X: v.X - s, Y: v.Y - s}
}

// MulScalar multiplies both components by s.
func (v Vec2[T]) MulScalar(s T) Vec2[T] {
	return Vec2[T]{X: v.X * s, Y: v.Y * s}
}

// DivScalar divides both components by s.
func (v Vec2[T]) DivScalar(s T) Vec2[T] {
	return Vec2[T]{X: v.X / s, Y: v.Y / s}
}

// Min returns the component-wise minimum.
func (v Vec2[T]) Min(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: min(v.X, o.X), Y: min(v.Y, o.Y)}
}

// Max returns the component-wise maximum.
func (v Vec2[T]) Max(o Vec2[T]) Vec2[T] {
	return Vec2[T]{X: max(v.X, o.X), Y: max(v.Y, o.Y)}
}

// Sum returns x + y.
func (v Vec2[T]) Sum() T {
	return v.X + v.Y
}

// Get returns the component along axis.
func (v Vec2[T]) Get(axis Axis) T {
	if axis == AxisX {
		return v.X
	}
	return v.Y
}

// Set assigns the component along axis.
func (v *Vec2[T]) Set(axis Axis, value T) {
	if axis == AxisX {
		v.X = value
		return
	}
	v.Y = value
}

// With returns a copy of v with the component along axis replaced.
func (v Vec2[T]) With(axis Axis, value T) Vec2[T] {
	v.Set(axis, value)
	return v
}

// Compare orders vectors lexicographically on (x, y).
func (v Vec2[T]) Compare(o Vec2[T]) int {
	if c := cmp.Compare(v.X, o.X); c != 0 {
		return c
	}
	return cmp.Compare(v.Y, o.Y)
}

// Less reports whether v sorts before o.
func (v Vec2[T]) Less(o Vec2[T]) bool {
	return v.Compare(o) < 0
}

// Vec2i, Vec2f and Vec2d are the instantiations used across the codebase.
type (
	Vec2i = Vec2[int]
	Vec2f = Vec2[float32]
	Vec2d = Vec2[float64]
)
