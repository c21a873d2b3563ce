// SPDX-License-Identifier: MIT

package linalg

import "fmt"

// UnitVec2 is a 2D direction of length one. Its field is unexported, so
// every value comes from NewUnitVec2 or AssumeUnit2 (or is the zero value,
// which transformation builders treat as a degenerate axis).
type UnitVec2[T Float] struct{ v Vec2[T] }

// UnitVec3 is a 3D direction of length one.
type UnitVec3[T Float] struct{ v Vec3[T] }

// NewUnitVec2 normalises v.
//
// Errors:
//   - ErrZeroLength if v is the zero vector.
func NewUnitVec2[T Float](v Vec2[T]) (UnitVec2[T], error) {
	if v == (Vec2[T]{}) {
		return UnitVec2[T]{}, fmt.Errorf("NewUnitVec2: %w", ErrZeroLength)
	}
	return UnitVec2[T]{v.Normalized()}, nil
}

// NewUnitVec3 normalises v.
//
// Errors:
//   - ErrZeroLength if v is the zero vector.
func NewUnitVec3[T Float](v Vec3[T]) (UnitVec3[T], error) {
	if v == (Vec3[T]{}) {
		return UnitVec3[T]{}, fmt.Errorf("NewUnitVec3: %w", ErrZeroLength)
	}
	return UnitVec3[T]{v.Normalized()}, nil
}

// AssumeUnit2 wraps v without normalising it. The caller guarantees that v
// has length one.
func AssumeUnit2[T Float](v Vec2[T]) UnitVec2[T] { return UnitVec2[T]{v} }

// AssumeUnit3 wraps v without normalising it. The caller guarantees that v
// has length one.
func AssumeUnit3[T Float](v Vec3[T]) UnitVec3[T] { return UnitVec3[T]{v} }

// UnitX2 returns the X axis.
func UnitX2[T Float]() UnitVec2[T] { return UnitVec2[T]{Vec2[T]{1, 0}} }

// UnitY2 returns the Y axis.
func UnitY2[T Float]() UnitVec2[T] { return UnitVec2[T]{Vec2[T]{0, 1}} }

// UnitX3 returns the X axis.
func UnitX3[T Float]() UnitVec3[T] { return UnitVec3[T]{Vec3[T]{1, 0, 0}} }

// UnitY3 returns the Y axis.
func UnitY3[T Float]() UnitVec3[T] { return UnitVec3[T]{Vec3[T]{0, 1, 0}} }

// UnitZ3 returns the Z axis.
func UnitZ3[T Float]() UnitVec3[T] { return UnitVec3[T]{Vec3[T]{0, 0, 1}} }

// Vec returns the direction as a plain vector.
func (u UnitVec2[T]) Vec() Vec2[T] { return u.v }

// X returns component 0.
func (u UnitVec2[T]) X() T { return u.v[0] }

// Y returns component 1.
func (u UnitVec2[T]) Y() T { return u.v[1] }

// Neg returns the opposite direction.
func (u UnitVec2[T]) Neg() UnitVec2[T] { return UnitVec2[T]{u.v.Neg()} }

// Rows is 1: vector roles are single-row matrices.
func (UnitVec2[T]) Rows() int { return 1 }

// Cols returns the dimension.
func (UnitVec2[T]) Cols() int { return 2 }

// Len returns the dimension.
func (UnitVec2[T]) Len() int { return 2 }

// At returns the element at (0, col). It panics unless row is 0.
func (u UnitVec2[T]) At(row, col int) T { return u.v.At(row, col) }

// Index returns component i.
func (u UnitVec2[T]) Index(i int) T { return u.v[i] }

// String renders u as a single matrix row.
func (u UnitVec2[T]) String() string { return u.v.String() }

// Vec returns the direction as a plain vector.
func (u UnitVec3[T]) Vec() Vec3[T] { return u.v }

// X returns component 0.
func (u UnitVec3[T]) X() T { return u.v[0] }

// Y returns component 1.
func (u UnitVec3[T]) Y() T { return u.v[1] }

// Z returns component 2.
func (u UnitVec3[T]) Z() T { return u.v[2] }

// Neg returns the opposite direction.
func (u UnitVec3[T]) Neg() UnitVec3[T] { return UnitVec3[T]{u.v.Neg()} }

// Rows is 1: vector roles are single-row matrices.
func (UnitVec3[T]) Rows() int { return 1 }

// Cols returns the dimension.
func (UnitVec3[T]) Cols() int { return 3 }

// Len returns the dimension.
func (UnitVec3[T]) Len() int { return 3 }

// At returns the element at (0, col). It panics unless row is 0.
func (u UnitVec3[T]) At(row, col int) T { return u.v.At(row, col) }

// Index returns component i.
func (u UnitVec3[T]) Index(i int) T { return u.v[i] }

// String renders u as a single matrix row.
func (u UnitVec3[T]) String() string { return u.v.String() }
