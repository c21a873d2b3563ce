// SPDX-License-Identifier: MIT

package trans2d

import (
	"github.com/katalvlaran/lvmath/angle"
	"github.com/katalvlaran/lvmath/linalg"
)

func mat[T linalg.Float](e ...T) linalg.Mat2[T] {
	return linalg.MustNew[linalg.D2, linalg.D2](e...)
}

// Rotate returns the counter-clockwise rotation by a. Any angle unit is
// accepted; degrees are converted to radians first.
func Rotate[T linalg.Float](a angle.Angle) linalg.Mat2[T] {
	s, c := T(angle.Sin(a)), T(angle.Cos(a))
	return mat(
		c, s,
		-s, c,
	)
}

// Scale returns the scaling by fx along X and fy along Y.
func Scale[T linalg.Float](fx, fy T) linalg.Mat2[T] {
	return mat(
		fx, 0,
		0, fy,
	)
}

// ScaleAlong returns the scaling by k along axis, leaving the perpendicular
// direction unchanged.
//
// Implementation:
//   - m[i][j] = δij + (k-1)·n_i·n_j with n = axis.
//
// Notes:
//   - The result is the same for axis and axis.Neg().
func ScaleAlong[T linalg.Float](k T, axis linalg.UnitVec2[T]) linalg.Mat2[T] {
	x, y := axis.X(), axis.Y()
	f := k - 1
	return mat(
		1+f*(x*x), f*(x*y),
		f*(x*y), 1+f*(y*y),
	)
}

// ProjectOntoX flattens vectors onto the X axis.
func ProjectOntoX[T linalg.Float]() linalg.Mat2[T] { return Scale[T](1, 0) }

// ProjectOntoY flattens vectors onto the Y axis.
func ProjectOntoY[T linalg.Float]() linalg.Mat2[T] { return Scale[T](0, 1) }

// ProjectAlong flattens vectors along axis, onto the line perpendicular to it.
func ProjectAlong[T linalg.Float](axis linalg.UnitVec2[T]) linalg.Mat2[T] {
	return ScaleAlong(0, axis)
}

// ReflectAlongX mirrors the X coordinate.
func ReflectAlongX[T linalg.Float]() linalg.Mat2[T] { return Scale[T](-1, 1) }

// ReflectAlongY mirrors the Y coordinate.
func ReflectAlongY[T linalg.Float]() linalg.Mat2[T] { return Scale[T](1, -1) }

// ReflectAlong mirrors vectors along axis, across the line perpendicular to
// it. ReflectAlong(axis) equals ReflectAlong(axis.Neg()).
func ReflectAlong[T linalg.Float](axis linalg.UnitVec2[T]) linalg.Mat2[T] {
	return ScaleAlong(-1, axis)
}

// ShearX adds wy times the Y coordinate to X.
func ShearX[T linalg.Float](wy T) linalg.Mat2[T] {
	return mat(
		1, 0,
		wy, 1,
	)
}

// ShearY adds wx times the X coordinate to Y.
func ShearY[T linalg.Float](wx T) linalg.Mat2[T] {
	return mat(
		1, wx,
		0, 1,
	)
}
