// SPDX-License-Identifier: MIT

package trans3d

import (
	"github.com/katalvlaran/lvmath/angle"
	"github.com/katalvlaran/lvmath/linalg"
)

func mat[T linalg.Float](e ...T) linalg.Mat3[T] {
	return linalg.MustNew[linalg.D3, linalg.D3](e...)
}

func sincos[T linalg.Float](a angle.Angle) (s, c T) {
	return T(angle.Sin(a)), T(angle.Cos(a))
}

// RotateX returns the rotation by a about the X axis.
func RotateX[T linalg.Float](a angle.Angle) linalg.Mat3[T] {
	s, c := sincos[T](a)
	return mat(
		1, 0, 0,
		0, c, s,
		0, -s, c,
	)
}

// RotateY returns the rotation by a about the Y axis.
func RotateY[T linalg.Float](a angle.Angle) linalg.Mat3[T] {
	s, c := sincos[T](a)
	return mat(
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	)
}

// RotateZ returns the rotation by a about the Z axis.
func RotateZ[T linalg.Float](a angle.Angle) linalg.Mat3[T] {
	s, c := sincos[T](a)
	return mat(
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	)
}

// Rotate returns the rotation by a about axis (Rodrigues' formula).
//
// Implementation:
//   - m[i][j] = n_i·n_j·(1-cos a) + δij·cos a + ε·sin a, where ε carries the
//     cross-product terms ±n_k of the axis.
//
// Notes:
//   - Rotate(a, axis) equals Rotate(-a, axis.Neg()).
//   - RotateX/Y/Z are the special cases of the standard basis axes.
func Rotate[T linalg.Float](a angle.Angle, axis linalg.UnitVec3[T]) linalg.Mat3[T] {
	s, c := sincos[T](a)
	x, y, z := axis.X(), axis.Y(), axis.Z()
	t := 1 - c
	return mat(
		x*x*t+c, x*y*t+z*s, x*z*t-y*s,
		x*y*t-z*s, y*y*t+c, y*z*t+x*s,
		x*z*t+y*s, y*z*t-x*s, z*z*t+c,
	)
}

// Scale returns the scaling by fx, fy and fz along the coordinate axes.
func Scale[T linalg.Float](fx, fy, fz T) linalg.Mat3[T] {
	return mat(
		fx, 0, 0,
		0, fy, 0,
		0, 0, fz,
	)
}

// ScaleAlong returns the scaling by k along axis, leaving the perpendicular
// plane unchanged: m[i][j] = δij + (k-1)·n_i·n_j.
func ScaleAlong[T linalg.Float](k T, axis linalg.UnitVec3[T]) linalg.Mat3[T] {
	x, y, z := axis.X(), axis.Y(), axis.Z()
	f := k - 1
	return mat(
		1+f*(x*x), f*(x*y), f*(x*z),
		f*(x*y), 1+f*(y*y), f*(y*z),
		f*(x*z), f*(y*z), 1+f*(z*z),
	)
}

// ProjectOntoXY drops the Z coordinate.
func ProjectOntoXY[T linalg.Float]() linalg.Mat3[T] { return Scale[T](1, 1, 0) }

// ProjectOntoXZ drops the Y coordinate.
func ProjectOntoXZ[T linalg.Float]() linalg.Mat3[T] { return Scale[T](1, 0, 1) }

// ProjectOntoYZ drops the X coordinate.
func ProjectOntoYZ[T linalg.Float]() linalg.Mat3[T] { return Scale[T](0, 1, 1) }

// ProjectAlong flattens vectors along axis, onto the plane perpendicular to
// it.
func ProjectAlong[T linalg.Float](axis linalg.UnitVec3[T]) linalg.Mat3[T] {
	return ScaleAlong(0, axis)
}

// ReflectAlongX mirrors the X coordinate.
func ReflectAlongX[T linalg.Float]() linalg.Mat3[T] { return Scale[T](-1, 1, 1) }

// ReflectAlongY mirrors the Y coordinate.
func ReflectAlongY[T linalg.Float]() linalg.Mat3[T] { return Scale[T](1, -1, 1) }

// ReflectAlongZ mirrors the Z coordinate.
func ReflectAlongZ[T linalg.Float]() linalg.Mat3[T] { return Scale[T](1, 1, -1) }

// ReflectAlong mirrors vectors along axis, across the plane perpendicular to
// it. ReflectAlong(axis) equals ReflectAlong(axis.Neg()).
func ReflectAlong[T linalg.Float](axis linalg.UnitVec3[T]) linalg.Mat3[T] {
	return ScaleAlong(-1, axis)
}

// ShearXY shifts X by zx·z and Y by zy·z.
func ShearXY[T linalg.Float](zx, zy T) linalg.Mat3[T] {
	return mat(
		1, 0, 0,
		0, 1, 0,
		zx, zy, 1,
	)
}

// ShearXZ shifts X by yx·y and Z by yz·y.
func ShearXZ[T linalg.Float](yx, yz T) linalg.Mat3[T] {
	return mat(
		1, 0, 0,
		yx, 1, yz,
		0, 0, 1,
	)
}

// ShearYZ shifts Y by xy·x and Z by xz·x.
func ShearYZ[T linalg.Float](xy, xz T) linalg.Mat3[T] {
	return mat(
		1, xy, xz,
		0, 1, 0,
		0, 0, 1,
	)
}
