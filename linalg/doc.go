// SPDX-License-Identifier: MIT

// Package linalg provides fixed-size matrices and vectors whose shape is part
// of their type.
//
// Shape:
//   - Matrix[R, C, T] carries its dimensions as the zero-sized markers D1..D4.
//     A Matrix[D2, D3, float64] and a Matrix[D3, D2, float64] are different
//     types, so adding them or multiplying with mismatched inner dimensions
//     does not compile.
//   - Mul[R, K, C] only accepts a left Matrix[R, K] and a right Matrix[K, C];
//     the shared K is the column/row agreement check.
//
// Roles:
//   - Vec2/Vec3/Vec4 are free displacement vectors. Cross exists only on Vec3.
//   - Position2/Position3/Position4 are points. A Position may be offset by a
//     Vec (Add, Sub) and two positions yield a Vec through Diff; there is no
//     Position + Position.
//   - Size2/Size3 are extents. Area exists only on Size2, Volume only on Size3.
//   - RGB is a colour triple with a deliberately small surface (no arithmetic).
//   - UnitVec2/UnitVec3 carry axes that are unit length by construction.
//
// Vector roles are array types, so literals are checked by the compiler and
// roles of the same length and element type convert with an explicit Go
// conversion (Vec3[float64](p)); assignment between roles never compiles.
// Changing the element type goes through the Convert* functions.
//
// Storage is row-major and contiguous. Every value is a comparable, copyable
// value type whose zero value is the all-zero value. Out-of-range indices
// panic.
//
// Conventions:
//   - Vectors are rows; a vector is transformed with v.Mul(m).
//   - Equal and == are exact; AllClose provides tolerance-based comparison.
package linalg
