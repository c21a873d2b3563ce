// SPDX-License-Identifier: MIT

// Package trans2d builds 2×2 linear transformation matrices.
//
// Matrices follow the row-vector convention: a vector v is transformed by
// v.Mul(m), and composing "first a, then b" is linalg.Mul(a, b).
//
// Builders taking an axis expect a linalg.UnitVec2 and never renormalise it.
// The element type is an explicit type argument where no parameter carries
// it: trans2d.Rotate[float64](90 * angle.Deg).
package trans2d
