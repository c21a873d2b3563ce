// SPDX-License-Identifier: MIT

package linalg

import (
	"iter"
	"math"
)

// Vec2 is a free displacement vector of dimension 2.
//
// Vec2 has the method set of Vec3 minus the cross product.
type Vec2[T Number] [2]T

// Vec2FromRow converts a 1×2 matrix back into a Vec2.
func Vec2FromRow[T Number](m Matrix[D1, D2, T]) Vec2[T] {
	var v Vec2[T]
	copy(v[:], m.e[:])
	return v
}

// Rows is 1: vector roles are single-row matrices.
func (Vec2[T]) Rows() int { return 1 }

// Cols returns the dimension.
func (Vec2[T]) Cols() int { return 2 }

// Len returns the dimension.
func (Vec2[T]) Len() int { return 2 }

// At returns the element at (0, col). It panics unless row is 0.
func (v Vec2[T]) At(row, col int) T {
	checkIndex(row, 1)
	return v[col]
}

// Index returns v[i].
func (v Vec2[T]) Index(i int) T { return v[i] }

// Values yields the elements in order.
func (v Vec2[T]) Values() iter.Seq[T] { return values(v[:]) }

// Row returns v as a 1×2 matrix, for products with non-square matrices.
func (v Vec2[T]) Row() Matrix[D1, D2, T] {
	var m Matrix[D1, D2, T]
	copy(m.e[:], v[:])
	return m
}

// String renders v as a single matrix row.
func (v Vec2[T]) String() string { return formatRows(v[:], 1, 2) }

// X returns element 0.
func (v Vec2[T]) X() T { return v[0] }

// Y returns element 1.
func (v Vec2[T]) Y() T { return v[1] }

// Add returns v+o.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] {
	ewAdd(v[:], v[:], o[:])
	return v
}

// Sub returns v-o.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] {
	ewSub(v[:], v[:], o[:])
	return v
}

// AddAssign sets v to v+o.
func (v *Vec2[T]) AddAssign(o Vec2[T]) { *v = v.Add(o) }

// SubAssign sets v to v-o.
func (v *Vec2[T]) SubAssign(o Vec2[T]) { *v = v.Sub(o) }

// Scale returns v*s.
func (v Vec2[T]) Scale(s T) Vec2[T] {
	ewScale(v[:], v[:], s)
	return v
}

// Div returns v/s.
func (v Vec2[T]) Div(s T) Vec2[T] {
	ewDiv(v[:], v[:], s)
	return v
}

// ScaleAssign sets v to v*s.
func (v *Vec2[T]) ScaleAssign(s T) { *v = v.Scale(s) }

// DivAssign sets v to v/s.
func (v *Vec2[T]) DivAssign(s T) { *v = v.Div(s) }

// Hadamard returns the element-wise product of v and o.
func (v Vec2[T]) Hadamard(o Vec2[T]) Vec2[T] {
	ewMul(v[:], v[:], o[:])
	return v
}

// HadamardDiv returns the element-wise quotient of v by o.
func (v Vec2[T]) HadamardDiv(o Vec2[T]) Vec2[T] {
	ewQuo(v[:], v[:], o[:])
	return v
}

// HadamardAssign sets v to the element-wise product of v and o.
func (v *Vec2[T]) HadamardAssign(o Vec2[T]) { *v = v.Hadamard(o) }

// HadamardDivAssign sets v to the element-wise quotient of v by o.
func (v *Vec2[T]) HadamardDivAssign(o Vec2[T]) { *v = v.HadamardDiv(o) }

// Neg returns -v.
func (v Vec2[T]) Neg() Vec2[T] {
	ewNeg(v[:], v[:])
	return v
}

// Equal reports exact element-wise equality; it agrees with ==.
func (v Vec2[T]) Equal(o Vec2[T]) bool { return v == o }

// Dot returns Σ v[i]*o[i].
func (v Vec2[T]) Dot(o Vec2[T]) T { return dotKernel(v[:], o[:]) }

// NormSquared returns v·v.
func (v Vec2[T]) NormSquared() T { return v.Dot(v) }

// Norm returns the Euclidean length, computed in float64.
func (v Vec2[T]) Norm() T { return T(math.Sqrt(float64(v.NormSquared()))) }

// Normalize divides v by its norm in place.
func (v *Vec2[T]) Normalize() { v.DivAssign(v.Norm()) }

// Normalized returns a normalised copy of v.
func (v Vec2[T]) Normalized() Vec2[T] {
	v.Normalize()
	return v
}

// Mul returns v·m, treating v as a 1×2 row.
func (v Vec2[T]) Mul(m Mat2[T]) Vec2[T] {
	var out Vec2[T]
	mulKernel(out[:], v[:], m.e[:], 1, 2, 2)
	return out
}

// MulAssign sets v to v·m.
func (v *Vec2[T]) MulAssign(m Mat2[T]) { *v = v.Mul(m) }
