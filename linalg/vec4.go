// SPDX-License-Identifier: MIT

package linalg

import (
	"iter"
	"math"
)

// Vec4 is a free displacement vector of dimension 4.
//
// Vec4 has the method set of Vec3 minus the cross product.
type Vec4[T Number] [4]T

// Vec4FromRow converts a 1×4 matrix back into a Vec4.
func Vec4FromRow[T Number](m Matrix[D1, D4, T]) Vec4[T] {
	var v Vec4[T]
	copy(v[:], m.e[:])
	return v
}

// Rows is 1: vector roles are single-row matrices.
func (Vec4[T]) Rows() int { return 1 }

// Cols returns the dimension.
func (Vec4[T]) Cols() int { return 4 }

// Len returns the dimension.
func (Vec4[T]) Len() int { return 4 }

// At returns the element at (0, col). It panics unless row is 0.
func (v Vec4[T]) At(row, col int) T {
	checkIndex(row, 1)
	return v[col]
}

// Index returns v[i].
func (v Vec4[T]) Index(i int) T { return v[i] }

// Values yields the elements in order.
func (v Vec4[T]) Values() iter.Seq[T] { return values(v[:]) }

// Row returns v as a 1×4 matrix, for products with non-square matrices.
func (v Vec4[T]) Row() Matrix[D1, D4, T] {
	var m Matrix[D1, D4, T]
	copy(m.e[:], v[:])
	return m
}

// String renders v as a single matrix row.
func (v Vec4[T]) String() string { return formatRows(v[:], 1, 4) }

// X returns element 0.
func (v Vec4[T]) X() T { return v[0] }

// Y returns element 1.
func (v Vec4[T]) Y() T { return v[1] }

// Z returns element 2.
func (v Vec4[T]) Z() T { return v[2] }

// W returns element 3.
func (v Vec4[T]) W() T { return v[3] }

// Add returns v+o.
func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] {
	ewAdd(v[:], v[:], o[:])
	return v
}

// Sub returns v-o.
func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] {
	ewSub(v[:], v[:], o[:])
	return v
}

// AddAssign sets v to v+o.
func (v *Vec4[T]) AddAssign(o Vec4[T]) { *v = v.Add(o) }

// SubAssign sets v to v-o.
func (v *Vec4[T]) SubAssign(o Vec4[T]) { *v = v.Sub(o) }

// Scale returns v*s.
func (v Vec4[T]) Scale(s T) Vec4[T] {
	ewScale(v[:], v[:], s)
	return v
}

// Div returns v/s.
func (v Vec4[T]) Div(s T) Vec4[T] {
	ewDiv(v[:], v[:], s)
	return v
}

// ScaleAssign sets v to v*s.
func (v *Vec4[T]) ScaleAssign(s T) { *v = v.Scale(s) }

// DivAssign sets v to v/s.
func (v *Vec4[T]) DivAssign(s T) { *v = v.Div(s) }

// Hadamard returns the element-wise product of v and o.
func (v Vec4[T]) Hadamard(o Vec4[T]) Vec4[T] {
	ewMul(v[:], v[:], o[:])
	return v
}

// HadamardDiv returns the element-wise quotient of v by o.
func (v Vec4[T]) HadamardDiv(o Vec4[T]) Vec4[T] {
	ewQuo(v[:], v[:], o[:])
	return v
}

// HadamardAssign sets v to the element-wise product of v and o.
func (v *Vec4[T]) HadamardAssign(o Vec4[T]) { *v = v.Hadamard(o) }

// HadamardDivAssign sets v to the element-wise quotient of v by o.
func (v *Vec4[T]) HadamardDivAssign(o Vec4[T]) { *v = v.HadamardDiv(o) }

// Neg returns -v.
func (v Vec4[T]) Neg() Vec4[T] {
	ewNeg(v[:], v[:])
	return v
}

// Equal reports exact element-wise equality; it agrees with ==.
func (v Vec4[T]) Equal(o Vec4[T]) bool { return v == o }

// Dot returns Σ v[i]*o[i].
func (v Vec4[T]) Dot(o Vec4[T]) T { return dotKernel(v[:], o[:]) }

// NormSquared returns v·v.
func (v Vec4[T]) NormSquared() T { return v.Dot(v) }

// Norm returns the Euclidean length, computed in float64.
func (v Vec4[T]) Norm() T { return T(math.Sqrt(float64(v.NormSquared()))) }

// Normalize divides v by its norm in place.
func (v *Vec4[T]) Normalize() { v.DivAssign(v.Norm()) }

// Normalized returns a normalised copy of v.
func (v Vec4[T]) Normalized() Vec4[T] {
	v.Normalize()
	return v
}

// Mul returns v·m, treating v as a 1×4 row.
func (v Vec4[T]) Mul(m Mat4[T]) Vec4[T] {
	var out Vec4[T]
	mulKernel(out[:], v[:], m.e[:], 1, 4, 4)
	return out
}

// MulAssign sets v to v·m.
func (v *Vec4[T]) MulAssign(m Mat4[T]) { *v = v.Mul(m) }
