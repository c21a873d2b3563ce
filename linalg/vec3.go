// SPDX-License-Identifier: MIT

package linalg

import (
	"iter"
	"math"
)

// Vec3 is a free displacement vector of dimension 3. It is the only
// vector with a cross product.
type Vec3[T Number] [3]T

// Vec3FromRow converts a 1×3 matrix back into a Vec3.
func Vec3FromRow[T Number](m Matrix[D1, D3, T]) Vec3[T] {
	var v Vec3[T]
	copy(v[:], m.e[:])
	return v
}

// Rows is 1: vector roles are single-row matrices.
func (Vec3[T]) Rows() int { return 1 }

// Cols returns the dimension.
func (Vec3[T]) Cols() int { return 3 }

// Len returns the dimension.
func (Vec3[T]) Len() int { return 3 }

// At returns the element at (0, col). It panics unless row is 0.
func (v Vec3[T]) At(row, col int) T {
	checkIndex(row, 1)
	return v[col]
}

// Index returns v[i].
func (v Vec3[T]) Index(i int) T { return v[i] }

// Values yields the elements in order.
func (v Vec3[T]) Values() iter.Seq[T] { return values(v[:]) }

// Row returns v as a 1×3 matrix, for products with non-square matrices.
func (v Vec3[T]) Row() Matrix[D1, D3, T] {
	var m Matrix[D1, D3, T]
	copy(m.e[:], v[:])
	return m
}

// String renders v as a single matrix row.
func (v Vec3[T]) String() string { return formatRows(v[:], 1, 3) }

// X returns element 0.
func (v Vec3[T]) X() T { return v[0] }

// Y returns element 1.
func (v Vec3[T]) Y() T { return v[1] }

// Z returns element 2.
func (v Vec3[T]) Z() T { return v[2] }

// Add returns v+o.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	ewAdd(v[:], v[:], o[:])
	return v
}

// Sub returns v-o.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	ewSub(v[:], v[:], o[:])
	return v
}

// AddAssign sets v to v+o.
func (v *Vec3[T]) AddAssign(o Vec3[T]) { *v = v.Add(o) }

// SubAssign sets v to v-o.
func (v *Vec3[T]) SubAssign(o Vec3[T]) { *v = v.Sub(o) }

// Scale returns v*s.
func (v Vec3[T]) Scale(s T) Vec3[T] {
	ewScale(v[:], v[:], s)
	return v
}

// Div returns v/s.
func (v Vec3[T]) Div(s T) Vec3[T] {
	ewDiv(v[:], v[:], s)
	return v
}

// ScaleAssign sets v to v*s.
func (v *Vec3[T]) ScaleAssign(s T) { *v = v.Scale(s) }

// DivAssign sets v to v/s.
func (v *Vec3[T]) DivAssign(s T) { *v = v.Div(s) }

// Hadamard returns the element-wise product of v and o.
func (v Vec3[T]) Hadamard(o Vec3[T]) Vec3[T] {
	ewMul(v[:], v[:], o[:])
	return v
}

// HadamardDiv returns the element-wise quotient of v by o.
func (v Vec3[T]) HadamardDiv(o Vec3[T]) Vec3[T] {
	ewQuo(v[:], v[:], o[:])
	return v
}

// HadamardAssign sets v to the element-wise product of v and o.
func (v *Vec3[T]) HadamardAssign(o Vec3[T]) { *v = v.Hadamard(o) }

// HadamardDivAssign sets v to the element-wise quotient of v by o.
func (v *Vec3[T]) HadamardDivAssign(o Vec3[T]) { *v = v.HadamardDiv(o) }

// Neg returns -v.
func (v Vec3[T]) Neg() Vec3[T] {
	ewNeg(v[:], v[:])
	return v
}

// Equal reports exact element-wise equality; it agrees with ==.
func (v Vec3[T]) Equal(o Vec3[T]) bool { return v == o }

// Dot returns Σ v[i]*o[i].
func (v Vec3[T]) Dot(o Vec3[T]) T { return dotKernel(v[:], o[:]) }

// NormSquared returns v·v.
func (v Vec3[T]) NormSquared() T { return v.Dot(v) }

// Norm returns the Euclidean length, computed in float64 and converted
// back to T.
func (v Vec3[T]) Norm() T { return T(math.Sqrt(float64(v.NormSquared()))) }

// Normalize divides v by its norm in place. The zero vector has no
// direction: floats become NaN and integers panic.
func (v *Vec3[T]) Normalize() { v.DivAssign(v.Norm()) }

// Normalized returns a normalised copy of v.
func (v Vec3[T]) Normalized() Vec3[T] {
	v.Normalize()
	return v
}

// Mul returns v·m, treating v as a 1×3 row.
func (v Vec3[T]) Mul(m Mat3[T]) Vec3[T] {
	var out Vec3[T]
	mulKernel(out[:], v[:], m.e[:], 1, 3, 3)
	return out
}

// MulAssign sets v to v·m.
func (v *Vec3[T]) MulAssign(m Mat3[T]) { *v = v.Mul(m) }

// Cross returns the cross product v×o:
// (v1*o2 - v2*o1, v2*o0 - v0*o2, v0*o1 - v1*o0).
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		T(v[1]*o[2]) - T(v[2]*o[1]),
		T(v[2]*o[0]) - T(v[0]*o[2]),
		T(v[0]*o[1]) - T(v[1]*o[0]),
	}
}

// CrossAssign sets v to v×o.
func (v *Vec3[T]) CrossAssign(o Vec3[T]) { *v = v.Cross(o) }
