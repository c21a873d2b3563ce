// SPDX-License-Identifier: MIT

package linalg

import "iter"

// Position2 is a point in 2-dimensional space.
type Position2[T Number] [2]T

// Rows is 1: vector roles are single-row matrices.
func (Position2[T]) Rows() int { return 1 }

// Cols returns the dimension.
func (Position2[T]) Cols() int { return 2 }

// Len returns the dimension.
func (Position2[T]) Len() int { return 2 }

// At returns the element at (0, col). It panics unless row is 0.
func (v Position2[T]) At(row, col int) T {
	checkIndex(row, 1)
	return v[col]
}

// Index returns v[i].
func (v Position2[T]) Index(i int) T { return v[i] }

// Values yields the elements in order.
func (v Position2[T]) Values() iter.Seq[T] { return values(v[:]) }

// Row returns v as a 1×2 matrix, for products with non-square matrices.
func (v Position2[T]) Row() Matrix[D1, D2, T] {
	var m Matrix[D1, D2, T]
	copy(m.e[:], v[:])
	return m
}

// String renders v as a single matrix row.
func (v Position2[T]) String() string { return formatRows(v[:], 1, 2) }

// X returns element 0.
func (v Position2[T]) X() T { return v[0] }

// Y returns element 1.
func (v Position2[T]) Y() T { return v[1] }

// Add returns v moved by o.
func (v Position2[T]) Add(o Vec2[T]) Position2[T] {
	ewAdd(v[:], v[:], o[:])
	return v
}

// Sub returns v moved by -o.
func (v Position2[T]) Sub(o Vec2[T]) Position2[T] {
	ewSub(v[:], v[:], o[:])
	return v
}

// AddAssign sets v to v moved by o.
func (v *Position2[T]) AddAssign(o Vec2[T]) { *v = v.Add(o) }

// SubAssign sets v to v moved by -o.
func (v *Position2[T]) SubAssign(o Vec2[T]) { *v = v.Sub(o) }

// Diff returns the displacement from o to v.
func (v Position2[T]) Diff(o Position2[T]) Vec2[T] {
	var d Vec2[T]
	ewSub(d[:], v[:], o[:])
	return d
}

// Scale returns v*s.
func (v Position2[T]) Scale(s T) Position2[T] {
	ewScale(v[:], v[:], s)
	return v
}

// Div returns v/s.
func (v Position2[T]) Div(s T) Position2[T] {
	ewDiv(v[:], v[:], s)
	return v
}

// Neg returns -v.
func (v Position2[T]) Neg() Position2[T] {
	ewNeg(v[:], v[:])
	return v
}

// Equal reports exact element-wise equality; it agrees with ==.
func (v Position2[T]) Equal(o Position2[T]) bool { return v == o }

// Mul returns v·m, treating v as a 1×2 row.
func (v Position2[T]) Mul(m Mat2[T]) Position2[T] {
	var out Position2[T]
	mulKernel(out[:], v[:], m.e[:], 1, 2, 2)
	return out
}

// MulAssign sets v to v·m.
func (v *Position2[T]) MulAssign(m Mat2[T]) { *v = v.Mul(m) }

// Position3 is a point in 3-dimensional space.
type Position3[T Number] [3]T

// Rows is 1: vector roles are single-row matrices.
func (Position3[T]) Rows() int { return 1 }

// Cols returns the dimension.
func (Position3[T]) Cols() int { return 3 }

// Len returns the dimension.
func (Position3[T]) Len() int { return 3 }

// At returns the element at (0, col). It panics unless row is 0.
func (v Position3[T]) At(row, col int) T {
	checkIndex(row, 1)
	return v[col]
}

// Index returns v[i].
func (v Position3[T]) Index(i int) T { return v[i] }

// Values yields the elements in order.
func (v Position3[T]) Values() iter.Seq[T] { return values(v[:]) }

// Row returns v as a 1×3 matrix, for products with non-square matrices.
func (v Position3[T]) Row() Matrix[D1, D3, T] {
	var m Matrix[D1, D3, T]
	copy(m.e[:], v[:])
	return m
}

// String renders v as a single matrix row.
func (v Position3[T]) String() string { return formatRows(v[:], 1, 3) }

// X returns element 0.
func (v Position3[T]) X() T { return v[0] }

// Y returns element 1.
func (v Position3[T]) Y() T { return v[1] }

// Z returns element 2.
func (v Position3[T]) Z() T { return v[2] }

// Add returns v moved by o.
func (v Position3[T]) Add(o Vec3[T]) Position3[T] {
	ewAdd(v[:], v[:], o[:])
	return v
}

// Sub returns v moved by -o.
func (v Position3[T]) Sub(o Vec3[T]) Position3[T] {
	ewSub(v[:], v[:], o[:])
	return v
}

// AddAssign sets v to v+o.
func (v *Position3[T]) AddAssign(o Vec3[T]) { *v = v.Add(o) }

// SubAssign sets v to v-o.
func (v *Position3[T]) SubAssign(o Vec3[T]) { *v = v.Sub(o) }

// Diff returns the displacement from o to v.
func (v Position3[T]) Diff(o Position3[T]) Vec3[T] {
	var d Vec3[T]
	ewSub(d[:], v[:], o[:])
	return d
}

// Scale returns v*s.
func (v Position3[T]) Scale(s T) Position3[T] {
	ewScale(v[:], v[:], s)
	return v
}

// Div returns v/s.
func (v Position3[T]) Div(s T) Position3[T] {
	ewDiv(v[:], v[:], s)
	return v
}

// Neg returns -v.
func (v Position3[T]) Neg() Position3[T] {
	ewNeg(v[:], v[:])
	return v
}

// Equal reports exact element-wise equality; it agrees with ==.
func (v Position3[T]) Equal(o Position3[T]) bool { return v == o }

// Mul returns v·m, treating v as a 1×3 row.
func (v Position3[T]) Mul(m Mat3[T]) Position3[T] {
	var out Position3[T]
	mulKernel(out[:], v[:], m.e[:], 1, 3, 3)
	return out
}

// MulAssign sets v to v·m.
func (v *Position3[T]) MulAssign(m Mat3[T]) { *v = v.Mul(m) }

// Position4 is a point in 4-dimensional space.
type Position4[T Number] [4]T

// Rows is 1: vector roles are single-row matrices.
func (Position4[T]) Rows() int { return 1 }

// Cols returns the dimension.
func (Position4[T]) Cols() int { return 4 }

// Len returns the dimension.
func (Position4[T]) Len() int { return 4 }

// At returns the element at (0, col). It panics unless row is 0.
func (v Position4[T]) At(row, col int) T {
	checkIndex(row, 1)
	return v[col]
}

// Index returns v[i].
func (v Position4[T]) Index(i int) T { return v[i] }

// Values yields the elements in order.
func (v Position4[T]) Values() iter.Seq[T] { return values(v[:]) }

// Row returns v as a 1×4 matrix, for products with non-square matrices.
func (v Position4[T]) Row() Matrix[D1, D4, T] {
	var m Matrix[D1, D4, T]
	copy(m.e[:], v[:])
	return m
}

// String renders v as a single matrix row.
func (v Position4[T]) String() string { return formatRows(v[:], 1, 4) }

// X returns element 0.
func (v Position4[T]) X() T { return v[0] }

// Y returns element 1.
func (v Position4[T]) Y() T { return v[1] }

// Z returns element 2.
func (v Position4[T]) Z() T { return v[2] }

// W returns element 3.
func (v Position4[T]) W() T { return v[3] }

// Add returns v moved by o.
func (v Position4[T]) Add(o Vec4[T]) Position4[T] {
	ewAdd(v[:], v[:], o[:])
	return v
}

// Sub returns v moved by -o.
func (v Position4[T]) Sub(o Vec4[T]) Position4[T] {
	ewSub(v[:], v[:], o[:])
	return v
}

// AddAssign sets v to v+o.
func (v *Position4[T]) AddAssign(o Vec4[T]) { *v = v.Add(o) }

// SubAssign sets v to v-o.
func (v *Position4[T]) SubAssign(o Vec4[T]) { *v = v.Sub(o) }

// Diff returns the displacement from o to v.
func (v Position4[T]) Diff(o Position4[T]) Vec4[T] {
	var d Vec4[T]
	ewSub(d[:], v[:], o[:])
	return d
}

// Scale returns v*s.
func (v Position4[T]) Scale(s T) Position4[T] {
	ewScale(v[:], v[:], s)
	return v
}

// Div returns v/s.
func (v Position4[T]) Div(s T) Position4[T] {
	ewDiv(v[:], v[:], s)
	return v
}

// Neg returns -v.
func (v Position4[T]) Neg() Position4[T] {
	ewNeg(v[:], v[:])
	return v
}

// Equal reports exact element-wise equality; it agrees with ==.
func (v Position4[T]) Equal(o Position4[T]) bool { return v == o }

// Mul returns v·m, treating v as a 1×4 row.
func (v Position4[T]) Mul(m Mat4[T]) Position4[T] {
	var out Position4[T]
	mulKernel(out[:], v[:], m.e[:], 1, 4, 4)
	return out
}

// MulAssign sets v to v·m.
func (v *Position4[T]) MulAssign(m Mat4[T]) { *v = v.Mul(m) }
