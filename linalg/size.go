// SPDX-License-Identifier: MIT

package linalg

import "iter"

// Size2 is an extent in 2 dimensions.
type Size2[T Number] [2]T

// Rows is 1: vector roles are single-row matrices.
func (Size2[T]) Rows() int { return 1 }

// Cols returns the dimension.
func (Size2[T]) Cols() int { return 2 }

// Len returns the dimension.
func (Size2[T]) Len() int { return 2 }

// At returns the element at (0, col). It panics unless row is 0.
func (v Size2[T]) At(row, col int) T {
	checkIndex(row, 1)
	return v[col]
}

// Index returns v[i].
func (v Size2[T]) Index(i int) T { return v[i] }

// Values yields the elements in order.
func (v Size2[T]) Values() iter.Seq[T] { return values(v[:]) }

// Row returns v as a 1×2 matrix, for products with non-square matrices.
func (v Size2[T]) Row() Matrix[D1, D2, T] {
	var m Matrix[D1, D2, T]
	copy(m.e[:], v[:])
	return m
}

// String renders v as a single matrix row.
func (v Size2[T]) String() string { return formatRows(v[:], 1, 2) }

// Width returns element 0.
func (v Size2[T]) Width() T { return v[0] }

// Height returns element 1.
func (v Size2[T]) Height() T { return v[1] }

// Add returns v+o.
func (v Size2[T]) Add(o Size2[T]) Size2[T] {
	ewAdd(v[:], v[:], o[:])
	return v
}

// Sub returns v-o.
func (v Size2[T]) Sub(o Size2[T]) Size2[T] {
	ewSub(v[:], v[:], o[:])
	return v
}

// AddAssign sets v to v+o.
func (v *Size2[T]) AddAssign(o Size2[T]) { *v = v.Add(o) }

// SubAssign sets v to v-o.
func (v *Size2[T]) SubAssign(o Size2[T]) { *v = v.Sub(o) }

// Scale returns v*s.
func (v Size2[T]) Scale(s T) Size2[T] {
	ewScale(v[:], v[:], s)
	return v
}

// Div returns v/s.
func (v Size2[T]) Div(s T) Size2[T] {
	ewDiv(v[:], v[:], s)
	return v
}

// ScaleAssign sets v to v*s.
func (v *Size2[T]) ScaleAssign(s T) { *v = v.Scale(s) }

// DivAssign sets v to v/s.
func (v *Size2[T]) DivAssign(s T) { *v = v.Div(s) }

// Hadamard returns the element-wise product of v and o.
func (v Size2[T]) Hadamard(o Size2[T]) Size2[T] {
	ewMul(v[:], v[:], o[:])
	return v
}

// HadamardDiv returns the element-wise quotient of v by o.
func (v Size2[T]) HadamardDiv(o Size2[T]) Size2[T] {
	ewQuo(v[:], v[:], o[:])
	return v
}

// Neg returns -v.
func (v Size2[T]) Neg() Size2[T] {
	ewNeg(v[:], v[:])
	return v
}

// Equal reports exact element-wise equality; it agrees with ==.
func (v Size2[T]) Equal(o Size2[T]) bool { return v == o }

// Size3 is an extent in 3 dimensions. Volume exists only here.
type Size3[T Number] [3]T

// Rows is 1: vector roles are single-row matrices.
func (Size3[T]) Rows() int { return 1 }

// Cols returns the dimension.
func (Size3[T]) Cols() int { return 3 }

// Len returns the dimension.
func (Size3[T]) Len() int { return 3 }

// At returns the element at (0, col). It panics unless row is 0.
func (v Size3[T]) At(row, col int) T {
	checkIndex(row, 1)
	return v[col]
}

// Index returns v[i].
func (v Size3[T]) Index(i int) T { return v[i] }

// Values yields the elements in order.
func (v Size3[T]) Values() iter.Seq[T] { return values(v[:]) }

// Row returns v as a 1×3 matrix, for products with non-square matrices.
func (v Size3[T]) Row() Matrix[D1, D3, T] {
	var m Matrix[D1, D3, T]
	copy(m.e[:], v[:])
	return m
}

// String renders v as a single matrix row.
func (v Size3[T]) String() string { return formatRows(v[:], 1, 3) }

// Width returns element 0.
func (v Size3[T]) Width() T { return v[0] }

// Height returns element 1.
func (v Size3[T]) Height() T { return v[1] }

// Depth returns element 2.
func (v Size3[T]) Depth() T { return v[2] }

// Add returns v+o.
func (v Size3[T]) Add(o Size3[T]) Size3[T] {
	ewAdd(v[:], v[:], o[:])
	return v
}

// Sub returns v-o.
func (v Size3[T]) Sub(o Size3[T]) Size3[T] {
	ewSub(v[:], v[:], o[:])
	return v
}

// AddAssign sets v to v+o.
func (v *Size3[T]) AddAssign(o Size3[T]) { *v = v.Add(o) }

// SubAssign sets v to v-o.
func (v *Size3[T]) SubAssign(o Size3[T]) { *v = v.Sub(o) }

// Scale returns v*s.
func (v Size3[T]) Scale(s T) Size3[T] {
	ewScale(v[:], v[:], s)
	return v
}

// Div returns v/s.
func (v Size3[T]) Div(s T) Size3[T] {
	ewDiv(v[:], v[:], s)
	return v
}

// ScaleAssign sets v to v*s.
func (v *Size3[T]) ScaleAssign(s T) { *v = v.Scale(s) }

// DivAssign sets v to v/s.
func (v *Size3[T]) DivAssign(s T) { *v = v.Div(s) }

// Hadamard returns the element-wise product of v and o.
func (v Size3[T]) Hadamard(o Size3[T]) Size3[T] {
	ewMul(v[:], v[:], o[:])
	return v
}

// HadamardDiv returns the element-wise quotient of v by o.
func (v Size3[T]) HadamardDiv(o Size3[T]) Size3[T] {
	ewQuo(v[:], v[:], o[:])
	return v
}

// Neg returns -v.
func (v Size3[T]) Neg() Size3[T] {
	ewNeg(v[:], v[:])
	return v
}

// Equal reports exact element-wise equality; it agrees with ==.
func (v Size3[T]) Equal(o Size3[T]) bool { return v == o }

// Area returns Width*Height.
func (v Size2[T]) Area() T { return v[0] * v[1] }

// Volume returns Width*Height*Depth.
func (v Size3[T]) Volume() T { return v[0] * v[1] * v[2] }
