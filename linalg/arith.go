// SPDX-License-Identifier: MIT

package linalg

// Element-wise arithmetic on Matrix. Binary forms return a new value; the
// *Assign forms update the receiver in place.

// Add returns m+o.
func (m Matrix[R, C, T]) Add(o Matrix[R, C, T]) Matrix[R, C, T] {
	d := m.live()
	ewAdd(d, d, o.live())
	return m
}

// Sub returns m-o.
func (m Matrix[R, C, T]) Sub(o Matrix[R, C, T]) Matrix[R, C, T] {
	d := m.live()
	ewSub(d, d, o.live())
	return m
}

// AddAssign sets m to m+o.
func (m *Matrix[R, C, T]) AddAssign(o Matrix[R, C, T]) { *m = m.Add(o) }

// SubAssign sets m to m-o.
func (m *Matrix[R, C, T]) SubAssign(o Matrix[R, C, T]) { *m = m.Sub(o) }

// Scale returns m*s. Use ScaleBy for the scalar-on-the-left spelling.
func (m Matrix[R, C, T]) Scale(s T) Matrix[R, C, T] {
	d := m.live()
	ewScale(d, d, s)
	return m
}

// Div returns m/s. Integer division by zero panics; float division follows
// IEEE 754.
func (m Matrix[R, C, T]) Div(s T) Matrix[R, C, T] {
	d := m.live()
	ewDiv(d, d, s)
	return m
}

// ScaleAssign sets m to m*s.
func (m *Matrix[R, C, T]) ScaleAssign(s T) { *m = m.Scale(s) }

// DivAssign sets m to m/s.
func (m *Matrix[R, C, T]) DivAssign(s T) { *m = m.Div(s) }

// Hadamard returns the element-wise product of m and o.
func (m Matrix[R, C, T]) Hadamard(o Matrix[R, C, T]) Matrix[R, C, T] {
	d := m.live()
	ewMul(d, d, o.live())
	return m
}

// HadamardDiv returns the element-wise quotient of m by o.
func (m Matrix[R, C, T]) HadamardDiv(o Matrix[R, C, T]) Matrix[R, C, T] {
	d := m.live()
	ewQuo(d, d, o.live())
	return m
}

// HadamardAssign sets m to the element-wise product of m and o.
func (m *Matrix[R, C, T]) HadamardAssign(o Matrix[R, C, T]) { *m = m.Hadamard(o) }

// HadamardDivAssign sets m to the element-wise quotient of m by o.
func (m *Matrix[R, C, T]) HadamardDivAssign(o Matrix[R, C, T]) { *m = m.HadamardDiv(o) }

// Neg returns -m.
func (m Matrix[R, C, T]) Neg() Matrix[R, C, T] {
	d := m.live()
	ewNeg(d, d)
	return m
}

// Equal reports exact element-wise equality; it agrees with ==.
func (m Matrix[R, C, T]) Equal(o Matrix[R, C, T]) bool {
	return ewEqual(m.live(), o.live())
}

// ScaleBy returns s*v for any value with a Scale method. Element-wise
// scaling commutes, so this equals v.Scale(s).
func ScaleBy[T Number, V interface{ Scale(T) V }](s T, v V) V {
	return v.Scale(s)
}
