// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"iter"
)

// Matrix is an R×C matrix of T stored row-major. R and C are dimension
// markers, so the shape is fixed by the type and never checked at runtime.
//
// The zero value is the zero matrix. Matrices are comparable with ==, which
// is exact element-wise equality.
type Matrix[R, C Dim, T Number] struct {
	// e holds Rows*Cols elements in its head; the tail stays zero so that
	// == compares only the live elements.
	e [maxElems]T
}

// Square matrix shorthands.
type (
	Mat2[T Number] = Matrix[D2, D2, T]
	Mat3[T Number] = Matrix[D3, D3, T]
	Mat4[T Number] = Matrix[D4, D4, T]
)

// New builds a matrix from its elements in row-major order.
//
// Errors:
//   - ErrElementCount if len(elems) != Rows*Cols.
//
// Notes:
//   - The shape comes from the explicit type arguments; T is inferred:
//     New[D2, D3](1.0, 2, 3, 4, 5, 6).
func New[R, C Dim, T Number](elems ...T) (Matrix[R, C, T], error) {
	var m Matrix[R, C, T]
	if len(elems) != m.Len() {
		return m, fmt.Errorf("New %dx%d: got %d elements: %w", m.Rows(), m.Cols(), len(elems), ErrElementCount)
	}
	copy(m.e[:], elems)

	return m, nil
}

// MustNew is like New but panics on a wrong element count. It is meant for
// literals in package-level variables and tests.
func MustNew[R, C Dim, T Number](elems ...T) Matrix[R, C, T] {
	m, err := New[R, C](elems...)
	if err != nil {
		panic(err)
	}
	return m
}

// Zero returns the R×C zero matrix.
func Zero[R, C Dim, T Number]() Matrix[R, C, T] {
	return Matrix[R, C, T]{}
}

// Identity returns the N×N identity matrix. Non-square identities cannot be
// expressed.
func Identity[N Dim, T Number]() Matrix[N, N, T] {
	var m Matrix[N, N, T]
	n := dimLen[N]()
	for i := 0; i < n; i++ {
		m.e[i*n+i] = 1
	}
	return m
}

// Rows returns the row count.
func (Matrix[R, C, T]) Rows() int { return dimLen[R]() }

// Cols returns the column count.
func (Matrix[R, C, T]) Cols() int { return dimLen[C]() }

// Len returns Rows*Cols.
func (Matrix[R, C, T]) Len() int { return dimLen[R]() * dimLen[C]() }

// live returns the Rows*Cols head of the storage.
func (m *Matrix[R, C, T]) live() []T {
	n := m.Len()
	return m.e[:n:n]
}

// At returns the element at (row, col). It panics when either index is out
// of range.
func (m Matrix[R, C, T]) At(row, col int) T {
	cols := m.Cols()
	checkIndex(row, m.Rows())
	checkIndex(col, cols)
	return m.e[row*cols+col]
}

// Set writes v at (row, col).
func (m *Matrix[R, C, T]) Set(row, col int, v T) {
	cols := m.Cols()
	checkIndex(row, m.Rows())
	checkIndex(col, cols)
	m.e[row*cols+col] = v
}

// Index returns the i-th element in row-major order.
func (m Matrix[R, C, T]) Index(i int) T {
	checkIndex(i, m.Len())
	return m.e[i]
}

// SetIndex writes the i-th element in row-major order.
func (m *Matrix[R, C, T]) SetIndex(i int, v T) {
	checkIndex(i, m.Len())
	m.e[i] = v
}

// Row returns a live view of row r; writes through it modify m.
func (m *Matrix[R, C, T]) Row(r int) []T {
	cols := m.Cols()
	checkIndex(r, m.Rows())
	return m.e[r*cols : (r+1)*cols : (r+1)*cols]
}

// Data returns the elements in row-major order as a live view of m's storage,
// for bulk operations. The slice has length and capacity Rows*Cols.
func (m *Matrix[R, C, T]) Data() []T { return m.live() }

// Values yields the elements in row-major order. The sequence is finite and
// may be ranged over more than once.
func (m Matrix[R, C, T]) Values() iter.Seq[T] { return values(m.live()) }

// All yields (linear index, element) pairs in row-major order.
func (m Matrix[R, C, T]) All() iter.Seq2[int, T] { return all(m.live()) }

// SetZero resets every element to zero.
func (m *Matrix[R, C, T]) SetZero() { *m = Matrix[R, C, T]{} }

// String renders one "| e0 e1 ... |" line per row.
func (m Matrix[R, C, T]) String() string { return formatRows(m.live(), m.Rows(), m.Cols()) }

// Convert returns m with every element converted to U using Go's conversion
// rules (float to int truncates toward zero). Degree elements become Radian
// through Degree.Radians; Radian to Degree panics.
func Convert[U Number, R, C Dim, T Number](m Matrix[R, C, T]) Matrix[R, C, U] {
	var out Matrix[R, C, U]
	ewConvert(out.live(), m.live())
	return out
}
