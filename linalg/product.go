// SPDX-License-Identifier: MIT

package linalg

// Mul returns the matrix product a·b.
//
// Implementation:
//   - Stage 1: the shared type parameter K makes a's column count equal b's
//     row count; other pairings do not type-check.
//   - Stage 2: reference triple loop, out[r][c] = Σ_k a[r][k]*b[k][c].
//
// Complexity:
//   - Time O(R·K·C), no allocation.
func Mul[R, K, C Dim, T Number](a Matrix[R, K, T], b Matrix[K, C, T]) Matrix[R, C, T] {
	var out Matrix[R, C, T]
	mulKernel(out.e[:], a.e[:], b.e[:], a.Rows(), a.Cols(), b.Cols())
	return out
}

// Mul returns m·o for a square o, which keeps m's shape. Products that change
// the shape go through the Mul function.
func (m Matrix[R, C, T]) Mul(o Matrix[C, C, T]) Matrix[R, C, T] {
	return Mul(m, o)
}

// MulAssign sets m to m·o.
func (m *Matrix[R, C, T]) MulAssign(o Matrix[C, C, T]) { *m = Mul(*m, o) }

// Transpose returns the C×R transpose of m.
func (m Matrix[R, C, T]) Transpose() Matrix[C, R, T] {
	var out Matrix[C, R, T]
	transposeKernel(out.e[:], m.e[:], m.Rows(), m.Cols())
	return out
}
