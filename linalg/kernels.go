// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"

	"github.com/katalvlaran/lvmath/angle"
)

// Private element-wise kernels (ew*) shared by every role. Public methods are
// thin wrappers that hand in the live part of their storage. Loops run flat
// 0..n-1 in row-major order; dst may alias a or b unless stated otherwise.

func ewAdd[T Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func ewSub[T Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func ewScale[T Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] * s
	}
}

func ewDiv[T Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] / s
	}
}

// ewMul is the Hadamard product.
func ewMul[T Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// ewQuo is the Hadamard quotient.
func ewQuo[T Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

func ewNeg[T Number](dst, a []T) {
	for i := range dst {
		dst[i] = -a[i]
	}
}

func ewEqual[T Number](a, b []T) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ewConvert converts src element by element into dst. Degree elements
// converted to Radian are rescaled; Radian to Degree panics since that unit
// change is never implicit.
func ewConvert[U, T Number](dst []U, src []T) {
	var from T
	var to U
	switch any(from).(type) {
	case angle.Degree:
		if _, ok := any(to).(angle.Radian); ok {
			for i := range dst {
				dst[i] = U(angle.Degree(src[i]).Radians())
			}
			return
		}
	case angle.Radian:
		if _, ok := any(to).(angle.Degree); ok {
			panic(panicRadianToDegree)
		}
	}
	for i := range dst {
		dst[i] = U(src[i])
	}
}

// dotKernel returns Σ a[i]*b[i]. Each product is rounded to T before it is
// accumulated, so the result does not depend on fused multiply-add.
func dotKernel[T Number](a, b []T) T {
	var sum T
	for i := range a {
		sum += T(a[i] * b[i])
	}
	return sum
}

// mulKernel writes the r×c product of the r×k matrix a and the k×c matrix b
// into dst. dst must not alias a or b.
func mulKernel[T Number](dst, a, b []T, r, k, c int) {
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			var sum T
			for n := 0; n < k; n++ {
				sum += T(a[i*k+n] * b[n*c+j])
			}
			dst[i*c+j] = sum
		}
	}
}

// transposeKernel writes the c×r transpose of the r×c matrix src into dst.
// dst must not alias src.
func transposeKernel[T Number](dst, src []T, r, c int) {
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			dst[j*r+i] = src[i*c+j]
		}
	}
}

func checkIndex(i, n int) {
	if uint(i) >= uint(n) {
		panic(fmt.Sprintf("%s: %d with length %d", panicIndexOutOfRange, i, n))
	}
}
