// SPDX-License-Identifier: MIT

package linalg

import "math"

// Tolerance defaults for AllClose.
const (
	// DefaultAbsTolerance is the absolute slack atol.
	DefaultAbsTolerance = 1e-9

	// DefaultRelTolerance is the relative slack rtol, scaled by |b|.
	DefaultRelTolerance = 0.0
)

// Option adjusts the tolerance policy of AllClose.
type Option func(*tolerance)

type tolerance struct {
	atol float64
	rtol float64
}

// WithAbsTolerance sets the absolute slack. It panics when atol is negative,
// NaN or infinite.
func WithAbsTolerance(atol float64) Option {
	if !validTolerance(atol) {
		panic(panicToleranceInvalid)
	}
	return func(t *tolerance) { t.atol = atol }
}

// WithRelTolerance sets the relative slack. It panics when rtol is negative,
// NaN or infinite.
func WithRelTolerance(rtol float64) Option {
	if !validTolerance(rtol) {
		panic(panicToleranceInvalid)
	}
	return func(t *tolerance) { t.rtol = rtol }
}

func gatherTolerance(opts []Option) tolerance {
	t := tolerance{atol: DefaultAbsTolerance, rtol: DefaultRelTolerance}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

func validTolerance(x float64) bool {
	return x >= 0 && !math.IsInf(x, 0) // NaN fails x >= 0
}

// AllClose reports whether a and b have the same shape and every pair of
// elements satisfies |a-b| ≤ atol + rtol·|b|.
//
// Behavior highlights:
//   - NaN is never close to anything.
//   - An infinity is close only to the same infinity.
//   - Values of different shapes are never close.
//
// Notes:
//   - Defaults are DefaultAbsTolerance and DefaultRelTolerance.
func AllClose[T Float](a, b Dimensional[T], opts ...Option) bool {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	tol := gatherTolerance(opts)
	for i := 0; i < a.Len(); i++ {
		if !isClose(float64(a.Index(i)), float64(b.Index(i)), tol) {
			return false
		}
	}
	return true
}

func isClose(x, y float64, tol tolerance) bool {
	if math.IsNaN(x) || math.IsNaN(y) {
		return false
	}
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return x == y
	}
	return math.Abs(x-y) <= tol.atol+tol.rtol*math.Abs(y)
}
