// SPDX-License-Identifier: MIT

package linalg

import "errors"

// Sentinel errors. Callers match them with errors.Is; call sites wrap them
// with the operation name for context.
var (
	// ErrElementCount is returned when an element list does not hold exactly
	// Rows*Cols values.
	ErrElementCount = errors.New("linalg: element count does not match shape")

	// ErrZeroLength indicates that a zero vector was given where a direction
	// is required (e.g. building a unit axis).
	ErrZeroLength = errors.New("linalg: zero-length vector")

	// ErrUnknownColor indicates that a colour name is not in the SVG 1.1 set.
	ErrUnknownColor = errors.New("linalg: unknown colour name")
)

// Panic messages for programmer errors.
const (
	panicIndexOutOfRange  = "linalg: index out of range"
	panicToleranceInvalid = "linalg: tolerance must be finite, non-negative"
	panicRadianToDegree   = "linalg: Radian elements do not convert to Degree; use Radian.Degrees per element"
)
