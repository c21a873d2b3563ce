// SPDX-License-Identifier: MIT

package linalg

import "golang.org/x/exp/constraints"

// Number is the set of element types. Defined types over the built-in
// numbers (angle.Radian, angle.Degree) qualify.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float restricts elements to floating-point types. Transformation matrices
// and tolerance checks need it.
type Float interface {
	constraints.Float
}
