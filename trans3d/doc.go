// SPDX-License-Identifier: MIT

// Package trans3d builds 3×3 linear transformation matrices.
//
// The conventions are those of trans2d: row vectors transformed by v.Mul(m),
// unit axes that are never renormalised, and an explicit element type where
// no parameter carries it.
package trans3d
