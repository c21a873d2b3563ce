// SPDX-License-Identifier: MIT

// Package angle provides unit-tagged angle scalars.
//
// Two units exist, Radian and Degree. Both are float64-backed defined types,
// so arithmetic between two values of the same unit uses the ordinary Go
// operators, while mixing units is rejected by the compiler:
//
//	a := 90 * angle.Deg           // angle.Degree
//	b := a + 45*angle.Deg          // fine
//	c := a + angle.Rad             // compile error: mismatched types
//
// Radian is the canonical unit. The Angle interface is the radian view of any
// unit, so every API typed on Angle accepts a Degree as well (the implicit
// upgrade). Going the other way always requires an explicit Degrees() call.
//
// Trigonometric helpers (Sin, Cos, Tan, ...) accept any Angle and normalise to
// radians before delegating to package math.
//
// Because both units have float64 as underlying type they are valid element
// types for the linalg vector and matrix families.
//
// Angles are float64 only. There are no float32 or integer angle types and
// no per-precision literals; convert through Value when another precision is
// needed, e.g. float32(a.Value()).
package angle
