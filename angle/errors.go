// SPDX-License-Identifier: MIT

package angle

import "errors"

// Sentinel errors returned by the text codec. Match them with errors.Is.
var (
	// ErrSyntax is returned when the magnitude of an angle cannot be parsed.
	ErrSyntax = errors.New("angle: invalid syntax")

	// ErrUnknownUnit is returned for a unit suffix other than rad, deg or °.
	ErrUnknownUnit = errors.New("angle: unknown unit")

	// ErrUnitMismatch is returned when a Degree is decoded from radian text.
	// Radian to Degree is never implicit, not even through text.
	ErrUnitMismatch = errors.New("angle: radian text cannot decode into Degree")
)
