// SPDX-License-Identifier: MIT

package pipeline

import "errors"

var (
	// ErrUnknownFormat is returned for a format or file extension other than
	// YAML or TOML.
	ErrUnknownFormat = errors.New("pipeline: unknown format")

	// ErrUnknownField indicates a key that no Spec or Step field accepts.
	ErrUnknownField = errors.New("pipeline: unknown field")

	// ErrDimensions indicates a dimension other than 2 or 3, or one that
	// disagrees with WithDimensions or the builder in use.
	ErrDimensions = errors.New("pipeline: unsupported dimensions")

	// ErrUnknownOp indicates a step operation that does not exist.
	ErrUnknownOp = errors.New("pipeline: unknown operation")

	// ErrUnknownPlane indicates a plane or coordinate axis name that the
	// operation does not accept in this dimension.
	ErrUnknownPlane = errors.New("pipeline: unknown plane")

	// ErrArity indicates a list field with the wrong number of values.
	ErrArity = errors.New("pipeline: wrong number of values")
)

const panicDimensionsInvalid = "pipeline: WithDimensions: n must be 2 or 3"
