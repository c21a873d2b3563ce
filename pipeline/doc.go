// SPDX-License-Identifier: MIT

// Package pipeline decodes declarative chains of transformation steps from
// YAML or TOML and builds them into transforms over 2D or 3D positions.
//
// A pipeline file names its dimension and lists steps in application order:
//
//	name: tilt
//	dimensions: 2
//	steps:
//	  - op: rotate
//	    angle: 90 deg
//	  - op: scale
//	    factors: [2, 1]
//	  - op: translate
//	    offset: [10, 0]
//
// Angles accept "rad", "deg" or "°" suffixes; a bare number is radians.
// Consecutive linear steps are fused into one matrix; translations stay
// separate stages since a linear matrix cannot express them.
package pipeline
