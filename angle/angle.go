// SPDX-License-Identifier: MIT

package angle

import "math"

// Radian is an angle expressed in radians.
type Radian float64

// Degree is an angle expressed in degrees.
type Degree float64

// Angle is implemented by every unit. Radians returns the canonical view.
type Angle interface {
	Radians() Radian
}

// Unit constants, in the style of time.Second: 90*Deg, 1.5*Rad.
const (
	Rad Radian = 1
	Deg Degree = 1
)

// Common angles.
const (
	RightAngle Degree = 90
	HalfTurn   Degree = 180
	Turn       Degree = 360
)

// radiansPerDegree is computed in double precision (2π rounded, then divided
// by 360) so that conversions reproduce the reference values bit for bit.
var (
	twoPi            = 2 * math.Pi
	radiansPerDegree = twoPi / 360
)

// Compile-time conformance.
var (
	_ Angle = Radian(0)
	_ Angle = Degree(0)
)

// Value returns the raw magnitude in radians.
func (r Radian) Value() float64 { return float64(r) }

// Radians returns r unchanged.
func (r Radian) Radians() Radian { return r }

// Degrees converts r to degrees. This is the only way from Radian to Degree.
func (r Radian) Degrees() Degree {
	return Degree(float64(r) / radiansPerDegree)
}

// Scale returns r multiplied by the raw factor f.
func (r Radian) Scale(f float64) Radian { return Radian(float64(r) * f) }

// Div returns r divided by the raw factor f.
func (r Radian) Div(f float64) Radian { return Radian(float64(r) / f) }

// Neg returns -r.
func (r Radian) Neg() Radian { return -r }

// Value returns the raw magnitude in degrees.
func (d Degree) Value() float64 { return float64(d) }

// Radians converts d to the canonical unit.
func (d Degree) Radians() Radian {
	return Radian(float64(d) * radiansPerDegree)
}

// Degrees returns d unchanged.
func (d Degree) Degrees() Degree { return d }

// Scale returns d multiplied by the raw factor f.
func (d Degree) Scale(f float64) Degree { return Degree(float64(d) * f) }

// Div returns d divided by the raw factor f.
func (d Degree) Div(f float64) Degree { return Degree(float64(d) / f) }

// Neg returns -d.
func (d Degree) Neg() Degree { return -d }
