// SPDX-License-Identifier: MIT

package angle

import "math"

// Sin returns the sine of a.
func Sin(a Angle) float64 { return math.Sin(float64(a.Radians())) }

// Cos returns the cosine of a.
func Cos(a Angle) float64 { return math.Cos(float64(a.Radians())) }

// Tan returns the tangent of a.
func Tan(a Angle) float64 { return math.Tan(float64(a.Radians())) }

// Asin applies math.Asin to the radian magnitude of a.
func Asin(a Angle) float64 { return math.Asin(float64(a.Radians())) }

// Acos applies math.Acos to the radian magnitude of a.
func Acos(a Angle) float64 { return math.Acos(float64(a.Radians())) }

// Atan applies math.Atan to the radian magnitude of a.
func Atan(a Angle) float64 { return math.Atan(float64(a.Radians())) }

// Atan2 returns the angle of the point (x, y) measured from the positive X axis.
func Atan2(y, x float64) Radian { return Radian(math.Atan2(y, x)) }
