// SPDX-License-Identifier: MIT

package linalg

// Element-type conversions. They are always explicit and follow Go's
// conversion rules element by element (float to integer truncates toward
// zero, narrowing integers wrap). Role changes at a fixed element type use a
// plain Go conversion instead: Vec3[float64](p).
//
// Angle units are the exception: angle.Degree elements converted to
// angle.Radian are rescaled by 2π/360, and angle.Radian to angle.Degree
// panics. Conversions between an angle unit and a plain number keep the raw
// magnitude.

// ConvertVec2 returns v with every element converted to U.
func ConvertVec2[U, T Number](v Vec2[T]) Vec2[U] {
	var out Vec2[U]
	ewConvert(out[:], v[:])
	return out
}

// ConvertVec3 returns v with every element converted to U.
func ConvertVec3[U, T Number](v Vec3[T]) Vec3[U] {
	var out Vec3[U]
	ewConvert(out[:], v[:])
	return out
}

// ConvertVec4 returns v with every element converted to U.
func ConvertVec4[U, T Number](v Vec4[T]) Vec4[U] {
	var out Vec4[U]
	ewConvert(out[:], v[:])
	return out
}

// ConvertPosition2 returns v with every element converted to U.
func ConvertPosition2[U, T Number](v Position2[T]) Position2[U] {
	var out Position2[U]
	ewConvert(out[:], v[:])
	return out
}

// ConvertPosition3 returns v with every element converted to U.
func ConvertPosition3[U, T Number](v Position3[T]) Position3[U] {
	var out Position3[U]
	ewConvert(out[:], v[:])
	return out
}

// ConvertPosition4 returns v with every element converted to U.
func ConvertPosition4[U, T Number](v Position4[T]) Position4[U] {
	var out Position4[U]
	ewConvert(out[:], v[:])
	return out
}

// ConvertSize2 returns v with every element converted to U.
func ConvertSize2[U, T Number](v Size2[T]) Size2[U] {
	var out Size2[U]
	ewConvert(out[:], v[:])
	return out
}

// ConvertSize3 returns v with every element converted to U.
func ConvertSize3[U, T Number](v Size3[T]) Size3[U] {
	var out Size3[U]
	ewConvert(out[:], v[:])
	return out
}
