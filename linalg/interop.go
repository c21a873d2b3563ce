// SPDX-License-Identifier: MIT

package linalg

import "golang.org/x/image/math/f32"

// Interop with golang.org/x/image/math/f32. The f32 vector types are plain
// arrays and its matrices are row-major, so the layouts match ours element
// for element.

// ToF32Vec2 converts v to an f32.Vec2.
func ToF32Vec2[T Number](v Vec2[T]) f32.Vec2 { return f32.Vec2(ConvertVec2[float32](v)) }

// ToF32Vec3 converts v to an f32.Vec3.
func ToF32Vec3[T Number](v Vec3[T]) f32.Vec3 { return f32.Vec3(ConvertVec3[float32](v)) }

// ToF32Vec4 converts v to an f32.Vec4.
func ToF32Vec4[T Number](v Vec4[T]) f32.Vec4 { return f32.Vec4(ConvertVec4[float32](v)) }

// FromF32Vec2 converts v to a Vec2[float32].
func FromF32Vec2(v f32.Vec2) Vec2[float32] { return Vec2[float32](v) }

// FromF32Vec3 converts v to a Vec3[float32].
func FromF32Vec3(v f32.Vec3) Vec3[float32] { return Vec3[float32](v) }

// FromF32Vec4 converts v to a Vec4[float32].
func FromF32Vec4(v f32.Vec4) Vec4[float32] { return Vec4[float32](v) }

// ToF32Mat3 converts m to an f32.Mat3.
func ToF32Mat3[T Number](m Mat3[T]) f32.Mat3 {
	var out f32.Mat3
	ewConvert(out[:], m.live())
	return out
}

// ToF32Mat4 converts m to an f32.Mat4.
func ToF32Mat4[T Number](m Mat4[T]) f32.Mat4 {
	var out f32.Mat4
	ewConvert(out[:], m.live())
	return out
}

// FromF32Mat3 converts m to a Mat3[float32].
func FromF32Mat3(m f32.Mat3) Mat3[float32] {
	var out Mat3[float32]
	copy(out.e[:], m[:])
	return out
}

// FromF32Mat4 converts m to a Mat4[float32].
func FromF32Mat4(m f32.Mat4) Mat4[float32] {
	var out Mat4[float32]
	copy(out.e[:], m[:])
	return out
}
