// SPDX-License-Identifier: MIT

package linalg

import "fmt"

// Rect is an axis-aligned rectangle anchored at its bottom-left corner.
// A Y axis pointing up is assumed for the corner names.
type Rect[T Number] struct {
	Origin Position2[T]
	Size   Size2[T]
}

// X returns the X coordinate of the origin.
func (r Rect[T]) X() T { return r.Origin[0] }

// Y returns the Y coordinate of the origin.
func (r Rect[T]) Y() T { return r.Origin[1] }

// Width returns the horizontal extent.
func (r Rect[T]) Width() T { return r.Size[0] }

// Height returns the vertical extent.
func (r Rect[T]) Height() T { return r.Size[1] }

// Area returns Width*Height.
func (r Rect[T]) Area() T { return r.Size.Area() }

// BottomLeft is the origin.
func (r Rect[T]) BottomLeft() Position2[T] { return r.Origin }

// TopLeft returns the origin moved up by Height.
func (r Rect[T]) TopLeft() Position2[T] {
	return r.Origin.Add(Vec2[T]{0, r.Size[1]})
}

// TopRight returns the corner opposite the origin.
func (r Rect[T]) TopRight() Position2[T] {
	return r.Origin.Add(Vec2[T](r.Size))
}

// BottomRight returns the origin moved right by Width.
func (r Rect[T]) BottomRight() Position2[T] {
	return r.Origin.Add(Vec2[T]{r.Size[0], 0})
}

// Contains reports whether p lies inside r or on its border.
func (r Rect[T]) Contains(p Position2[T]) bool {
	return p[0] >= r.Origin[0] && p[1] >= r.Origin[1] &&
		p[0] <= r.Origin[0]+r.Size[0] && p[1] <= r.Origin[1]+r.Size[1]
}

// String renders the origin and size.
func (r Rect[T]) String() string {
	return fmt.Sprintf("Rect{origin: %v, size: %v}", r.Origin, r.Size)
}
