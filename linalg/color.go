// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"
	"image/color"
	"iter"
	"strings"

	"golang.org/x/image/colornames"
)

// RGB is a colour triple. It exposes channel access, equality and rendering
// only; colour arithmetic is not offered.
type RGB[T Number] [3]T

// Rgb8 is the 8-bit-per-channel colour used by the named colours.
type Rgb8 = RGB[uint8]

// Named colours.
var (
	Black = Rgb8{0, 0, 0}
	White = Rgb8{255, 255, 255}
	Red   = Rgb8{255, 0, 0}
	Green = Rgb8{0, 255, 0}
	Blue  = Rgb8{0, 0, 255}
)

// Rows is 1: vector roles are single-row matrices.
func (RGB[T]) Rows() int { return 1 }

// Cols returns the dimension.
func (RGB[T]) Cols() int { return 3 }

// Len returns the dimension.
func (RGB[T]) Len() int { return 3 }

// At returns the element at (0, col). It panics unless row is 0.
func (c RGB[T]) At(row, col int) T {
	checkIndex(row, 1)
	return c[col]
}

// Index returns c[i].
func (c RGB[T]) Index(i int) T { return c[i] }

// Values yields the elements in order.
func (c RGB[T]) Values() iter.Seq[T] { return values(c[:]) }

// R returns the red channel.
func (c RGB[T]) R() T { return c[0] }

// G returns the green channel.
func (c RGB[T]) G() T { return c[1] }

// B returns the blue channel.
func (c RGB[T]) B() T { return c[2] }

// Equal reports whether both colours have identical channels.
func (c RGB[T]) Equal(o RGB[T]) bool { return c == o }

// String renders the channels right-aligned in braces: "{  0;   0; 255}".
func (c RGB[T]) String() string {
	return fmt.Sprintf("{%3v; %3v; %3v}", c[0], c[1], c[2])
}

// ToRGBA returns c as an opaque color.RGBA. Channels are expected in 0..255
// and are converted with Go's conversion rules.
func (c RGB[T]) ToRGBA() color.RGBA {
	return color.RGBA{R: uint8(c[0]), G: uint8(c[1]), B: uint8(c[2]), A: 0xff}
}

// FromColor returns the 8-bit channels of any image/color value. Alpha is
// dropped; premultiplied inputs keep their premultiplied channels.
func FromColor(c color.Color) Rgb8 {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return Rgb8{rgba.R, rgba.G, rgba.B}
}

// NamedColor looks up an SVG 1.1 colour keyword such as "cornflowerblue".
// Matching ignores case.
//
// Errors:
//   - ErrUnknownColor if the name is not an SVG keyword.
func NamedColor(name string) (Rgb8, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return Rgb8{}, fmt.Errorf("NamedColor %q: %w", name, ErrUnknownColor)
	}
	return Rgb8{c.R, c.G, c.B}, nil
}

// ConvertRGB returns c with every channel converted to U.
func ConvertRGB[U, T Number](c RGB[T]) RGB[U] {
	var out RGB[U]
	ewConvert(out[:], c[:])
	return out
}
