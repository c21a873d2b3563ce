// SPDX-License-Identifier: MIT

package linalg

// Dimension markers. They carry no data; a Matrix holds them only as type
// arguments.
type (
	D1 struct{}
	D2 struct{}
	D3 struct{}
	D4 struct{}
)

// Len reports the extent the marker stands for.
func (D1) Len() int { return 1 }

// Len reports the extent the marker stands for.
func (D2) Len() int { return 2 }

// Len reports the extent the marker stands for.
func (D3) Len() int { return 3 }

// Len reports the extent the marker stands for.
func (D4) Len() int { return 4 }

// Dim is satisfied by the dimension markers only.
type Dim interface {
	D1 | D2 | D3 | D4
	Len() int
}

// maxElems is the largest element count of any shape (4x4).
const maxElems = 16

func dimLen[D Dim]() int {
	var d D
	return d.Len()
}
