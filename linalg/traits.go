// SPDX-License-Identifier: MIT

package linalg

// Additive is satisfied by L when an R can be added to and subtracted from
// it, giving an L. Matrix, Vec and Size are Additive with themselves;
// Position is Additive with the Vec of its dimension only.
type Additive[L, R any] interface {
	Add(R) L
	Sub(R) L
}

// Dimensional is the read surface shared by every matrix-shaped role.
type Dimensional[T Number] interface {
	Rows() int
	Cols() int
	Len() int
	At(row, col int) T
	Index(i int) T
}

// shaped is the element-type independent part of Dimensional.
type shaped interface {
	Rows() int
	Cols() int
	Len() int
}

// IsDimensional reports whether v is one of this package's matrix-shaped
// values (Matrix, Vec, Position, Size, RGB, UnitVec).
func IsDimensional(v any) bool {
	_, ok := v.(shaped)
	return ok
}

// Sum folds vs with Add, starting from the zero value. Positions cannot be
// summed: Position is not Additive with itself.
func Sum[V Additive[V, V]](vs ...V) V {
	var total V
	for _, v := range vs {
		total = total.Add(v)
	}
	return total
}

// Translate returns a new slice holding every point moved by d.
func Translate[P Additive[P, D], D any](points []P, d D) []P {
	out := make([]P, len(points))
	for i, p := range points {
		out[i] = p.Add(d)
	}
	return out
}

// TransformAll returns a new slice holding v·m for every v, using the
// row-vector convention.
func TransformAll[V interface{ Mul(M) V }, M any](vs []V, m M) []V {
	out := make([]V, len(vs))
	for i, v := range vs {
		out[i] = v.Mul(m)
	}
	return out
}
