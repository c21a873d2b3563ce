// SPDX-License-Identifier: MIT

package pipeline

import (
	"slices"

	"github.com/katalvlaran/lvmath/linalg"
)

// point is a position that square matrices transform and displacements move.
type point[P, M, V any] interface {
	linalg.Additive[P, V]
	Mul(M) P
}

// stage is either a linear map m or a translation by d.
type stage[M, V any] struct {
	translate bool
	m         M
	d         V
}

// Transform is a built pipeline: linear stages and translations applied in
// order to positions.
type Transform[P point[P, M, V], M interface{ Mul(M) M }, V any] struct {
	name     string
	identity M
	stages   []stage[M, V]
}

// Transform2D transforms 2D positions.
type Transform2D = Transform[linalg.Position2[float64], linalg.Mat2[float64], linalg.Vec2[float64]]

// Transform3D transforms 3D positions.
type Transform3D = Transform[linalg.Position3[float64], linalg.Mat3[float64], linalg.Vec3[float64]]

// Name returns the pipeline name from its Spec.
func (t Transform[P, M, V]) Name() string { return t.name }

// Stages returns the number of stages after fusing consecutive linear steps.
func (t Transform[P, M, V]) Stages() int { return len(t.stages) }

// Linear returns the single matrix equivalent to t. ok is false when t
// contains a translation. An empty pipeline is the identity.
func (t Transform[P, M, V]) Linear() (m M, ok bool) {
	m = t.identity
	for _, s := range t.stages {
		if s.translate {
			return m, false
		}
		m = m.Mul(s.m)
	}
	return m, true
}

// Apply transforms one position.
func (t Transform[P, M, V]) Apply(p P) P {
	for _, s := range t.stages {
		if s.translate {
			p = p.Add(s.d)
		} else {
			p = p.Mul(s.m)
		}
	}
	return p
}

// ApplyAll transforms every position and returns them in a new slice.
func (t Transform[P, M, V]) ApplyAll(ps []P) []P {
	out := slices.Clone(ps)
	for _, s := range t.stages {
		if s.translate {
			out = linalg.Translate(out, s.d)
		} else {
			out = linalg.TransformAll(out, s.m)
		}
	}
	return out
}

func (t *Transform[P, M, V]) pushLinear(m M) {
	if n := len(t.stages); n > 0 && !t.stages[n-1].translate {
		// row vectors: applying a then b is a·b
		t.stages[n-1].m = t.stages[n-1].m.Mul(m)
		return
	}
	t.stages = append(t.stages, stage[M, V]{m: m})
}

func (t *Transform[P, M, V]) pushTranslate(d V) {
	t.stages = append(t.stages, stage[M, V]{translate: true, d: d})
}
