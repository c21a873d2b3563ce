// SPDX-License-Identifier: MIT

package trans2d_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvmath/angle"
	"github.com/katalvlaran/lvmath/linalg"
	"github.com/katalvlaran/lvmath/trans2d"
)

type vec = linalg.Vec2[float64]

const (
	margin    = 1e-14
	relMargin = 1e-12
)

func requireClose(t require.TestingT, want, got linalg.Dimensional[float64]) {
	require.True(t, linalg.AllClose(want, got, linalg.WithAbsTolerance(margin), linalg.WithRelTolerance(relMargin)), "want\n%v\ngot\n%v", want, got)
}

func unit(t require.TestingT, x, y float64) linalg.UnitVec2[float64] {
	u, err := linalg.NewUnitVec2(vec{x, y})
	require.NoError(t, err)
	return u
}

// Trans2DSuite applies every builder to the same handful of vectors.
type Trans2DSuite struct {
	suite.Suite
	zero, i, j, a, b vec
}

func (s *Trans2DSuite) SetupTest() {
	s.zero = vec{0, 0}
	s.i = vec{1, 0}
	s.j = vec{0, 1}
	s.a = vec{0.5, -2}
	s.b = vec{-0.5, 2}
}

func (s *Trans2DSuite) TestRotate() {
	rot := trans2d.Rotate[float64](90 * angle.Deg)
	s.Require().Equal(rot, trans2d.Rotate[float64](angle.Radian(math.Pi/2)))

	s.Require().Equal(s.zero, s.zero.Mul(rot))
	requireClose(s.T(), s.j, s.i.Mul(rot))
	requireClose(s.T(), s.i.Neg(), s.j.Mul(rot))
	requireClose(s.T(), vec{2, 0.5}, s.a.Mul(rot))
	requireClose(s.T(), vec{-2, -0.5}, s.b.Mul(rot))
}

func (s *Trans2DSuite) TestRotate_Composes() {
	quarter := trans2d.Rotate[float64](angle.RightAngle)
	half := linalg.Mul(quarter, quarter)
	requireClose(s.T(), trans2d.Rotate[float64](angle.HalfTurn), half)
	requireClose(s.T(), s.i.Neg(), s.i.Mul(half))
}

func (s *Trans2DSuite) TestScale() {
	sc := trans2d.Scale(3.0, 2.0)
	s.Require().Equal(s.zero, s.zero.Mul(sc))
	s.Require().Equal(s.i.Scale(3), s.i.Mul(sc))
	s.Require().Equal(s.j.Scale(2), s.j.Mul(sc))
	s.Require().Equal(vec{s.a.X() * 3, s.a.Y() * 2}, s.a.Mul(sc))
	s.Require().Equal(vec{s.b.X() * 3, s.b.Y() * 2}, s.b.Mul(sc))
}

func (s *Trans2DSuite) TestScaleAlong() {
	sc := trans2d.ScaleAlong(5, unit(s.T(), 1, 1))

	pp := vec{0.5, 0.5}
	pn := vec{2, -2}
	nn := vec{-3, -3}
	np := vec{-1.5, 1.5}

	s.Require().Equal(s.zero, s.zero.Mul(sc))
	requireClose(s.T(), pp.Scale(5), pp.Mul(sc))
	requireClose(s.T(), pn, pn.Mul(sc))
	requireClose(s.T(), nn.Scale(5), nn.Mul(sc))
	requireClose(s.T(), np, np.Mul(sc))
}

func (s *Trans2DSuite) TestProjectOntoAxes() {
	px := trans2d.ProjectOntoX[float64]()
	s.Require().Equal(s.i, s.i.Mul(px))
	s.Require().Equal(s.zero, s.j.Mul(px))
	s.Require().Equal(vec{s.a.X(), 0}, s.a.Mul(px))

	py := trans2d.ProjectOntoY[float64]()
	s.Require().Equal(s.zero, s.i.Mul(py))
	s.Require().Equal(s.j, s.j.Mul(py))
	s.Require().Equal(vec{0, s.b.Y()}, s.b.Mul(py))
}

func (s *Trans2DSuite) TestProjectAlong() {
	onto := unit(s.T(), 3, 1)
	along := linalg.AssumeUnit2(vec{onto.Y(), -onto.X()})
	proj := trans2d.ProjectAlong(along)

	s.Require().Equal(s.zero, s.zero.Mul(proj))
	for _, v := range []vec{s.i, s.j, s.a, s.b} {
		requireClose(s.T(), onto.Vec().Scale(v.Dot(onto.Vec())), v.Mul(proj))
	}
}

func (s *Trans2DSuite) TestReflectAxes() {
	rx := trans2d.ReflectAlongX[float64]()
	s.Require().Equal(s.i.Neg(), s.i.Mul(rx))
	s.Require().Equal(s.j, s.j.Mul(rx))
	s.Require().Equal(vec{-s.a.X(), s.a.Y()}, s.a.Mul(rx))

	ry := trans2d.ReflectAlongY[float64]()
	s.Require().Equal(s.i, s.i.Mul(ry))
	s.Require().Equal(s.j.Neg(), s.j.Mul(ry))
	s.Require().Equal(vec{s.b.X(), -s.b.Y()}, s.b.Mul(ry))
}

func (s *Trans2DSuite) TestReflectAlong() {
	along := unit(s.T(), 1, -1)
	ref := trans2d.ReflectAlong(along)

	s.Require().Equal(ref, trans2d.ReflectAlong(along.Neg()))
	s.Require().Equal(s.zero, s.zero.Mul(ref))
	requireClose(s.T(), s.j, s.i.Mul(ref))
	requireClose(s.T(), s.i, s.j.Mul(ref))
	requireClose(s.T(), vec{s.a.Y(), s.a.X()}, s.a.Mul(ref))
	requireClose(s.T(), vec{s.b.Y(), s.b.X()}, s.b.Mul(ref))
}

func (s *Trans2DSuite) TestShear() {
	sx := trans2d.ShearX(2.0)
	s.Require().Equal(s.i, s.i.Mul(sx))
	s.Require().Equal(s.j.Add(s.i.Scale(2)), s.j.Mul(sx))
	s.Require().Equal(vec{-3.5, -2}, s.a.Mul(sx))
	s.Require().Equal(vec{3.5, 2}, s.b.Mul(sx))

	sy := trans2d.ShearY(-0.2)
	requireClose(s.T(), s.i.Sub(s.j.Scale(0.2)), s.i.Mul(sy))
	s.Require().Equal(s.j, s.j.Mul(sy))
	requireClose(s.T(), vec{0.5, -2.1}, s.a.Mul(sy))
	requireClose(s.T(), vec{-0.5, 2.1}, s.b.Mul(sy))
}

func TestTrans2DSuite(t *testing.T) {
	suite.Run(t, new(Trans2DSuite))
}

func TestReflectAlong_AxisSign(t *testing.T) {
	t.Parallel()

	for _, dir := range []vec{{1, 0}, {0.3, 0.7}, {-2, 5}, {1e-3, -1}} {
		u, err := linalg.NewUnitVec2(dir)
		require.NoError(t, err)
		require.Equal(t, trans2d.ReflectAlong(u), trans2d.ReflectAlong(u.Neg()))
		require.Equal(t, trans2d.ScaleAlong(0.25, u), trans2d.ScaleAlong(0.25, u.Neg()))
	}
}

func TestFloat32(t *testing.T) {
	t.Parallel()

	rot := trans2d.Rotate[float32](90 * angle.Deg)
	got := linalg.Vec2[float32]{1, 0}.Mul(rot)
	require.InDelta(t, 0, got.X(), 1e-7)
	require.InDelta(t, 1, got.Y(), 1e-7)
}
