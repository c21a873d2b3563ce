// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/angle"
	"github.com/katalvlaran/lvmath/linalg"
	"github.com/katalvlaran/lvmath/pipeline"
	"github.com/katalvlaran/lvmath/trans2d"
	"github.com/katalvlaran/lvmath/trans3d"
)

const margin = 1e-12

func ptr[T any](v T) *T { return &v }

func requireClose[T linalg.Float](t *testing.T, want, got linalg.Dimensional[T]) {
	t.Helper()
	require.True(t, linalg.AllClose(want, got, linalg.WithAbsTolerance(margin)),
		"want %v, got %v", want, got)
}

func TestBuild2D_Turn(t *testing.T) {
	t.Parallel()

	spec, err := pipeline.LoadFile(filepath.Join("testdata", "turn.yaml"))
	require.NoError(t, err)
	tr, err := pipeline.Build2D(spec)
	require.NoError(t, err)

	require.Equal(t, "quarter turn and shift", tr.Name())
	require.Equal(t, 2, tr.Stages(), "rotate and scale fuse into one stage")

	_, ok := tr.Linear()
	require.False(t, ok)

	got := tr.Apply(linalg.Position2[float64]{1, 0})
	requireClose[float64](t, linalg.Position2[float64]{1, 2}, got)

	pts := []linalg.Position2[float64]{{1, 0}, {0, 1}, {0, 0}}
	all := tr.ApplyAll(pts)
	require.Len(t, all, 3)
	requireClose[float64](t, linalg.Position2[float64]{1, 2}, all[0])
	requireClose[float64](t, linalg.Position2[float64]{-1, -1}, all[1])
	requireClose[float64](t, linalg.Position2[float64]{1, -1}, all[2])
	require.Equal(t, linalg.Position2[float64]{1, 0}, pts[0], "input is not modified")
}

func TestBuild2D_LinearFusesInOrder(t *testing.T) {
	t.Parallel()

	spec := pipeline.Spec{Dimensions: 2, Steps: []pipeline.Step{
		{Op: pipeline.OpRotate, Angle: angle.Degree(30).Radians()},
		{Op: pipeline.OpShear, Plane: "x", Weights: []float64{2}},
		{Op: pipeline.OpReflect, Plane: "y"},
	}}
	tr, err := pipeline.Build2D(spec)
	require.NoError(t, err)
	require.Equal(t, 1, tr.Stages())

	m, ok := tr.Linear()
	require.True(t, ok)
	want := linalg.Mul(linalg.Mul(trans2d.Rotate[float64](30*angle.Deg), trans2d.ShearX(2.0)),
		trans2d.ReflectAlongY[float64]())
	requireClose[float64](t, want, m)

	p := linalg.Position2[float64]{3, -4}
	requireClose[float64](t, p.Mul(want), tr.Apply(p))
}

func TestBuild2D_Empty(t *testing.T) {
	t.Parallel()

	tr, err := pipeline.Build2D(pipeline.Spec{Dimensions: 2})
	require.NoError(t, err)
	m, ok := tr.Linear()
	require.True(t, ok)
	require.Equal(t, linalg.Identity[linalg.D2, float64](), m)

	p := linalg.Position2[float64]{7, 8}
	require.Equal(t, p, tr.Apply(p))
}

func TestBuild2D_AxisOps(t *testing.T) {
	t.Parallel()

	spec := pipeline.Spec{Dimensions: 2, Steps: []pipeline.Step{
		{Op: pipeline.OpProject, Axis: []float64{0, 5}},
	}}
	tr, err := pipeline.Build2D(spec)
	require.NoError(t, err)
	m, _ := tr.Linear()
	requireClose[float64](t, trans2d.ProjectOntoX[float64](), m)

	spec.Steps[0] = pipeline.Step{Op: pipeline.OpScale, Factor: ptr(3.0), Axis: []float64{1, 0}}
	tr, err = pipeline.Build2D(spec)
	require.NoError(t, err)
	m, _ = tr.Linear()
	requireClose[float64](t, trans2d.Scale(3.0, 1.0), m)

	// an explicit zero factor along an axis is a projection
	spec.Steps[0] = pipeline.Step{Op: pipeline.OpScale, Factor: ptr(0.0), Axis: []float64{1, 0}}
	tr, err = pipeline.Build2D(spec)
	require.NoError(t, err)
	m, _ = tr.Linear()
	requireClose[float64](t, trans2d.ProjectOntoY[float64](), m)

	spec.Steps[0] = pipeline.Step{Op: pipeline.OpReflect, Axis: []float64{-2, 0}}
	tr, err = pipeline.Build2D(spec)
	require.NoError(t, err)
	m, _ = tr.Linear()
	requireClose[float64](t, trans2d.ReflectAlongX[float64](), m)
}

func TestBuild3D_Cube(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"cube.yaml", "cube.toml"} {
		spec, err := pipeline.LoadFile(filepath.Join("testdata", name))
		require.NoError(t, err, name)
		tr, err := pipeline.Build3D(spec)
		require.NoError(t, err, name)

		require.Equal(t, 3, tr.Stages(), name)
		got := tr.Apply(linalg.Position3[float64]{1, 2, 3})
		requireClose[float64](t, linalg.Position3[float64]{5, 1, 0}, got)
	}
}

func TestBuild3D_RotateAxisMatchesPlane(t *testing.T) {
	t.Parallel()

	byPlane, err := pipeline.Build3D(pipeline.Spec{Dimensions: 3, Steps: []pipeline.Step{
		{Op: pipeline.OpRotate, Plane: "y", Angle: 0.7},
	}})
	require.NoError(t, err)
	byAxis, err := pipeline.Build3D(pipeline.Spec{Dimensions: 3, Steps: []pipeline.Step{
		{Op: pipeline.OpRotate, Axis: []float64{0, 2, 0}, Angle: 0.7},
	}})
	require.NoError(t, err)

	a, _ := byPlane.Linear()
	b, _ := byAxis.Linear()
	requireClose[float64](t, trans3d.RotateY[float64](angle.Radian(0.7)), a)
	requireClose[float64](t, a, b)
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		dims int
		step pipeline.Step
		want error
	}{
		{"unknown op", 2, pipeline.Step{Op: "twist"}, pipeline.ErrUnknownOp},
		{"2d plane z", 2, pipeline.Step{Op: pipeline.OpReflect, Plane: "z"}, pipeline.ErrUnknownPlane},
		{"2d project xy", 2, pipeline.Step{Op: pipeline.OpProject, Plane: "xy"}, pipeline.ErrUnknownPlane},
		{"3d rotate no plane", 3, pipeline.Step{Op: pipeline.OpRotate}, pipeline.ErrUnknownPlane},
		{"3d shear x", 3, pipeline.Step{Op: pipeline.OpShear, Plane: "x", Weights: []float64{1, 1}}, pipeline.ErrUnknownPlane},
		{"2d axis scale without factor", 2, pipeline.Step{Op: pipeline.OpScale, Axis: []float64{1, 0}}, pipeline.ErrArity},
		{"3d axis scale without factor", 3, pipeline.Step{Op: pipeline.OpScale, Axis: []float64{0, 0, 1}}, pipeline.ErrArity},
		{"2d factors", 2, pipeline.Step{Op: pipeline.OpScale, Factors: []float64{1, 2, 3}}, pipeline.ErrArity},
		{"3d offset", 3, pipeline.Step{Op: pipeline.OpTranslate, Offset: []float64{1}}, pipeline.ErrArity},
		{"2d weights", 2, pipeline.Step{Op: pipeline.OpShear, Plane: "x", Weights: []float64{1, 2}}, pipeline.ErrArity},
		{"3d axis", 3, pipeline.Step{Op: pipeline.OpReflect, Axis: []float64{1, 0}}, pipeline.ErrArity},
		{"2d zero axis", 2, pipeline.Step{Op: pipeline.OpProject, Axis: []float64{0, 0}}, linalg.ErrZeroLength},
		{"3d zero axis", 3, pipeline.Step{Op: pipeline.OpRotate, Axis: []float64{0, 0, 0}}, linalg.ErrZeroLength},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			spec := pipeline.Spec{Dimensions: tc.dims, Steps: []pipeline.Step{
				{Op: pipeline.OpTranslate, Offset: make([]float64, tc.dims)},
				tc.step,
			}}
			var err error
			if tc.dims == 2 {
				_, err = pipeline.Build2D(spec)
			} else {
				_, err = pipeline.Build3D(spec)
			}
			require.True(t, errors.Is(err, tc.want), "got %v", err)
			require.ErrorContains(t, err, "step 1")
		})
	}
}

func TestBuild_WrongBuilder(t *testing.T) {
	t.Parallel()

	_, err := pipeline.Build2D(pipeline.Spec{Dimensions: 3})
	require.True(t, errors.Is(err, pipeline.ErrDimensions), "got %v", err)
	_, err = pipeline.Build3D(pipeline.Spec{Dimensions: 2})
	require.True(t, errors.Is(err, pipeline.ErrDimensions), "got %v", err)
}
