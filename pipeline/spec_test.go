// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvmath/angle"
	"github.com/katalvlaran/lvmath/pipeline"
)

type DecodeSuite struct {
	suite.Suite
}

func TestDecodeSuite(t *testing.T) {
	suite.Run(t, new(DecodeSuite))
}

func (s *DecodeSuite) TestLoadFile_YAMLAndTOMLAgree() {
	for _, base := range []string{"turn", "cube"} {
		y, err := pipeline.LoadFile(filepath.Join("testdata", base+".yaml"))
		s.Require().NoError(err, base)
		tm, err := pipeline.LoadFile(filepath.Join("testdata", base+".toml"))
		s.Require().NoError(err, base)
		s.Require().Equal(y, tm, base)
	}
}

func (s *DecodeSuite) TestLoadFile_Turn() {
	spec, err := pipeline.LoadFile(filepath.Join("testdata", "turn.yaml"))
	s.Require().NoError(err)

	s.Equal("quarter turn and shift", spec.Name)
	s.Equal(2, spec.Dimensions)
	s.Require().Len(spec.Steps, 3)
	s.Equal(pipeline.OpRotate, spec.Steps[0].Op)
	s.Equal(angle.Degree(90).Radians(), spec.Steps[0].Angle)
	s.Equal([]float64{2, 3}, spec.Steps[1].Factors)
	s.Equal([]float64{1, -1}, spec.Steps[2].Offset)
}

func (s *DecodeSuite) TestDecode_BareAngleIsRadians() {
	src := "dimensions: 2\nsteps:\n  - op: rotate\n    angle: 0.25\n"
	spec, err := pipeline.Decode(strings.NewReader(src))
	s.Require().NoError(err)
	s.Equal(angle.Radian(0.25), spec.Steps[0].Angle)

	src = "dimensions = 2\n[[steps]]\nop = \"rotate\"\nangle = \"180 deg\"\n"
	spec, err = pipeline.Decode(strings.NewReader(src), pipeline.WithFormat(pipeline.FormatTOML))
	s.Require().NoError(err)
	s.Equal(math.Pi, spec.Steps[0].Angle.Value())
}

func (s *DecodeSuite) TestDecode_TOMLBareAngleKeepsPrecision() {
	tests := []struct {
		value string
		want  angle.Radian
	}{
		{"3.141592653589793", math.Pi},
		{"-0.1234567890123", -0.1234567890123},
		{"2", 2},
		{`"3.141592653589793"`, math.Pi},
		{`"45 deg"`, angle.Degree(45).Radians()},
	}
	for _, tc := range tests {
		src := "dimensions = 2\n[[steps]]\nop = \"rotate\"\nangle = " + tc.value + "\n"
		spec, err := pipeline.Decode(strings.NewReader(src), pipeline.WithFormat(pipeline.FormatTOML))
		s.Require().NoError(err, tc.value)
		s.Equal(tc.want, spec.Steps[0].Angle, tc.value)

		yml := "dimensions: 2\nsteps:\n  - op: rotate\n    angle: " + strings.Trim(tc.value, `"`) + "\n"
		fromYAML, err := pipeline.Decode(strings.NewReader(yml))
		s.Require().NoError(err, tc.value)
		s.Equal(fromYAML, spec, tc.value)
	}
}

func (s *DecodeSuite) TestDecode_TOMLBadAngle() {
	for _, value := range []string{"true", `"90 grad"`, "[1.0]"} {
		src := "dimensions = 2\n[[steps]]\nop = \"rotate\"\nangle = " + value + "\n"
		_, err := pipeline.Decode(strings.NewReader(src), pipeline.WithFormat(pipeline.FormatTOML))
		s.Require().Error(err, value)
	}
}

func (s *DecodeSuite) TestDecode_FactorPointer() {
	spec, err := pipeline.Decode(strings.NewReader("dimensions: 2\nsteps:\n  - op: scale\n    axis: [1, 0]\n    factor: 0\n"))
	s.Require().NoError(err)
	s.Require().NotNil(spec.Steps[0].Factor)
	s.Equal(0.0, *spec.Steps[0].Factor)

	spec, err = pipeline.Decode(strings.NewReader("dimensions = 2\n[[steps]]\nop = \"scale\"\naxis = [1.0, 0.0]\n"),
		pipeline.WithFormat(pipeline.FormatTOML))
	s.Require().NoError(err)
	s.Nil(spec.Steps[0].Factor)
}

func (s *DecodeSuite) TestDecode_UnknownField() {
	for _, name := range []string{"unknown_field.yaml", "unknown_field.toml"} {
		_, err := pipeline.LoadFile(filepath.Join("testdata", name))
		s.Require().True(errors.Is(err, pipeline.ErrUnknownField), "%s: got %v", name, err)
	}
}

func (s *DecodeSuite) TestDecode_Dimensions() {
	_, err := pipeline.LoadFile(filepath.Join("testdata", "bad_dims.yaml"))
	s.Require().True(errors.Is(err, pipeline.ErrDimensions), "got %v", err)

	_, err = pipeline.LoadFile(filepath.Join("testdata", "turn.yaml"), pipeline.WithDimensions(3))
	s.Require().True(errors.Is(err, pipeline.ErrDimensions), "got %v", err)

	// missing dimension falls back to the option
	spec, err := pipeline.Decode(strings.NewReader("steps: []\n"), pipeline.WithDimensions(3))
	s.Require().NoError(err)
	s.Equal(3, spec.Dimensions)

	_, err = pipeline.Decode(strings.NewReader("steps: []\n"))
	s.Require().True(errors.Is(err, pipeline.ErrDimensions), "got %v", err)
}

func (s *DecodeSuite) TestLoadFile_Format() {
	_, err := pipeline.LoadFile(filepath.Join("testdata", "pipeline.json"))
	s.Require().True(errors.Is(err, pipeline.ErrUnknownFormat), "got %v", err)

	_, err = pipeline.LoadFile(filepath.Join("testdata", "missing.yaml"))
	s.Require().Error(err)

	// explicit format wins over the extension
	_, err = pipeline.LoadFile(filepath.Join("testdata", "turn.yaml"), pipeline.WithFormat(pipeline.FormatTOML))
	s.Require().Error(err)

	_, err = pipeline.Decode(strings.NewReader(""), pipeline.WithFormat(pipeline.Format(9)))
	s.Require().True(errors.Is(err, pipeline.ErrUnknownFormat), "got %v", err)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]pipeline.Format{
		"yaml": pipeline.FormatYAML, ".yml": pipeline.FormatYAML, "YAML": pipeline.FormatYAML,
		"toml": pipeline.FormatTOML, ".TOML": pipeline.FormatTOML,
	} {
		got, err := pipeline.ParseFormat(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := pipeline.ParseFormat(".json")
	require.True(t, errors.Is(err, pipeline.ErrUnknownFormat), "got %v", err)

	require.Equal(t, "yaml", pipeline.FormatYAML.String())
	require.Equal(t, "toml", pipeline.FormatTOML.String())
	require.Equal(t, "Format(9)", pipeline.Format(9).String())
}

func TestWithDimensions_PanicsOnInvalid(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { pipeline.WithDimensions(4) })
	require.Panics(t, func() { pipeline.WithDimensions(0) })
	require.NotPanics(t, func() { pipeline.WithDimensions(2) })
}
