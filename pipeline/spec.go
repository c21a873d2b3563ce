// SPDX-License-Identifier: MIT

package pipeline

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmath/angle"
)

// Step operations.
const (
	OpRotate    = "rotate"
	OpScale     = "scale"
	OpProject   = "project"
	OpReflect   = "reflect"
	OpShear     = "shear"
	OpTranslate = "translate"
)

// Spec is a decoded pipeline file.
type Spec struct {
	Name       string `yaml:"name"`
	Dimensions int    `yaml:"dimensions"`
	Steps      []Step `yaml:"steps"`
}

// Step is one transformation. Which fields apply depends on Op:
//
//	rotate     Angle; in 3D also Plane ("x", "y", "z") or Axis
//	scale      Factors (one per dimension), or Factor along Axis (both needed)
//	project    Plane ("x", "y" in 2D; "xy", "xz", "yz" in 3D) or Axis
//	reflect    Plane ("x", "y", and "z" in 3D) or Axis
//	shear      Plane ("x", "y" in 2D; "xy", "xz", "yz" in 3D) and Weights
//	translate  Offset (one per dimension)
type Step struct {
	Op      string       `yaml:"op"`
	Angle   angle.Radian `yaml:"angle,omitempty"`
	Plane   string       `yaml:"plane,omitempty"`
	Axis    []float64    `yaml:"axis,omitempty"`
	Factor  *float64     `yaml:"factor,omitempty"`
	Factors []float64    `yaml:"factors,omitempty"`
	Weights []float64    `yaml:"weights,omitempty"`
	Offset  []float64    `yaml:"offset,omitempty"`
}

// Format is a pipeline file encoding.
type Format uint8

// Supported formats.
const (
	FormatYAML Format = iota + 1
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// ParseFormat maps "yaml", "yml" and "toml" (any case, optional leading dot)
// to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// Decode reads one pipeline from r.
//
// Errors:
//   - ErrUnknownFormat for an unsupported WithFormat value.
//   - ErrUnknownField for keys outside Spec and Step.
//   - ErrDimensions when the dimension is not 2 or 3, or differs from
//     WithDimensions.
//   - Syntax and type errors from the underlying decoder, wrapped.
func Decode(r io.Reader, opts ...Option) (Spec, error) {
	o := gatherOptions(opts)

	var s Spec
	switch o.format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			if unknownYAMLField(err) {
				return Spec{}, fmt.Errorf("decode yaml: %v: %w", err, ErrUnknownField)
			}
			return Spec{}, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		var err error
		if s, err = decodeTOML(r); err != nil {
			return Spec{}, err
		}
	default:
		return Spec{}, fmt.Errorf("decode: %v: %w", o.format, ErrUnknownFormat)
	}

	if s.Dimensions == 0 {
		s.Dimensions = o.dims
	}
	if s.Dimensions != 2 && s.Dimensions != 3 {
		return Spec{}, fmt.Errorf("decode: dimensions %d: %w", s.Dimensions, ErrDimensions)
	}
	if o.dims != 0 && s.Dimensions != o.dims {
		return Spec{}, fmt.Errorf("decode: dimensions %d, want %d: %w", s.Dimensions, o.dims, ErrDimensions)
	}

	return s, nil
}

// LoadFile decodes the pipeline stored at path. The format follows the
// extension (.yaml, .yml, .toml) unless WithFormat is given.
func LoadFile(path string, opts ...Option) (Spec, error) {
	if o := gatherOptions(opts); !o.formatSet {
		f, err := ParseFormat(filepath.Ext(path))
		if err != nil {
			return Spec{}, fmt.Errorf("load %s: %w", path, err)
		}
		opts = append([]Option{WithFormat(f)}, opts...)
	}

	file, err := os.Open(path)
	if err != nil {
		return Spec{}, fmt.Errorf("load pipeline: %w", err)
	}
	defer file.Close()

	s, err := Decode(file, opts...)
	if err != nil {
		return Spec{}, fmt.Errorf("load %s: %w", path, err)
	}
	return s, nil
}

// unknownYAMLField reports whether err comes from KnownFields rejecting a key.
func unknownYAMLField(err error) bool {
	var te *yaml.TypeError
	if !errors.As(err, &te) {
		return false
	}
	for _, msg := range te.Errors {
		if strings.Contains(msg, "not found in type") {
			return true
		}
	}
	return false
}
