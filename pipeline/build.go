// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"

	"github.com/katalvlaran/lvmath/linalg"
	"github.com/katalvlaran/lvmath/trans2d"
	"github.com/katalvlaran/lvmath/trans3d"
)

// Build2D turns a 2-dimensional Spec into a Transform2D.
//
// Errors:
//   - ErrDimensions unless s.Dimensions is 2.
//   - ErrUnknownOp, ErrUnknownPlane, ErrArity for malformed steps.
//   - linalg.ErrZeroLength for a zero axis.
//
// Every step error names the step index and operation.
func Build2D(s Spec) (Transform2D, error) {
	if s.Dimensions != 2 {
		return Transform2D{}, fmt.Errorf("Build2D: dimensions %d: %w", s.Dimensions, ErrDimensions)
	}
	t := Transform2D{name: s.Name, identity: linalg.Identity[linalg.D2, float64]()}
	for i, st := range s.Steps {
		if st.Op == OpTranslate {
			d, err := vec2(st.Offset)
			if err != nil {
				return Transform2D{}, stepErr(i, st, err)
			}
			t.pushTranslate(d)
			continue
		}
		m, err := linear2D(st)
		if err != nil {
			return Transform2D{}, stepErr(i, st, err)
		}
		t.pushLinear(m)
	}
	return t, nil
}

// Build3D turns a 3-dimensional Spec into a Transform3D. Errors are those of
// Build2D.
func Build3D(s Spec) (Transform3D, error) {
	if s.Dimensions != 3 {
		return Transform3D{}, fmt.Errorf("Build3D: dimensions %d: %w", s.Dimensions, ErrDimensions)
	}
	t := Transform3D{name: s.Name, identity: linalg.Identity[linalg.D3, float64]()}
	for i, st := range s.Steps {
		if st.Op == OpTranslate {
			d, err := vec3(st.Offset)
			if err != nil {
				return Transform3D{}, stepErr(i, st, err)
			}
			t.pushTranslate(d)
			continue
		}
		m, err := linear3D(st)
		if err != nil {
			return Transform3D{}, stepErr(i, st, err)
		}
		t.pushLinear(m)
	}
	return t, nil
}

func stepErr(i int, st Step, err error) error {
	return fmt.Errorf("step %d (%s): %w", i, st.Op, err)
}

func linear2D(st Step) (linalg.Mat2[float64], error) {
	switch st.Op {
	case OpRotate:
		return trans2d.Rotate[float64](st.Angle), nil

	case OpScale:
		if len(st.Axis) > 0 {
			if st.Factor == nil {
				return linalg.Mat2[float64]{}, fmt.Errorf("factor: missing: %w", ErrArity)
			}
			u, err := unit2(st.Axis)
			if err != nil {
				return linalg.Mat2[float64]{}, err
			}
			return trans2d.ScaleAlong(*st.Factor, u), nil
		}
		f, err := vec2(st.Factors)
		if err != nil {
			return linalg.Mat2[float64]{}, err
		}
		return trans2d.Scale(f.X(), f.Y()), nil

	case OpProject:
		if len(st.Axis) > 0 {
			u, err := unit2(st.Axis)
			if err != nil {
				return linalg.Mat2[float64]{}, err
			}
			return trans2d.ProjectAlong(u), nil
		}
		switch st.Plane {
		case "x":
			return trans2d.ProjectOntoX[float64](), nil
		case "y":
			return trans2d.ProjectOntoY[float64](), nil
		}

	case OpReflect:
		if len(st.Axis) > 0 {
			u, err := unit2(st.Axis)
			if err != nil {
				return linalg.Mat2[float64]{}, err
			}
			return trans2d.ReflectAlong(u), nil
		}
		switch st.Plane {
		case "x":
			return trans2d.ReflectAlongX[float64](), nil
		case "y":
			return trans2d.ReflectAlongY[float64](), nil
		}

	case OpShear:
		if len(st.Weights) != 1 {
			return linalg.Mat2[float64]{}, fmt.Errorf("weights: got %d, want 1: %w", len(st.Weights), ErrArity)
		}
		switch st.Plane {
		case "x":
			return trans2d.ShearX(st.Weights[0]), nil
		case "y":
			return trans2d.ShearY(st.Weights[0]), nil
		}

	default:
		return linalg.Mat2[float64]{}, ErrUnknownOp
	}

	return linalg.Mat2[float64]{}, fmt.Errorf("%q: %w", st.Plane, ErrUnknownPlane)
}

func linear3D(st Step) (linalg.Mat3[float64], error) {
	switch st.Op {
	case OpRotate:
		if len(st.Axis) > 0 {
			u, err := unit3(st.Axis)
			if err != nil {
				return linalg.Mat3[float64]{}, err
			}
			return trans3d.Rotate(st.Angle, u), nil
		}
		switch st.Plane {
		case "x":
			return trans3d.RotateX[float64](st.Angle), nil
		case "y":
			return trans3d.RotateY[float64](st.Angle), nil
		case "z":
			return trans3d.RotateZ[float64](st.Angle), nil
		}

	case OpScale:
		if len(st.Axis) > 0 {
			if st.Factor == nil {
				return linalg.Mat3[float64]{}, fmt.Errorf("factor: missing: %w", ErrArity)
			}
			u, err := unit3(st.Axis)
			if err != nil {
				return linalg.Mat3[float64]{}, err
			}
			return trans3d.ScaleAlong(*st.Factor, u), nil
		}
		f, err := vec3(st.Factors)
		if err != nil {
			return linalg.Mat3[float64]{}, err
		}
		return trans3d.Scale(f.X(), f.Y(), f.Z()), nil

	case OpProject:
		if len(st.Axis) > 0 {
			u, err := unit3(st.Axis)
			if err != nil {
				return linalg.Mat3[float64]{}, err
			}
			return trans3d.ProjectAlong(u), nil
		}
		switch st.Plane {
		case "xy":
			return trans3d.ProjectOntoXY[float64](), nil
		case "xz":
			return trans3d.ProjectOntoXZ[float64](), nil
		case "yz":
			return trans3d.ProjectOntoYZ[float64](), nil
		}

	case OpReflect:
		if len(st.Axis) > 0 {
			u, err := unit3(st.Axis)
			if err != nil {
				return linalg.Mat3[float64]{}, err
			}
			return trans3d.ReflectAlong(u), nil
		}
		switch st.Plane {
		case "x":
			return trans3d.ReflectAlongX[float64](), nil
		case "y":
			return trans3d.ReflectAlongY[float64](), nil
		case "z":
			return trans3d.ReflectAlongZ[float64](), nil
		}

	case OpShear:
		if len(st.Weights) != 2 {
			return linalg.Mat3[float64]{}, fmt.Errorf("weights: got %d, want 2: %w", len(st.Weights), ErrArity)
		}
		w0, w1 := st.Weights[0], st.Weights[1]
		switch st.Plane {
		case "xy":
			return trans3d.ShearXY(w0, w1), nil
		case "xz":
			return trans3d.ShearXZ(w0, w1), nil
		case "yz":
			return trans3d.ShearYZ(w0, w1), nil
		}

	default:
		return linalg.Mat3[float64]{}, ErrUnknownOp
	}

	return linalg.Mat3[float64]{}, fmt.Errorf("%q: %w", st.Plane, ErrUnknownPlane)
}

func vec2(xs []float64) (linalg.Vec2[float64], error) {
	if len(xs) != 2 {
		return linalg.Vec2[float64]{}, fmt.Errorf("got %d values, want 2: %w", len(xs), ErrArity)
	}
	return linalg.Vec2[float64]{xs[0], xs[1]}, nil
}

func vec3(xs []float64) (linalg.Vec3[float64], error) {
	if len(xs) != 3 {
		return linalg.Vec3[float64]{}, fmt.Errorf("got %d values, want 3: %w", len(xs), ErrArity)
	}
	return linalg.Vec3[float64]{xs[0], xs[1], xs[2]}, nil
}

func unit2(xs []float64) (linalg.UnitVec2[float64], error) {
	v, err := vec2(xs)
	if err != nil {
		return linalg.UnitVec2[float64]{}, fmt.Errorf("axis: %w", err)
	}
	return linalg.NewUnitVec2(v)
}

func unit3(xs []float64) (linalg.UnitVec3[float64], error) {
	v, err := vec3(xs)
	if err != nil {
		return linalg.UnitVec3[float64]{}, fmt.Errorf("axis: %w", err)
	}
	return linalg.NewUnitVec3(v)
}
