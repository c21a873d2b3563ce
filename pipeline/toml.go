// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lvmath/angle"
)

// tomlSpec mirrors Spec for TOML input. The decoder formats bare floats with
// six decimals before handing them to encoding.TextUnmarshaler, so angles
// are taken as raw values and converted here.
type tomlSpec struct {
	Name       string     `toml:"name"`
	Dimensions int        `toml:"dimensions"`
	Steps      []tomlStep `toml:"steps"`
}

type tomlStep struct {
	Op      string    `toml:"op"`
	Angle   any       `toml:"angle"`
	Plane   string    `toml:"plane"`
	Axis    []float64 `toml:"axis"`
	Factor  *float64  `toml:"factor"`
	Factors []float64 `toml:"factors"`
	Weights []float64 `toml:"weights"`
	Offset  []float64 `toml:"offset"`
}

func decodeTOML(r io.Reader) (Spec, error) {
	var raw tomlSpec
	meta, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return Spec{}, fmt.Errorf("decode toml: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Spec{}, fmt.Errorf("decode toml: key %q: %w", undecoded[0].String(), ErrUnknownField)
	}

	s := Spec{Name: raw.Name, Dimensions: raw.Dimensions}
	if raw.Steps != nil {
		s.Steps = make([]Step, len(raw.Steps))
	}
	for i, st := range raw.Steps {
		a, err := tomlAngle(st.Angle)
		if err != nil {
			return Spec{}, fmt.Errorf("decode toml: step %d: %w", i, err)
		}
		s.Steps[i] = Step{
			Op:      st.Op,
			Angle:   a,
			Plane:   st.Plane,
			Axis:    st.Axis,
			Factor:  st.Factor,
			Factors: st.Factors,
			Weights: st.Weights,
			Offset:  st.Offset,
		}
	}
	return s, nil
}

// tomlAngle accepts a float or integer (radians) or angle text.
func tomlAngle(v any) (angle.Radian, error) {
	switch x := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return angle.Radian(x), nil
	case int64:
		return angle.Radian(x), nil
	case string:
		var r angle.Radian
		if err := r.UnmarshalText([]byte(x)); err != nil {
			return 0, err
		}
		return r, nil
	default:
		return 0, fmt.Errorf("angle %v (%T): %w", v, v, angle.ErrSyntax)
	}
}
