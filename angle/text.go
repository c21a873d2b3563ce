// SPDX-License-Identifier: MIT

package angle

import (
	"encoding"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Unit suffixes used by String and accepted by Parse.
const (
	SuffixRadian = "rad"
	SuffixDegree = "deg"
	signDegree   = "°"
)

type unitKind uint8

const (
	unitNone unitKind = iota // bare number, interpreted by the destination
	unitRadian
	unitDegree
)

var (
	_ fmt.Stringer             = Radian(0)
	_ fmt.Stringer             = Degree(0)
	_ encoding.TextMarshaler   = Radian(0)
	_ encoding.TextUnmarshaler = (*Radian)(nil)
	_ encoding.TextMarshaler   = Degree(0)
	_ encoding.TextUnmarshaler = (*Degree)(nil)
)

// String renders r as "<value> rad".
func (r Radian) String() string { return format(float64(r), SuffixRadian) }

// String renders d as "<value> deg".
func (d Degree) String() string { return format(float64(d), SuffixDegree) }

// MarshalText implements encoding.TextMarshaler.
func (r Radian) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// MarshalText implements encoding.TextMarshaler.
func (d Degree) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText accepts radian or degree text; degrees are converted.
// A bare number is read as radians.
func (r *Radian) UnmarshalText(text []byte) error {
	v, unit, err := parse(string(text))
	if err != nil {
		return err
	}
	if unit == unitDegree {
		*r = Degree(v).Radians()
		return nil
	}
	*r = Radian(v)
	return nil
}

// UnmarshalText accepts degree text or a bare number. Radian text is refused
// with ErrUnitMismatch.
func (d *Degree) UnmarshalText(text []byte) error {
	v, unit, err := parse(string(text))
	if err != nil {
		return err
	}
	if unit == unitRadian {
		return fmt.Errorf("%q: %w", text, ErrUnitMismatch)
	}
	*d = Degree(v)
	return nil
}

// Parse reads an angle such as "1.5 rad", "90deg" or "45°".
// The result is a Radian for radian or bare input and a Degree otherwise.
func Parse(s string) (Angle, error) {
	v, unit, err := parse(s)
	if err != nil {
		return nil, err
	}
	if unit == unitDegree {
		return Degree(v), nil
	}
	return Radian(v), nil
}

func parse(s string) (float64, unitKind, error) {
	s = strings.TrimSpace(s)
	// the magnitude ends at its last digit or dot; whatever follows is the unit
	end := strings.LastIndexFunc(s, func(r rune) bool {
		return unicode.IsDigit(r) || r == '.'
	})
	num, suffix := s[:end+1], strings.TrimSpace(s[end+1:])

	var unit unitKind
	switch suffix {
	case "":
		unit = unitNone
	case SuffixRadian:
		unit = unitRadian
	case SuffixDegree, signDegree:
		unit = unitDegree
	default:
		return 0, unitNone, fmt.Errorf("parse %q: %w", s, ErrUnknownUnit)
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0, unitNone, fmt.Errorf("parse %q: %w", s, ErrSyntax)
	}

	return v, unit, nil
}

func format(v float64, suffix string) string {
	return strconv.FormatFloat(v, 'g', -1, 64) + " " + suffix
}
