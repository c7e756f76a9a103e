// Package opt holds the optional float used for every value that may have no
// physical basis. A zero Float is undefined, which is distinct from a defined
// zero.
package opt

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Float is a float64 that may be undefined, in the manner of sql.NullFloat64.
type Float struct {
	Value float64
	Valid bool
}

// Some wraps v. Non-finite values are treated as undefined.
func Some(v float64) Float {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Float{}
	}
	return Float{Value: v, Valid: true}
}

// None is the undefined value.
func None() Float { return Float{} }

// Get returns the value and whether it is defined.
func (f Float) Get() (float64, bool) { return f.Value, f.Valid }

// Or returns the value, or def when undefined.
func (f Float) Or(def float64) float64 {
	if !f.Valid {
		return def
	}
	return f.Value
}

// Scale multiplies a defined value by k.
func (f Float) Scale(k float64) Float {
	if !f.Valid {
		return f
	}
	return Some(f.Value * k)
}

// Add returns f+d for a defined value.
func (f Float) Add(d float64) Float {
	if !f.Valid {
		return f
	}
	return Some(f.Value + d)
}

// MinDefined returns the smaller of the defined values among a and b, or
// undefined when both are undefined.
func MinDefined(a, b Float) Float {
	switch {
	case !a.Valid:
		return b
	case !b.Valid:
		return a
	case b.Value < a.Value:
		return b
	}
	return a
}

// String formats a defined value with %g and an undefined one as "".
func (f Float) String() string {
	if !f.Valid {
		return ""
	}
	return strconv.FormatFloat(f.Value, 'g', -1, 64)
}

// Format renders a defined value with prec decimals and an undefined one as "".
func (f Float) Format(prec int) string {
	if !f.Valid {
		return ""
	}
	return strconv.FormatFloat(f.Value, 'f', prec, 64)
}

func (f Float) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

func (f *Float) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*f = Float{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = Some(v)
	return nil
}

func (f Float) MarshalYAML() (interface{}, error) {
	if !f.Valid {
		return nil, nil
	}
	return f.Value, nil
}

func (f *Float) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" || node.Value == "" || node.Value == "~" {
		*f = Float{}
		return nil
	}
	var v float64
	if err := node.Decode(&v); err != nil {
		return err
	}
	*f = Some(v)
	return nil
}
