// Package spudcan predicts jack-up spudcan penetration in a layered seabed.
//
// ComputeEnvelope sweeps depth and evaluates four failure modes (clay
// bearing, sand bearing, squeezing, punch-through) at every step; the
// governing capacity is the least of the modes that apply. ResolvePenetration
// then finds where the governing curve first reaches the preload.
//
// Forces are computed in kN and reported in MN. A capacity that has no
// physical basis at a depth is an undefined opt.Float, never an error.
package spudcan

import (
	"fmt"
	"math"

	"SpudSRI/internal/opt"
	"SpudSRI/internal/soil"
)

const (
	kNPerMN = 1000.0

	classicNc    = 5.14
	clayShape    = 1.2
	windward     = 0.8
	phiReduction = 5.0
)

type Spudcan struct {
	RigName   string    `json:"rig_name" yaml:"rig_name"`
	Diameter  float64   `json:"diameter_m" yaml:"diameter_m"`
	Area      float64   `json:"area_m2" yaml:"area_m2"`
	TipOffset float64   `json:"tip_offset_m" yaml:"tip_offset_m"`
	Preload   float64   `json:"preload_mn" yaml:"preload_mn"`
	Beta      opt.Float `json:"beta_deg" yaml:"beta_deg"`
	Alpha     opt.Float `json:"alpha" yaml:"alpha"`
}

// Advanced reports whether both cone angle and roughness are given, which
// selects the tabulated Nc' instead of the classical 5.14.
func (s Spudcan) Advanced() bool { return s.Beta.Valid && s.Alpha.Valid }

type Settings struct {
	Dz             float64        `json:"dz" yaml:"dz"`
	MaxDepth       float64        `json:"max_depth" yaml:"max_depth"`
	UseMinCu       bool           `json:"use_min_cu" yaml:"use_min_cu"`
	PhiReduction   bool           `json:"phi_reduction" yaml:"phi_reduction"`
	WindwardFactor bool           `json:"windward_factor" yaml:"windward_factor"`
	SqueezeTrigger bool           `json:"squeeze_trigger" yaml:"squeeze_trigger"`
	Meyerhof       *MeyerhofTable `json:"meyerhof,omitempty" yaml:"meyerhof,omitempty"`

	// Workers bounds parallel row computation; 0 picks GOMAXPROCS, 1 is sequential.
	Workers int `json:"-" yaml:"-"`
	// ParallelThreshold is the row count at which the sweep goes parallel.
	ParallelThreshold int `json:"-" yaml:"-"`
}

func DefaultSettings() Settings {
	return Settings{
		Dz:                0.25,
		MaxDepth:          50,
		UseMinCu:          true,
		SqueezeTrigger:    true,
		ParallelThreshold: 2000,
	}
}

// InputError reports structurally malformed input. It is never retried.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

// MaxRows bounds a single sweep, 50 m at 0.25 mm.
const MaxRows = 200000

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func validate(s Spudcan, layers []soil.Layer, set Settings) error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"diameter_m", s.Diameter}, {"area_m2", s.Area}, {"tip_offset_m", s.TipOffset},
		{"preload_mn", s.Preload}, {"dz", set.Dz}, {"max_depth", set.MaxDepth},
	} {
		if !finite(f.v) {
			return &InputError{Field: f.name, Reason: "must be a finite number"}
		}
	}
	if s.Diameter <= 0 {
		return &InputError{Field: "diameter_m", Reason: "must be positive"}
	}
	if s.Area <= 0 {
		return &InputError{Field: "area_m2", Reason: "must be positive"}
	}
	for i, l := range layers {
		if !finite(l.Top) || !finite(l.Bot) {
			return &InputError{Field: fmt.Sprintf("layers[%d]", i), Reason: "z_top and z_bot must be finite"}
		}
		if l.Thickness() <= 0 {
			return &InputError{Field: fmt.Sprintf("layers[%d]", i), Reason: fmt.Sprintf("z_bot %g must be below z_top %g", l.Bot, l.Top)}
		}
	}
	if set.Dz <= 0 {
		return &InputError{Field: "dz", Reason: "must be positive"}
	}
	if set.MaxDepth < 0 {
		return &InputError{Field: "max_depth", Reason: "must not be negative"}
	}
	if rows := math.Floor(set.MaxDepth/set.Dz) + 1; rows > MaxRows {
		return &InputError{Field: "max_depth", Reason: fmt.Sprintf("max_depth/dz gives more than %d rows", MaxRows)}
	}
	if set.Meyerhof != nil {
		if err := set.Meyerhof.validate(); err != nil {
			return err
		}
	}
	return nil
}
