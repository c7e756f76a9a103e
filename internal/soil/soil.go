// Package soil models a layered seabed column. Every property is a
// piecewise-linear profile over depth; an empty profile means the property is
// undefined in that layer.
package soil

import (
	"math"
	"sort"
	"strings"

	"SpudSRI/internal/opt"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"
)

const (
	// AverageStep is the sampling step (m) for zone-of-influence averages.
	AverageStep = 0.05
	// OverburdenStep is the integration step (m) for vertical overburden.
	OverburdenStep = 0.1

	// keeps the end of a sampled range inclusive
	endTol = 1e-9
)

type Type string

const (
	Clay    Type = "clay"
	Silt    Type = "silt"
	Sand    Type = "sand"
	Unknown Type = "unknown"
)

// ParseType is case-insensitive; anything unrecognised is Unknown.
func ParseType(s string) Type {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case Clay:
		return Clay
	case Silt:
		return Silt
	case Sand:
		return Sand
	}
	return Unknown
}

// FineGrained reports clay or silt.
func (t Type) FineGrained() bool { return t == Clay || t == Silt }

type Point struct {
	Z float64 `json:"z" yaml:"z"`
	V float64 `json:"v" yaml:"v"`
}

// Profile is ordered by depth once it has passed through Sorted.
type Profile []Point

// Sorted returns a depth-ordered copy.
func (p Profile) Sorted() Profile {
	if p == nil {
		return nil
	}
	out := make(Profile, len(p))
	copy(out, p)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Z < out[j].Z })
	return out
}

// At interpolates linearly, clamping to the end values outside the profile.
// Coincident depths resolve to the shallower point's value.
func (p Profile) At(z float64) opt.Float {
	if len(p) == 0 {
		return opt.None()
	}
	if z <= p[0].Z {
		return opt.Some(p[0].V)
	}
	for i := 1; i < len(p); i++ {
		if z > p[i].Z {
			continue
		}
		z1, v1 := p[i-1].Z, p[i-1].V
		z2, v2 := p[i].Z, p[i].V
		if z2 == z1 {
			return opt.Some(v1)
		}
		return opt.Some(v1 + (z-z1)*(v2-v1)/(z2-z1))
	}
	return opt.Some(p[len(p)-1].V)
}

// Average is the mean of samples taken every step from z1 to z2 inclusive.
func (p Profile) Average(z1, z2, step float64) opt.Float {
	if len(p) == 0 || z2 <= z1 || step <= 0 {
		return opt.None()
	}
	n := int(math.Ceil((z2 + endTol - z1) / step))
	vals := make([]float64, 0, n)
	for k := 0; k < n; k++ {
		if v, ok := p.At(z1 + float64(k)*step).Get(); ok {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return opt.None()
	}
	return opt.Some(stat.Mean(vals, nil))
}

type Layer struct {
	Name  string  `json:"name" yaml:"name"`
	Top   float64 `json:"z_top" yaml:"z_top"`
	Bot   float64 `json:"z_bot" yaml:"z_bot"`
	Type  Type    `json:"soil_type" yaml:"soil_type"`
	Gamma Profile `json:"gamma" yaml:"gamma"`
	Su    Profile `json:"su" yaml:"su"`
	Phi   Profile `json:"phi" yaml:"phi"`
}

// Thickness is Bot-Top.
func (l Layer) Thickness() float64 { return l.Bot - l.Top }

// Column is an ordered layer sequence owned by a single analysis.
type Column []Layer

// NewColumn copies layers and orders every profile by depth, so the caller's
// slices are never shared with the analysis.
func NewColumn(layers []Layer) Column {
	c := make(Column, len(layers))
	for i, l := range layers {
		l.Type = ParseType(string(l.Type))
		l.Gamma = l.Gamma.Sorted()
		l.Su = l.Su.Sorted()
		l.Phi = l.Phi.Sorted()
		c[i] = l
	}
	return c
}

// Index returns the first layer with Top <= z < Bot, falling back to the last
// layer. It returns -1 for an empty column.
func (c Column) Index(z float64) int {
	for i, l := range c {
		if l.Top <= z && z < l.Bot {
			return i
		}
	}
	return len(c) - 1
}

// Pair returns the layer at z and the one after it.
func (c Column) Pair(z float64) (cur, next Layer, ok bool) {
	i := c.Index(z)
	if i < 0 || i+1 >= len(c) {
		return Layer{}, Layer{}, false
	}
	return c[i], c[i+1], true
}

// At returns the layer at z.
func (c Column) At(z float64) (Layer, bool) {
	i := c.Index(z)
	if i < 0 {
		return Layer{}, false
	}
	return c[i], true
}

// GammaAt is the submerged unit weight (kN/m3) at z.
func (c Column) GammaAt(z float64) opt.Float {
	l, ok := c.At(z)
	if !ok {
		return opt.None()
	}
	return l.Gamma.At(z)
}

// SuAt is the undrained shear strength (kPa) at z.
func (c Column) SuAt(z float64) opt.Float {
	l, ok := c.At(z)
	if !ok {
		return opt.None()
	}
	return l.Su.At(z)
}

// Overburden integrates unit weight from the seabed to z with the trapezoidal
// rule. Undefined unit weights count as zero.
func (c Column) Overburden(z, step float64) float64 {
	if z <= 0 || step <= 0 {
		return 0
	}
	n := int(math.Ceil((z + endTol) / step))
	if n < 2 {
		return 0
	}
	xs := make([]float64, n)
	fs := make([]float64, n)
	for k := range xs {
		xs[k] = float64(k) * step
		fs[k] = c.GammaAt(xs[k]).Or(0)
	}
	return integrate.Trapezoidal(xs, fs)
}
