// Package prediction turns a computed envelope into a penetration range that
// accounts for punch-through breakthrough, dynamic overshoot and re-entry
// into a deeper weak zone.
package prediction

import (
	"fmt"
	"sort"

	"SpudSRI/internal/calc/spudcan"
	"SpudSRI/internal/opt"

	"gonum.org/v1/gonum/stat"
)

type Level string

const (
	Critical Level = "critical"
	Warn     Level = "warning"
	Info     Level = "info"
)

type Warning struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

type Options struct {
	OvershootFactor    float64 `json:"overshoot_factor" yaml:"overshoot_factor"`
	MaxOvershoot       float64 `json:"max_overshoot_m" yaml:"max_overshoot_m"`
	ReentryThreshold   float64 `json:"reentry_threshold" yaml:"reentry_threshold"`
	PunchLookahead     float64 `json:"punch_lookahead_m" yaml:"punch_lookahead_m"`
	BreakthroughMargin float64 `json:"breakthrough_margin_m" yaml:"breakthrough_margin_m"`
	StrongRatio        float64 `json:"strong_ratio" yaml:"strong_ratio"`
}

func DefaultOptions() Options {
	return Options{
		OvershootFactor:    0.10,
		MaxOvershoot:       3,
		ReentryThreshold:   2,
		PunchLookahead:     10,
		BreakthroughMargin: 2,
		StrongRatio:        1.5,
	}
}

// withDefaults fills zero fields so a partially specified Options from a
// request body behaves like DefaultOptions for what it leaves out.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.OvershootFactor <= 0 {
		o.OvershootFactor = d.OvershootFactor
	}
	if o.MaxOvershoot <= 0 {
		o.MaxOvershoot = d.MaxOvershoot
	}
	if o.ReentryThreshold <= 0 {
		o.ReentryThreshold = d.ReentryThreshold
	}
	if o.PunchLookahead <= 0 {
		o.PunchLookahead = d.PunchLookahead
	}
	if o.BreakthroughMargin <= 0 {
		o.BreakthroughMargin = d.BreakthroughMargin
	}
	if o.StrongRatio <= 0 {
		o.StrongRatio = d.StrongRatio
	}
	return o
}

// Prediction is expressed at the widest section; the Tip* fields add the tip
// offset.
type Prediction struct {
	Static       float64              `json:"static_depth_m"`
	Lower        float64              `json:"lower_m"`
	Upper        float64              `json:"upper_m"`
	Design       float64              `json:"design_depth_m"`
	Exceeded     bool                 `json:"capacity_exceeded"`
	ReEntry      bool                 `json:"re_entry_possible"`
	PunchZones   []spudcan.DepthRange `json:"punch_zones"`
	Crossings    []float64            `json:"crossings_m"`
	Warnings     []Warning            `json:"warnings"`
	TipStatic    float64              `json:"tip_static_m"`
	TipLower     float64              `json:"tip_lower_m"`
	TipUpper     float64              `json:"tip_upper_m"`
	SqueezeRange *spudcan.DepthRange  `json:"squeeze_range,omitempty"`
}

// Range renders the prediction the way it is quoted in reports.
func (p Prediction) Range() string {
	if p.Exceeded {
		return fmt.Sprintf("> %.1f m (exceeds analysis depth)", p.Upper)
	}
	return fmt.Sprintf("%.1f to %.1f m", p.Lower, p.Upper)
}

func (p *Prediction) warn(l Level, format string, args ...any) {
	p.Warnings = append(p.Warnings, Warning{Level: l, Message: fmt.Sprintf(format, args...)})
}

// Analyze never fails: rows without any crossing produce a prediction at the
// deepest analysed row with a critical warning.
func Analyze(rows []spudcan.Row, preload, tipOffset float64, o Options) (p Prediction) {
	o = o.withDefaults()
	p = Prediction{PunchZones: []spudcan.DepthRange{}, Crossings: Crossings(rows, preload)}
	defer func() {
		p.TipStatic = p.Static + tipOffset
		p.TipLower = p.Lower + tipOffset
		p.TipUpper = p.Upper + tipOffset
	}()

	if len(p.Crossings) == 0 {
		deepest := 0.0
		peak := opt.None()
		for _, r := range rows {
			deepest = max(deepest, r.Depth)
			peak = maxDefined(peak, r.Real)
		}
		p.Static, p.Lower, p.Upper, p.Design = deepest, deepest, deepest, deepest
		p.Exceeded = true
		p.warn(Critical, "preload (%.1f MN) exceeds maximum capacity (%.1f MN)", preload, peak.Or(0))
		p.warn(Critical, "spudcan will penetrate to the maximum analysed depth")
		return p
	}

	first := p.Crossings[0]
	p.Static, p.Lower = first, first

	p.PunchZones = punchZones(rows, first, first+o.PunchLookahead)
	for _, z := range p.PunchZones {
		if z.Start-first < o.BreakthroughMargin {
			p.warn(Critical, "punch-through zone at %.1f-%.1f m, just below the predicted depth", z.Start, z.End)
			p.warn(Critical, "breakthrough likely, expect penetration to the end of the weak zone")
			p.Upper = z.End
			p.Design = p.Upper
			return p
		}
	}

	overshoot := min(first*o.OvershootFactor, o.MaxOvershoot)
	p.Upper = first + overshoot
	if below, ok := meanReal(rows, func(z float64) bool { return z > first && z <= first+overshoot }); ok {
		if ratio := below / preload; ratio > o.StrongRatio {
			p.warn(Info, "strong soil below first intersection (capacity %.1fx preload), overshoot about %.1f m", ratio, overshoot)
		} else {
			p.Upper = first + 2*overshoot
			p.warn(Warn, "weak soil continues below, deeper penetration possible")
		}
	} else if hasRows(rows, func(z float64) bool { return z > first && z <= first+overshoot }) {
		p.Upper = first + 2*overshoot
		p.warn(Warn, "weak soil continues below, deeper penetration possible")
	}

	if len(p.Crossings) > 1 {
		second := p.Crossings[1]
		if between, ok := meanReal(rows, func(z float64) bool { return z > first && z < second }); ok {
			ratio := between / preload
			if ratio > o.ReentryThreshold {
				p.warn(Info, "re-entry prevented by strong layer (%.1fx preload) between %.1f and %.1f m", ratio, first, second)
			} else {
				p.warn(Warn, "multiple weak zones: intersections at %.1f m and %.1f m, intermediate strength only %.1fx preload", first, second, ratio)
				p.warn(Warn, "deeper penetration to %.1f m is possible", second)
				p.Upper = second
				p.ReEntry = true
			}
		}
	}

	if sq, ok := squeezeWithin(rows, p.Lower, p.Upper); ok {
		p.SqueezeRange = &sq
		p.warn(Warn, "squeezing detected in predicted range (%.1f-%.1f m), monitor penetration rate", sq.Start, sq.End)
	}

	switch width := p.Upper - p.Lower; {
	case width < 1:
		p.warn(Info, "narrow prediction range (%.1f m), high confidence", width)
	case width < 3:
		p.warn(Info, "moderate prediction range (%.1f m), typical variability", width)
	default:
		p.warn(Warn, "large prediction range (%.1f m), consider additional analysis", width)
	}
	p.Design = p.Upper
	return p
}

// Crossings returns every depth where the governing capacity rises through
// load between two consecutive defined rows, cap[i] < load <= cap[i+1].
func Crossings(rows []spudcan.Row, load float64) []float64 {
	var zs, xs []float64
	for _, r := range rows {
		if v, ok := r.Real.Get(); ok {
			zs = append(zs, r.Depth)
			xs = append(xs, v)
		}
	}
	out := []float64{}
	for i := 0; i+1 < len(xs); i++ {
		if xs[i] < load && load <= xs[i+1] {
			frac := (load - xs[i]) / (xs[i+1] - xs[i])
			out = append(out, zs[i]+frac*(zs[i+1]-zs[i]))
		}
	}
	return out
}

// punchZones collects clay/clay and sand/clay ranges within [from, to] and
// merges the overlapping ones.
func punchZones(rows []spudcan.Row, from, to float64) []spudcan.DepthRange {
	var window []spudcan.Row
	for _, r := range rows {
		if r.Depth >= from && r.Depth <= to {
			window = append(window, r)
		}
	}
	zones := append(
		spudcan.Ranges(window, spudcan.ModePunchClayClay),
		spudcan.Ranges(window, spudcan.ModePunchSandClay)...,
	)
	return mergeZones(zones)
}

func mergeZones(zones []spudcan.DepthRange) []spudcan.DepthRange {
	out := []spudcan.DepthRange{}
	if len(zones) == 0 {
		return out
	}
	sort.Slice(zones, func(i, j int) bool { return zones[i].Start < zones[j].Start })
	out = append(out, zones[0])
	for _, z := range zones[1:] {
		last := &out[len(out)-1]
		if z.Start <= last.End {
			last.End = max(last.End, z.End)
			continue
		}
		out = append(out, z)
	}
	return out
}

func meanReal(rows []spudcan.Row, in func(float64) bool) (float64, bool) {
	var xs []float64
	for _, r := range rows {
		if v, ok := r.Real.Get(); ok && in(r.Depth) {
			xs = append(xs, v)
		}
	}
	if len(xs) == 0 {
		return 0, false
	}
	return stat.Mean(xs, nil), true
}

func hasRows(rows []spudcan.Row, in func(float64) bool) bool {
	for _, r := range rows {
		if in(r.Depth) {
			return true
		}
	}
	return false
}

func squeezeWithin(rows []spudcan.Row, lo, hi float64) (spudcan.DepthRange, bool) {
	var out spudcan.DepthRange
	found := false
	for _, r := range rows {
		if !r.Squeezing || r.Depth < lo || r.Depth > hi {
			continue
		}
		if !found {
			out.Start = r.Depth
			found = true
		}
		out.End = r.Depth
	}
	return out, found
}

func maxDefined(a, b opt.Float) opt.Float {
	switch {
	case !a.Valid:
		return b
	case !b.Valid:
		return a
	case b.Value > a.Value:
		return b
	}
	return a
}
