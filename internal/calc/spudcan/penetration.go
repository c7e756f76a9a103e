package spudcan

import (
	"math"

	"SpudSRI/internal/opt"
)

// Penetration holds widest-section depths (m) where capacity first reaches
// the preload, and the matching tip depths. Undefined means no crossing
// within the swept range.
type Penetration struct {
	Preload     float64   `json:"preload_mn"`
	Equilibrium opt.Float `json:"z_equilibrium"`
	Clay        opt.Float `json:"z_clay"`
	Sand        opt.Float `json:"z_sand"`
	RangeMin    opt.Float `json:"z_range_min"`
	RangeMax    opt.Float `json:"z_range_max"`

	TipEquilibrium opt.Float `json:"tip_equilibrium"`
	TipClay        opt.Float `json:"tip_clay"`
	TipSand        opt.Float `json:"tip_sand"`
	TipRangeMin    opt.Float `json:"tip_range_min"`
	TipRangeMax    opt.Float `json:"tip_range_max"`
}

// ResolvePenetration never fails; missing crossings stay undefined.
func ResolvePenetration(s Spudcan, rows []Row) Penetration {
	p := Penetration{Preload: s.Preload}
	p.Equilibrium = CrossingDepth(rows, func(r Row) opt.Float { return r.Real }, s.Preload)
	p.Clay = CrossingDepth(rows, func(r Row) opt.Float { return r.RealClayOnly }, s.Preload)
	p.Sand = CrossingDepth(rows, func(r Row) opt.Float { return r.RealSandOnly }, s.Preload)

	for _, z := range []opt.Float{p.Clay, p.Sand} {
		if !z.Valid {
			continue
		}
		if !p.RangeMin.Valid || z.Value < p.RangeMin.Value {
			p.RangeMin = z
		}
		if !p.RangeMax.Valid || z.Value > p.RangeMax.Value {
			p.RangeMax = z
		}
	}

	tip := s.TipOffset
	p.TipEquilibrium = p.Equilibrium.Add(tip)
	p.TipClay = p.Clay.Add(tip)
	p.TipSand = p.Sand.Add(tip)
	p.TipRangeMin = p.RangeMin.Add(tip)
	p.TipRangeMax = p.RangeMax.Add(tip)
	return p
}

// CrossingDepth scans the defined points of a capacity curve from shallow to
// deep and interpolates the first depth where it reaches load. It is
// undefined with fewer than two defined points or when load exceeds the
// curve's maximum.
func CrossingDepth(rows []Row, curve func(Row) opt.Float, load float64) opt.Float {
	zs := make([]float64, 0, len(rows))
	xs := make([]float64, 0, len(rows))
	peak := math.Inf(-1)
	for _, r := range rows {
		if v, ok := curve(r).Get(); ok {
			zs = append(zs, r.Depth)
			xs = append(xs, v)
			peak = math.Max(peak, v)
		}
	}
	if len(xs) < 2 || load > peak {
		return opt.None()
	}
	for j, x := range xs {
		if x < load {
			continue
		}
		if j == 0 {
			return opt.Some(zs[0])
		}
		x1, x2 := xs[j-1], x
		z1, z2 := zs[j-1], zs[j]
		if x2 == x1 {
			return opt.Some(z2)
		}
		return opt.Some(z1 + (load-x1)*(z2-z1)/(x2-x1))
	}
	return opt.None()
}
