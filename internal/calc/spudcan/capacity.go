package spudcan

import (
	"math"

	"SpudSRI/internal/calc/ncprime"
	"SpudSRI/internal/opt"
	"SpudSRI/internal/soil"
)

// Every capacity below is in kN. A depth above the tip offset returns a
// defined zero: the widest section has not reached the seabed yet.

// ClayCapacity is undrained bearing of the layer at z. With backflow the
// overburden surcharge is dropped.
func ClayCapacity(s Spudcan, z float64, col soil.Column, useMinCu, backflow bool) opt.Float {
	b, a := s.Diameter, s.Area
	if b <= 0 || a <= 0 {
		return opt.None()
	}
	if z < s.TipOffset {
		return opt.Some(0)
	}
	l, ok := col.At(z)
	if !ok {
		return opt.None()
	}
	point := l.Su.At(z)
	if !point.Valid || point.Value <= 0 {
		return opt.None()
	}
	avg := l.Su.Average(z, z+b/2, soil.AverageStep)
	cu := avg
	if useMinCu {
		cu = opt.MinDefined(point, avg)
	}
	if !cu.Valid || cu.Value <= 0 {
		return opt.None()
	}

	nc, dc := classicNc, clayDepthFactor(z/b)
	if s.Advanced() {
		embedment := math.Min(z/(b/2), ncprime.MaxEmbedment)
		nc = ncprime.Lookup(s.Beta.Value, s.Alpha.Value, embedment, gradientRatio(z, b, col))
		dc = 1
	}

	p0 := 0.0
	if !backflow {
		p0 = col.Overburden(z, soil.OverburdenStep)
	}
	return opt.Some((cu.Value*nc*clayShape*dc + p0) * a)
}

func clayDepthFactor(dOverB float64) float64 {
	if dOverB <= 1 {
		return 1 + 0.4*dOverB
	}
	return 1 + 0.4*math.Atan(dOverB)
}

// gradientRatio is rho*2R/cum: the strength gradient over the B/2 zone below
// z, normalised by the mudline strength. It is zero when either is unknown.
func gradientRatio(z, b float64, col soil.Column) float64 {
	cum := col.SuAt(0)
	if !cum.Valid || cum.Value <= 0 {
		return 0
	}
	z2 := z + b/2
	su1, su2 := col.SuAt(z), col.SuAt(z2)
	if !su1.Valid || !su2.Valid {
		return 0
	}
	rho := (su2.Value - su1.Value) / math.Max(z2-z, 1e-6)
	return rho * b / cum.Value
}

// SandCapacity is drained bearing of the layer at z. The surcharge term is
// always included.
func SandCapacity(s Spudcan, z float64, col soil.Column, reducePhi bool) opt.Float {
	b, a := s.Diameter, s.Area
	if b <= 0 || a <= 0 {
		return opt.None()
	}
	if z < s.TipOffset {
		return opt.Some(0)
	}
	l, ok := col.At(z)
	if !ok {
		return opt.None()
	}
	phiDeg := l.Phi.At(z)
	if !phiDeg.Valid || phiDeg.Value <= 0 {
		return opt.None()
	}
	gamma := col.GammaAt(z)
	if !gamma.Valid {
		return opt.None()
	}
	deg := phiDeg.Value
	if reducePhi {
		deg = math.Max(0, deg-phiReduction)
	}
	phi := deg * math.Pi / 180
	tanPhi := math.Tan(phi)

	nq := bearingNq(phi)
	ng := 2 * (nq + 1) * tanPhi
	sq, sg := 1+tanPhi, 0.6
	dq, dg := 1+2*tanPhi*math.Pow(1-math.Sin(phi), 2)*(z/b), 1.0

	p0 := col.Overburden(z, soil.OverburdenStep)
	fv := (0.5*gamma.Value*b*ng*sg*dg + p0*nq*sq*dq) * a
	return opt.Some(math.Max(fv, 0))
}

func bearingNq(phi float64) float64 {
	t := math.Tan(math.Pi/4 + phi/2)
	return math.Exp(math.Pi*math.Tan(phi)) * t * t
}

// SqueezeCapacity applies when a soft fine-grained layer sits on a markedly
// stronger one (next-layer strength above 1.5x). With trigger set it also
// needs B >= 3.45*T*(1+1.025*z/B); equality counts as triggered.
func SqueezeCapacity(s Spudcan, z float64, col soil.Column, trigger, backflow bool) opt.Float {
	b, a := s.Diameter, s.Area
	if b <= 0 || a <= 0 {
		return opt.None()
	}
	if z < s.TipOffset {
		return opt.Some(0)
	}
	cur, next, ok := col.Pair(z)
	if !ok || !cur.Type.FineGrained() || !next.Type.FineGrained() {
		return opt.None()
	}
	cuTop, cuBot := pairStrengths(cur, next, z, b)
	if !cuTop.Valid || !cuBot.Valid || cuBot.Value <= 1.5*cuTop.Value {
		return opt.None()
	}
	t := cur.Bot - z
	if t <= 0 {
		return opt.None()
	}
	if trigger && b < 3.45*t*(1+1.025*(z/b)) {
		return opt.None()
	}
	p0 := 0.0
	if !backflow {
		p0 = col.Overburden(z, soil.OverburdenStep)
	}
	return opt.Some(a * ((5+0.33*(b/t)+1.2*(z/b))*cuTop.Value + p0))
}

// pairStrengths averages the current layer's strength over the B/2 zone below
// z and the next layer's strength over the B/2 zone below its top.
func pairStrengths(cur, next soil.Layer, z, b float64) (top, bot opt.Float) {
	top = cur.Su.Average(z, z+b/2, soil.AverageStep)
	bot = next.Su.Average(cur.Bot, cur.Bot+b/2, soil.AverageStep)
	return top, bot
}

// PunchCapacity covers a strong layer over a weak one: clay over weaker clay,
// or sand over clay. Other pairings are undefined.
func PunchCapacity(s Spudcan, z float64, col soil.Column, backflow bool) opt.Float {
	b, a := s.Diameter, s.Area
	if b <= 0 || a <= 0 {
		return opt.None()
	}
	if z < s.TipOffset {
		return opt.Some(0)
	}
	cur, next, ok := col.Pair(z)
	if !ok {
		return opt.None()
	}
	h := cur.Bot - z
	if h <= 0 {
		return opt.None()
	}

	switch {
	case cur.Type.FineGrained() && next.Type.FineGrained():
		cuTop, cuBot := pairStrengths(cur, next, z, b)
		if !cuTop.Valid || !cuBot.Valid || cuTop.Value <= cuBot.Value {
			return opt.None()
		}
		p0 := 0.0
		if !backflow {
			p0 = col.Overburden(z+h, soil.OverburdenStep)
		}
		fv := a * (3*(h/b)*cuTop.Value + classicNc*clayShape*(1+0.2*((z+h)/b))*cuBot.Value + p0)
		// never above ordinary bearing failure at the same depth
		if upper := ClayCapacity(s, z, col, true, backflow); upper.Valid {
			fv = math.Min(fv, upper.Value)
		}
		return opt.Some(fv)

	case cur.Type == soil.Sand && next.Type.FineGrained():
		base := ClayCapacity(s, z+h, col, true, false)
		if !base.Valid {
			return opt.None()
		}
		gammaSand := cur.Gamma.At(cur.Bot)
		cuClay := next.Su.Average(cur.Bot, cur.Bot+b/2, soil.AverageStep)
		if !gammaSand.Valid || !cuClay.Valid {
			return opt.None()
		}
		gs := gammaSand.Value
		p0 := col.Overburden(z, soil.OverburdenStep)
		ksTanPhi := 3 * cuClay.Value / (b * math.Max(gs, 1e-6))
		fv := base.Value - a*h*gs + 2*(h/b)*(h*gs+2*p0)*ksTanPhi*a
		return opt.Some(fv)
	}
	return opt.None()
}
