// Package ncprime looks up the fine-grained bearing factor Nc' for a conical
// spudcan from the tabulated values at six apex angles.
//
// Within one apex-angle table the roughness columns are collapsed first, then
// the (gradient, embedment) grid is interpolated bilinearly. Angles between
// two tables are interpolated linearly. Every input is clamped to the table
// domain, so a lookup never fails.
package ncprime

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/interp"
)

const (
	MinBeta      = 30.0
	MaxBeta      = 180.0
	MaxAlpha     = 1.0
	MaxEmbedment = 2.5
	MaxGradient  = 5.0
)

type row struct {
	grad, d float64
	nc      [5]float64
}

var alphaAxis = []float64{0, 0.2, 0.4, 0.6, 0.8}

type grid struct {
	grads []float64
	ds    []float64
	// cells[i][j] interpolates Nc' over roughness at grads[i], ds[j]
	cells [][]interp.PiecewiseLinear
}

var (
	grids = buildGrids()
	betas = sortedBetas()
)

func sortedBetas() []float64 {
	out := make([]float64, 0, len(tables))
	for b := range tables {
		out = append(out, b)
	}
	sort.Float64s(out)
	return out
}

func buildGrids() map[float64]*grid {
	out := make(map[float64]*grid, len(tables))
	for beta, rows := range tables {
		g := &grid{grads: uniq(rows, func(r row) float64 { return r.grad }), ds: uniq(rows, func(r row) float64 { return r.d })}
		g.cells = make([][]interp.PiecewiseLinear, len(g.grads))
		seen := 0
		for i := range g.cells {
			g.cells[i] = make([]interp.PiecewiseLinear, len(g.ds))
		}
		for _, r := range rows {
			i := sort.SearchFloat64s(g.grads, r.grad)
			j := sort.SearchFloat64s(g.ds, r.d)
			if err := g.cells[i][j].Fit(alphaAxis, r.nc[:]); err != nil {
				panic(fmt.Sprintf("ncprime: beta %v: %v", beta, err))
			}
			seen++
		}
		if seen != len(g.grads)*len(g.ds) {
			panic(fmt.Sprintf("ncprime: beta %v table is not a full grid", beta))
		}
		out[beta] = g
	}
	return out
}

func uniq(rows []row, key func(row) float64) []float64 {
	set := make(map[float64]struct{})
	for _, r := range rows {
		set[key(r)] = struct{}{}
	}
	out := make([]float64, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Float64s(out)
	return out
}

// Betas lists the tabulated apex angles in ascending order.
func Betas() []float64 {
	out := make([]float64, len(betas))
	copy(out, betas)
	return out
}

// Lookup returns Nc' for apex angle beta (deg), roughness alpha, embedment
// ratio D/2R and strength-gradient ratio rho*2R/cum.
func Lookup(beta, alpha, embedment, gradient float64) float64 {
	beta = clamp(beta, MinBeta, MaxBeta)
	alpha = clamp(alpha, 0, MaxAlpha)
	embedment = clamp(embedment, 0, MaxEmbedment)
	gradient = clamp(gradient, 0, MaxGradient)

	lo, hi := bracket(beta)
	ncLo := grids[lo].at(alpha, gradient, embedment)
	if lo == hi {
		return ncLo
	}
	ncHi := grids[hi].at(alpha, gradient, embedment)
	return ncLo + (beta-lo)/(hi-lo)*(ncHi-ncLo)
}

func bracket(beta float64) (lo, hi float64) {
	i := sort.SearchFloat64s(betas, beta)
	if i < len(betas) && betas[i] == beta {
		return beta, beta
	}
	return betas[i-1], betas[i]
}

// at is multilinear on the rectilinear grid: the prebuilt roughness
// interpolators give the corner values, embedment and gradient weight them.
func (g *grid) at(alpha, gradient, embedment float64) float64 {
	i, tg := segment(g.grads, gradient)
	j, td := segment(g.ds, embedment)
	corner := func(i, j int) float64 { return g.cells[i][j].Predict(alpha) }
	along := func(i int) float64 {
		if td == 0 {
			return corner(i, j)
		}
		return (1-td)*corner(i, j) + td*corner(i, j+1)
	}
	if tg == 0 {
		return along(i)
	}
	return (1-tg)*along(i) + tg*along(i+1)
}

// segment locates x on the ascending axis xs: the lower index and the
// fraction towards the next point. x is already clamped to the axis.
func segment(xs []float64, x float64) (int, float64) {
	k := sort.SearchFloat64s(xs, x)
	switch {
	case k < len(xs) && xs[k] == x:
		return k, 0
	case k == 0:
		return 0, 0
	case k >= len(xs):
		return len(xs) - 1, 0
	}
	return k - 1, (x - xs[k-1]) / (xs[k] - xs[k-1])
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(hi, math.Max(lo, v))
}
