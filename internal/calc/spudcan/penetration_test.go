package spudcan

import (
	"testing"

	"SpudSRI/internal/opt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func realRow(z float64, v opt.Float) Row { return Row{Depth: z, Real: v} }

func realCurve(r Row) opt.Float { return r.Real }

func TestCrossingDepth(t *testing.T) {
	rows := []Row{
		realRow(0, opt.Some(0)),
		realRow(1, opt.Some(10)),
		realRow(2, opt.None()),
		realRow(3, opt.Some(30)),
		realRow(4, opt.Some(20)),
	}
	tests := []struct {
		name string
		load float64
		want opt.Float
	}{
		{"interpolated", 5, opt.Some(0.5)},
		{"skips undefined rows", 20, opt.Some(2)},
		{"exact hit", 10, opt.Some(1)},
		{"first point", 0, opt.Some(0)},
		{"above peak", 31, opt.None()},
		{"at peak", 30, opt.Some(3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CrossingDepth(rows, realCurve, tt.load)
			assert.Equal(t, tt.want.Valid, got.Valid)
			assert.InDelta(t, tt.want.Value, got.Value, 1e-12)
		})
	}
}

func TestCrossingDepthFlatSegment(t *testing.T) {
	rows := []Row{realRow(0, opt.Some(5)), realRow(1, opt.Some(5)), realRow(2, opt.Some(8))}
	assert.Equal(t, opt.Some(0), CrossingDepth(rows, realCurve, 5))

	rows = []Row{realRow(0, opt.Some(1)), realRow(1, opt.Some(5)), realRow(2, opt.Some(5))}
	assert.Equal(t, opt.Some(1), CrossingDepth(rows, realCurve, 5))
}

func TestCrossingDepthTooFewPoints(t *testing.T) {
	assert.False(t, CrossingDepth(nil, realCurve, 1).Valid)
	assert.False(t, CrossingDepth([]Row{realRow(0, opt.Some(10))}, realCurve, 1).Valid)
	assert.False(t, CrossingDepth([]Row{realRow(0, opt.None()), realRow(1, opt.None())}, realCurve, 1).Valid)
}

func TestResolvePenetrationSingleClay(t *testing.T) {
	s := rig()
	rows, err := ComputeEnvelope(s, singleClay(), sequential())
	require.NoError(t, err)

	p := ResolvePenetration(s, rows)
	require.True(t, p.Equilibrium.Valid)
	assert.Greater(t, p.Equilibrium.Value, 10.0)
	assert.Less(t, p.Equilibrium.Value, 13.0)

	assert.Equal(t, p.Equilibrium, p.Clay, "clay is the only side")
	assert.False(t, p.Sand.Valid)
	assert.Equal(t, p.Clay, p.RangeMin)
	assert.Equal(t, p.Clay, p.RangeMax)

	assert.InDelta(t, p.Equilibrium.Value+s.TipOffset, p.TipEquilibrium.Value, 1e-12)
	assert.InDelta(t, p.RangeMax.Value+s.TipOffset, p.TipRangeMax.Value, 1e-12)
	assert.False(t, p.TipSand.Valid)
}

func TestResolvePenetrationUnreachableLoad(t *testing.T) {
	s := rig()
	s.Preload = 10000
	rows, err := ComputeEnvelope(s, singleClay(), sequential())
	require.NoError(t, err)

	p := ResolvePenetration(s, rows)
	assert.False(t, p.Equilibrium.Valid)
	assert.False(t, p.RangeMin.Valid)
	assert.False(t, p.TipEquilibrium.Valid)
	assert.Equal(t, 10000.0, p.Preload)
}

func TestResolvePenetrationRange(t *testing.T) {
	rows := []Row{
		{Depth: 0, RealClayOnly: opt.Some(0), RealSandOnly: opt.Some(0), Real: opt.Some(0)},
		{Depth: 1, RealClayOnly: opt.Some(4), RealSandOnly: opt.Some(20), Real: opt.Some(4)},
		{Depth: 2, RealClayOnly: opt.Some(12), RealSandOnly: opt.Some(30), Real: opt.Some(12)},
	}
	s := Spudcan{Preload: 10, TipOffset: 0.5}
	p := ResolvePenetration(s, rows)

	assert.InDelta(t, 1.75, p.Clay.Value, 1e-12)
	assert.InDelta(t, 0.5, p.Sand.Value, 1e-12)
	assert.Equal(t, p.Sand, p.RangeMin)
	assert.Equal(t, p.Clay, p.RangeMax)
	assert.InDelta(t, 1.0, p.TipRangeMin.Value, 1e-12)
	assert.InDelta(t, 2.25, p.TipRangeMax.Value, 1e-12)
}

// The single clay profile peaks below 44 MN, so an 80 MN preload finds no
// equilibrium. The governing curve rises from the tip until the depth factor
// jumps at z/B = 1.
func TestResolvePenetrationSingleClayHeavyPreload(t *testing.T) {
	s := rig()
	s.Preload = 80
	rows, err := ComputeEnvelope(s, singleClay(), sequential())
	require.NoError(t, err)
	require.Len(t, rows, 201)

	peak, peakAt := 0.0, 0.0
	for _, r := range rows {
		if v, ok := r.Real.Get(); ok && v > peak {
			peak, peakAt = v, r.Depth
		}
	}
	assert.InDelta(t, 43.88, peak, 0.05)
	assert.InDelta(t, 38.25, peakAt, 1e-9)

	prev := -1.0
	for _, r := range rows {
		if r.Depth < s.TipOffset || r.Depth > s.Diameter {
			continue
		}
		v, ok := r.Real.Get()
		require.True(t, ok, "depth %g", r.Depth)
		assert.Greater(t, v, prev, "depth %g", r.Depth)
		prev = v
	}

	p := ResolvePenetration(s, rows)
	assert.False(t, p.Equilibrium.Valid)
	assert.False(t, p.TipEquilibrium.Valid)
	assert.Equal(t, 80.0, p.Preload)
}
