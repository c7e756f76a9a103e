package spudcan

import (
	"math"
	"testing"

	"SpudSRI/internal/calc/ncprime"
	"SpudSRI/internal/opt"
	"SpudSRI/internal/soil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapacitiesZeroAboveTipOffset(t *testing.T) {
	s := rig()
	s.TipOffset = 2
	cols := []soil.Column{
		soil.NewColumn(singleClay()),
		soil.NewColumn(sandOverClay(5, 35, 20)),
		soil.NewColumn(nil),
	}
	for _, col := range cols {
		for _, z := range []float64{0, 0.5, 1.99} {
			assert.Equal(t, opt.Some(0), ClayCapacity(s, z, col, true, false))
			assert.Equal(t, opt.Some(0), SandCapacity(s, z, col, false))
			assert.Equal(t, opt.Some(0), SqueezeCapacity(s, z, col, true, false))
			assert.Equal(t, opt.Some(0), PunchCapacity(s, z, col, false))
		}
	}
}

func TestClayCapacityClassical(t *testing.T) {
	s := rig()
	col := soil.NewColumn(singleClay())
	z := 4.0

	got := ClayCapacity(s, z, col, true, false)
	require.True(t, got.Valid)

	cu := 20 + 40*z/30 // point strength is the minimum on a rising profile
	dc := 1 + 0.4*z/s.Diameter
	want := (cu*5.14*1.2*dc + col.Overburden(z, soil.OverburdenStep)) * s.Area
	assert.InDelta(t, want, got.Value, 1e-6)

	noSurcharge := ClayCapacity(s, z, col, true, true)
	assert.InDelta(t, cu*5.14*1.2*dc*s.Area, noSurcharge.Value, 1e-6)
}

func TestClayCapacityAverageOnly(t *testing.T) {
	s := rig()
	col := soil.NewColumn(singleClay())
	minCu := ClayCapacity(s, 4, col, true, false)
	avgCu := ClayCapacity(s, 4, col, false, false)
	assert.Greater(t, avgCu.Value, minCu.Value, "zone average exceeds the point value on a rising profile")
}

func TestClayDepthFactorBeyondOneDiameter(t *testing.T) {
	assert.InDelta(t, 1.4, clayDepthFactor(1), 1e-12)
	assert.InDelta(t, 1+0.4*math.Atan(2), clayDepthFactor(2), 1e-12)
}

func TestClayCapacityAdvancedNc(t *testing.T) {
	s := rig()
	s.TipOffset = 0
	s.Beta = opt.Some(90)
	s.Alpha = opt.Some(0)
	layers := []soil.Layer{{Name: "uniform", Top: 0, Bot: 30, Type: soil.Clay, Gamma: constant(0, 30, 8), Su: constant(0, 30, 30)}}
	col := soil.NewColumn(layers)

	got := ClayCapacity(s, 0, col, true, false)
	// uniform strength, seabed: zero gradient and zero embedment
	assert.InDelta(t, 30*ncprime.Lookup(90, 0, 0, 0)*1.2*s.Area, got.Value, 1e-6)
	assert.InDelta(t, 30*5.02*1.2*s.Area, got.Value, 1e-6)
}

func TestClayCapacityUndefinedWithoutStrength(t *testing.T) {
	s := rig()
	col := soil.NewColumn(sandOverClay(5, 35, 20))
	assert.False(t, ClayCapacity(s, 3, col, true, false).Valid)
	assert.True(t, ClayCapacity(s, 6, col, true, false).Valid)
}

func TestSandCapacity(t *testing.T) {
	s := wideRig()
	col := soil.NewColumn(sandOverClay(5, 35, 20))
	z := 1.0

	got := SandCapacity(s, z, col, false)
	require.True(t, got.Valid)

	phi := 35 * math.Pi / 180
	nq := math.Exp(math.Pi*math.Tan(phi)) * math.Pow(math.Tan(math.Pi/4+phi/2), 2)
	ng := 2 * (nq + 1) * math.Tan(phi)
	dq := 1 + 2*math.Tan(phi)*math.Pow(1-math.Sin(phi), 2)*z/s.Diameter
	p0 := col.Overburden(z, soil.OverburdenStep)
	want := (0.5*10*s.Diameter*ng*0.6 + p0*nq*(1+math.Tan(phi))*dq) * s.Area
	assert.InDelta(t, want, got.Value, 1e-6)

	reduced := SandCapacity(s, z, col, true)
	assert.Less(t, reduced.Value, got.Value)

	assert.False(t, SandCapacity(s, 6, col, false).Valid, "no friction angle in clay")
}

func squeezeColumn(topBot float64) soil.Column {
	return soil.NewColumn([]soil.Layer{
		{Name: "soft", Top: 0, Bot: topBot, Type: soil.Clay, Gamma: constant(0, topBot, 7), Su: constant(0, topBot, 10)},
		{Name: "stiff", Top: topBot, Bot: 30, Type: soil.Clay, Gamma: constant(topBot, 30, 9), Su: constant(topBot, 30, 100)},
	})
}

func TestSqueezeCapacityTriggerBoundary(t *testing.T) {
	// B = 3.45*T exactly at the seabed: the boundary counts as triggered
	s := Spudcan{Diameter: 6.9, Area: 37}
	col := squeezeColumn(2)
	require.Equal(t, s.Diameter, 3.45*2*(1+1.025*0/s.Diameter))

	got := SqueezeCapacity(s, 0, col, true, false)
	require.True(t, got.Valid)
	assert.InDelta(t, s.Area*(5+0.33*(6.9/2))*10, got.Value, 1e-6)

	// a slightly thicker soft layer fails the geometric trigger
	assert.False(t, SqueezeCapacity(s, 0, squeezeColumn(2.01), true, false).Valid)
	assert.True(t, SqueezeCapacity(s, 0, squeezeColumn(2.01), false, false).Valid)
}

func TestSqueezeCapacityNeedsStrongerLayerBelow(t *testing.T) {
	s := Spudcan{Diameter: 10, Area: 78.5}
	col := soil.NewColumn([]soil.Layer{
		{Name: "a", Top: 0, Bot: 2, Type: soil.Clay, Gamma: constant(0, 2, 7), Su: constant(0, 2, 10)},
		{Name: "b", Top: 2, Bot: 30, Type: soil.Clay, Gamma: constant(2, 30, 7), Su: constant(2, 30, 14)},
	})
	assert.False(t, SqueezeCapacity(s, 0, col, false, false).Valid)

	sandBelow := soil.NewColumn(sandOverClay(5, 30, 20)[1:])
	assert.False(t, SqueezeCapacity(s, 6, sandBelow, false, false).Valid, "last layer has no successor")
}

func TestPunchCapacityClayOverWeakerClay(t *testing.T) {
	s := Spudcan{Diameter: 10, Area: 78.5}
	col := soil.NewColumn([]soil.Layer{
		{Name: "crust", Top: 0, Bot: 3, Type: soil.Clay, Gamma: constant(0, 3, 8), Su: constant(0, 3, 80)},
		{Name: "soft", Top: 3, Bot: 30, Type: soil.Clay, Gamma: constant(3, 30, 6), Su: constant(3, 30, 15)},
	})
	got := PunchCapacity(s, 1, col, false)
	require.True(t, got.Valid)
	clay := ClayCapacity(s, 1, col, true, false)
	assert.LessOrEqual(t, got.Value, clay.Value, "capped by ordinary bearing")

	// weaker over stronger is not a punch-through pairing
	assert.False(t, PunchCapacity(s, 1, squeezeColumn(2), false).Valid)
}

func TestPunchCapacitySandOverClay(t *testing.T) {
	s := wideRig()
	col := soil.NewColumn(sandOverClay(5, 35, 20))
	z := 1.0
	got := PunchCapacity(s, z, col, false)
	require.True(t, got.Valid)

	h := 5 - z
	base := ClayCapacity(s, 5, col, true, false).Value
	ks := 3 * 20 / (s.Diameter * 10)
	p0 := col.Overburden(z, soil.OverburdenStep)
	want := base - s.Area*h*10 + 2*(h/s.Diameter)*(h*10+2*p0)*ks*s.Area
	assert.InDelta(t, want, got.Value, 1e-6)
}

func TestPunchCapacityUndefinedPairings(t *testing.T) {
	s := wideRig()
	clayOverSand := soil.NewColumn([]soil.Layer{
		{Name: "clay", Top: 0, Bot: 5, Type: soil.Clay, Gamma: constant(0, 5, 8), Su: constant(0, 5, 50)},
		{Name: "sand", Top: 5, Bot: 20, Type: soil.Sand, Gamma: constant(5, 20, 10), Phi: constant(5, 20, 30)},
	})
	assert.False(t, PunchCapacity(s, 1, clayOverSand, false).Valid)
}
