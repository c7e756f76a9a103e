package spudcan

import (
	"SpudSRI/internal/soil"
)

func linear(z1, v1, z2, v2 float64) soil.Profile {
	return soil.Profile{{Z: z1, V: v1}, {Z: z2, V: v2}}
}

func constant(z1, z2, v float64) soil.Profile { return linear(z1, v, z2, v) }

// singleClay is a 30 m clay with strength rising from 20 to 60 kPa.
func singleClay() []soil.Layer {
	return []soil.Layer{{
		Name: "clay", Top: 0, Bot: 30, Type: soil.Clay,
		Gamma: constant(0, 30, 8),
		Su:    linear(0, 20, 30, 60),
	}}
}

func rig() Spudcan {
	return Spudcan{RigName: "test", Diameter: 8, Area: 50, TipOffset: 1.5, Preload: 20}
}

// sandOverClay builds a sand layer on top of a clay layer.
func sandOverClay(sandBot, phi, su float64) []soil.Layer {
	return []soil.Layer{
		{Name: "sand", Top: 0, Bot: sandBot, Type: soil.Sand, Gamma: constant(0, sandBot, 10), Phi: constant(0, sandBot, phi)},
		{Name: "clay", Top: sandBot, Bot: 20, Type: soil.Clay, Gamma: constant(sandBot, 20, 8), Su: constant(sandBot, 20, su)},
	}
}

func wideRig() Spudcan {
	return Spudcan{RigName: "wide", Diameter: 10, Area: 78.5, Preload: 30}
}

func sequential() Settings {
	s := DefaultSettings()
	s.Workers = 1
	return s
}
