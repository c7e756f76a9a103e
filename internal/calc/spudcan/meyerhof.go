package spudcan

import (
	"gonum.org/v1/gonum/interp"
)

// MeyerhofTable maps embedment D/B to the backflow stability number N.
type MeyerhofTable struct {
	DOverB []float64 `json:"d_over_b" yaml:"d_over_b"`
	N      []float64 `json:"n" yaml:"n"`
}

func DefaultMeyerhof() MeyerhofTable {
	return MeyerhofTable{
		DOverB: []float64{0, 0.25, 0.5, 0.75, 1, 1.5, 2},
		N:      []float64{0, 2, 3, 3.6, 4, 4.7, 5.1},
	}
}

func (t MeyerhofTable) validate() error {
	if len(t.DOverB) < 2 || len(t.DOverB) != len(t.N) {
		return &InputError{Field: "meyerhof", Reason: "needs at least two (d_over_b, n) pairs of equal length"}
	}
	for i := 1; i < len(t.DOverB); i++ {
		if t.DOverB[i] <= t.DOverB[i-1] {
			return &InputError{Field: "meyerhof.d_over_b", Reason: "must be strictly increasing"}
		}
	}
	return nil
}

// predictor clamps to the end values outside the table. The table must have
// passed validate.
func (t MeyerhofTable) predictor() *interp.PiecewiseLinear {
	var pl interp.PiecewiseLinear
	_ = pl.Fit(t.DOverB, t.N)
	return &pl
}
