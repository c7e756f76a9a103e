package spudcan

import (
	"math"
	"runtime"

	"SpudSRI/internal/opt"
	"SpudSRI/internal/soil"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/interp"
)

type Governance string

const (
	ClayGoverned Governance = "Clay-governed"
	SandGoverned Governance = "Sand-governed"
	ClayOnly     Governance = "Clay-only"
	SandOnly     Governance = "Sand-only"
	NotAvailable Governance = "NA"
)

// Row is one depth of the envelope. Forces are in MN.
type Row struct {
	Depth        float64    `json:"depth"`
	IdleClay     opt.Float  `json:"idle_clay_mn"`
	IdleSand     opt.Float  `json:"idle_sand_mn"`
	Squeeze      opt.Float  `json:"squeeze_mn"`
	Punch        opt.Float  `json:"punch_mn"`
	Real         opt.Float  `json:"real_mn"`
	Gov          Governance `json:"gov"`
	Backflow     bool       `json:"backflow"`
	RealClayOnly opt.Float  `json:"real_clay_only_mn"`
	RealSandOnly opt.Float  `json:"real_sand_only_mn"`

	Squeezing     Flag `json:"squeezing_active"`
	PunchClayClay Flag `json:"punch_clay_clay_active"`
	PunchSandClay Flag `json:"punch_sand_clay_active"`
}

type sweeper struct {
	spud     Spudcan
	col      soil.Column
	set      Settings
	meyerhof *interp.PiecewiseLinear
}

// ComputeEnvelope evaluates every failure mode from the seabed to
// settings.MaxDepth in steps of settings.Dz, floor(MaxDepth/Dz)+1 rows.
// The layers are copied; the caller keeps ownership of its slice.
func ComputeEnvelope(s Spudcan, layers []soil.Layer, set Settings) ([]Row, error) {
	if err := validate(s, layers, set); err != nil {
		return nil, err
	}
	table := DefaultMeyerhof()
	if set.Meyerhof != nil {
		table = *set.Meyerhof
	}
	sw := sweeper{spud: s, col: soil.NewColumn(layers), set: set, meyerhof: table.predictor()}

	n := int(math.Floor(set.MaxDepth/set.Dz)) + 1
	rows := make([]Row, n)

	workers := set.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	threshold := set.ParallelThreshold
	if threshold <= 0 {
		threshold = DefaultSettings().ParallelThreshold
	}
	if workers == 1 || n < threshold {
		for i := range rows {
			rows[i] = sw.row(depthAt(i, set.Dz))
		}
		return rows, nil
	}

	// rows are independent, each chunk writes its own slots
	var g errgroup.Group
	chunk := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				rows[i] = sw.row(depthAt(i, set.Dz))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func depthAt(i int, dz float64) float64 {
	return math.Round(float64(i)*dz*1e6) / 1e6
}

// backflow: soil flows over the spudcan once z exceeds N*cu/gamma' averaged
// over the B/2 zone of the layer at z.
func (sw sweeper) backflow(z float64) bool {
	b := sw.spud.Diameter
	l, ok := sw.col.At(z)
	if !ok {
		return false
	}
	if su := l.Su.At(z); !su.Valid || su.Value <= 0 {
		return false
	}
	cu := l.Su.Average(z, z+b/2, soil.AverageStep)
	gamma := l.Gamma.Average(z, z+b/2, soil.AverageStep)
	if !cu.Valid || !gamma.Valid || gamma.Value <= 0 {
		return false
	}
	n := sw.meyerhof.Predict(z / b)
	return z > n*cu.Value/gamma.Value
}

func (sw sweeper) row(z float64) Row {
	s, col, set := sw.spud, sw.col, sw.set
	backflow := sw.backflow(z)

	clay := ClayCapacity(s, z, col, set.UseMinCu, backflow)
	sand := SandCapacity(s, z, col, set.PhiReduction)
	squeeze := SqueezeCapacity(s, z, col, set.SqueezeTrigger, backflow)
	punch := PunchCapacity(s, z, col, backflow)
	flags := detectModes(s, z, col, squeeze, punch, sand)

	inSand := false
	if l, ok := col.At(z); ok {
		inSand = l.Type == soil.Sand
	}

	realClay := clay
	if realClay.Valid {
		realClay = opt.MinDefined(realClay, squeeze)
		if !inSand {
			realClay = opt.MinDefined(realClay, punch)
		}
	}
	realSand := sand
	if realSand.Valid && inSand {
		realSand = opt.MinDefined(realSand, punch)
	}
	if set.WindwardFactor {
		realClay = realClay.Scale(windward)
		realSand = realSand.Scale(windward)
	}

	governing, gov := govern(realClay, realSand)
	toMN := 1 / kNPerMN
	return Row{
		Depth:         z,
		IdleClay:      clay.Scale(toMN),
		IdleSand:      sand.Scale(toMN),
		Squeeze:       squeeze.Scale(toMN),
		Punch:         punch.Scale(toMN),
		Real:          governing.Scale(toMN),
		Gov:           gov,
		Backflow:      backflow,
		RealClayOnly:  realClay.Scale(toMN),
		RealSandOnly:  realSand.Scale(toMN),
		Squeezing:     flags.squeezing,
		PunchClayClay: flags.punchClayClay,
		PunchSandClay: flags.punchSandClay,
	}
}

// govern picks the lesser side; a tie is clay-governed.
func govern(clay, sand opt.Float) (opt.Float, Governance) {
	switch {
	case clay.Valid && sand.Valid:
		if clay.Value <= sand.Value {
			return clay, ClayGoverned
		}
		return sand, SandGoverned
	case clay.Valid:
		return clay, ClayOnly
	case sand.Valid:
		return sand, SandOnly
	}
	return opt.None(), NotAvailable
}
