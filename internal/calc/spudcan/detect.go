package spudcan

import (
	"SpudSRI/internal/opt"
	"SpudSRI/internal/soil"
)

// Flag is a failure-mode indicator rendered as YES/NO.
type Flag bool

func (f Flag) String() string {
	if f {
		return "YES"
	}
	return "NO"
}

func (f Flag) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *Flag) UnmarshalText(b []byte) error {
	*f = string(b) == "YES"
	return nil
}

type modeFlags struct {
	squeezing     Flag
	punchClayClay Flag
	punchSandClay Flag
}

// detectModes decides which failure modes are load-limiting at z. Sand over
// clay is flagged only when punch-through is strictly below sand bearing:
// the layer geometry alone is not enough.
func detectModes(s Spudcan, z float64, col soil.Column, squeeze, punch, sand opt.Float) modeFlags {
	var f modeFlags
	cur, next, ok := col.Pair(z)
	if !ok {
		return f
	}
	if squeeze.Valid && squeeze.Value > 0 {
		f.squeezing = true
	}
	if cur.Type.FineGrained() && next.Type.FineGrained() {
		cuTop, cuBot := pairStrengths(cur, next, z, s.Diameter)
		if cuTop.Valid && cuBot.Valid && cuTop.Value > cuBot.Value {
			f.punchClayClay = true
		}
	}
	if cur.Type == soil.Sand && next.Type.FineGrained() && cur.Bot-z > 0 {
		if punch.Valid && sand.Valid && punch.Value < sand.Value {
			f.punchSandClay = true
		}
	}
	return f
}

// Mode names a detected failure mode.
type Mode string

const (
	ModeSqueezing     Mode = "squeezing"
	ModePunchClayClay Mode = "punch_clay_clay"
	ModePunchSandClay Mode = "punch_sand_clay"
)

// Active reports whether mode is flagged on r.
func (r Row) Active(mode Mode) bool {
	switch mode {
	case ModeSqueezing:
		return bool(r.Squeezing)
	case ModePunchClayClay:
		return bool(r.PunchClayClay)
	case ModePunchSandClay:
		return bool(r.PunchSandClay)
	}
	return false
}

// DepthRange is an inclusive depth interval in metres.
type DepthRange struct {
	Start float64 `json:"start_m"`
	End   float64 `json:"end_m"`
}

// Ranges merges consecutive rows where mode is active.
func Ranges(rows []Row, mode Mode) []DepthRange {
	var out []DepthRange
	open := false
	for _, r := range rows {
		if !r.Active(mode) {
			open = false
			continue
		}
		if open {
			out[len(out)-1].End = r.Depth
			continue
		}
		out = append(out, DepthRange{Start: r.Depth, End: r.Depth})
		open = true
	}
	return out
}

type ModeSummary struct {
	Detected bool         `json:"detected"`
	Start    opt.Float    `json:"start_m"`
	End      opt.Float    `json:"end_m"`
	Ranges   []DepthRange `json:"ranges"`
}

type FailureSummary struct {
	Squeezing     ModeSummary `json:"squeezing"`
	PunchClayClay ModeSummary `json:"punch_clay_clay"`
	PunchSandClay ModeSummary `json:"punch_sand_clay"`
}

// DetectFailureModes summarises every mode over the sweep: all contiguous
// ranges plus the overall first and last active depth.
func DetectFailureModes(rows []Row) FailureSummary {
	return FailureSummary{
		Squeezing:     summarise(rows, ModeSqueezing),
		PunchClayClay: summarise(rows, ModePunchClayClay),
		PunchSandClay: summarise(rows, ModePunchSandClay),
	}
}

func summarise(rows []Row, mode Mode) ModeSummary {
	rs := Ranges(rows, mode)
	if len(rs) == 0 {
		return ModeSummary{Ranges: []DepthRange{}}
	}
	return ModeSummary{
		Detected: true,
		Start:    opt.Some(rs[0].Start),
		End:      opt.Some(rs[len(rs)-1].End),
		Ranges:   rs,
	}
}
