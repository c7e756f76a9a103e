package report

import (
	"fmt"
	"math"

	"SpudSRI/internal/calc/spudcan"
	"SpudSRI/internal/opt"

	"github.com/phpdave11/gofpdf"
)

const (
	chartW = 150.0
	chartH = 180.0
	ticks  = 5
)

type series struct {
	label string
	rgb   [3]int
	pick  func(spudcan.Row) opt.Float
}

var curves = []series{
	{"Idle clay", [3]int{200, 80, 30}, func(r spudcan.Row) opt.Float { return r.IdleClay }},
	{"Idle sand", [3]int{210, 170, 40}, func(r spudcan.Row) opt.Float { return r.IdleSand }},
	{"Real", [3]int{20, 60, 160}, func(r spudcan.Row) opt.Float { return r.Real }},
}

// niceCeil rounds v up to 1, 2 or 5 times a power of ten.
func niceCeil(v float64) float64 {
	if v <= 0 {
		return 1
	}
	exp := math.Pow(10, math.Floor(math.Log10(v)))
	for _, m := range []float64{1, 2, 5, 10} {
		if v <= m*exp {
			return m * exp
		}
	}
	return 10 * exp
}

// capacityScale sizes the load axis on the governing curve, the idle clay
// curve and the preload. Idle sand capacities run off the chart and are
// clipped.
func capacityScale(rows []spudcan.Row, preload float64) float64 {
	top := preload
	for _, r := range rows {
		top = max(top, r.Real.Or(0), r.IdleClay.Or(0))
	}
	return niceCeil(top * 1.1)
}

// chart draws capacity against depth with depth increasing down the page.
func chart(pdf *gofpdf.Fpdf, rows []spudcan.Row, preload, maxDepth float64) {
	x0, y0 := pdf.GetX()+12, pdf.GetY()+4
	if maxDepth <= 0 {
		maxDepth = 1
	}
	xmax := capacityScale(rows, preload)
	px := func(q float64) float64 { return x0 + math.Min(q, xmax)/xmax*chartW }
	py := func(z float64) float64 { return y0 + z/maxDepth*chartH }

	pdf.SetLineWidth(0.2)
	pdf.SetDrawColor(0, 0, 0)
	pdf.Rect(x0, y0, chartW, chartH, "D")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetDrawColor(200, 200, 200)
	for i := 0; i <= ticks; i++ {
		q := xmax * float64(i) / ticks
		z := maxDepth * float64(i) / ticks
		pdf.Line(px(q), y0, px(q), y0+chartH)
		pdf.Line(x0, py(z), x0+chartW, py(z))
		pdf.Text(px(q)-3, y0-1.5, fmt.Sprintf("%g", q))
		pdf.Text(x0-10, py(z)+1, fmt.Sprintf("%.1f", z))
	}
	pdf.SetFont("Helvetica", "", 8)
	pdf.Text(x0+chartW/2-15, y0-6, "Capacity (MN)")
	pdf.Text(x0-11, y0+chartH+6, "Depth (m)")

	pdf.SetLineWidth(0.5)
	for _, s := range curves {
		pdf.SetDrawColor(s.rgb[0], s.rgb[1], s.rgb[2])
		polyline(pdf, rows, s.pick, px, py)
	}

	if preload > 0 {
		pdf.SetDrawColor(150, 0, 0)
		pdf.SetDashPattern([]float64{2, 1.5}, 0)
		pdf.Line(px(preload), y0, px(preload), y0+chartH)
		pdf.SetDashPattern([]float64{}, 0)
	}
	legend(pdf, x0, y0+chartH+10, preload > 0)
	pdf.SetLineWidth(0.2)
	pdf.SetDrawColor(0, 0, 0)
}

// polyline joins consecutive defined points; an undefined value breaks the
// curve.
func polyline(pdf *gofpdf.Fpdf, rows []spudcan.Row, pick func(spudcan.Row) opt.Float, px, py func(float64) float64) {
	var prevX, prevY float64
	open := false
	for _, r := range rows {
		v, ok := pick(r).Get()
		if !ok {
			open = false
			continue
		}
		x, y := px(v), py(r.Depth)
		if open {
			pdf.Line(prevX, prevY, x, y)
		}
		prevX, prevY, open = x, y, true
	}
}

func legend(pdf *gofpdf.Fpdf, x, y float64, withPreload bool) {
	pdf.SetFont("Helvetica", "", 8)
	for _, s := range curves {
		pdf.SetDrawColor(s.rgb[0], s.rgb[1], s.rgb[2])
		pdf.Line(x, y, x+8, y)
		pdf.Text(x+10, y+1, s.label)
		x += 35
	}
	if withPreload {
		pdf.SetDrawColor(150, 0, 0)
		pdf.SetDashPattern([]float64{2, 1.5}, 0)
		pdf.Line(x, y, x+8, y)
		pdf.SetDashPattern([]float64{}, 0)
		pdf.Text(x+10, y+1, "Preload")
	}
}
