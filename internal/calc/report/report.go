// Package report renders an analysis as a PDF: inputs, penetration summary,
// prediction warnings, a capacity-depth chart and the envelope table.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"SpudSRI/internal/calc/analysis"
	"SpudSRI/internal/calc/prediction"
	"SpudSRI/internal/calc/spudcan"
	"SpudSRI/internal/opt"

	"github.com/phpdave11/gofpdf"
)

type Meta struct {
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Notes   string `json:"notes"`
}

const lineH = 6.0

type page struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func (p page) heading(s string) {
	p.pdf.Ln(4)
	p.pdf.SetFont("Helvetica", "B", 12)
	p.pdf.Cell(0, 8, p.tr(s))
	p.pdf.Ln(9)
	p.pdf.SetFont("Helvetica", "", 10)
}

func (p page) pair(label, value string) {
	p.pdf.CellFormat(70, lineH, p.tr(label), "", 0, "L", false, 0, "")
	p.pdf.CellFormat(0, lineH, p.tr(value), "", 1, "L", false, 0, "")
}

func metres(f opt.Float) string {
	if !f.Valid {
		return "-"
	}
	return f.Format(2) + " m"
}

func dash(f opt.Float, prec int) string {
	if !f.Valid {
		return "-"
	}
	return f.Format(prec)
}

// Write renders res to w. An empty title becomes "Spudcan Penetration Report"
// and the date defaults to today.
func Write(w io.Writer, res analysis.Result, meta Meta, date time.Time) error {
	if meta.Title == "" {
		meta.Title = "Spudcan Penetration Report"
	}
	if date.IsZero() {
		date = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	p := page{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pdf.SetTitle(meta.Title, true)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, p.tr(meta.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if meta.Project != "" {
		pdf.Cell(0, lineH, p.tr("Project: "+meta.Project))
		pdf.Ln(lineH)
	}
	if meta.Author != "" {
		pdf.Cell(0, lineH, p.tr("Author: "+meta.Author))
		pdf.Ln(lineH)
	}
	pdf.Cell(0, lineH, fmt.Sprintf("Date: %s", date.Format("2006-01-02")))
	pdf.Ln(lineH)
	pdf.Cell(0, lineH, fmt.Sprintf("Analysis: %s", res.ID))
	pdf.Ln(lineH)

	inputs(p, res)
	penetration(p, res.Penetration, res.Prediction)
	failures(p, res.Failures)

	if strings.TrimSpace(meta.Notes) != "" {
		p.heading("Notes")
		pdf.MultiCell(0, lineH, p.tr(meta.Notes), "", "L", false)
	}

	pdf.AddPage()
	p.heading("Capacity vs depth")
	chart(pdf, res.Rows, res.Spudcan.Preload, res.Settings.MaxDepth)

	pdf.AddPage()
	p.heading("Envelope")
	table(pdf, res.Rows)

	return pdf.Output(w)
}

func inputs(p page, res analysis.Result) {
	s := res.Spudcan
	p.heading("Spudcan")
	p.pair("Rig", s.RigName)
	p.pair("Diameter", fmt.Sprintf("%.2f m", s.Diameter))
	p.pair("Bearing area", fmt.Sprintf("%.2f m2", s.Area))
	p.pair("Tip offset", fmt.Sprintf("%.2f m", s.TipOffset))
	p.pair("Preload", fmt.Sprintf("%.1f MN", s.Preload))
	if s.Advanced() {
		p.pair("Cone angle / roughness", fmt.Sprintf("%s deg / %s", s.Beta.Format(0), s.Alpha.Format(2)))
	} else {
		p.pair("Bearing factor", "classical Nc = 5.14")
	}

	set := res.Settings
	p.heading("Settings")
	p.pair("Depth step / max depth", fmt.Sprintf("%g m / %g m", set.Dz, set.MaxDepth))
	p.pair("Minimum cu below base", onOff(set.UseMinCu))
	p.pair("Phi reduction", onOff(set.PhiReduction))
	p.pair("Windward factor", onOff(set.WindwardFactor))
	p.pair("Squeeze trigger", onOff(set.SqueezeTrigger))

	p.heading("Soil layers")
	pdf := p.pdf
	pdf.SetFont("Helvetica", "B", 9)
	for _, h := range []string{"Name", "Type", "Top (m)", "Bottom (m)"} {
		pdf.CellFormat(40, lineH, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)
	for _, l := range res.Layers {
		pdf.CellFormat(40, lineH, p.tr(l.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, lineH, string(l.Type), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, lineH, fmt.Sprintf("%.2f", l.Top), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, lineH, fmt.Sprintf("%.2f", l.Bot), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.SetFont("Helvetica", "", 10)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func penetration(p page, pen spudcan.Penetration, pred prediction.Prediction) {
	p.heading("Penetration")
	p.pair("Equilibrium depth", metres(pen.Equilibrium))
	p.pair("Clay-only / sand-only", metres(pen.Clay)+" / "+metres(pen.Sand))
	p.pair("Range", metres(pen.RangeMin)+" to "+metres(pen.RangeMax))
	p.pair("Tip equilibrium", metres(pen.TipEquilibrium))
	p.pair("Tip range", metres(pen.TipRangeMin)+" to "+metres(pen.TipRangeMax))

	p.heading("Prediction")
	p.pair("Predicted range", pred.Range())
	p.pair("Design depth", fmt.Sprintf("%.2f m (tip %.2f m)", pred.Design, pred.TipUpper))
	p.pair("Re-entry possible", yesNo(pred.ReEntry))
	for _, w := range pred.Warnings {
		p.pdf.MultiCell(0, lineH, p.tr(fmt.Sprintf("[%s] %s", strings.ToUpper(string(w.Level)), w.Message)), "", "L", false)
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func failures(p page, f spudcan.FailureSummary) {
	p.heading("Failure modes")
	for _, m := range []struct {
		name string
		s    spudcan.ModeSummary
	}{
		{"Squeezing", f.Squeezing},
		{"Punch-through clay/clay", f.PunchClayClay},
		{"Punch-through sand/clay", f.PunchSandClay},
	} {
		if !m.s.Detected {
			p.pair(m.name, "not detected")
			continue
		}
		parts := make([]string, len(m.s.Ranges))
		for i, r := range m.s.Ranges {
			parts[i] = fmt.Sprintf("%.2f-%.2f m", r.Start, r.End)
		}
		p.pair(m.name, strings.Join(parts, ", "))
	}
}

var tableCols = []struct {
	title string
	width float64
}{
	{"Depth", 18}, {"Idle clay", 24}, {"Idle sand", 24}, {"Squeeze", 24},
	{"Punch", 24}, {"Real", 24}, {"Governs", 32},
}

// tableStride keeps the envelope table to roughly 200 lines.
func tableStride(n int) int {
	return max(1, (n+199)/200)
}

func table(pdf *gofpdf.Fpdf, rows []spudcan.Row) {
	header := func() {
		pdf.SetFont("Helvetica", "B", 8)
		for _, c := range tableCols {
			pdf.CellFormat(c.width, 5, c.title, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 8)
	}
	header()
	_, pageH := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	stride := tableStride(len(rows))
	for i := 0; i < len(rows); i += stride {
		if pdf.GetY()+5 > pageH-bottom-10 {
			pdf.AddPage()
			header()
		}
		r := rows[i]
		cells := []string{
			fmt.Sprintf("%.2f", r.Depth), dash(r.IdleClay, 2), dash(r.IdleSand, 2),
			dash(r.Squeeze, 2), dash(r.Punch, 2), dash(r.Real, 2), string(r.Gov),
		}
		for j, c := range tableCols {
			pdf.CellFormat(c.width, 5, cells[j], "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}
}
