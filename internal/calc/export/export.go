// Package export writes analysis results as CSV and XLSX downloads.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"SpudSRI/internal/calc/analysis"
	"SpudSRI/internal/calc/importer"
	"SpudSRI/internal/calc/spudcan"
	"SpudSRI/internal/opt"

	"github.com/xuri/excelize/v2"
)

var Columns = []string{
	"depth", "idle_clay_MN", "idle_sand_MN", "real_MN", "gov", "backflow",
	"squeeze_MN", "punch_MN", "real_clay_only_MN", "real_sand_only_MN",
	"squeezing_active", "punch_clay_clay_active", "punch_sand_clay_active",
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func record(r spudcan.Row) []string {
	return []string{
		strconv.FormatFloat(r.Depth, 'g', -1, 64),
		r.IdleClay.String(),
		r.IdleSand.String(),
		r.Real.String(),
		string(r.Gov),
		yesNo(r.Backflow),
		r.Squeeze.String(),
		r.Punch.String(),
		r.RealClayOnly.String(),
		r.RealSandOnly.String(),
		r.Squeezing.String(),
		r.PunchClayClay.String(),
		r.PunchSandClay.String(),
	}
}

// CSV writes one line per row; undefined values are empty cells.
func CSV(w io.Writer, rows []spudcan.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(record(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

const (
	sheetEnvelope    = "Envelope"
	sheetPenetration = "Penetration"
	sheetSoil        = "Soil"
)

func cellValue(f opt.Float) interface{} {
	if v, ok := f.Get(); ok {
		return v
	}
	return nil
}

// XLSX writes the envelope, the penetration summary and the soil layers.
func XLSX(w io.Writer, res analysis.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetEnvelope); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetEnvelope, "A1", &Columns); err != nil {
		return err
	}
	for i, r := range res.Rows {
		cells := []interface{}{
			r.Depth, cellValue(r.IdleClay), cellValue(r.IdleSand), cellValue(r.Real),
			string(r.Gov), yesNo(r.Backflow), cellValue(r.Squeeze), cellValue(r.Punch),
			cellValue(r.RealClayOnly), cellValue(r.RealSandOnly),
			r.Squeezing.String(), r.PunchClayClay.String(), r.PunchSandClay.String(),
		}
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetEnvelope, addr, &cells); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(sheetPenetration); err != nil {
		return err
	}
	for i, kv := range summary(res) {
		addr, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetPenetration, addr, &kv); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(sheetSoil); err != nil {
		return err
	}
	layers := make([][]string, len(res.Layers))
	for i, l := range res.Layers {
		layers[i] = importer.Row(l)
	}
	if err := importer.WriteSheet(f, sheetSoil, layers); err != nil {
		return err
	}
	return f.Write(w)
}

func summary(res analysis.Result) [][]interface{} {
	p, pred := res.Penetration, res.Prediction
	return [][]interface{}{
		{"Analysis", res.ID},
		{"Rig", res.Spudcan.RigName},
		{"Preload (MN)", p.Preload},
		{"Equilibrium depth (m)", cellValue(p.Equilibrium)},
		{"Clay-only depth (m)", cellValue(p.Clay)},
		{"Sand-only depth (m)", cellValue(p.Sand)},
		{"Range min (m)", cellValue(p.RangeMin)},
		{"Range max (m)", cellValue(p.RangeMax)},
		{"Tip equilibrium (m)", cellValue(p.TipEquilibrium)},
		{"Tip range min (m)", cellValue(p.TipRangeMin)},
		{"Tip range max (m)", cellValue(p.TipRangeMax)},
		{"Predicted range", pred.Range()},
		{"Design depth (m)", pred.Design},
		{"Re-entry possible", yesNo(pred.ReEntry)},
	}
}

// Filename is the download name for an analysis export.
func Filename(res analysis.Result, ext string) string {
	return fmt.Sprintf("spudcan-%s.%s", res.ID, ext)
}
