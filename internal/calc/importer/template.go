package importer

import (
	"encoding/csv"
	"io"

	"github.com/xuri/excelize/v2"
)

var templateRows = [][]string{
	{"Soft Clay", "clay", "0", "10", "7.0", "7.5", "10", "50"},
	{"Stiff Clay", "clay", "10", "20", "8.0", "8.5", "60", "100"},
	{"Sand", "sand", "20", "30", "9.0", "9.5", "32", "35"},
}

// WriteCSV writes Header followed by rows.
func WriteCSV(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}

// WriteSheet fills sheet with Header followed by rows. Numeric cells are
// stored as numbers.
func WriteSheet(f *excelize.File, sheet string, rows [][]string) error {
	if err := f.SetSheetRow(sheet, "A1", &Header); err != nil {
		return err
	}
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, s := range row {
			if v, err := toFloat(s); err == nil && v.Valid && j >= 2 {
				cells[j] = v.Value
				continue
			}
			cells[j] = s
		}
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, addr, &cells); err != nil {
			return err
		}
	}
	return nil
}

func TemplateCSV(w io.Writer) error {
	return WriteCSV(w, templateRows)
}

func TemplateXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", "Soil"); err != nil {
		return err
	}
	if err := WriteSheet(f, "Soil", templateRows); err != nil {
		return err
	}
	return f.Write(w)
}
