package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"SpudSRI/internal/opt"
	"SpudSRI/internal/soil"

	"github.com/xuri/excelize/v2"
)

// Header is the tabular soil layout shared by import, template and export.
var Header = []string{"Name", "Type", "Top(m)", "Bot(m)", "γ_top", "γ_bot", "Su/φ_top", "Su/φ_bot"}

var ErrEmpty = errors.New("no soil layers found")

// RowError locates a bad cell; Row is 1-based as in a spreadsheet.
type RowError struct {
	Row    int
	Column string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d, column %s: %v", e.Row, e.Column, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

type column int

const (
	colName column = iota
	colType
	colTop
	colBot
	colGammaTop
	colGammaBot
	colStrengthTop
	colStrengthBot
	numColumns
)

func normalize(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.NewReplacer(" ", "", "γ", "gamma", "φ", "phi").Replace(h)
}

// layout maps header cells to columns. Unrecognised headers fall back to the
// Header position.
func layout(header []string) ([numColumns]int, error) {
	var idx [numColumns]int
	for i := range idx {
		idx[i] = -1
	}
	for i, h := range header {
		n := normalize(h)
		switch {
		case n == "name":
			idx[colName] = i
		case n == "type" || n == "soil_type" || n == "soiltype":
			idx[colType] = i
		case n == "top(m)" || n == "top" || n == "z_top":
			idx[colTop] = i
		case n == "bot(m)" || n == "bot" || n == "z_bot":
			idx[colBot] = i
		case n == "gamma_top":
			idx[colGammaTop] = i
		case n == "gamma_bot":
			idx[colGammaBot] = i
		case strings.Contains(n, "top") && idx[colStrengthTop] < 0:
			idx[colStrengthTop] = i
		case strings.Contains(n, "bot") && idx[colStrengthBot] < 0:
			idx[colStrengthBot] = i
		}
	}
	for c := colName; c < numColumns; c++ {
		if idx[c] >= 0 {
			continue
		}
		if c == colStrengthTop || c == colStrengthBot {
			continue
		}
		return idx, fmt.Errorf("missing column %s", Header[c])
	}
	return idx, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func toFloat(s string) (opt.Float, error) {
	if s == "" {
		return opt.None(), nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return opt.None(), err
	}
	return opt.Some(v), nil
}

// ParseRows turns a header row plus data rows into layers. Each layer gets a
// two-point unit weight profile and a two-point Su (clay, silt) or φ (sand)
// profile; a missing bottom strength reuses the top.
func ParseRows(rows [][]string) ([]soil.Layer, error) {
	if len(rows) < 2 {
		return nil, ErrEmpty
	}
	idx, err := layout(rows[0])
	if err != nil {
		return nil, err
	}

	var layers []soil.Layer
	for i, row := range rows[1:] {
		if blank(row) {
			continue
		}
		line := i + 2
		nums := make(map[column]opt.Float, 6)
		for _, c := range []column{colTop, colBot, colGammaTop, colGammaBot, colStrengthTop, colStrengthBot} {
			v, err := toFloat(cell(row, idx[c]))
			if err != nil {
				return nil, &RowError{Row: line, Column: Header[c], Err: err}
			}
			nums[c] = v
		}
		for _, c := range []column{colTop, colBot} {
			if !nums[c].Valid {
				return nil, &RowError{Row: line, Column: Header[c], Err: errors.New("value required")}
			}
		}

		top, bot := nums[colTop].Value, nums[colBot].Value
		l := soil.Layer{
			Name:  cell(row, idx[colName]),
			Type:  soil.ParseType(cell(row, idx[colType])),
			Top:   top,
			Bot:   bot,
			Gamma: profile(top, bot, nums[colGammaTop], nums[colGammaBot]),
		}
		strength := profile(top, bot, nums[colStrengthTop], nums[colStrengthBot])
		if l.Type == soil.Sand {
			l.Phi = strength
		} else {
			l.Su = strength
		}
		layers = append(layers, l)
	}
	if len(layers) == 0 {
		return nil, ErrEmpty
	}
	return layers, nil
}

func profile(top, bot float64, vTop, vBot opt.Float) soil.Profile {
	if !vTop.Valid {
		return nil
	}
	if !vBot.Valid {
		vBot = vTop
	}
	return soil.Profile{{Z: top, V: vTop.Value}, {Z: bot, V: vBot.Value}}
}

func ParseCSV(r io.Reader) ([]soil.Layer, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return ParseRows(rows)
}

// ParseXLSX reads the first sheet of a workbook.
func ParseXLSX(r io.Reader) ([]soil.Layer, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}
	return ParseRows(rows)
}

// Check returns non-fatal findings about layers.
func Check(layers []soil.Layer) []string {
	warnings := []string{}
	for _, l := range layers {
		if l.Thickness() <= 0 {
			warnings = append(warnings, fmt.Sprintf("Layer %s: z_bot <= z_top", l.Name))
		}
		t := soil.ParseType(string(l.Type))
		if t == soil.Sand && len(l.Phi) == 0 {
			warnings = append(warnings, fmt.Sprintf("Layer %s: sand without φ", l.Name))
		}
		if t.FineGrained() && len(l.Su) == 0 {
			warnings = append(warnings, fmt.Sprintf("Layer %s: fine-grained without Su", l.Name))
		}
	}
	return warnings
}

// Row renders a layer in Header order, strengths at the layer boundaries.
func Row(l soil.Layer) []string {
	strength := l.Su
	if soil.ParseType(string(l.Type)) == soil.Sand {
		strength = l.Phi
	}
	at := func(p soil.Profile, z float64) string { return p.Sorted().At(z).String() }
	return []string{
		l.Name,
		string(l.Type),
		strconv.FormatFloat(l.Top, 'g', -1, 64),
		strconv.FormatFloat(l.Bot, 'g', -1, 64),
		at(l.Gamma, l.Top),
		at(l.Gamma, l.Bot),
		at(strength, l.Top),
		at(strength, l.Bot),
	}
}
