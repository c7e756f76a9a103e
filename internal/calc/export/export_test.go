package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"SpudSRI/internal/calc/analysis"
	"SpudSRI/internal/calc/importer"
	"SpudSRI/internal/calc/spudcan"
	"SpudSRI/internal/opt"
	"SpudSRI/internal/repo"
	"SpudSRI/internal/soil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testLayers() []soil.Layer {
	return []soil.Layer{
		{Name: "sand", Top: 0, Bot: 5, Type: soil.Sand,
			Gamma: soil.Profile{{Z: 0, V: 10}, {Z: 5, V: 10}}, Phi: soil.Profile{{Z: 0, V: 35}, {Z: 5, V: 35}}},
		{Name: "clay", Top: 5, Bot: 20, Type: soil.Clay,
			Gamma: soil.Profile{{Z: 5, V: 8}, {Z: 20, V: 8}}, Su: soil.Profile{{Z: 5, V: 20}, {Z: 20, V: 50}}},
	}
}

func service() *analysis.Service {
	return &analysis.Service{
		Rigs:     repo.NewMemoryRigDB(),
		Defaults: analysis.Defaults{Dz: 0.5, MaxDepth: 10, Workers: 1},
	}
}

func result(t *testing.T) analysis.Result {
	t.Helper()
	res, err := service().Run(context.Background(), analysis.Request{
		Spudcan: &spudcan.Spudcan{RigName: "wide", Diameter: 10, Area: 78.5, Preload: 30},
		Layers:  testLayers(),
	})
	require.NoError(t, err)
	return res
}

func TestCSV(t *testing.T) {
	rows := []spudcan.Row{
		{Depth: 0, IdleClay: opt.Some(1.5), Real: opt.Some(1.5), Gov: spudcan.ClayOnly, RealClayOnly: opt.Some(1.5)},
		{Depth: 0.25, Gov: spudcan.NotAvailable, Backflow: true, Squeezing: true},
	}
	var buf bytes.Buffer
	require.NoError(t, CSV(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, Columns, records[0])
	assert.Equal(t, []string{"0", "1.5", "", "1.5", "Clay-only", "No", "", "", "1.5", "", "NO", "NO", "NO"}, records[1])
	assert.Equal(t, []string{"0.25", "", "", "", "NA", "Yes", "", "", "", "", "YES", "NO", "NO"}, records[2])
}

func TestXLSX(t *testing.T) {
	res := result(t)
	var buf bytes.Buffer
	require.NoError(t, XLSX(&buf, res))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Envelope", "Penetration", "Soil"}, f.GetSheetList())

	env, err := f.GetRows("Envelope")
	require.NoError(t, err)
	require.Len(t, env, len(res.Rows)+1)
	assert.Equal(t, Columns, env[0])
	assert.Equal(t, "Sand-only", env[3][4], "1 m is in the sand")

	pen, err := f.GetRows("Penetration")
	require.NoError(t, err)
	assert.Equal(t, []string{"Analysis", res.ID}, pen[0])
	assert.Equal(t, "Rig", pen[1][0])

	soilRows, err := f.GetRows("Soil")
	require.NoError(t, err)
	layers, err := importer.ParseRows(soilRows)
	require.NoError(t, err)
	assert.Equal(t, testLayers(), layers)
}

func TestHandlers(t *testing.T) {
	h := &Handler{Analysis: &analysis.Handler{Service: service()}}
	body := `{"spudcan":{"rig_name":"wide","diameter_m":10,"area_m2":78.5,"preload_mn":30},"layers":[]}`

	rec := httptest.NewRecorder()
	h.CSV(rec, httptest.NewRequest(http.MethodPost, "/api/analysis/csv", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".csv")
	assert.Equal(t, 22, strings.Count(rec.Body.String(), "\n"), "header plus 21 rows")

	rec = httptest.NewRecorder()
	h.XLSX(rec, httptest.NewRequest(http.MethodPost, "/api/analysis/xlsx", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")))

	rec = httptest.NewRecorder()
	h.CSV(rec, httptest.NewRequest(http.MethodPost, "/api/analysis/csv", strings.NewReader(`{"rig":"none"}`)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
