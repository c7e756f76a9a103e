package batch

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"SpudSRI/internal/calc/analysis"
	"SpudSRI/internal/calc/spudcan"
	"SpudSRI/internal/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const clayLayers = `[{"name":"clay","z_top":0,"z_bot":30,"soil_type":"clay",` +
	`"gamma":[{"z":0,"v":8},{"z":30,"v":8}],"su":[{"z":0,"v":20},{"z":30,"v":60}]}]`

func runner() *Runner {
	rig := spudcan.Spudcan{RigName: "jackup-1", Diameter: 8, Area: 50, TipOffset: 1.5, Preload: 20}
	return &Runner{
		Service: &analysis.Service{
			Rigs:     repo.NewMemoryRigDB(rig),
			Defaults: analysis.Defaults{Dz: 0.5, MaxDepth: 20, Workers: 1},
		},
		Concurrency: 2,
	}
}

func cases(bodies ...string) Input {
	in := Input{}
	for _, b := range bodies {
		in.Cases = append(in.Cases, json.RawMessage(b))
	}
	return in
}

func TestRunKeepsInputOrder(t *testing.T) {
	r := runner()
	var bodies []string
	for _, preload := range []string{"5", "10", "15", "20", "25"} {
		bodies = append(bodies, `{"rig":"jackup-1","preload_mn":`+preload+`,"layers":`+clayLayers+`}`)
	}
	reqs, err := r.Decode(cases(bodies...))
	require.NoError(t, err)
	require.Len(t, reqs, 5)
	assert.Equal(t, 0.5, reqs[0].Settings.Dz, "defaults fill what a case leaves out")

	res, err := r.Run(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, res.Results, 5)
	prev := -1.0
	for i, want := range []float64{5, 10, 15, 20, 25} {
		got := res.Results[i]
		assert.Equal(t, want, got.Spudcan.Preload)
		assert.Len(t, got.Rows, 41)
		z := got.Penetration.Equilibrium
		if z.Valid {
			assert.GreaterOrEqual(t, z.Value, prev, "deeper with more preload")
			prev = z.Value
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	r := runner()
	_, err := r.Decode(Input{})
	assert.ErrorIs(t, err, ErrNoCases)

	many := make([]string, MaxCases+1)
	for i := range many {
		many[i] = `{"rig":"jackup-1"}`
	}
	_, err = r.Decode(cases(many...))
	assert.ErrorIs(t, err, ErrTooManyCases)

	_, err = r.Decode(cases(`{"rig":"jackup-1"}`, `{"rig":7}`))
	var ce *CaseError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 1, ce.Index)
}

func TestRunReportsFailingCase(t *testing.T) {
	r := runner()
	reqs, err := r.Decode(cases(
		`{"rig":"jackup-1","layers":`+clayLayers+`}`,
		`{"rig":"missing","layers":[]}`,
	))
	require.NoError(t, err)

	_, err = r.Run(context.Background(), reqs)
	var ce *CaseError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 1, ce.Index)
	assert.ErrorIs(t, err, repo.ErrRigNotFound)
	assert.Equal(t, http.StatusNotFound, analysis.Status(err))
	assert.Contains(t, err.Error(), "case 1")
}

func TestHandler(t *testing.T) {
	h := &Handler{Runner: runner()}
	body := `{"cases":[{"rig":"jackup-1","layers":` + clayLayers + `},` +
		`{"spudcan":{"rig_name":"inline","diameter_m":10,"area_m2":78.5,"preload_mn":30},"layers":[]}]}`

	rec := httptest.NewRecorder()
	h.Run(rec, httptest.NewRequest(http.MethodPost, "/api/batch", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res struct {
		Results []struct {
			Spudcan struct {
				RigName string `json:"rig_name"`
			} `json:"spudcan"`
		} `json:"results"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	require.Len(t, res.Results, 2)
	assert.Equal(t, "jackup-1", res.Results[0].Spudcan.RigName)
	assert.Equal(t, "inline", res.Results[1].Spudcan.RigName)

	tests := []struct {
		name string
		body string
		code int
	}{
		{"malformed", "{", http.StatusBadRequest},
		{"empty", `{"cases":[]}`, http.StatusBadRequest},
		{"invalid case", `{"cases":[{"spudcan":{"diameter_m":-1,"area_m2":1},"layers":[]}]}`, http.StatusBadRequest},
		{"unbounded sweep", `{"cases":[{"rig":"jackup-1","settings":{"dz":1e-300,"max_depth":1e308},"layers":[]}]}`, http.StatusBadRequest},
		{"too many rows", `{"cases":[{"rig":"jackup-1","settings":{"dz":0.000001,"max_depth":1000},"layers":[]}]}`, http.StatusBadRequest},
		{"unknown rig", `{"cases":[{"rig":"missing","layers":[]}]}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Run(rec, httptest.NewRequest(http.MethodPost, "/api/batch", strings.NewReader(tt.body)))
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}
