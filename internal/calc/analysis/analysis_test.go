package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"SpudSRI/internal/calc/spudcan"
	"SpudSRI/internal/repo"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const clayLayers = `[{"name":"clay","z_top":0,"z_bot":30,"soil_type":"clay",
	"gamma":[{"z":0,"v":8},{"z":30,"v":8}],
	"su":[{"z":0,"v":20},{"z":30,"v":60}]}]`

func newService() *Service {
	return &Service{
		Rigs: repo.NewMemoryRigDB(spudcan.Spudcan{RigName: "JU-2000", Diameter: 8, Area: 50, TipOffset: 1.5, Preload: 20}),
		Defaults: Defaults{Dz: 0.5, MaxDepth: 20, Workers: 1, ParallelThreshold: 2000},
	}
}

func post(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/api/analysis", strings.NewReader(body)))
	return rec
}

func TestCalcWithRig(t *testing.T) {
	h := &Handler{Service: newService()}
	rec := post(t, h.Calc, `{"rig":"JU-2000","layers":`+clayLayers+`}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "JU-2000", res.Spudcan.RigName)
	assert.Len(t, res.Rows, 41, "service defaults: 20 m in 0.5 m steps")
	require.True(t, res.Penetration.Equilibrium.Valid)
	assert.InDelta(t, 11.8, res.Penetration.Equilibrium.Value, 0.3)
	assert.False(t, res.Prediction.Exceeded)
	assert.True(t, res.Settings.UseMinCu, "defaults survive a body without settings")
}

func TestCalcPreloadOverrideAndPartialSettings(t *testing.T) {
	h := &Handler{Service: newService()}
	body := `{"rig":"JU-2000","preload_mn":1000,"settings":{"max_depth":10},"layers":` + clayLayers + `}`
	rec := post(t, h.Calc, body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, 1000.0, res.Spudcan.Preload)
	assert.Len(t, res.Rows, 21)
	assert.Equal(t, 0.5, res.Settings.Dz)
	assert.True(t, res.Settings.SqueezeTrigger)
	assert.False(t, res.Penetration.Equilibrium.Valid)
	assert.True(t, res.Prediction.Exceeded)
}

func TestCalcInlineSpudcan(t *testing.T) {
	h := &Handler{Service: newService()}
	body := `{"spudcan":{"rig_name":"inline","diameter_m":8,"area_m2":50,"tip_offset_m":1.5,"preload_mn":20,"beta_deg":90,"alpha":0.2},"layers":` + clayLayers + `}`
	rec := post(t, h.Calc, body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.True(t, res.Spudcan.Advanced())
}

func TestCalcErrors(t *testing.T) {
	h := &Handler{Service: newService()}
	tests := []struct {
		name string
		body string
		code int
	}{
		{"bad json", `{`, http.StatusBadRequest},
		{"neither rig nor spudcan", `{"layers":[]}`, http.StatusBadRequest},
		{"unknown rig", `{"rig":"nope","layers":[]}`, http.StatusNotFound},
		{"bad geometry", `{"spudcan":{"diameter_m":0,"area_m2":50},"layers":[]}`, http.StatusBadRequest},
		{"negative preload", `{"rig":"JU-2000","preload_mn":-1,"layers":[]}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, post(t, h.Calc, tt.body).Code)
		})
	}
}

type brokenRepo struct{ repo.Repository }

func (brokenRepo) GetRig(context.Context, string) (spudcan.Spudcan, error) {
	return spudcan.Spudcan{}, errors.New("connection reset")
}

func TestStatus(t *testing.T) {
	svc := &Service{Rigs: brokenRepo{}}
	_, err := svc.Run(context.Background(), Request{Rig: "x"})
	assert.Equal(t, http.StatusInternalServerError, Status(err))

	svc = &Service{}
	_, err = svc.Run(context.Background(), Request{Rig: "x"})
	assert.Equal(t, http.StatusBadRequest, Status(err), "no catalog")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = newService().Run(ctx, Request{Rig: "JU-2000"})
	assert.Equal(t, http.StatusServiceUnavailable, Status(err))
}

func rigRouter(r repo.Repository) *mux.Router {
	h := &RigHandler{Repo: r}
	m := mux.NewRouter()
	m.HandleFunc("/api/rigs", h.List).Methods("GET")
	m.HandleFunc("/api/rigs/{name}", h.Get).Methods("GET")
	m.HandleFunc("/api/rigs/{name}", h.Put).Methods("PUT")
	return m
}

func TestRigHandler(t *testing.T) {
	m := rigRouter(repo.NewMemoryRigDB())

	do := func(method, path, body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		m.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
		return rec
	}

	assert.Equal(t, http.StatusNotFound, do("GET", "/api/rigs/JU-1", "").Code)
	assert.Equal(t, http.StatusBadRequest, do("PUT", "/api/rigs/JU-1", `{"diameter_m":0,"area_m2":5}`).Code)
	assert.Equal(t, http.StatusBadRequest, do("PUT", "/api/rigs/JU-1", `{"diameter_m":8,"area_m2":50,"alpha":1.5}`).Code)

	rec := do("PUT", "/api/rigs/JU-1", `{"diameter_m":8,"area_m2":50,"tip_offset_m":1.5,"preload_mn":60,"beta_deg":120,"alpha":null}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do("GET", "/api/rigs/JU-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var rig spudcan.Spudcan
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rig))
	assert.Equal(t, "JU-1", rig.RigName)
	assert.Equal(t, 60.0, rig.Preload)
	assert.False(t, rig.Alpha.Valid)

	rec = do("GET", "/api/rigs", "")
	var rigs []spudcan.Spudcan
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rigs))
	assert.Len(t, rigs, 1)
}
