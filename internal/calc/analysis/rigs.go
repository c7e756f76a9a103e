package analysis

import (
	"encoding/json"
	"errors"
	"net/http"

	"SpudSRI/internal/calc/spudcan"
	"SpudSRI/internal/log"
	"SpudSRI/internal/opt"
	"SpudSRI/internal/repo"

	"github.com/gorilla/mux"
)

type rigBody struct {
	Diameter  float64   `json:"diameter_m" validate:"gt=0"`
	Area      float64   `json:"area_m2" validate:"gt=0"`
	TipOffset float64   `json:"tip_offset_m" validate:"gte=0"`
	Preload   float64   `json:"preload_mn" validate:"gte=0"`
	Beta      opt.Float `json:"beta_deg"`
	Alpha     opt.Float `json:"alpha"`
}

// RigHandler serves the rig catalog.
type RigHandler struct {
	Repo repo.Repository
}

func (h *RigHandler) List(w http.ResponseWriter, r *http.Request) {
	rigs, err := h.Repo.ListRigs(r.Context())
	if err != nil {
		log.Errorw("list rigs", "error", err)
		http.Error(w, "Catalog error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rigs)
}

func (h *RigHandler) Get(w http.ResponseWriter, r *http.Request) {
	rig, err := h.Repo.GetRig(r.Context(), mux.Vars(r)["name"])
	if errors.Is(err, repo.ErrRigNotFound) {
		http.Error(w, "Rig not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorw("get rig", "error", err)
		http.Error(w, "Catalog error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rig)
}

func (h *RigHandler) Put(w http.ResponseWriter, r *http.Request) {
	var body rigBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if body.Alpha.Valid && (body.Alpha.Value < 0 || body.Alpha.Value > 1) {
		http.Error(w, "alpha must be within [0, 1]", http.StatusBadRequest)
		return
	}
	rig := spudcan.Spudcan{
		RigName:   mux.Vars(r)["name"],
		Diameter:  body.Diameter,
		Area:      body.Area,
		TipOffset: body.TipOffset,
		Preload:   body.Preload,
		Beta:      body.Beta,
		Alpha:     body.Alpha,
	}
	if err := h.Repo.UpsertRig(r.Context(), rig); err != nil {
		log.Errorw("upsert rig", "rig", rig.RigName, "error", err)
		http.Error(w, "Catalog error", http.StatusInternalServerError)
		return
	}
	log.Infow("rig saved", "rig", rig.RigName)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rig)
}
