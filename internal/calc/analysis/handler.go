package analysis

import (
	"encoding/json"
	"net/http"

	"SpudSRI/internal/log"
)

type Handler struct {
	Service *Service
}

// Decode reads an analysis request body over the service defaults.
func (h *Handler) Decode(r *http.Request) (Request, error) {
	req := h.Service.NewRequest()
	err := json.NewDecoder(r.Body).Decode(&req)
	return req, err
}

// Fail writes err with the status Status assigns to it.
func Fail(w http.ResponseWriter, r *http.Request, err error) {
	code := Status(err)
	if code >= http.StatusInternalServerError {
		log.Errorw("analysis failed", "path", r.URL.Path, "error", err)
		http.Error(w, "Calculation error", code)
		return
	}
	log.Debugw("analysis rejected", "path", r.URL.Path, "error", err)
	http.Error(w, err.Error(), code)
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	req, err := h.Decode(r)
	if err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := h.Service.Run(r.Context(), req)
	if err != nil {
		Fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
