package batch

import (
	"encoding/json"
	"net/http"

	"SpudSRI/internal/calc/analysis"
)

type Handler struct {
	Runner *Runner
}

func (h *Handler) Run(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	reqs, err := h.Runner.Decode(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := h.Runner.Run(r.Context(), reqs)
	if err != nil {
		analysis.Fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
