package export

import (
	"bytes"
	"fmt"
	"net/http"

	"SpudSRI/internal/calc/analysis"
	"SpudSRI/internal/log"
)

type Handler struct {
	Analysis *analysis.Handler
}

func (h *Handler) run(w http.ResponseWriter, r *http.Request) (analysis.Result, bool) {
	req, err := h.Analysis.Decode(r)
	if err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return analysis.Result{}, false
	}
	res, err := h.Analysis.Service.Run(r.Context(), req)
	if err != nil {
		analysis.Fail(w, r, err)
		return analysis.Result{}, false
	}
	return res, true
}

func (h *Handler) CSV(w http.ResponseWriter, r *http.Request) {
	res, ok := h.run(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", Filename(res, "csv")))
	if err := CSV(w, res.Rows); err != nil {
		log.Errorw("write csv export", "id", res.ID, "error", err)
	}
}

func (h *Handler) XLSX(w http.ResponseWriter, r *http.Request) {
	res, ok := h.run(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := XLSX(&buf, res); err != nil {
		log.Errorw("write xlsx export", "id", res.ID, "error", err)
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", Filename(res, "xlsx")))
	w.Write(buf.Bytes())
}
