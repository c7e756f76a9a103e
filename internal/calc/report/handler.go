package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"SpudSRI/internal/calc/analysis"
	"SpudSRI/internal/calc/export"
	"SpudSRI/internal/log"
)

type Handler struct {
	Analysis *analysis.Handler
}

// PDF takes an analysis request; an optional "report" object carries the
// title block.
func (h *Handler) PDF(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	var wrapper struct {
		Report Meta `json:"report"`
	}
	if err := json.Unmarshal(body, &wrapper); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewReader(body))
	req, err := h.Analysis.Decode(r)
	if err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := h.Analysis.Service.Run(r.Context(), req)
	if err != nil {
		analysis.Fail(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := Write(&buf, res, wrapper.Report, time.Now()); err != nil {
		log.Errorw("render report", "id", res.ID, "error", err)
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(res, "pdf")))
	w.Write(buf.Bytes())
}
