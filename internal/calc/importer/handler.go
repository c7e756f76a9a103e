package importer

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"SpudSRI/internal/log"
	"SpudSRI/internal/soil"
)

const maxUpload = 8 << 20

type Handler struct{}

type ImportResult struct {
	Count    int          `json:"count"`
	Layers   []soil.Layer `json:"layers"`
	Warnings []string     `json:"warnings"`
}

// xlsx files are zip archives.
var zipMagic = []byte("PK\x03\x04")

func (h *Handler) Soil(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload)
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	br := bufio.NewReader(file)
	head, _ := br.Peek(len(zipMagic))
	var layers []soil.Layer
	if bytes.Equal(head, zipMagic) || strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
		layers, err = ParseXLSX(br)
	} else {
		layers, err = ParseCSV(br)
	}
	if err != nil {
		var rowErr *RowError
		if errors.As(err, &rowErr) || errors.Is(err, ErrEmpty) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Debugw("soil import rejected", "file", header.Filename, "error", err)
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ImportResult{Count: len(layers), Layers: layers, Warnings: Check(layers)})
}

func (h *Handler) Template(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("format") {
	case "", "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="soil_profile_template.csv"`)
		if err := TemplateCSV(w); err != nil {
			log.Errorw("write csv template", "error", err)
		}
	case "xlsx":
		var buf bytes.Buffer
		if err := TemplateXLSX(&buf); err != nil {
			log.Errorw("write xlsx template", "error", err)
			http.Error(w, "Template error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="soil_profile_template.xlsx"`)
		w.Write(buf.Bytes())
	default:
		http.Error(w, "format must be csv or xlsx", http.StatusBadRequest)
	}
}
