package analysis

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/text-tools/text-atlas/pkg/models/api"
	"github.com/text-tools/text-atlas/pkg/models/domain"
	"github.com/text-tools/text-atlas/pkg/services/analysis"
	"github.com/text-tools/text-atlas/pkg/services/loader"
)

type Handler struct {
	analyzer *analysis.Analyzer
}

func NewHandler(analyzer *analysis.Analyzer) *Handler {
	return &Handler{analyzer: analyzer}
}

// Analyze handles POST /api/v1/analyze: analyze posted text or a file
// path and return the structured export.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var doc domain.Document
	switch {
	case req.Path != "":
		loaded, err := loader.LoadFile(req.Path, req.Encoding)
		if err != nil {
			var loadErr *loader.LoadError
			var decodeErr *loader.DecodeError
			switch {
			case errors.As(err, &decodeErr):
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			case errors.As(err, &loadErr):
				http.Error(w, err.Error(), http.StatusNotFound)
			default:
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
			logger.Error().
				Err(err).
				Str("path", req.Path).
				Msg("failed to load document")
			return
		}
		doc = loaded
	case req.Text != "":
		doc = loader.LoadString(req.Text, req.SourceID)
	default:
		http.Error(w, "either text or path must be provided", http.StatusBadRequest)
		return
	}

	report := h.analyzer.Analyze(doc)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(api.FromDomain(report)); err != nil {
		logger.Error().
			Err(err).
			Str("source_id", doc.SourceID).
			Msg("failed to encode report")
	}
}

// StopWords handles GET /api/v1/stopwords: the effective stop-word
// list in deterministic order.
func (h *Handler) StopWords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	response := struct {
		StopWords []string `json:"stop_words"`
	}{StopWords: h.analyzer.StopWords()}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode stop words")
	}
}
