package api

import (
	"encoding/json"
	"net/http"
	"time"

	apperrors "github.com/blydeben/sankey-app/pkg/errors"
	"github.com/blydeben/sankey-app/pkg/flow"
	flowio "github.com/blydeben/sankey-app/pkg/io"
	"github.com/blydeben/sankey-app/pkg/palette"
	"github.com/blydeben/sankey-app/pkg/pipeline"
)

// maxBodyBytes bounds request bodies; edge lists are small.
const maxBodyBytes = 1 << 20

// diagramRequest is the body of POST /v1/diagram.
type diagramRequest struct {
	Edges   []flow.Edge      `json:"edges"`
	Options pipeline.Options `json:"options"`
}

// diagramResponse is the body of a successful diagram computation.
type diagramResponse struct {
	Diagram   json.RawMessage `json:"diagram"`
	InputHash string          `json:"input_hash"`
	CacheHit  bool            `json:"cache_hit"`
	Stats     statsResponse   `json:"stats"`
}

type statsResponse struct {
	NodeCount int   `json:"node_count"`
	EdgeCount int   `json:"edge_count"`
	BuildMS   int64 `json:"build_ms"`
	LayoutMS  int64 `json:"layout_ms"`
}

// errorResponse is the body of every error reply.
type errorResponse struct {
	Code      apperrors.Code `json:"code"`
	Error     string         `json:"error"`
	RequestID string         `json:"request_id,omitempty"`
}

// paletteResponse describes one built-in palette.
type paletteResponse struct {
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
}

func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	var req diagramRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "malformed request body"))
		return
	}

	// Partial rows (blank endpoints, negative or non-finite values) are
	// dropped here, same as the CSV and JSON importers do.
	edges := flowio.Clean(req.Edges)

	start := time.Now()
	result, err := s.runner.Execute(r.Context(), edges, req.Options)
	if err != nil {
		s.metrics.diagramErrors.WithLabelValues(string(apperrors.GetCode(err))).Inc()
		s.writeError(w, r, err)
		return
	}
	s.metrics.diagramDuration.Observe(time.Since(start).Seconds())
	if result.CacheHit {
		s.metrics.cacheHits.Inc()
	}

	// The diagram marshals deterministically; failures here mean a bug.
	data, err := json.Marshal(result.Diagram)
	if err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInternal, err, "encode diagram"))
		return
	}

	s.writeJSON(w, r, http.StatusOK, diagramResponse{
		Diagram:   data,
		InputHash: result.InputHash,
		CacheHit:  result.CacheHit,
		Stats: statsResponse{
			NodeCount: result.Stats.NodeCount,
			EdgeCount: result.Stats.EdgeCount,
			BuildMS:   result.Stats.BuildTime.Milliseconds(),
			LayoutMS:  result.Stats.LayoutTime.Milliseconds(),
		},
	})
}

func (s *Server) handlePalettes(w http.ResponseWriter, r *http.Request) {
	names := palette.Names()
	out := make([]paletteResponse, 0, len(names))
	for _, name := range names {
		p, _ := palette.Builtin(name)
		out = append(out, paletteResponse{Name: name, Colors: p.Colors()})
	}
	s.writeJSON(w, r, http.StatusOK, out)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "path", r.URL.Path, "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperrors.GetCode(err)
	s.writeJSON(w, r, statusForCode(code), errorResponse{
		Code:      code,
		Error:     apperrors.UserMessage(err),
		RequestID: requestIDFrom(r.Context()),
	})
}

// statusForCode maps structured error codes to HTTP statuses. Malformed
// or invalid requests are 400s; structurally unprocessable graphs are
// 422s; everything unexpected is a 500.
func statusForCode(code apperrors.Code) int {
	switch code {
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidOption, apperrors.ErrCodeInvalidColor:
		return http.StatusBadRequest
	case apperrors.ErrCodeNoData, apperrors.ErrCodeNoRoots, apperrors.ErrCodeCyclicGraph, apperrors.ErrCodeZeroDenominator:
		return http.StatusUnprocessableEntity
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
