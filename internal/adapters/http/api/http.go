// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	service "github.com/okian/swatch/internal/app"
	"github.com/okian/swatch/internal/adapters/repository"
	"github.com/okian/swatch/internal/domain/color"
	"github.com/okian/swatch/internal/domain/model"
	"github.com/okian/swatch/internal/domain/pantone"
	"github.com/okian/swatch/internal/domain/types"
	"github.com/okian/swatch/internal/imaging"
)

// MatchDependencies covers the single-color operations.
type MatchDependencies interface {
	Match(ctx context.Context, hex string) (pantone.MatchResult, error)
	MatchRGB(ctx context.Context, rgb color.RGB) pantone.MatchResult
	Nearest(ctx context.Context, hex string, count int) ([]pantone.MatchResult, error)
	MaxNearest() int
	Complement(ctx context.Context, hex string) (pantone.MatchResult, error)
	Distance(ctx context.Context, a, b string) (types.DistanceResult, error)
	HSL(ctx context.Context, hex string) (types.HSLResult, error)
}

// SearchDependencies covers reference table lookups.
type SearchDependencies interface {
	SearchCode(ctx context.Context, q string) pantone.SearchResult
	SearchName(ctx context.Context, q string) pantone.SearchResult
	ByCode(ctx context.Context, code string) (pantone.Color, error)
	Family(ctx context.Context, family string) []pantone.Color
	Families() []string
}

// AnalyzeDependencies covers image analysis.
type AnalyzeDependencies interface {
	Analyze(ctx context.Context, r io.Reader) (types.AnalysisResult, error)
	SubmitAnalysis(ctx context.Context, r io.Reader) (model.JobRecord, error)
	Job(ctx context.Context, id string) (model.JobRecord, error)
}

// StatsProvider reports service statistics.
type StatsProvider interface {
	GetStats(ctx context.Context) types.Stats
}

// Dependencies bundles everything the handlers need.
type Dependencies interface {
	MatchDependencies
	SearchDependencies
	AnalyzeDependencies
	StatsProvider
}

// Server wires HTTP routes for the color API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	matchHandler   *MatchHandler
	searchHandler  *SearchHandler
	analyzeHandler *AnalyzeHandler

	maxUploadBytes int64
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, opts ...Option) *Server {
	s := &Server{maxUploadBytes: defaultMaxUploadBytes}
	for _, opt := range opts {
		opt(s)
	}
	s.healthHandler = NewHealthHandler()
	s.statsHandler = NewStatsHandler(deps)
	s.matchHandler = NewMatchHandler(deps)
	s.searchHandler = NewSearchHandler(deps)
	s.analyzeHandler = NewAnalyzeHandler(deps, s.maxUploadBytes)
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.Handle("GET /metrics", s.healthHandler.MetricsHandler())
	mux.HandleFunc("GET /stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	mux.HandleFunc("GET /match", MetricsMiddleware(s.matchHandler.HandleMatch, "match"))
	mux.HandleFunc("POST /match/rgb", MetricsMiddleware(s.matchHandler.HandleMatchRGB, "match_rgb"))
	mux.HandleFunc("GET /nearest", MetricsMiddleware(s.matchHandler.HandleNearest, "nearest"))
	mux.HandleFunc("GET /complement", MetricsMiddleware(s.matchHandler.HandleComplement, "complement"))
	mux.HandleFunc("GET /distance", MetricsMiddleware(s.matchHandler.HandleDistance, "distance"))
	mux.HandleFunc("GET /hsl", MetricsMiddleware(s.matchHandler.HandleHSL, "hsl"))

	mux.HandleFunc("GET /search/code", MetricsMiddleware(s.searchHandler.HandleSearchCode, "search_code"))
	mux.HandleFunc("GET /search/name", MetricsMiddleware(s.searchHandler.HandleSearchName, "search_name"))
	mux.HandleFunc("GET /colors/{code}", MetricsMiddleware(s.searchHandler.HandleColor, "colors"))
	mux.HandleFunc("GET /families", MetricsMiddleware(s.searchHandler.HandleFamilies, "families"))
	mux.HandleFunc("GET /family/{family}", MetricsMiddleware(s.searchHandler.HandleFamily, "family"))

	mux.HandleFunc("POST /analyze", MetricsMiddleware(s.analyzeHandler.HandleAnalyze, "analyze"))
	mux.HandleFunc("POST /analyze/jobs", MetricsMiddleware(s.analyzeHandler.HandleSubmit, "analyze_jobs"))
	mux.HandleFunc("GET /analyze/jobs/{id}", MetricsMiddleware(s.analyzeHandler.HandleJob, "analyze_job"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeServiceError maps service and domain errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytes):
		writeError(w, http.StatusRequestEntityTooLarge, "too_large", WrapKind(op, ErrTooLarge, err))
	case errors.Is(err, color.ErrInvalidColorFormat):
		writeError(w, http.StatusBadRequest, "invalid_color", WrapKind(op, ErrBadRequest, err))
	case errors.Is(err, imaging.ErrUnsupportedImage), errors.Is(err, imaging.ErrDecodeImage), errors.Is(err, imaging.ErrEmptyImage):
		writeError(w, http.StatusBadRequest, "invalid_image", WrapKind(op, ErrBadRequest, err))
	case errors.Is(err, service.ErrColorNotFound), errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", WrapKind(op, ErrNotFound, err))
	case errors.Is(err, service.ErrBusy):
		writeError(w, http.StatusTooManyRequests, "backpressure", WrapKind(op, ErrBackpressure, err))
	case errors.Is(err, service.ErrNotStarted):
		writeError(w, http.StatusServiceUnavailable, "unavailable", WrapKind(op, ErrUnavailable, err))
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	}
}
