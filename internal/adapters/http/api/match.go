package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/swatch/internal/domain/color"
	"github.com/okian/swatch/internal/domain/pantone"
)

// MatchHandler serves single-color operations.
type MatchHandler struct {
	deps MatchDependencies
}

// NewMatchHandler creates a new match handler.
func NewMatchHandler(deps MatchDependencies) *MatchHandler {
	return &MatchHandler{deps: deps}
}

// rgbRequest is the body of POST /match/rgb. Channels may be fractional or
// out of range; they are rounded and clamped.
type rgbRequest struct {
	R *float64 `json:"r"`
	G *float64 `json:"g"`
	B *float64 `json:"b"`
}

func (req rgbRequest) validate() error {
	if req.R == nil || req.G == nil || req.B == nil {
		return errors.New("r, g and b are required")
	}
	return nil
}

type nearestResponse struct {
	Query   string                `json:"query"`
	Count   int                   `json:"count"`
	Matches []pantone.MatchResult `json:"matches"`
}

func requiredParam(r *http.Request, name string) (string, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return "", fmt.Errorf("missing %s", name)
	}
	return v, nil
}

// HandleMatch handles GET /match?hex=.
func (h *MatchHandler) HandleMatch(w http.ResponseWriter, r *http.Request) {
	const op = "api.match"
	hex, err := requiredParam(r, "hex")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	res, err := h.deps.Match(r.Context(), hex)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// HandleMatchRGB handles POST /match/rgb.
func (h *MatchHandler) HandleMatchRGB(w http.ResponseWriter, r *http.Request) {
	const op = "api.match_rgb"
	var req rgbRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	rgb := color.RGBFromFloat(*req.R, *req.G, *req.B)
	writeJSON(w, http.StatusOK, h.deps.MatchRGB(r.Context(), rgb))
}

// HandleNearest handles GET /nearest?hex=&count=.
func (h *MatchHandler) HandleNearest(w http.ResponseWriter, r *http.Request) {
	const op = "api.nearest"
	hex, err := requiredParam(r, "hex")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	count := pantone.DefaultNearestCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		if n > h.deps.MaxNearest() {
			writeError(w, http.StatusBadRequest, "limit_exceeded",
				WrapKind(op, ErrBadRequest, fmt.Errorf("count must be at most %d", h.deps.MaxNearest())))
			return
		}
		count = n
	}

	res, err := h.deps.Nearest(r.Context(), hex, count)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, nearestResponse{Query: hex, Count: len(res), Matches: res})
}

// HandleComplement handles GET /complement?hex=.
func (h *MatchHandler) HandleComplement(w http.ResponseWriter, r *http.Request) {
	const op = "api.complement"
	hex, err := requiredParam(r, "hex")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	res, err := h.deps.Complement(r.Context(), hex)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// HandleDistance handles GET /distance?a=&b=.
func (h *MatchHandler) HandleDistance(w http.ResponseWriter, r *http.Request) {
	const op = "api.distance"
	a, err := requiredParam(r, "a")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	b, err := requiredParam(r, "b")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	res, err := h.deps.Distance(r.Context(), a, b)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// HandleHSL handles GET /hsl?hex=.
func (h *MatchHandler) HandleHSL(w http.ResponseWriter, r *http.Request) {
	const op = "api.hsl"
	hex, err := requiredParam(r, "hex")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	res, err := h.deps.HSL(r.Context(), hex)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
