package api

import (
	"net/http"
	"strings"

	"github.com/okian/swatch/internal/domain/pantone"
)

// SearchHandler serves reference table lookups.
type SearchHandler struct {
	deps SearchDependencies
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(deps SearchDependencies) *SearchHandler {
	return &SearchHandler{deps: deps}
}

type familyResponse struct {
	Family string          `json:"family"`
	Colors []pantone.Color `json:"colors"`
}

// HandleSearchCode handles GET /search/code?q=.
func (h *SearchHandler) HandleSearchCode(w http.ResponseWriter, r *http.Request) {
	const op = "api.search_code"
	q, err := requiredParam(r, "q")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	writeJSON(w, http.StatusOK, h.deps.SearchCode(r.Context(), q))
}

// HandleSearchName handles GET /search/name?q=.
func (h *SearchHandler) HandleSearchName(w http.ResponseWriter, r *http.Request) {
	const op = "api.search_name"
	q, err := requiredParam(r, "q")
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	writeJSON(w, http.StatusOK, h.deps.SearchName(r.Context(), q))
}

// HandleColor handles GET /colors/{code}.
func (h *SearchHandler) HandleColor(w http.ResponseWriter, r *http.Request) {
	const op = "api.color"
	code := strings.TrimSpace(r.PathValue("code"))
	if code == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	c, err := h.deps.ByCode(r.Context(), code)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// HandleFamilies handles GET /families.
func (h *SearchHandler) HandleFamilies(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Families())
}

// HandleFamily handles GET /family/{family}.
func (h *SearchHandler) HandleFamily(w http.ResponseWriter, r *http.Request) {
	const op = "api.family"
	family := strings.ToLower(strings.TrimSpace(r.PathValue("family")))
	if family == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	writeJSON(w, http.StatusOK, familyResponse{Family: family, Colors: h.deps.Family(r.Context(), family)})
}
