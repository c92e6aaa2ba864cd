package api

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"
)

const multipartMemory = 8 << 20

// AnalyzeHandler serves dominant color analysis of uploaded images.
type AnalyzeHandler struct {
	deps     AnalyzeDependencies
	maxBytes int64
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(deps AnalyzeDependencies, maxBytes int64) *AnalyzeHandler {
	return &AnalyzeHandler{deps: deps, maxBytes: maxBytes}
}

// imageBody returns the uploaded image: the "image" part of a multipart
// form, or the raw request body otherwise.
func (h *AnalyzeHandler) imageBody(w http.ResponseWriter, r *http.Request) (io.ReadCloser, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if strings.HasPrefix(mediaType, "multipart/") {
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			return nil, err
		}
		f, _, err := r.FormFile("image")
		if err != nil {
			return nil, errors.New(`missing multipart field "image"`)
		}
		return f, nil
	}
	return r.Body, nil
}

// HandleAnalyze handles POST /analyze.
func (h *AnalyzeHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	const op = "api.analyze"
	body, err := h.imageBody(w, r)
	if err != nil {
		h.writeBodyError(w, op, err)
		return
	}
	defer body.Close()

	res, err := h.deps.Analyze(r.Context(), body)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// HandleSubmit handles POST /analyze/jobs.
func (h *AnalyzeHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	const op = "api.analyze_submit"
	body, err := h.imageBody(w, r)
	if err != nil {
		h.writeBodyError(w, op, err)
		return
	}
	defer body.Close()

	rec, err := h.deps.SubmitAnalysis(r.Context(), body)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	w.Header().Set("Location", "/analyze/jobs/"+rec.ID)
	writeJSON(w, http.StatusAccepted, rec)
}

// HandleJob handles GET /analyze/jobs/{id}.
func (h *AnalyzeHandler) HandleJob(w http.ResponseWriter, r *http.Request) {
	const op = "api.analyze_job"
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	rec, err := h.deps.Job(r.Context(), id)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *AnalyzeHandler) writeBodyError(w http.ResponseWriter, op string, err error) {
	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		writeError(w, http.StatusRequestEntityTooLarge, "too_large", WrapKind(op, ErrTooLarge, err))
		return
	}
	writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
}
