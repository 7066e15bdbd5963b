package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/matzehuels/mosaic/pkg/buildinfo"
	"github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/palette"
	"github.com/matzehuels/mosaic/pkg/pipeline"
)

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatGIF:  "image/gif",
	pipeline.FormatDOT:  "text/vnd.graphviz; charset=utf-8",
}

// Response headers describing the rendered generation.
const (
	headerCache   = "X-Mosaic-Cache"
	headerPalette = "X-Mosaic-Palette"
	headerRecord  = "X-Mosaic-Record"
)

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
		"service": buildinfo.UserAgent(),
	})
}

func (s *Server) palettes(w http.ResponseWriter, _ *http.Request) {
	specs := make([]palette.Spec, 0, len(s.base.Palettes)+4)
	for _, p := range palette.Builtins() {
		specs = append(specs, palette.ToSpec(p))
	}
	specs = append(specs, s.base.Palettes...)
	writeJSON(w, http.StatusOK, specs)
}

func (s *Server) frame(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, pipeline.KindStill, chi.URLParam(r, "format"))
}

func (s *Server) animation(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, pipeline.KindAnimation, pipeline.FormatGIF)
}

func (s *Server) inspect(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, pipeline.KindInspect, chi.URLParam(r, "format"))
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, kind, format string) {
	if err := pipeline.ValidateFormat(kind, format); err != nil {
		s.writeError(w, r, err)
		return
	}
	opts, err := s.options(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Formats = []string{format}

	var result *pipeline.Result
	switch kind {
	case pipeline.KindStill:
		result, err = s.runner.RenderStill(r.Context(), opts)
	case pipeline.KindAnimation:
		result, err = s.runner.RenderAnimation(r.Context(), opts)
	default:
		result, err = s.runner.Inspect(r.Context(), opts)
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	h := w.Header()
	h.Set("Content-Type", contentTypes[format])
	h.Set(headerPalette, result.Meta.Palette)
	h.Set(headerCache, strconv.FormatBool(result.CacheHit))
	if result.Record != nil {
		h.Set(headerRecord, result.Record.ID)
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

func (s *Server) galleryList(w http.ResponseWriter, r *http.Request) {
	if s.runner.Gallery == nil {
		s.writeError(w, r, errors.New(errors.ErrCodeUnsupported, "gallery is disabled"))
		return
	}
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "invalid limit: %q", v))
			return
		}
		limit = n
	}
	recs, err := s.runner.Gallery.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

func (s *Server) galleryGet(w http.ResponseWriter, r *http.Request) {
	if s.runner.Gallery == nil {
		s.writeError(w, r, errors.New(errors.ErrCodeUnsupported, "gallery is disabled"))
		return
	}
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "invalid record id: %q", id))
		return
	}
	rec, err := s.runner.Gallery.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// errorBody is the JSON error envelope.
type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func statusFor(err error) int {
	switch {
	case errors.IsClientError(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeNotFound):
		return http.StatusNotFound
	case errors.Is(err, errors.ErrCodeUnsupported):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err)
		msg = "internal error"
	}
	writeJSON(w, status, errorBody{Code: code, Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypes[pipeline.FormatJSON])
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
