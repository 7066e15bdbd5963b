// Package server exposes the render pipeline over HTTP.
//
// Routes:
//
//	GET /healthz                     liveness and build version
//	GET /v1/palettes                 built-in and configured palettes
//	GET /v1/frame.{svg,png,json}     one frame of a generation
//	GET /v1/animation.gif            whole transition cycles
//	GET /v1/inspect.{json,dot,svg}   region statistics and region graph
//	GET /v1/gallery                  recorded generations, newest first
//	GET /v1/gallery/{id}             one recorded generation
//
// Engine knobs are taken from query parameters on top of the server's base
// options, e.g. /v1/frame.svg?seed=7&cell=24&ticks=12.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/mosaic/pkg/pipeline"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Server serves rendered mosaics.
type Server struct {
	runner *pipeline.Runner
	base   pipeline.Options
	logger *log.Logger
}

// New creates a server. base supplies the defaults every request starts
// from; query parameters override individual fields.
func New(runner *pipeline.Runner, base pipeline.Options, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, base: base, logger: logger}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.healthz)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/palettes", s.palettes)
		r.Get("/frame.{format}", s.frame)
		r.Get("/animation.gif", s.animation)
		r.Get("/inspect.{format}", s.inspect)
		r.Route("/gallery", func(r chi.Router) {
			r.Get("/", s.galleryList)
			r.Get("/{id}", s.galleryGet)
		})
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Microsecond),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
