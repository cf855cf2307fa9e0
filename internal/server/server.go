// Package server exposes graph generation over HTTP.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/storygraph/storygraph/pkg/api"
	"github.com/storygraph/storygraph/pkg/pipeline"
)

// Server serves the graph generation API. Callers authenticate against the
// storyteller backend, not against this server: bearer tokens are passed
// through to the upstream on every request.
type Server struct {
	runner *pipeline.Runner
	gw     *api.Gateway
	logger *log.Logger
}

// New creates a Server.
func New(runner *pipeline.Runner, gw *api.Gateway, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, gw: gw, logger: logger}
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Route("/graphs", func(r chi.Router) {
		r.Get("/generate/{kind}/{id}", s.handleGenerate)
		r.Post("/preview", s.handlePreview)
	})
	r.Get("/tags/popular", s.handlePopularTags)
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}
