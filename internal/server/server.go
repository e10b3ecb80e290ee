// Package server exposes the chart engine over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/papapumpkin/bodygraph/internal/birth"
	"github.com/papapumpkin/bodygraph/internal/blueprint"
	"github.com/papapumpkin/bodygraph/internal/engine"
	"github.com/papapumpkin/bodygraph/internal/render"
)

// Charter computes charts and blueprints. *engine.Engine satisfies it.
type Charter interface {
	Request(req birth.Request, defaultZone string) (*engine.Chart, error)
	Blueprint(req birth.Request, defaultZone string) (blueprint.Blueprint, error)
}

// RequestRecorder observes served requests. *metrics.Metrics satisfies it.
type RequestRecorder interface {
	ObserveRequest(route string, status int, d time.Duration)
}

// Server serves the HTTP API.
type Server struct {
	charter     Charter
	defaultZone string
	logger      *zap.Logger
	recorder    RequestRecorder
	gatherer    prometheus.Gatherer
	tables      render.Tables
	maxBody     int64
}

// Option configures a Server.
type Option func(*Server)

// WithDefaultZone sets the timezone used for requests that name none.
func WithDefaultZone(zone string) Option {
	return func(s *Server) { s.defaultZone = zone }
}

// WithRecorder reports every request to rec.
func WithRecorder(rec RequestRecorder) Option {
	return func(s *Server) { s.recorder = rec }
}

// WithGatherer exposes g on /metrics. Without it /metrics is not mounted.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) { s.gatherer = g }
}

// New returns a Server backed by c.
func New(c Charter, logger *zap.Logger, opts ...Option) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	tables, err := render.NewTables()
	if err != nil {
		return nil, fmt.Errorf("building tables: %w", err)
	}
	s := &Server{
		charter: c,
		logger:  logger,
		tables:  tables,
		maxBody: 64 << 10,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Routes returns the API router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestID)
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/bodygraph", s.handleBodygraph)
		r.Post("/blueprint", s.handleBlueprint)
		r.Get("/tables", s.handleTables)
	})
	if s.gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully. ready, when non-nil, is called once the server is starting.
func (s *Server) ListenAndServe(ctx context.Context, addr string, readHeaderTimeout time.Duration, ready func()) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	s.logger.Info("server listening", zap.String("addr", addr))
	if ready != nil {
		ready()
	}

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("serving %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	<-errCh
	s.logger.Info("server stopped")
	return nil
}
