// Package web serves the calculator, the share card and the donate page as
// server-rendered HTML.
package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"timeworth/internal/logger"
	"timeworth/internal/metrics"
	"timeworth/internal/share"
)

type Options struct {
	// BaseURL prefixes absolute share links. When empty the request host
	// is used.
	BaseURL  string
	Donation share.Donation
	Version  string
	Metrics  *metrics.Metrics
	Logger   logger.Logger
}

type Server struct {
	tpl      *template.Template
	baseURL  string
	donation share.Donation
	version  string
	metrics  *metrics.Metrics
	log      logger.Logger
}

func New(opts Options) *Server {
	if opts.Metrics == nil {
		opts.Metrics = metrics.New()
	}
	if opts.Logger == nil {
		opts.Logger = logger.GetDefault()
	}
	return &Server{
		tpl:      template.Must(template.New("timeworth").Parse(templatesHTML)),
		baseURL:  opts.BaseURL,
		donation: opts.Donation,
		version:  opts.Version,
		metrics:  opts.Metrics,
		log:      opts.Logger,
	}
}

// Handler returns the routed, instrumented handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /calc", s.handleCalc)
	mux.HandleFunc("GET /card", s.handleCard)
	mux.HandleFunc("GET /donate", s.handleDonate)
	mux.HandleFunc("GET /api/pay", s.handleAPIPay)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})
	mux.Handle("GET /metrics", s.metrics.Handler())
	return s.instrument(mux)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.log.Info("Starting HTTP server", "address", addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.log.Debug("Shutdown requested")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.log.Info("Server shutdown completed")
	return nil
}

var routes = map[string]bool{
	"/": true, "/calc": true, "/card": true, "/donate": true,
	"/api/pay": true, "/healthz": true, "/metrics": true,
}

type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := s.log.With("method", r.Method, "path", r.URL.Path)
		r = r.WithContext(logger.ContextWithLogger(r.Context(), log))

		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(rec, r)

		path := r.URL.Path
		if !routes[path] {
			path = "other"
		}
		s.metrics.ObserveRequest(path, rec.code)
		log.Debug("HTTP request", "code", rec.code, "duration", time.Since(start))
	})
}
