// Package web serves the dashboard views as server-rendered HTML.
package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/spacesedan/sentiboard/internal/report"
)

const (
	APP_TITLE        = "Analisis Sentimen Pegadaian"
	SHUTDOWN_TIMEOUT = 10 * time.Second
	MAX_FORM_BYTES   = 1 << 20
)

type PageRenderer interface {
	Render(ctx context.Context, req report.Request) (*report.Page, error)
}

type Options struct {
	Addr    string
	Backend string
	// Healthy is the classifier health flag kept by the monitor. Nil when
	// health monitoring is disabled.
	Healthy *atomic.Bool
}

type Server struct {
	renderer   PageRenderer
	opts       Options
	mux        *http.ServeMux
	httpServer *http.Server
}

func NewServer(renderer PageRenderer, opts Options) *Server {
	s := &Server{
		renderer: renderer,
		opts:     opts,
		mux:      http.NewServeMux(),
	}
	s.setupRoutes()
	s.httpServer = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("POST /predict", s.handlePredict)
	s.mux.HandleFunc("GET /healthz", s.handleHealthz)
}

// Handler is the routed handler with logging and panic recovery applied.
func (s *Server) Handler() http.Handler {
	return loggingMiddleware(recoveryMiddleware(s.mux))
}

// Run listens on the configured address until ctx is done, then drains
// in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("[Server] failed to listen on %s: %w", s.opts.Addr, err)
	}
	return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		slog.Info("[Server] Listening", slog.String("addr", ln.Addr().String()))
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("[Server] Shutting down", slog.Duration("timeout", SHUTDOWN_TIMEOUT))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), SHUTDOWN_TIMEOUT)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("[Server] shutdown: %w", err)
	}
	slog.Info("[Server] Stopped")
	return <-errCh
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)
		slog.Info("[Server] HTTP request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", wrapped.statusCode),
			slog.Duration("elapsed", time.Since(start)))
	})
}

func recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("[Server] Panic recovered",
					slog.String("path", r.URL.Path),
					slog.Any("panic", err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
