// Package server provides the HTTP REST API for DISC assessments.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NeyGuaiume2/sdisc/internal/assessment"
	"github.com/NeyGuaiume2/sdisc/internal/db"
	"github.com/NeyGuaiume2/sdisc/internal/logging"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// ResultStore persists assessment results. *db.DB satisfies it.
type ResultStore interface {
	SaveResult(ctx context.Context, input db.SaveInput) (uuid.UUID, error)
	GetResult(ctx context.Context, id uuid.UUID) (*db.ResultRecord, error)
	ListResults(ctx context.Context, limit int) ([]db.ResultSummary, error)
	Close()
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	engine     *assessment.Engine
	store      ResultStore
	metrics    *Metrics
	registry   *prometheus.Registry
	logger     *zap.Logger
}

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string
	// ResultCacheSize is the number of stored results kept in memory; 0 disables the cache
	ResultCacheSize int
}

// Option configures a Server
type Option func(*Server)

// WithResultStore sets the persistence backend instead of connecting to Config.DatabaseURL.
func WithResultStore(store ResultStore) Option {
	return func(s *Server) {
		s.store = store
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		s.logger = logging.OrNop(logger)
	}
}

// New creates a new server instance. Results are persisted when a store is given or
// Config.DatabaseURL is set; otherwise assessments are evaluated but not stored.
func New(cfg Config, engine *assessment.Engine, opts ...Option) (*Server, error) {
	if engine == nil {
		return nil, errors.New("assessment engine is required")
	}

	s := &Server{
		engine:   engine,
		registry: prometheus.NewRegistry(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.metrics = MustNewMetrics(s.registry)

	if s.store == nil && cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.EnsureSchema(ctx); err != nil {
			database.Close()
			return nil, err
		}
		s.store = database
	}

	if s.store != nil && cfg.ResultCacheSize > 0 {
		cached, err := newCachedResultStore(s.store, cfg.ResultCacheSize)
		if err != nil {
			s.store.Close()
			return nil, err
		}
		s.store = cached
	}

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /questions", s.handleQuestions)
	mux.HandleFunc("POST /assessments", s.handleCreateAssessment)
	mux.HandleFunc("GET /results", s.handleListResults)
	mux.HandleFunc("GET /results/{id}", s.handleGetResult)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the root handler, middleware included
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until SIGINT or SIGTERM
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr), zap.Bool("persistence", s.store != nil))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-stop:
	case err := <-errCh:
		s.Close()
		return fmt.Errorf("server error: %w", err)
	}
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.Close()
	s.logger.Info("server stopped")
	return nil
}

// Close releases the result store
func (s *Server) Close() {
	if s.store != nil {
		s.store.Close()
	}
}

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request completed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"questions":   s.engine.Store().Len(),
		"persistence": s.store != nil,
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
