package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"soberania-mesh/phiguard/pkg/config"
	"soberania-mesh/phiguard/pkg/guard"
	"soberania-mesh/phiguard/pkg/telemetry/metrics"
)

// Server is the HTTP front end for one guard instance.
type Server struct {
	config     *config.ServerConfig
	guard      *guard.Guard
	metrics    *metrics.Collector
	logger     *slog.Logger
	httpServer *http.Server

	shutdownChan chan struct{}
	shutdownOnce sync.Once
}

// New creates a server for g. The metrics collector may be nil; the
// /metrics endpoint is then not registered.
func New(cfg *config.ServerConfig, g *guard.Guard, collector *metrics.Collector) *Server {
	return &Server{
		config:       cfg,
		guard:        g,
		metrics:      collector,
		logger:       slog.Default().With("component", "server"),
		shutdownChan: make(chan struct{}),
	}
}

// Start runs the HTTP server and blocks until the context is cancelled, a
// shutdown signal arrives, or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:         s.config.ListenAddress,
		Handler:      s.routes(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("guard server starting",
			"address", s.config.ListenAddress,
			"node_id", s.guard.NodeID(),
		)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-ctx.Done():
		s.logger.Info("context cancelled, initiating shutdown")
		return s.Shutdown(context.Background())
	case sig := <-sigChan:
		s.logger.Info("received shutdown signal", "signal", sig.String())
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	case <-s.shutdownChan:
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully stops the server within the configured timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		close(s.shutdownChan)

		if s.httpServer == nil {
			return
		}

		shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
		defer cancel()

		s.logger.Info("shutting down guard server")
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			shutdownErr = fmt.Errorf("graceful shutdown failed: %w", err)
		}
	})
	return shutdownErr
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/messages", s.handleProcessMessage)
	mux.HandleFunc("GET /v1/status", s.handleStatus)
	mux.HandleFunc("POST /v1/lockdown", s.handleTriggerLockdown)
	mux.HandleFunc("DELETE /v1/lockdown", s.handleReleaseLockdown)
	mux.HandleFunc("POST /v1/reset", s.handleReset)
	mux.HandleFunc("GET /v1/counter-speech", s.handleCounterSpeech)
	mux.HandleFunc("GET /healthz", s.handleHealthz)

	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics.Handler())
	}

	return mux
}
