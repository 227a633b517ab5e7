// Package server wires the HTTP routes and runs the listener.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jrschumacher/gpc-ping/internal/config"
	"github.com/jrschumacher/gpc-ping/internal/logger"
	health "github.com/jrschumacher/gpc-ping/server/health-handlers"
	ping "github.com/jrschumacher/gpc-ping/server/ping-handlers"
)

// NewMux builds the application's routes.
func NewMux(cfg *config.Config) *http.ServeMux {
	mux := http.NewServeMux()
	health.RegisterRoutes(mux, "", cfg)
	ping.RegisterRoutes(mux, cfg.BasePath, cfg)
	return mux
}

// Start serves until ctx is cancelled or the process receives SIGINT or
// SIGTERM, then shuts down within cfg.ShutdownTimeout.
func Start(ctx context.Context, cfg *config.Config) error {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           NewMux(cfg),
		ReadHeaderTimeout: cfg.ReadTimeout,
		ReadTimeout:       cfg.ReadTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Listening", "addr", srv.Addr, "base_path", cfg.BasePath, "default_version", cfg.DefaultSpecVersion)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
