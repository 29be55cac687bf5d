// ABOUTME: HTTP server lifecycle shared by both binaries
// ABOUTME: Serves until SIGINT or SIGTERM, then shuts down gracefully

package api

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"healthinfo-api/core/interfaces"
)

// shutdownTimeout bounds the wait for in-flight requests
const shutdownTimeout = 30 * time.Second

// NewServer creates an HTTP server for handler on port
func NewServer(port string, handler http.Handler, writeTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
	}
}

// Run serves srv until ctx is done or the process is interrupted
func Run(ctx context.Context, srv *http.Server, logger interfaces.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err, ok := <-serveErr:
		if ok {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}

	logger.Info("Server stopped", nil)
	return nil
}
