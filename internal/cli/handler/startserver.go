package handler

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"

	"github.com/bnema/ops-status-dashboard/internal/httpserve"
	"github.com/bnema/ops-status-dashboard/internal/server"
	"github.com/bnema/ops-status-dashboard/pkg/logger"
)

// StartServer runs the HTTP server until SIGINT or SIGTERM, then drains
// in-flight requests for up to the configured shutdown timeout.
func StartServer(a *server.App) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Initializing HTTP server...")
	e := httpserve.NewRouter(a)
	logger.Debug("Routes registered to HTTP server")

	return runServer(ctx, e, a)
}

func runServer(ctx context.Context, e *echo.Echo, a *server.App) error {
	addr := a.Config.Http.Address()
	errCh := make(chan error, 1)

	go func() {
		logger.Info("Starting server", "address", addr, "web_dir", a.Config.Http.WebDir)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			logger.Error("Server error", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.Http.ShutdownDuration())
	defer cancel()

	logger.Info("Shutting down server...")
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
		return err
	}

	logger.Info("Shutdown complete", "uptime", a.GetUptime())
	return nil
}
