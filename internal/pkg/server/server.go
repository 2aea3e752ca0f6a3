package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rescuerush/rescuerush/internal/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// GracefulServer runs an Echo server and drains in-flight requests on
// SIGINT/SIGTERM before exiting.
type GracefulServer struct {
	echo *echo.Echo
	port int
}

// NewGracefulServer wraps an Echo instance with graceful shutdown.
func NewGracefulServer(e *echo.Echo, port int) *GracefulServer {
	return &GracefulServer{echo: e, port: port}
}

// Start serves until a termination signal arrives, then shuts down with a
// bounded drain window. It blocks until shutdown completes.
func (s *GracefulServer) Start() error {
	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		logger.Info("Starting HTTP server", logger.String("addr", addr))
		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("Shutdown signal received", logger.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown after drain timeout", logger.Err(err))
		return err
	}

	logger.Info("Server stopped cleanly")
	return nil
}
