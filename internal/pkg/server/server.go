package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/tiffinhub/internal/pkg/logger"
)

// DefaultShutdownTimeout bounds graceful shutdown when none is configured
const DefaultShutdownTimeout = 30 * time.Second

// GracefulServer wraps an Echo server with graceful shutdown
type GracefulServer struct {
	echo            *echo.Echo
	logger          *logger.ZapLogger
	addr            string
	shutdownTimeout time.Duration
}

// NewGracefulServer creates a server listening on host:port
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, host string, port int, shutdownTimeout time.Duration) *GracefulServer {
	if shutdownTimeout <= 0 {
		shutdownTimeout = DefaultShutdownTimeout
	}
	return &GracefulServer{
		echo:            e,
		logger:          zapLogger,
		addr:            fmt.Sprintf("%s:%d", host, port),
		shutdownTimeout: shutdownTimeout,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *GracefulServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", logger.String("address", s.addr))
		if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	return s.Shutdown()
}

// Shutdown gracefully shuts down the server
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
		return err
	}

	s.logger.Info("Server shutdown completed")
	return nil
}
