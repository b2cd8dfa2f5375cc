package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/tiffinhub/internal/pkg/database"
	"github.com/piresc/tiffinhub/internal/pkg/logger"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// Checker reports the health of one dependency
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// RedisChecker pings Redis
type RedisChecker struct {
	client *database.RedisClient
}

// NewRedisChecker creates a Redis health checker
func NewRedisChecker(client *database.RedisClient) *RedisChecker {
	return &RedisChecker{client: client}
}

// CheckHealth checks if Redis answers a ping
func (r *RedisChecker) CheckHealth(ctx context.Context) error {
	return r.client.Client.Ping(ctx).Err()
}

// Response is the body of the readiness endpoint
type Response struct {
	Status       string            `json:"status"`
	Service      string            `json:"service"`
	Timestamp    time.Time         `json:"timestamp"`
	Dependencies map[string]string `json:"dependencies"`
}

// Service runs the registered checkers
type Service struct {
	name     string
	checkers map[string]Checker
}

// NewService creates a health service for serviceName
func NewService(serviceName string) *Service {
	return &Service{
		name:     serviceName,
		checkers: make(map[string]Checker),
	}
}

// AddChecker registers a checker for a dependency
func (s *Service) AddChecker(name string, checker Checker) {
	s.checkers[name] = checker
}

// Check runs every checker
func (s *Service) Check(ctx context.Context) Response {
	resp := Response{
		Status:       StatusHealthy,
		Service:      s.name,
		Timestamp:    time.Now(),
		Dependencies: make(map[string]string, len(s.checkers)),
	}

	for name, checker := range s.checkers {
		if err := checker.CheckHealth(ctx); err != nil {
			logger.Error("Health check failed",
				logger.String("dependency", name),
				logger.Err(err))
			resp.Dependencies[name] = StatusUnhealthy
			resp.Status = StatusUnhealthy
			continue
		}
		resp.Dependencies[name] = StatusHealthy
	}
	return resp
}

// RegisterEndpoints registers /ping for liveness and /health/ready for readiness
func RegisterEndpoints(e *echo.Echo, svc *Service) {
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})

	e.GET("/health/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		resp := svc.Check(ctx)
		if resp.Status == StatusUnhealthy {
			return c.JSON(http.StatusServiceUnavailable, resp)
		}
		return c.JSON(http.StatusOK, resp)
	})
}
