package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const Banner = "CareOps API is running"

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a plain function, e.g. a Redis PING, to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthHandlers handles liveness and dependency checks
type HealthHandlers struct {
	db      Pinger
	redis   Pinger
	timeout time.Duration
}

// NewHealthHandlers takes a nil redis when Redis is not configured.
func NewHealthHandlers(db Pinger, redis Pinger) *HealthHandlers {
	return &HealthHandlers{db: db, redis: redis, timeout: 2 * time.Second}
}

// HealthStatus represents the overall health status
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// Root handles GET /
func (h *HealthHandlers) Root(c echo.Context) error {
	return c.String(http.StatusOK, Banner)
}

// HealthCheck handles GET /health. Only the database decides the status code;
// an unreachable Redis degrades the report but still answers 200.
func (h *HealthHandlers) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	health := &HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Services:  make(map[string]string, 2),
	}

	statusCode := http.StatusOK
	if err := h.db.Ping(ctx); err != nil {
		health.Services["database"] = "unhealthy"
		health.Status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	} else {
		health.Services["database"] = "healthy"
	}

	switch {
	case h.redis == nil:
		health.Services["redis"] = "disabled"
	case h.redis.Ping(ctx) != nil:
		health.Services["redis"] = "unhealthy"
		if health.Status == "healthy" {
			health.Status = "degraded"
		}
	default:
		health.Services["redis"] = "healthy"
	}

	return c.JSON(statusCode, health)
}
