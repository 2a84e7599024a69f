package handlers

import (
	"careops/internal/middleware"

	"github.com/labstack/echo/v4"
)

const APIVersion = "v1"

// Handlers groups every HTTP handler the API exposes.
type Handlers struct {
	Health    *HealthHandlers
	Workspace *WorkspaceHandlers
	Dashboard *DashboardHandlers
	Booking   *BookingHandlers
}

// Register mounts the routes. build is reported in a response header on /api.
func (h *Handlers) Register(e *echo.Echo, build string) {
	e.GET("/", h.Health.Root)
	e.GET("/health", h.Health.HealthCheck)

	api := e.Group("/api", middleware.VersionHeader(APIVersion, build))
	api.POST("/workspace", h.Workspace.CreateWorkspace)
	api.GET("/dashboard/:workspaceId", h.Dashboard.GetDashboard)
	api.POST("/seed/:workspaceId", h.Dashboard.Seed)
	api.POST("/contact", h.Booking.CreateContact)
	api.POST("/booking", h.Booking.CreateBooking)
	api.PUT("/booking/:id/status", h.Booking.UpdateStatus)
}
