package handlers

import (
	"errors"
	"net/http"

	"careops/internal/common"
	"careops/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// DashboardHandlers serves the per-workspace dashboard and the demo seed.
type DashboardHandlers struct {
	dashboardService services.DashboardService
	seedService      services.SeedService
	workspaceService services.WorkspaceService
}

func NewDashboardHandlers(
	dashboardService services.DashboardService,
	seedService services.SeedService,
	workspaceService services.WorkspaceService,
) *DashboardHandlers {
	return &DashboardHandlers{
		dashboardService: dashboardService,
		seedService:      seedService,
		workspaceService: workspaceService,
	}
}

// GetDashboard handles GET /api/dashboard/:workspaceId
func (h *DashboardHandlers) GetDashboard(c echo.Context) error {
	ctx := c.Request().Context()

	workspaceID, err := common.ParseUUIDParam(c, "workspaceId")
	if err != nil {
		return err
	}

	dashboard, err := h.dashboardService.Get(ctx, workspaceID)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).
			Str("workspace_id", workspaceID.String()).
			Msg("dashboard aggregation failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch dashboard data")
	}

	return c.JSON(http.StatusOK, dashboard)
}

// MessageResponse carries a human readable confirmation
type MessageResponse struct {
	Message string `json:"message"`
}

// Seed handles POST /api/seed/:workspaceId. Every call inserts another copy
// of the demo rows. Unknown workspaces get 404.
func (h *DashboardHandlers) Seed(c echo.Context) error {
	ctx := c.Request().Context()

	workspaceID, err := common.ParseUUIDParam(c, "workspaceId")
	if err != nil {
		return err
	}

	if _, err := h.workspaceService.GetByID(ctx, workspaceID); err != nil {
		if errors.Is(err, services.ErrWorkspaceNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Workspace not found")
		}
		zerolog.Ctx(ctx).Error().Err(err).
			Str("workspace_id", workspaceID.String()).
			Msg("workspace lookup failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to seed data")
	}

	if err := h.seedService.Seed(ctx, workspaceID); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).
			Str("workspace_id", workspaceID.String()).
			Msg("seeding demo data failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to seed data")
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: services.SeedMessage})
}
