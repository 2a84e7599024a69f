package handlers

import (
	"net/http"

	"careops/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// WorkspaceHandlers handles workspace onboarding
type WorkspaceHandlers struct {
	workspaceService services.WorkspaceService
}

func NewWorkspaceHandlers(workspaceService services.WorkspaceService) *WorkspaceHandlers {
	return &WorkspaceHandlers{workspaceService: workspaceService}
}

// CreateWorkspaceRequest is the onboarding form. None of the fields are
// checked server side.
type CreateWorkspaceRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Timezone string `json:"timezone"`
}

// CreateWorkspace handles POST /api/workspace
func (h *WorkspaceHandlers) CreateWorkspace(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateWorkspaceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	workspace, err := h.workspaceService.Onboard(ctx, &services.OnboardWorkspaceRequest{
		Name:     req.Name,
		Email:    req.Email,
		Timezone: req.Timezone,
	})
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("workspace onboarding failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create workspace")
	}

	return c.JSON(http.StatusOK, workspace)
}
