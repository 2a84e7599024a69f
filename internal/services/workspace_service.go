package services

import (
	"context"
	"errors"
	"strings"

	"careops/internal/models"
	"careops/internal/repositories"

	"github.com/google/uuid"
)

const DefaultTimezone = "UTC"

var ErrWorkspaceNotFound = errors.New("workspace not found")

type WorkspaceService interface {
	Onboard(ctx context.Context, req *OnboardWorkspaceRequest) (*models.Workspace, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Workspace, error)
}

type workspaceService struct {
	workspaceRepo repositories.WorkspaceRepository
}

func NewWorkspaceService(workspaceRepo repositories.WorkspaceRepository) WorkspaceService {
	return &workspaceService{workspaceRepo: workspaceRepo}
}

type OnboardWorkspaceRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Timezone string `json:"timezone"`
}

// Onboard creates the workspace together with its ADMIN user. Name and email
// are stored as given.
func (s *workspaceService) Onboard(ctx context.Context, req *OnboardWorkspaceRequest) (*models.Workspace, error) {
	timezone := strings.TrimSpace(req.Timezone)
	if timezone == "" {
		timezone = DefaultTimezone
	}

	workspace := &models.Workspace{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Timezone: timezone,
	}
	admin := &models.User{
		ID:    uuid.New(),
		Email: req.Email,
		Role:  models.UserRoleAdmin,
	}

	if err := s.workspaceRepo.CreateWithAdmin(ctx, workspace, admin); err != nil {
		return nil, err
	}
	return workspace, nil
}

func (s *workspaceService) GetByID(ctx context.Context, id uuid.UUID) (*models.Workspace, error) {
	workspace, err := s.workspaceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, err
	}
	return workspace, nil
}
