package repositories

import (
	"context"
	"fmt"

	"careops/internal/models"

	"github.com/google/uuid"
)

type WorkspaceRepository interface {
	Create(ctx context.Context, workspace *models.Workspace) error
	CreateWithAdmin(ctx context.Context, workspace *models.Workspace, admin *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Workspace, error)
	List(ctx context.Context, limit, offset int) ([]*models.Workspace, error)
}

type workspaceRepo struct {
	db DBTX
}

func NewWorkspaceRepo(db DBTX) WorkspaceRepository {
	return &workspaceRepo{db: db}
}

func (r *workspaceRepo) Create(ctx context.Context, workspace *models.Workspace) error {
	query := `
		INSERT INTO workspaces (id, name, email, timezone, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query, workspace.ID, workspace.Name, workspace.Email, workspace.Timezone).
		Scan(&workspace.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert workspace: %w", err)
	}
	return nil
}

// CreateWithAdmin inserts the workspace and its admin user in one transaction.
func (r *workspaceRepo) CreateWithAdmin(ctx context.Context, workspace *models.Workspace, admin *models.User) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin onboarding: %w", err)
	}

	if err := NewWorkspaceRepo(tx).Create(ctx, workspace); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	admin.WorkspaceID = workspace.ID
	if err := NewUserRepo(tx).Create(ctx, admin); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit onboarding: %w", err)
	}
	return nil
}

func (r *workspaceRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Workspace, error) {
	workspace := &models.Workspace{}
	query := `
		SELECT id, name, email, timezone, created_at
		FROM workspaces
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).
		Scan(&workspace.ID, &workspace.Name, &workspace.Email, &workspace.Timezone, &workspace.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return workspace, nil
}

func (r *workspaceRepo) List(ctx context.Context, limit, offset int) ([]*models.Workspace, error) {
	query := `
		SELECT id, name, email, timezone, created_at
		FROM workspaces
		ORDER BY created_at, id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	defer rows.Close()

	workspaces := []*models.Workspace{}
	for rows.Next() {
		workspace := &models.Workspace{}
		if err := rows.Scan(&workspace.ID, &workspace.Name, &workspace.Email, &workspace.Timezone, &workspace.CreatedAt); err != nil {
			return nil, err
		}
		workspaces = append(workspaces, workspace)
	}
	return workspaces, rows.Err()
}
