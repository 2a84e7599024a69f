package repositories

import (
	"context"
	"fmt"

	"careops/internal/models"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*models.User, error)
}

type userRepo struct {
	db DBTX
}

func NewUserRepo(db DBTX) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, email, role, workspace_id, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query, user.ID, user.Email, user.Role, user.WorkspaceID).
		Scan(&user.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *userRepo) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*models.User, error) {
	query := `
		SELECT id, email, role, workspace_id, created_at
		FROM users
		WHERE workspace_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.Email, &user.Role, &user.WorkspaceID, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
