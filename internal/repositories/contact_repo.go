package repositories

import (
	"context"
	"fmt"

	"careops/internal/models"

	"github.com/google/uuid"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	GetByID(ctx context.Context, workspaceID, id uuid.UUID) (*models.Contact, error)
	ListRecent(ctx context.Context, workspaceID uuid.UUID, limit int) ([]*models.Contact, error)
}

type contactRepo struct {
	db DBTX
}

func NewContactRepo(db DBTX) ContactRepository {
	return &contactRepo{db: db}
}

// Create always inserts; repeat visitors get a new row per submission.
func (r *contactRepo) Create(ctx context.Context, contact *models.Contact) error {
	query := `
		INSERT INTO contacts (id, name, email, phone, workspace_id, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query, contact.ID, contact.Name, contact.Email, contact.Phone, contact.WorkspaceID).
		Scan(&contact.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

func (r *contactRepo) GetByID(ctx context.Context, workspaceID, id uuid.UUID) (*models.Contact, error) {
	contact := &models.Contact{}
	query := `
		SELECT id, name, email, phone, workspace_id, created_at
		FROM contacts
		WHERE workspace_id = $1 AND id = $2
	`
	err := r.db.QueryRow(ctx, query, workspaceID, id).
		Scan(&contact.ID, &contact.Name, &contact.Email, &contact.Phone, &contact.WorkspaceID, &contact.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return contact, nil
}

func (r *contactRepo) ListRecent(ctx context.Context, workspaceID uuid.UUID, limit int) ([]*models.Contact, error) {
	query := `
		SELECT id, name, email, phone, workspace_id, created_at
		FROM contacts
		WHERE workspace_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, workspaceID, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent contacts: %w", err)
	}
	defer rows.Close()

	contacts := []*models.Contact{}
	for rows.Next() {
		contact := &models.Contact{}
		if err := rows.Scan(&contact.ID, &contact.Name, &contact.Email, &contact.Phone, &contact.WorkspaceID, &contact.CreatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, contact)
	}
	return contacts, rows.Err()
}
