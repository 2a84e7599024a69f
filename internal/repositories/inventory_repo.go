package repositories

import (
	"context"
	"fmt"

	"careops/internal/models"

	"github.com/google/uuid"
)

type InventoryRepository interface {
	Create(ctx context.Context, item *models.InventoryItem) error
	ListLowStock(ctx context.Context, workspaceID uuid.UUID, cutoff int) ([]*models.InventoryItem, error)
}

type inventoryRepo struct {
	db DBTX
}

func NewInventoryRepo(db DBTX) InventoryRepository {
	return &inventoryRepo{db: db}
}

func (r *inventoryRepo) Create(ctx context.Context, item *models.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, name, quantity, threshold, workspace_id)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query, item.ID, item.Name, item.Quantity, item.Threshold, item.WorkspaceID)
	if err != nil {
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// ListLowStock returns items whose quantity is at or below cutoff.
func (r *inventoryRepo) ListLowStock(ctx context.Context, workspaceID uuid.UUID, cutoff int) ([]*models.InventoryItem, error) {
	query := `
		SELECT id, name, quantity, threshold, workspace_id
		FROM inventory_items
		WHERE workspace_id = $1 AND quantity <= $2
		ORDER BY quantity, name
	`
	rows, err := r.db.Query(ctx, query, workspaceID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()

	items := []*models.InventoryItem{}
	for rows.Next() {
		item := &models.InventoryItem{}
		if err := rows.Scan(&item.ID, &item.Name, &item.Quantity, &item.Threshold, &item.WorkspaceID); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
