package models

import "github.com/google/uuid"

// LowStockCutoff is the quantity at or below which an item is reported as low stock.
// The per-item Threshold column is stored but not consulted.
const LowStockCutoff = 5

type InventoryItem struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Quantity    int       `json:"quantity" db:"quantity"`
	Threshold   int       `json:"threshold" db:"threshold"`
	WorkspaceID uuid.UUID `json:"workspaceId" db:"workspace_id"`
}

func (i *InventoryItem) IsLowStock() bool {
	return i.Quantity <= LowStockCutoff
}
