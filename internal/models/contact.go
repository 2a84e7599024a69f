package models

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a lead or customer captured through the public booking form.
type Contact struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Email       string    `json:"email" db:"email"`
	Phone       *string   `json:"phone" db:"phone"` // nil when the visitor gave none
	WorkspaceID uuid.UUID `json:"workspaceId" db:"workspace_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
