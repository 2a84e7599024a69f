package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleAdmin UserRole = "ADMIN"
	UserRoleStaff UserRole = "STAFF"
)

// User is a placeholder identity; nothing authenticates against it yet.
type User struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Email       string    `json:"email" db:"email"`
	Role        UserRole  `json:"role" db:"role"`
	WorkspaceID uuid.UUID `json:"workspaceId" db:"workspace_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
