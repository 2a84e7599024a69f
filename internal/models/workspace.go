package models

import (
	"time"

	"github.com/google/uuid"
)

type Workspace struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Timezone  string    `json:"timezone" db:"timezone"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
