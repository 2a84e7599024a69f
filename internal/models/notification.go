package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingConfirmation is the queued payload for a booking confirmation email.
type BookingConfirmation struct {
	BookingID   uuid.UUID `json:"bookingId"`
	ContactID   uuid.UUID `json:"contactId"`
	WorkspaceID uuid.UUID `json:"workspaceId"`
	Title       string    `json:"title"`
	StartTime   time.Time `json:"startTime"`
	QueuedAt    time.Time `json:"queuedAt"`
}
