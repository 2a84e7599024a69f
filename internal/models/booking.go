package models

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
)

// DefaultBookingTitle is used when the public form submits no title.
const DefaultBookingTitle = "New Booking"

type Booking struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	Title       string        `json:"title" db:"title"`
	StartTime   time.Time     `json:"startTime" db:"start_time"`
	EndTime     time.Time     `json:"endTime" db:"end_time"`
	Status      BookingStatus `json:"status" db:"status"`
	ContactID   uuid.UUID     `json:"contactId" db:"contact_id"`
	WorkspaceID uuid.UUID     `json:"workspaceId" db:"workspace_id"`
	CreatedAt   time.Time     `json:"createdAt" db:"created_at"`

	// Contact is only populated by dashboard queries that join contacts.
	Contact *Contact `json:"contact,omitempty"`
}
