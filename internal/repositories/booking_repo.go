package repositories

import (
	"context"
	"fmt"

	"careops/internal/models"

	"github.com/google/uuid"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) (*models.Booking, error)
	ListTodayBookings(ctx context.Context, workspaceID uuid.UUID, limit int) ([]*models.Booking, error)
}

type bookingRepo struct {
	db DBTX
}

func NewBookingRepo(db DBTX) BookingRepository {
	return &bookingRepo{db: db}
}

func (r *bookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	query := `
		INSERT INTO bookings (id, title, start_time, end_time, status, contact_id, workspace_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query,
		booking.ID, booking.Title, booking.StartTime, booking.EndTime,
		booking.Status, booking.ContactID, booking.WorkspaceID,
	).Scan(&booking.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

// UpdateStatus overwrites the status unconditionally; transition rules are
// left to callers.
func (r *bookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) (*models.Booking, error) {
	booking := &models.Booking{}
	query := `
		UPDATE bookings
		SET status = $1
		WHERE id = $2
		RETURNING id, title, start_time, end_time, status, contact_id, workspace_id, created_at
	`
	err := r.db.QueryRow(ctx, query, status, id).Scan(
		&booking.ID, &booking.Title, &booking.StartTime, &booking.EndTime,
		&booking.Status, &booking.ContactID, &booking.WorkspaceID, &booking.CreatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return booking, nil
}

// ListTodayBookings returns the workspace's bookings joined with their contact.
// Despite the name it applies no date filter: the dashboard has always shown
// the first bookings found, whatever day they fall on.
func (r *bookingRepo) ListTodayBookings(ctx context.Context, workspaceID uuid.UUID, limit int) ([]*models.Booking, error) {
	query := `
		SELECT b.id, b.title, b.start_time, b.end_time, b.status, b.contact_id, b.workspace_id, b.created_at,
		       c.id, c.name, c.email, c.phone, c.workspace_id, c.created_at
		FROM bookings b
		JOIN contacts c ON c.id = b.contact_id
		WHERE b.workspace_id = $1
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, workspaceID, limit)
	if err != nil {
		return nil, fmt.Errorf("list today bookings: %w", err)
	}
	defer rows.Close()

	bookings := []*models.Booking{}
	for rows.Next() {
		booking := &models.Booking{Contact: &models.Contact{}}
		c := booking.Contact
		if err := rows.Scan(
			&booking.ID, &booking.Title, &booking.StartTime, &booking.EndTime,
			&booking.Status, &booking.ContactID, &booking.WorkspaceID, &booking.CreatedAt,
			&c.ID, &c.Name, &c.Email, &c.Phone, &c.WorkspaceID, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}
