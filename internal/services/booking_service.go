package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"careops/internal/metrics"
	"careops/internal/models"
	"careops/internal/repositories"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrContactNotInWorkspace = errors.New("contact not found in workspace")
	ErrBookingNotFound       = errors.New("booking not found")
	ErrInvalidStatus         = errors.New("invalid booking status")
)

type BookingService interface {
	CreateContact(ctx context.Context, req *CreateContactRequest) (*models.Contact, error)
	CreateBooking(ctx context.Context, req *CreateBookingRequest) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) (*models.Booking, error)
}

type bookingService struct {
	contactRepo repositories.ContactRepository
	bookingRepo repositories.BookingRepository
	notifier    BookingNotifier
	logger      zerolog.Logger
}

func NewBookingService(
	contactRepo repositories.ContactRepository,
	bookingRepo repositories.BookingRepository,
	notifier BookingNotifier,
	logger zerolog.Logger,
) BookingService {
	return &bookingService{
		contactRepo: contactRepo,
		bookingRepo: bookingRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

type CreateContactRequest struct {
	Name        string
	Email       string
	Phone       *string
	WorkspaceID uuid.UUID
}

type CreateBookingRequest struct {
	ContactID   uuid.UUID
	WorkspaceID uuid.UUID
	StartTime   time.Time
	Title       string
}

// CreateContact inserts a new contact on every call, even for a known email.
func (s *bookingService) CreateContact(ctx context.Context, req *CreateContactRequest) (*models.Contact, error) {
	contact := &models.Contact{
		ID:          uuid.New(),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		WorkspaceID: req.WorkspaceID,
	}
	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// CreateBooking stores a zero-length CONFIRMED booking and notifies the
// contact. A failed notification is logged and does not fail the booking.
func (s *bookingService) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*models.Booking, error) {
	if _, err := s.contactRepo.GetByID(ctx, req.WorkspaceID, req.ContactID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrContactNotInWorkspace
		}
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = models.DefaultBookingTitle
	}

	booking := &models.Booking{
		ID:          uuid.New(),
		Title:       title,
		StartTime:   req.StartTime,
		EndTime:     req.StartTime,
		Status:      models.BookingStatusConfirmed,
		ContactID:   req.ContactID,
		WorkspaceID: req.WorkspaceID,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	metrics.IncBookingsCreated()

	if err := s.notifier.BookingConfirmed(ctx, booking); err != nil {
		s.logger.Error().Err(err).
			Str("booking_id", booking.ID.String()).
			Str("contact_id", booking.ContactID.String()).
			Msg("booking confirmation not queued")
	}
	return booking, nil
}

// UpdateStatus sets any known status; it does not enforce forward-only moves.
func (s *bookingService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) (*models.Booking, error) {
	switch status {
	case models.BookingStatusConfirmed, models.BookingStatusCompleted:
	default:
		return nil, ErrInvalidStatus
	}

	booking, err := s.bookingRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}
