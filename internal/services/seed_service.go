package services

import (
	"context"
	"fmt"
	"time"

	"careops/internal/models"
	"careops/internal/repositories"

	"github.com/google/uuid"
)

const SeedMessage = "Seed data created! Refresh your dashboard."

// SeedService fills a workspace with demo rows. Calling it twice duplicates them.
type SeedService interface {
	Seed(ctx context.Context, workspaceID uuid.UUID) error
}

type seedService struct {
	contactRepo   repositories.ContactRepository
	bookingRepo   repositories.BookingRepository
	inventoryRepo repositories.InventoryRepository
	now           func() time.Time
}

func NewSeedService(
	contactRepo repositories.ContactRepository,
	bookingRepo repositories.BookingRepository,
	inventoryRepo repositories.InventoryRepository,
) SeedService {
	return &seedService{
		contactRepo:   contactRepo,
		bookingRepo:   bookingRepo,
		inventoryRepo: inventoryRepo,
		now:           time.Now,
	}
}

type seedContact struct {
	name, email, phone string
}

type seedBooking struct {
	title   string
	status  models.BookingStatus
	contact int
}

type seedItem struct {
	name                string
	quantity, threshold int
}

var (
	seedContacts = []seedContact{
		{"Alice Johnson", "alice@example.com", "555-0101"},
		{"Bob Smith", "bob@example.com", "555-0102"},
	}
	seedBookings = []seedBooking{
		{"Initial Consultation", models.BookingStatusConfirmed, 0},
		{"Emergency Repair", models.BookingStatusCompleted, 1},
	}
	seedItems = []seedItem{
		{"Surgical Masks", 50, 10},
		{"Sanitizer Gel", 3, 5},
		{"Paper Towels", 2, 10},
	}
)

func (s *seedService) Seed(ctx context.Context, workspaceID uuid.UUID) error {
	contacts := make([]*models.Contact, 0, len(seedContacts))
	for _, sc := range seedContacts {
		phone := sc.phone
		contact := &models.Contact{
			ID:          uuid.New(),
			Name:        sc.name,
			Email:       sc.email,
			Phone:       &phone,
			WorkspaceID: workspaceID,
		}
		if err := s.contactRepo.Create(ctx, contact); err != nil {
			return fmt.Errorf("seed contact %q: %w", sc.name, err)
		}
		contacts = append(contacts, contact)
	}

	today := s.now().UTC()
	for _, sb := range seedBookings {
		booking := &models.Booking{
			ID:          uuid.New(),
			Title:       sb.title,
			StartTime:   today,
			EndTime:     today,
			Status:      sb.status,
			ContactID:   contacts[sb.contact].ID,
			WorkspaceID: workspaceID,
		}
		if err := s.bookingRepo.Create(ctx, booking); err != nil {
			return fmt.Errorf("seed booking %q: %w", sb.title, err)
		}
	}

	for _, si := range seedItems {
		item := &models.InventoryItem{
			ID:          uuid.New(),
			Name:        si.name,
			Quantity:    si.quantity,
			Threshold:   si.threshold,
			WorkspaceID: workspaceID,
		}
		if err := s.inventoryRepo.Create(ctx, item); err != nil {
			return fmt.Errorf("seed inventory item %q: %w", si.name, err)
		}
	}
	return nil
}
