package services

import (
	"context"

	"careops/internal/models"
	"careops/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type DashboardService interface {
	Get(ctx context.Context, workspaceID uuid.UUID) (*models.Dashboard, error)
}

type dashboardService struct {
	bookingRepo   repositories.BookingRepository
	inventoryRepo repositories.InventoryRepository
	contactRepo   repositories.ContactRepository
}

func NewDashboardService(
	bookingRepo repositories.BookingRepository,
	inventoryRepo repositories.InventoryRepository,
	contactRepo repositories.ContactRepository,
) DashboardService {
	return &dashboardService{
		bookingRepo:   bookingRepo,
		inventoryRepo: inventoryRepo,
		contactRepo:   contactRepo,
	}
}

// Get runs the three dashboard reads concurrently. No read transaction spans
// them. The first failure cancels the others and no partial result is returned.
func (s *dashboardService) Get(ctx context.Context, workspaceID uuid.UUID) (*models.Dashboard, error) {
	var (
		bookings []*models.Booking
		items    []*models.InventoryItem
		contacts []*models.Contact
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bookings, err = s.bookingRepo.ListTodayBookings(gctx, workspaceID, models.DashboardBookingLimit)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = s.inventoryRepo.ListLowStock(gctx, workspaceID, models.LowStockCutoff)
		return err
	})
	g.Go(func() error {
		var err error
		contacts, err = s.contactRepo.ListRecent(gctx, workspaceID, models.RecentContactLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	dashboard := &models.Dashboard{
		TodayBookings:  bookings,
		LowStockItems:  items,
		RecentContacts: contacts,
	}
	if dashboard.TodayBookings == nil {
		dashboard.TodayBookings = []*models.Booking{}
	}
	if dashboard.LowStockItems == nil {
		dashboard.LowStockItems = []*models.InventoryItem{}
	}
	if dashboard.RecentContacts == nil {
		dashboard.RecentContacts = []*models.Contact{}
	}
	return dashboard, nil
}
