package repositories_test

import (
	"context"
	"testing"
	"time"

	"careops/internal/models"
	"careops/internal/repositories"
	"careops/testhelpers"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgres_OnboardingAndDashboardQueries(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	ctx := context.Background()

	workspaces := repositories.NewWorkspaceRepo(db.Pool)
	users := repositories.NewUserRepo(db.Pool)
	contacts := repositories.NewContactRepo(db.Pool)
	bookings := repositories.NewBookingRepo(db.Pool)
	inventory := repositories.NewInventoryRepo(db.Pool)

	ws := &models.Workspace{ID: uuid.New(), Name: "Clinic", Email: "owner@clinic.test", Timezone: "UTC"}
	admin := &models.User{ID: uuid.New(), Email: ws.Email, Role: models.UserRoleAdmin}
	require.NoError(t, workspaces.CreateWithAdmin(ctx, ws, admin))

	admins, err := users.ListByWorkspace(ctx, ws.ID)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, models.UserRoleAdmin, admins[0].Role)

	for i := 0; i < 6; i++ {
		testhelpers.SetupTestContact(t, db, ws.ID, "Visitor")
	}
	recent, err := contacts.ListRecent(ctx, ws.ID, models.RecentContactLimit)
	require.NoError(t, err)
	require.Len(t, recent, models.RecentContactLimit)
	for i := 1; i < len(recent); i++ {
		assert.False(t, recent[i].CreatedAt.After(recent[i-1].CreatedAt))
	}

	// A booking far from today still shows up.
	start := time.Now().AddDate(0, 2, 0).UTC().Truncate(time.Microsecond)
	booking := &models.Booking{
		ID: uuid.New(), Title: "Follow-up", StartTime: start, EndTime: start,
		Status: models.BookingStatusConfirmed, ContactID: recent[0].ID, WorkspaceID: ws.ID,
	}
	require.NoError(t, bookings.Create(ctx, booking))

	listed, err := bookings.ListTodayBookings(ctx, ws.ID, models.DashboardBookingLimit)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.NotNil(t, listed[0].Contact)
	assert.Nil(t, listed[0].Contact.Phone)

	updated, err := bookings.UpdateStatus(ctx, booking.ID, models.BookingStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCompleted, updated.Status)

	_, err = bookings.UpdateStatus(ctx, uuid.New(), models.BookingStatusCompleted)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	for _, item := range []*models.InventoryItem{
		{ID: uuid.New(), Name: "Gloves", Quantity: 5, Threshold: 10, WorkspaceID: ws.ID},
		{ID: uuid.New(), Name: "Masks", Quantity: 6, Threshold: 10, WorkspaceID: ws.ID},
	} {
		require.NoError(t, inventory.Create(ctx, item))
	}
	low, err := inventory.ListLowStock(ctx, ws.ID, models.LowStockCutoff)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "Gloves", low[0].Name)
}

func TestPostgres_ContactScopedToWorkspace(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	ctx := context.Background()

	first := testhelpers.SetupTestWorkspace(t, db)
	second := testhelpers.SetupTestWorkspace(t, db)
	contact := testhelpers.SetupTestContact(t, db, first, "Ann")

	contacts := repositories.NewContactRepo(db.Pool)
	_, err := contacts.GetByID(ctx, first, contact.ID)
	assert.NoError(t, err)
	_, err = contacts.GetByID(ctx, second, contact.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
