package handlers

import (
	"errors"
	"net/http"
	"time"

	"careops/internal/common"
	"careops/internal/models"
	"careops/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// BookingHandlers handles the public contact/booking flow and staff status updates.
type BookingHandlers struct {
	bookingService services.BookingService
}

func NewBookingHandlers(bookingService services.BookingService) *BookingHandlers {
	return &BookingHandlers{bookingService: bookingService}
}

type CreateContactRequest struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone"`
	WorkspaceID uuid.UUID `json:"workspaceId" validate:"required"`
}

// CreateContact handles POST /api/contact
func (h *BookingHandlers) CreateContact(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, common.ValidationMessage(err))
	}

	contact, err := h.bookingService.CreateContact(ctx, &services.CreateContactRequest{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		WorkspaceID: req.WorkspaceID,
	})
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).
			Str("workspace_id", req.WorkspaceID.String()).
			Msg("contact creation failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create contact")
	}

	return c.JSON(http.StatusOK, contact)
}

type CreateBookingRequest struct {
	ContactID   uuid.UUID `json:"contactId" validate:"required"`
	WorkspaceID uuid.UUID `json:"workspaceId" validate:"required"`
	StartTime   time.Time `json:"startTime" validate:"required"`
	Title       string    `json:"title"`
}

// CreateBooking handles POST /api/booking
func (h *BookingHandlers) CreateBooking(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, common.ValidationMessage(err))
	}

	booking, err := h.bookingService.CreateBooking(ctx, &services.CreateBookingRequest{
		ContactID:   req.ContactID,
		WorkspaceID: req.WorkspaceID,
		StartTime:   req.StartTime,
		Title:       req.Title,
	})
	if err != nil {
		if errors.Is(err, services.ErrContactNotInWorkspace) {
			return echo.NewHTTPError(http.StatusBadRequest, "Contact not found in workspace")
		}
		zerolog.Ctx(ctx).Error().Err(err).
			Str("workspace_id", req.WorkspaceID.String()).
			Str("contact_id", req.ContactID.String()).
			Msg("booking creation failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create booking")
	}

	return c.JSON(http.StatusOK, booking)
}

type UpdateBookingStatusRequest struct {
	Status models.BookingStatus `json:"status" validate:"required,oneof=CONFIRMED COMPLETED"`
}

// UpdateStatus handles PUT /api/booking/:id/status
func (h *BookingHandlers) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, common.ValidationMessage(err))
	}

	booking, err := h.bookingService.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBookingNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Booking not found")
		case errors.Is(err, services.ErrInvalidStatus):
			return echo.NewHTTPError(http.StatusBadRequest, "status is not an allowed value")
		}
		zerolog.Ctx(ctx).Error().Err(err).
			Str("booking_id", id.String()).
			Msg("booking status update failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update booking status")
	}

	return c.JSON(http.StatusOK, booking)
}
