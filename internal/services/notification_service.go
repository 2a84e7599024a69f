package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"careops/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ConfirmationQueueKey is the Redis list holding pending booking confirmations.
// Producers LPUSH, the dispatcher RPOPs, so the list drains oldest first.
const ConfirmationQueueKey = "careops:notifications:booking_confirmed"

// BookingNotifier is told about every booking created through the public flow.
type BookingNotifier interface {
	BookingConfirmed(ctx context.Context, booking *models.Booking) error
}

type redisNotifier struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisNotifier(client *redis.Client) BookingNotifier {
	return &redisNotifier{client: client, now: time.Now}
}

func (n *redisNotifier) BookingConfirmed(ctx context.Context, booking *models.Booking) error {
	payload, err := json.Marshal(models.BookingConfirmation{
		BookingID:   booking.ID,
		ContactID:   booking.ContactID,
		WorkspaceID: booking.WorkspaceID,
		Title:       booking.Title,
		StartTime:   booking.StartTime,
		QueuedAt:    n.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("encode confirmation: %w", err)
	}
	if err := n.client.LPush(ctx, ConfirmationQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("enqueue confirmation: %w", err)
	}
	return nil
}

// logNotifier is used when no Redis is configured; it only records the intent.
type logNotifier struct {
	logger zerolog.Logger
}

func NewLogNotifier(logger zerolog.Logger) BookingNotifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) BookingConfirmed(ctx context.Context, booking *models.Booking) error {
	n.logger.Info().
		Str("booking_id", booking.ID.String()).
		Str("contact_id", booking.ContactID.String()).
		Str("workspace_id", booking.WorkspaceID.String()).
		Msg("sending confirmation email")
	return nil
}
