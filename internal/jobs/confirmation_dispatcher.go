package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"careops/internal/metrics"
	"careops/internal/models"
	"careops/internal/repositories"
	"careops/internal/services"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ConfirmationDispatcher drains the booking confirmation queue filled by the
// Redis notifier. Sending is a log line; there is no mail transport.
type ConfirmationDispatcher struct {
	client      *redis.Client
	contactRepo repositories.ContactRepository
	batch       int
	logger      zerolog.Logger
}

func NewConfirmationDispatcher(client *redis.Client, contactRepo repositories.ContactRepository, batch int, logger zerolog.Logger) *ConfirmationDispatcher {
	return &ConfirmationDispatcher{
		client:      client,
		contactRepo: contactRepo,
		batch:       batch,
		logger:      logger.With().Str("job", "confirmation-dispatch").Logger(),
	}
}

// Drain pops up to max messages and returns how many were dispatched.
// Malformed messages and vanished contacts are dropped. On any other lookup
// error the message goes back to the front of the queue and the batch stops.
func (d *ConfirmationDispatcher) Drain(ctx context.Context, max int) (int, error) {
	dispatched := 0
	defer func() { metrics.AddNotificationsDispatched(dispatched) }()

	for i := 0; i < max; i++ {
		raw, err := d.client.RPop(ctx, services.ConfirmationQueueKey).Result()
		if errors.Is(err, redis.Nil) {
			break
		}
		if err != nil {
			return dispatched, fmt.Errorf("pop confirmation: %w", err)
		}

		var msg models.BookingConfirmation
		if err := json.Unmarshal([]byte(raw), &msg); err != nil {
			d.logger.Warn().Err(err).Str("payload", raw).Msg("dropping malformed confirmation")
			continue
		}

		contact, err := d.contactRepo.GetByID(ctx, msg.WorkspaceID, msg.ContactID)
		if errors.Is(err, repositories.ErrNotFound) {
			d.logger.Warn().
				Str("booking_id", msg.BookingID.String()).
				Str("contact_id", msg.ContactID.String()).
				Msg("contact gone, dropping confirmation")
			continue
		}
		if err != nil {
			if perr := d.client.RPush(ctx, services.ConfirmationQueueKey, raw).Err(); perr != nil {
				d.logger.Error().Err(perr).Str("booking_id", msg.BookingID.String()).Msg("confirmation lost")
			}
			return dispatched, fmt.Errorf("resolve contact %s: %w", msg.ContactID, err)
		}

		d.logger.Info().
			Str("booking_id", msg.BookingID.String()).
			Str("to", contact.Email).
			Str("title", msg.Title).
			Time("start_time", msg.StartTime).
			Msg("sending confirmation email")
		dispatched++
	}

	return dispatched, nil
}

func (d *ConfirmationDispatcher) Run(ctx context.Context) error {
	_, err := d.Drain(ctx, d.batch)
	return err
}
