package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"careops/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisNotifier_EnqueuesConfirmation(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	queuedAt := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	notifier := NewRedisNotifier(client).(*redisNotifier)
	notifier.now = func() time.Time { return queuedAt }

	booking := &models.Booking{
		ID:          uuid.New(),
		Title:       "Checkup",
		StartTime:   queuedAt.Add(time.Hour),
		ContactID:   uuid.New(),
		WorkspaceID: uuid.New(),
	}
	require.NoError(t, notifier.BookingConfirmed(context.Background(), booking))

	items, err := mr.List(ConfirmationQueueKey)
	require.NoError(t, err)
	require.Len(t, items, 1)

	var msg models.BookingConfirmation
	require.NoError(t, json.Unmarshal([]byte(items[0]), &msg))
	assert.Equal(t, booking.ID, msg.BookingID)
	assert.Equal(t, booking.ContactID, msg.ContactID)
	assert.Equal(t, booking.WorkspaceID, msg.WorkspaceID)
	assert.Equal(t, "Checkup", msg.Title)
	assert.True(t, msg.QueuedAt.Equal(queuedAt))
}

func TestRedisNotifier_ReportsConnectionErrors(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	err := NewRedisNotifier(client).BookingConfirmed(context.Background(), &models.Booking{ID: uuid.New()})
	assert.ErrorContains(t, err, "enqueue confirmation")
}

func TestLogNotifier_NeverFails(t *testing.T) {
	err := NewLogNotifier(zerolog.Nop()).BookingConfirmed(context.Background(), &models.Booking{ID: uuid.New()})
	assert.NoError(t, err)
}
