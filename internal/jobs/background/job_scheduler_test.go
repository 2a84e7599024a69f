package background

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobScheduler_RunsAndStops(t *testing.T) {
	js, err := NewJobScheduler(zerolog.Nop())
	require.NoError(t, err)

	var runs atomic.Int32
	var sawCancel atomic.Bool
	require.NoError(t, js.AddJob("counter", 20*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	}))
	require.NoError(t, js.AddJob("failing", time.Hour, func(ctx context.Context) error {
		go func() {
			<-ctx.Done()
			sawCancel.Store(true)
		}()
		return errors.New("boom")
	}))

	assert.Equal(t, []string{"counter", "failing"}, js.JobNames())

	js.Start()
	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, js.Stop())
	assert.Eventually(t, sawCancel.Load, time.Second, 10*time.Millisecond)
}

func TestJobScheduler_DuplicateAndRemove(t *testing.T) {
	js, err := NewJobScheduler(zerolog.Nop())
	require.NoError(t, err)

	noop := func(context.Context) error { return nil }
	require.NoError(t, js.AddJob("scan", time.Minute, noop))
	assert.Error(t, js.AddJob("scan", time.Minute, noop))

	require.NoError(t, js.RemoveJob("scan"))
	assert.Empty(t, js.JobNames())
	assert.NoError(t, js.RemoveJob("missing"))
	require.NoError(t, js.Stop())
}
