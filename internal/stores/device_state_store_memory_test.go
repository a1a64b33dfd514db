package stores_test

import (
	"context"
	"testing"
	"time"

	"github.com/CarbonROM/tribble-tracker/internal/models"
	"github.com/CarbonROM/tribble-tracker/internal/stores"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEvent(deviceID, model string, observedAt time.Time) *models.Event {
	return &models.Event{
		DeviceID:   deviceID,
		Model:      model,
		Version:    "13.0-20230401-NIGHTLY-" + model,
		Country:    "in",
		Carrier:    "Android",
		CarrierID:  "0",
		ObservedAt: observedAt,
	}
}

func TestDeviceStateStore_UpsertLatest_NewerWins(t *testing.T) {
	t.Parallel()

	store := stores.NewInMemoryDeviceStateStore()
	ctx := context.Background()
	base := time.Now().UTC()

	require.NoError(t, store.UpsertLatest(ctx, newEvent("dev1", "hammerhead", base)))
	require.NoError(t, store.UpsertLatest(ctx, newEvent("dev1", "bacon", base.Add(time.Hour))))

	states, err := store.ListSince(ctx, time.Time{})
	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.Equal(t, "bacon", states[0].Model)
	assert.True(t, states[0].ObservedAt.Equal(base.Add(time.Hour)))
}

func TestDeviceStateStore_UpsertLatest_OlderIgnored(t *testing.T) {
	t.Parallel()

	store := stores.NewInMemoryDeviceStateStore()
	ctx := context.Background()
	base := time.Now().UTC()

	require.NoError(t, store.UpsertLatest(ctx, newEvent("dev1", "bacon", base.Add(time.Hour))))
	require.NoError(t, store.UpsertLatest(ctx, newEvent("dev1", "hammerhead", base)))

	states, err := store.ListSince(ctx, time.Time{})
	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.Equal(t, "bacon", states[0].Model, "stale event must not regress state")
}

func TestDeviceStateStore_UpsertLatest_EqualTimestampReplaces(t *testing.T) {
	t.Parallel()

	store := stores.NewInMemoryDeviceStateStore()
	ctx := context.Background()
	at := time.Now().UTC()

	// A replay of the newest event must be accepted, so re-running a full
	// reconciliation converges instead of depending on apply order.
	require.NoError(t, store.UpsertLatest(ctx, newEvent("dev1", "hammerhead", at)))
	require.NoError(t, store.UpsertLatest(ctx, newEvent("dev1", "bacon", at)))

	states, err := store.ListSince(ctx, time.Time{})
	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.Equal(t, "bacon", states[0].Model)
}

func TestDeviceStateStore_UpsertLatest_OrderIndependent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	base := time.Now().UTC()
	events := []*models.Event{
		newEvent("dev1", "a", base),
		newEvent("dev1", "b", base.Add(2*time.Hour)),
		newEvent("dev1", "c", base.Add(time.Hour)),
	}

	forward := stores.NewInMemoryDeviceStateStore()
	for _, e := range events {
		require.NoError(t, forward.UpsertLatest(ctx, e))
	}

	backward := stores.NewInMemoryDeviceStateStore()
	for i := len(events) - 1; i >= 0; i-- {
		require.NoError(t, backward.UpsertLatest(ctx, events[i]))
	}

	forwardStates, err := forward.ListSince(ctx, time.Time{})
	require.NoError(t, err)
	backwardStates, err := backward.ListSince(ctx, time.Time{})
	require.NoError(t, err)

	require.Len(t, forwardStates, 1)
	require.Len(t, backwardStates, 1)
	assert.Equal(t, "b", forwardStates[0].Model)
	assert.Equal(t, forwardStates[0], backwardStates[0])
}

func TestDeviceStateStore_ListSince_FiltersByCutoff(t *testing.T) {
	t.Parallel()

	store := stores.NewInMemoryDeviceStateStore()
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, store.UpsertLatest(ctx, newEvent("old", "a", now.Add(-100*24*time.Hour))))
	require.NoError(t, store.UpsertLatest(ctx, newEvent("recent", "b", now.Add(-time.Hour))))
	require.NoError(t, store.UpsertLatest(ctx, newEvent("boundary", "c", now.Add(-90*24*time.Hour))))

	states, err := store.ListSince(ctx, now.Add(-90*24*time.Hour))
	require.NoError(t, err)

	ids := make([]string, 0, len(states))
	for _, s := range states {
		ids = append(ids, s.DeviceID)
	}
	assert.ElementsMatch(t, []string{"recent", "boundary"}, ids, "cutoff is inclusive")
}

func TestDeviceStateStore_ListSince_ReturnsCopies(t *testing.T) {
	t.Parallel()

	store := stores.NewInMemoryDeviceStateStore()
	ctx := context.Background()

	require.NoError(t, store.UpsertLatest(ctx, newEvent("dev1", "hammerhead", time.Now().UTC())))

	states, err := store.ListSince(ctx, time.Time{})
	require.NoError(t, err)
	require.Len(t, states, 1)
	states[0].Model = "mutated"

	again, err := store.ListSince(ctx, time.Time{})
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, "hammerhead", again[0].Model)
}
