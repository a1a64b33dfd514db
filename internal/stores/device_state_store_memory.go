package stores

import (
	"context"
	"sync"
	"time"

	"github.com/CarbonROM/tribble-tracker/internal/models"
)

// InMemoryDeviceStateStore keeps one row per device ID in a mutex-guarded
// map. The compare and the overwrite happen under the same lock, so the
// last-write-wins upsert is atomic per row even with concurrent submitters
// for the same device.
type InMemoryDeviceStateStore struct {
	mu     sync.RWMutex
	states map[string]*models.DeviceState
}

// NewInMemoryDeviceStateStore creates a new empty in-memory state store.
func NewInMemoryDeviceStateStore() *InMemoryDeviceStateStore {
	return &InMemoryDeviceStateStore{
		states: make(map[string]*models.DeviceState),
	}
}

func (s *InMemoryDeviceStateStore) UpsertLatest(ctx context.Context, event *models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.states[event.DeviceID]
	if ok && event.ObservedAt.Before(current.ObservedAt) {
		// Stored row is newer; incoming event is a replay or out-of-order
		// arrival and must not regress the state.
		return nil
	}
	s.states[event.DeviceID] = models.StateFromEvent(event)
	return nil
}

func (s *InMemoryDeviceStateStore) ListSince(ctx context.Context, cutoff time.Time) ([]*models.DeviceState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.DeviceState, 0, len(s.states))
	for _, state := range s.states {
		if state.ObservedAt.Before(cutoff) {
			continue
		}
		cp := *state
		result = append(result, &cp)
	}
	return result, nil
}
