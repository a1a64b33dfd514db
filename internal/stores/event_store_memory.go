package stores

import (
	"context"
	"sync"
	"time"

	"github.com/CarbonROM/tribble-tracker/internal/models"
)

// InMemoryEventStore is an append-only event log held in process memory.
// Used by tests and by standalone deployments without a database.
type InMemoryEventStore struct {
	mu     sync.RWMutex
	events []*models.Event
}

// NewInMemoryEventStore creates a new empty in-memory event store.
func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{}
}

func (s *InMemoryEventStore) Append(ctx context.Context, event *models.Event) error {
	cp := *event
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, &cp)
	return nil
}

func (s *InMemoryEventStore) Scan(ctx context.Context, fn func(*models.Event) error) error {
	return s.ScanRange(ctx, time.Time{}, time.Time{}, fn)
}

// ScanRange streams events with ObservedAt in [from, to). A zero to means
// no upper bound. Stored events are immutable, so the scan iterates over a
// snapshot of the slice header taken under the read lock and does not block
// concurrent appends.
func (s *InMemoryEventStore) ScanRange(ctx context.Context, from, to time.Time, fn func(*models.Event) error) error {
	s.mu.RLock()
	snapshot := s.events
	s.mu.RUnlock()

	for _, event := range snapshot {
		if err := ctx.Err(); err != nil {
			return err
		}
		if event.ObservedAt.Before(from) {
			continue
		}
		if !to.IsZero() && !event.ObservedAt.Before(to) {
			continue
		}
		cp := *event
		if err := fn(&cp); err != nil {
			return err
		}
	}
	return nil
}

// Len reports the number of stored events.
func (s *InMemoryEventStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}
