package subscription

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemStore is an in-memory Store for tests and local development.
type MemStore struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]OwnedSubscription
}

// NewMemStore returns a MemStore seeded with the given subscriptions.
func NewMemStore(subs ...OwnedSubscription) *MemStore {
	m := &MemStore{subs: make(map[uuid.UUID]OwnedSubscription, len(subs))}
	for _, s := range subs {
		m.subs[s.Subscription.ID] = s
	}
	return m
}

func (m *MemStore) ListTrialingWithOwner(ctx context.Context) ([]OwnedSubscription, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []OwnedSubscription
	for _, s := range m.subs {
		if s.Subscription.IsTrialing() {
			result = append(result, s)
		}
	}
	return result, nil
}

func (m *MemStore) MarkExpired(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.subs[id]
	if !ok {
		return ErrSubscriptionNotFound
	}
	if !s.Subscription.IsTrialing() {
		return nil
	}
	s.Subscription.Status = StatusExpired
	s.Subscription.UpdatedAt = time.Now().UTC()
	m.subs[id] = s
	return nil
}

// Get returns a subscription by id, for test assertions.
func (m *MemStore) Get(id uuid.UUID) (OwnedSubscription, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.subs[id]
	return s, ok
}
