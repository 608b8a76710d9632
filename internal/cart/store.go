package cart

import (
	"context"
	"sync"
)

// Store persists one quantity map per owner. Two implementations exist:
// MemoryStore holds the client-local copy for anonymous sessions and
// RedisStore holds the server copy for authenticated identities.
type Store interface {
	Get(ctx context.Context, ownerID string) (Quantities, error)
	SetItem(ctx context.Context, ownerID, itemID string, qty int) error
	Increment(ctx context.Context, ownerID, itemID string) (int, error)
	Replace(ctx context.Context, ownerID string, q Quantities) error
	Clear(ctx context.Context, ownerID string) error
}

type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]Quantities
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]Quantities)}
}

func (s *MemoryStore) Get(ctx context.Context, ownerID string) (Quantities, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q, ok := s.carts[ownerID]
	if !ok {
		return Quantities{}, nil
	}
	return q.Clone(), nil
}

func (s *MemoryStore) SetItem(ctx context.Context, ownerID, itemID string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.carts[ownerID]
	if !ok {
		q = Quantities{}
		s.carts[ownerID] = q
	}
	q.Set(itemID, qty)

	if len(q) == 0 {
		delete(s.carts, ownerID)
	}
	return nil
}

func (s *MemoryStore) Increment(ctx context.Context, ownerID, itemID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.carts[ownerID]
	if !ok {
		q = Quantities{}
		s.carts[ownerID] = q
	}
	return q.Add(itemID), nil
}

func (s *MemoryStore) Replace(ctx context.Context, ownerID string, q Quantities) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(q) == 0 {
		delete(s.carts, ownerID)
		return nil
	}
	s.carts[ownerID] = q.Clone()
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, ownerID)
	return nil
}
