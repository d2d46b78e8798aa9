package storage

import (
	"context"
	"sync"

	"restaurant-ordering/cart-svc/domain"
)

// MemoryCartStorage keeps the cart slot in process memory. Used in tests and
// as the fallback when Redis is unreachable, so a dead backend never stops a
// cart from working.
type MemoryCartStorage struct {
	mu    sync.RWMutex
	items []domain.LineItem
}

func NewMemoryCartStorage() *MemoryCartStorage {
	return &MemoryCartStorage{}
}

func (s *MemoryCartStorage) Save(_ context.Context, items []domain.LineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = cloneItems(items)
}

func (s *MemoryCartStorage) Load(_ context.Context) []domain.LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneItems(s.items)
}

// cloneItems copies the lines and their add-on slices, so neither the caller
// nor the slot can reach into the other's data.
func cloneItems(items []domain.LineItem) []domain.LineItem {
	out := make([]domain.LineItem, len(items))
	for i, item := range items {
		item.AddOns = append([]domain.AddOn{}, item.AddOns...)
		out[i] = item
	}
	return out
}
