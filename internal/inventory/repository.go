package inventory

import (
	"context"
	"strings"
	"sync"
)

type Repository interface {
	// Search returns available items matching the filter, in catalog
	// insertion order.
	Search(ctx context.Context, filter Filter) ([]*Item, error)
	GetByID(ctx context.Context, id string) (*Item, error)
}

type memoryRepository struct {
	mu    sync.RWMutex
	items []*Item
}

// NewMemoryRepository creates an in-memory catalog seeded with the given
// items. Pass DefaultSeed() for the standard mock inventory.
func NewMemoryRepository(items []*Item) Repository {
	return &memoryRepository{items: items}
}

func matches(item *Item, filter Filter) bool {
	if item.Status != StatusAvailable {
		return false
	}
	if item.Category != filter.Category {
		return false
	}
	if item.Date != filter.Date {
		return false
	}
	if filter.Location != "" &&
		!strings.Contains(strings.ToLower(item.Location), strings.ToLower(filter.Location)) {
		return false
	}
	return true
}

func (r *memoryRepository) Search(ctx context.Context, filter Filter) ([]*Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*Item
	for _, item := range r.items {
		if matches(item, filter) {
			result = append(result, item)
		}
	}
	return result, nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, ErrNotFound
}
