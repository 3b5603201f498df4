package share

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrTokenTaken signals a share-token collision on insert. The service
// reacts by generating a new token; callers never see this error.
var ErrTokenTaken = errors.New("share token already taken")

type Repository interface {
	// Create stores the record keyed by its token. Returns ErrTokenTaken
	// if a live record already holds the token.
	Create(ctx context.Context, itin *Itinerary) error
	GetByToken(ctx context.Context, token string) (*Itinerary, error)
	// RecordView sets the view count and last-viewed timestamp.
	RecordView(ctx context.Context, token string, viewCount int, viewedAt time.Time) error
	Delete(ctx context.Context, token string) error
}

type memoryRepository struct {
	mu      sync.Mutex
	records map[string]*Itinerary
}

// NewMemoryRepository creates the in-memory share store used by default
// and by the tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{records: make(map[string]*Itinerary)}
}

func (r *memoryRepository) Create(ctx context.Context, itin *Itinerary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[itin.Token]; exists {
		return ErrTokenTaken
	}
	stored := *itin
	r.records[itin.Token] = &stored
	return nil
}

func (r *memoryRepository) GetByToken(ctx context.Context, token string) (*Itinerary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[token]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *rec
	return &copied, nil
}

func (r *memoryRepository) RecordView(ctx context.Context, token string, viewCount int, viewedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[token]
	if !ok {
		return ErrNotFound
	}
	rec.ViewCount = viewCount
	rec.LastViewed = &viewedAt
	return nil
}

func (r *memoryRepository) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[token]; !ok {
		return ErrNotFound
	}
	delete(r.records, token)
	return nil
}
