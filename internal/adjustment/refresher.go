package adjustment

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Refresher re-runs an adjustment refresh on a fixed interval while an
// itinerary view is active. Cycles are serialized: a tick that arrives
// while the previous refresh is still in flight is skipped.
type Refresher struct {
	interval time.Duration
	logger   *zap.Logger
	refresh  func(ctx context.Context) error

	mu sync.Mutex
}

func NewRefresher(interval time.Duration, logger *zap.Logger, refresh func(ctx context.Context) error) *Refresher {
	return &Refresher{
		interval: interval,
		logger:   logger,
		refresh:  refresh,
	}
}

// Run performs an immediate refresh, then one per interval until the
// context is cancelled.
func (r *Refresher) Run(ctx context.Context) {
	r.RunOnce(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single refresh cycle. It returns false if a cycle was
// already in flight and this one was skipped.
func (r *Refresher) RunOnce(ctx context.Context) bool {
	if !r.mu.TryLock() {
		r.logger.Debug("adjustment refresh already in flight, skipping cycle")
		return false
	}
	defer r.mu.Unlock()

	if err := r.refresh(ctx); err != nil {
		r.logger.Warn("adjustment refresh failed", zap.Error(err))
	}
	return true
}
