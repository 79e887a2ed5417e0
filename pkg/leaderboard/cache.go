package leaderboard

import (
	"context"
	"fortune/pkg/domain"
	"time"
)

// Cache stores computed leaderboards keyed by business day start and
// generation. Invalidate moves a day to a new generation, so a leaderboard
// computed before an invalidation can never be served after it.
type Cache interface {
	// Generation returns the current generation of a day, zero if never invalidated.
	Generation(ctx context.Context, dayStart time.Time) (uint64, error)
	// Get reports ok=false on a miss.
	Get(ctx context.Context, dayStart time.Time, gen uint64) ([]domain.LeaderboardGroup, bool, error)
	Set(ctx context.Context, dayStart time.Time, gen uint64, groups []domain.LeaderboardGroup) error
	Invalidate(ctx context.Context, dayStart time.Time) error
}

// NopCache always misses.
type NopCache struct{}

func (NopCache) Generation(context.Context, time.Time) (uint64, error) { return 0, nil }

func (NopCache) Get(context.Context, time.Time, uint64) ([]domain.LeaderboardGroup, bool, error) {
	return nil, false, nil
}

func (NopCache) Set(context.Context, time.Time, uint64, []domain.LeaderboardGroup) error { return nil }

func (NopCache) Invalidate(context.Context, time.Time) error { return nil }
