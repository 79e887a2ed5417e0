// Package leaderboard groups a business day's draws by outcome.
package leaderboard

import (
	"context"
	"fortune/pkg/domain"
	"fortune/pkg/logger"
	"fortune/pkg/serrors"
	"sort"
	"time"

	"go.uber.org/zap"
)

// Group buckets entries by outcome. Groups are ordered by rank, best first,
// outcomes nobody drew are omitted and identities keep the order of entries.
// The result is never nil.
func Group(entries []domain.LeaderboardEntry) []domain.LeaderboardGroup {
	byOutcome := make(map[domain.Outcome][]string, len(domain.Outcomes()))
	for _, e := range entries {
		if !e.Value.Valid() {
			continue
		}
		byOutcome[e.Value] = append(byOutcome[e.Value], e.Username)
	}

	groups := make([]domain.LeaderboardGroup, 0, len(byOutcome))
	for outcome, identities := range byOutcome {
		groups = append(groups, domain.LeaderboardGroup{
			Fortune:    outcome,
			Identities: identities,
		})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Fortune.Rank() > groups[j].Fortune.Rank()
	})

	return groups
}

// Source provides the raw entries of a business day.
type Source interface {
	LeaderboardEntries(ctx context.Context, dayStart time.Time) ([]domain.LeaderboardEntry, error)
}

// Aggregator builds leaderboards from a Source and keeps them in a Cache.
// Cache failures are logged and never fail a request.
type Aggregator struct {
	source Source
	cache  Cache
}

// New creates an Aggregator. A nil cache disables caching.
func New(source Source, cache Cache) *Aggregator {
	if cache == nil {
		cache = NopCache{}
	}

	return &Aggregator{source: source, cache: cache}
}

// Day returns the grouped leaderboard of the business day starting at dayStart.
// The generation is read before the source, so groups computed concurrently
// with an invalidation are stored under a generation nobody reads anymore.
func (a *Aggregator) Day(ctx context.Context, dayStart time.Time) ([]domain.LeaderboardGroup, error) {
	gen, err := a.cache.Generation(ctx, dayStart)
	cacheable := err == nil
	if err != nil {
		logger.Warn(ctx, "could not read leaderboard generation", zap.Error(err), zap.Time("dayStart", dayStart))
	}

	if cacheable {
		groups, ok, err := a.cache.Get(ctx, dayStart, gen)
		if err != nil {
			logger.Warn(ctx, "could not read leaderboard cache", zap.Error(err), zap.Time("dayStart", dayStart))
		}
		if ok {
			return groups, nil
		}
	}

	entries, err := a.source.LeaderboardEntries(ctx, dayStart)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not load leaderboard")
	}
	groups := Group(entries)

	if cacheable {
		if err := a.cache.Set(ctx, dayStart, gen, groups); err != nil {
			logger.Warn(ctx, "could not write leaderboard cache", zap.Error(err), zap.Time("dayStart", dayStart))
		}
	}

	return groups, nil
}

// Invalidate retires the cached leaderboard of a business day, typically right
// after a new draw was claimed for it.
func (a *Aggregator) Invalidate(ctx context.Context, dayStart time.Time) {
	if err := a.cache.Invalidate(ctx, dayStart); err != nil {
		logger.Warn(ctx, "could not invalidate leaderboard cache", zap.Error(err), zap.Time("dayStart", dayStart))
	}
}
