package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"fortune/pkg/domain"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "fortune:leaderboard:"
	// generations outlive the business day they belong to
	generationTTL = 48 * time.Hour
)

// RedisCache keeps leaderboards in redis as JSON with a TTL. Each day has a
// counter that Invalidate increments, and leaderboards are stored under the
// counter value they were computed at.
type RedisCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisCache creates a RedisCache. Entries expire after ttl.
func NewRedisCache(client redis.Cmdable, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// Key returns the redis key prefix of the leaderboard of a business day.
func Key(dayStart time.Time) string {
	return keyPrefix + strconv.FormatInt(dayStart.Unix(), 10)
}

// GenerationKey returns the redis key of the generation counter of a business day.
func GenerationKey(dayStart time.Time) string {
	return Key(dayStart) + ":gen"
}

// EntryKey returns the redis key of a day's leaderboard at a generation.
func EntryKey(dayStart time.Time, gen uint64) string {
	return Key(dayStart) + ":" + strconv.FormatUint(gen, 10)
}

func (c *RedisCache) Generation(ctx context.Context, dayStart time.Time) (uint64, error) {
	raw, err := c.client.Get(ctx, GenerationKey(dayStart)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("could not get leaderboard generation from redis: %w", err)
	}

	gen, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("could not parse leaderboard generation: %w", err)
	}

	return gen, nil
}

func (c *RedisCache) Get(ctx context.Context, dayStart time.Time, gen uint64) ([]domain.LeaderboardGroup, bool, error) {
	raw, err := c.client.Get(ctx, EntryKey(dayStart, gen)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("could not get leaderboard from redis: %w", err)
	}

	var groups []domain.LeaderboardGroup
	if err := json.Unmarshal(raw, &groups); err != nil {
		return nil, false, fmt.Errorf("could not decode cached leaderboard: %w", err)
	}
	if groups == nil {
		groups = []domain.LeaderboardGroup{}
	}

	return groups, true, nil
}

func (c *RedisCache) Set(ctx context.Context, dayStart time.Time, gen uint64, groups []domain.LeaderboardGroup) error {
	raw, err := json.Marshal(groups)
	if err != nil {
		return fmt.Errorf("could not encode leaderboard: %w", err)
	}
	if err := c.client.Set(ctx, EntryKey(dayStart, gen), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("could not set leaderboard in redis: %w", err)
	}

	return nil
}

// Invalidate moves the day to a new generation. Entries of older generations
// are left to expire.
func (c *RedisCache) Invalidate(ctx context.Context, dayStart time.Time) error {
	key := GenerationKey(dayStart)
	if err := c.client.Incr(ctx, key).Err(); err != nil {
		return fmt.Errorf("could not bump leaderboard generation in redis: %w", err)
	}
	if err := c.client.Expire(ctx, key, generationTTL).Err(); err != nil {
		return fmt.Errorf("could not set leaderboard generation expiry: %w", err)
	}

	return nil
}
