package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/perkhub/rewards-system/internal/core/ports"
)

const (
	statsKey = "stats:dashboard"
	statsTTL = 30 * time.Second
)

// StatsCache caches the admin dashboard counters for a short window so the
// stats endpoint does not hammer the store on every refresh.
type StatsCache struct {
	client *redis.Client
}

// NewStatsCache creates a StatsCache wrapping the given Redis client.
func NewStatsCache(client *redis.Client) *StatsCache {
	return &StatsCache{client: client}
}

// Get returns the cached counters, or (nil, nil) on a cache miss.
func (c *StatsCache) Get(ctx context.Context) (*ports.StatsResult, error) {
	raw, err := c.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("stats cache get: %w", err)
	}

	var stats ports.StatsResult
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("stats cache decode: %w", err)
	}
	return &stats, nil
}

// Set stores the counters with the cache TTL.
func (c *StatsCache) Set(ctx context.Context, stats *ports.StatsResult) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}
	return c.client.Set(ctx, statsKey, raw, statsTTL).Err()
}
