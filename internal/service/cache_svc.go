package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/justintdct/CineVault/cinevault-go/internal/model"
)

// RankingsCacheTTL bounds staleness between refresh sweeps.
const RankingsCacheTTL = 5 * time.Minute

// CacheService provides a Redis cache-aside layer for ranking responses.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService creates a new CacheService. If redisURL is empty or the
// connection fails, it returns a CacheService with a nil client and cache
// operations become no-ops.
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return &CacheService{}
	}

	log.Println("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetRankings retrieves a cached ranking response for one period. Returns
// nil when not cached or when caching is disabled.
func (c *CacheService) GetRankings(ctx context.Context, period model.RankingPeriod) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, rankingsKey(period)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetRankings stores a ranking response for one period.
func (c *CacheService) SetRankings(ctx context.Context, period model.RankingPeriod, data interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, rankingsKey(period), b, RankingsCacheTTL).Err()
}

// InvalidateRankings drops every period's cached ranking. Called after a
// refresh sweep or a client-triggered stats update changes the scores.
func (c *CacheService) InvalidateRankings(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx,
		rankingsKey(model.PeriodWeekly),
		rankingsKey(model.PeriodMonthly),
		rankingsKey(model.PeriodAllTime),
	).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func rankingsKey(period model.RankingPeriod) string {
	return fmt.Sprintf("rankings:%s", period)
}
