package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/osse101/IdleRealms_Go/internal/domain"
	"github.com/osse101/IdleRealms_Go/internal/logger"
)

// Keys and timeouts
const (
	ActiveListingsKey           = "idle_realms:market:listings:active"
	ActiveListingsGenerationKey = "idle_realms:market:listings:generation"
	DefaultPingTimeout          = 2 * time.Second
)

// setIfGeneration writes the snapshot only while the generation still matches
// the one the caller read before loading from the database.
// KEYS: generation, snapshot. ARGV: expected generation, payload, ttl ms.
var setIfGeneration = redis.NewScript(`
local current = redis.call('GET', KEYS[1]) or '0'
if current ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
return 1
`)

// RedisOptions configures the Redis connection
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient connects and pings Redis
func NewRedisClient(ctx context.Context, opts RedisOptions) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, DefaultPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}
	return client, nil
}

// ListingsCache stores the active listings snapshot in Redis.
// Redis failures are logged and behave like a miss.
type ListingsCache struct {
	client redis.Cmdable
	ttl    time.Duration
	key    string
	genKey string
}

// NewListingsCache creates a cache with the given snapshot TTL
func NewListingsCache(client redis.Cmdable, ttl time.Duration) *ListingsCache {
	return &ListingsCache{client: client, ttl: ttl, key: ActiveListingsKey, genKey: ActiveListingsGenerationKey}
}

// GetActive returns the cached snapshot and whether it was present
func (c *ListingsCache) GetActive(ctx context.Context) ([]domain.MarketListing, bool) {
	raw, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.FromContext(ctx).Warn("Listings cache read failed", "error", err)
		}
		return nil, false
	}

	var listings []domain.MarketListing
	if err := json.Unmarshal(raw, &listings); err != nil {
		logger.FromContext(ctx).Warn("Listings cache entry corrupt, dropping", "error", err)
		c.Invalidate(ctx)
		return nil, false
	}
	return listings, true
}

// Generation returns the invalidation counter. ok is false when Redis
// could not be read, in which case nothing should be stored.
func (c *ListingsCache) Generation(ctx context.Context) (int64, bool) {
	gen, err := c.client.Get(ctx, c.genKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, true
		}
		logger.FromContext(ctx).Warn("Listings cache generation read failed", "error", err)
		return 0, false
	}
	return gen, true
}

// SetActive stores a snapshot loaded under generation. A snapshot read
// before a later Invalidate is dropped.
func (c *ListingsCache) SetActive(ctx context.Context, generation int64, listings []domain.MarketListing) {
	raw, err := json.Marshal(listings)
	if err != nil {
		return
	}
	stored, err := setIfGeneration.Run(ctx, c.client,
		[]string{c.genKey, c.key},
		strconv.FormatInt(generation, 10), raw, c.ttl.Milliseconds(),
	).Int()
	if err != nil {
		logger.FromContext(ctx).Warn("Listings cache write failed", "error", err)
		return
	}
	if stored == 0 {
		logger.FromContext(ctx).Debug("Listings cache write skipped, snapshot is stale", "generation", generation)
	}
}

// Invalidate bumps the generation and drops the snapshot
func (c *ListingsCache) Invalidate(ctx context.Context) {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, c.genKey)
		pipe.Del(ctx, c.key)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Warn("Listings cache invalidate failed", "error", err)
	}
}
