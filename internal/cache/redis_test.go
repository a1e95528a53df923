package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/IdleRealms_Go/internal/domain"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client, err := NewRedisClient(ctx, RedisOptions{Addr: endpoint})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestListingsCache_RoundTrip(t *testing.T) {
	client := startRedis(t)
	ctx := context.Background()
	c := NewListingsCache(client, time.Minute)

	_, ok := c.GetActive(ctx)
	assert.False(t, ok, "empty cache is a miss")

	listings := []domain.MarketListing{{
		ID:           1, SellerID: 2, ItemID: 2, Quantity: 2,
		PricePerUnit: decimal.RequireFromString("50.25"),
		TotalPrice:   decimal.RequireFromString("100.50"),
		IsActive:     true,
		ItemName:     "Iron Ore",
	}}
	gen, ok := c.Generation(ctx)
	require.True(t, ok)
	c.SetActive(ctx, gen, listings)

	got, ok := c.GetActive(ctx)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.True(t, got[0].TotalPrice.Equal(listings[0].TotalPrice))
	assert.Equal(t, "Iron Ore", got[0].ItemName)

	c.Invalidate(ctx)
	_, ok = c.GetActive(ctx)
	assert.False(t, ok)
}

func TestListingsCache_EmptySnapshotIsAHit(t *testing.T) {
	client := startRedis(t)
	ctx := context.Background()
	c := NewListingsCache(client, time.Minute)

	c.SetActive(ctx, 0, []domain.MarketListing{})

	got, ok := c.GetActive(ctx)
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestListingsCache_StaleSnapshotIsNotStored(t *testing.T) {
	client := startRedis(t)
	ctx := context.Background()
	c := NewListingsCache(client, time.Minute)

	// ARRANGE: a reader takes the generation, then a purchase invalidates
	gen, ok := c.Generation(ctx)
	require.True(t, ok)
	c.Invalidate(ctx)

	// ACT: the reader stores what it loaded before the purchase
	c.SetActive(ctx, gen, []domain.MarketListing{{ID: 1, IsActive: true}})

	// ASSERT
	_, ok = c.GetActive(ctx)
	assert.False(t, ok, "snapshot from before the invalidation must not be served")

	next, ok := c.Generation(ctx)
	require.True(t, ok)
	assert.Equal(t, gen+1, next)
	c.SetActive(ctx, next, []domain.MarketListing{})
	_, ok = c.GetActive(ctx)
	assert.True(t, ok)
}

func TestListingsCache_CorruptEntryIsDropped(t *testing.T) {
	client := startRedis(t)
	ctx := context.Background()
	c := NewListingsCache(client, time.Minute)
	require.NoError(t, client.Set(ctx, ActiveListingsKey, "not json", time.Minute).Err())

	_, ok := c.GetActive(ctx)
	assert.False(t, ok)

	exists, err := client.Exists(ctx, ActiveListingsKey).Result()
	require.NoError(t, err)
	assert.Zero(t, exists)
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	_, err := NewRedisClient(context.Background(), RedisOptions{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}
