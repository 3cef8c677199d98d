package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frota-backend/internal/config"
)

func setupTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return New(client, "test:"), mr
}

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestCache_SetGet(t *testing.T) {
	c, _ := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key", payload{Name: "frota", Count: 3}, time.Minute))

	var got payload
	require.NoError(t, c.Get(ctx, "key", &got))
	assert.Equal(t, payload{Name: "frota", Count: 3}, got)
}

func TestCache_Miss(t *testing.T) {
	c, _ := setupTestCache(t)

	var got payload
	err := c.Get(context.Background(), "absent", &got)
	assert.Equal(t, ErrCacheMiss, err)
}

func TestCache_TTL(t *testing.T) {
	c, mr := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key", payload{Name: "frota"}, time.Minute))
	mr.FastForward(2 * time.Minute)

	var got payload
	err := c.Get(ctx, "key", &got)
	assert.Equal(t, ErrCacheMiss, err)
}

func TestCache_Delete(t *testing.T) {
	c, _ := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key", payload{Name: "frota"}, time.Minute))
	require.NoError(t, c.Delete(ctx, "key"))

	var got payload
	err := c.Get(ctx, "key", &got)
	assert.Equal(t, ErrCacheMiss, err)
}

func TestCache_KeysArePrefixed(t *testing.T) {
	c, mr := setupTestCache(t)

	require.NoError(t, c.Set(context.Background(), "key", payload{}, time.Minute))
	assert.True(t, mr.Exists("test:key"))
}

func TestNewClient_BadURL(t *testing.T) {
	_, err := NewClient(config.RedisConfig{URL: "not-a-url"})
	assert.Error(t, err)
}
