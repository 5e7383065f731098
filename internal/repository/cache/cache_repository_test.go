package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ride-booking/internal/repository/cache"
)

func TestCacheRepository(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	repo := cache.NewCacheRepository(client, zap.NewNop())
	ctx := context.Background()

	t.Run("miss returns nil without error", func(t *testing.T) {
		val, err := repo.Get(ctx, "geocode:search:nowhere")
		require.NoError(t, err)
		assert.Nil(t, val)
	})

	t.Run("set get delete", func(t *testing.T) {
		key := "geocode:search:india gate, delhi"
		require.NoError(t, repo.Set(ctx, key, []byte(`{"lat":28.6129}`), time.Minute))

		val, err := repo.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, `{"lat":28.6129}`, string(val))

		require.NoError(t, repo.Delete(ctx, key))
		val, err = repo.Get(ctx, key)
		require.NoError(t, err)
		assert.Nil(t, val)
	})

	t.Run("ttl expiry", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "short", []byte("x"), time.Second))
		mr.FastForward(2 * time.Second)

		val, err := repo.Get(ctx, "short")
		require.NoError(t, err)
		assert.Nil(t, val)
	})

	t.Run("redis down", func(t *testing.T) {
		mr.SetError("ERR simulated failure")
		defer mr.SetError("")

		_, err := repo.Get(ctx, "any")
		assert.Error(t, err)
	})
}
