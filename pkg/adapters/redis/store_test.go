package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/easel/pkg/adapters/redis"
	"github.com/aretw0/easel/pkg/domain"
	"github.com/aretw0/easel/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err, "Failed to start miniredis")
	t.Cleanup(mr.Close)

	return mr, backend.NewClient(&backend.Options{Addr: mr.Addr()})
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := newTestClient(t)
	ports.RunWorkspaceStoreContract(t, redis.NewFromClient(client))
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, client := newTestClient(t)

	store := redis.NewFromClient(client, redis.WithTTL(1*time.Second))
	ctx := context.Background()

	state := domain.NewWorkspaceState("ws-ttl")
	state.Mode = "freeform"
	require.NoError(t, store.Save(ctx, "ws-ttl", state))

	loaded, err := store.Load(ctx, "ws-ttl")
	require.NoError(t, err)
	assert.Equal(t, "freeform", loaded.Mode)

	// miniredis advances time manually.
	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, "ws-ttl")
	assert.ErrorIs(t, err, domain.ErrWorkspaceNotFound)
}

func TestRedisLocker_MutualExclusion(t *testing.T) {
	_, client := newTestClient(t)
	locker := redis.NewLocker(client, "easel:")

	ctx := context.Background()
	unlock, err := locker.Lock(ctx, "ws-1", 5*time.Second)
	require.NoError(t, err)

	// A second holder times out while the lock is held.
	shortCtx, cancel := context.WithTimeout(ctx, 300*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(shortCtx, "ws-1", 5*time.Second)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// After release the lock is free again.
	require.NoError(t, unlock(ctx))
	unlock2, err := locker.Lock(ctx, "ws-1", 5*time.Second)
	require.NoError(t, err)
	require.NoError(t, unlock2(ctx))
}
