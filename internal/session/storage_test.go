// AngelaMos | 2026
// storage_test.go

package session

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack-dev/fintrack-api/internal/rbac"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestRedisStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	storage := NewRedisStorage(newTestRedis(t))

	token, err := storage.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, token, "fresh storage holds no token")

	require.NoError(t, storage.Save(ctx, "tok-1"))

	token, err = storage.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	require.NoError(t, storage.Clear(ctx))

	token, err = storage.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestRedisStorageOverwrite(t *testing.T) {
	ctx := context.Background()
	storage := NewRedisStorage(newTestRedis(t))

	require.NoError(t, storage.Save(ctx, "tok-old"))
	require.NoError(t, storage.Save(ctx, "tok-new"))

	token, err := storage.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-new", token)
}

func TestRedisStorageClearEmptyIsNoop(t *testing.T) {
	storage := NewRedisStorage(newTestRedis(t))
	require.NoError(t, storage.Clear(context.Background()))
}

func TestStoreWithRedisStorage(t *testing.T) {
	ctx := context.Background()
	client := newTestRedis(t)

	first := NewStore(NewRedisStorage(client))
	require.NoError(t, first.SetCredentials(ctx, testIdentity(rbac.RoleUser), "tok-1"))

	// A second store sharing the same backing storage picks the token
	// up on restore, the way a fresh process would.
	second := NewStore(NewRedisStorage(client))
	found, err := second.Restore(ctx)
	require.NoError(t, err)
	assert.True(t, found)

	token, ok := second.Token()
	assert.True(t, ok)
	assert.Equal(t, "tok-1", token)
}
