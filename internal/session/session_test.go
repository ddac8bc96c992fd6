package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, ttl), mr
}

func TestRedisStore_CreateAndValid(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	token, err := store.Create(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.True(t, store.Valid(ctx, token))
	assert.False(t, store.Valid(ctx, "unknown-token"))
	assert.False(t, store.Valid(ctx, ""))
}

func TestRedisStore_Destroy(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	token, err := store.Create(ctx)
	require.NoError(t, err)

	require.NoError(t, store.Destroy(ctx, token))
	assert.False(t, store.Valid(ctx, token))

	// Idempotent: a second destroy and a destroy of an unknown token succeed.
	assert.NoError(t, store.Destroy(ctx, token))
	assert.NoError(t, store.Destroy(ctx, "never-existed"))
	assert.NoError(t, store.Destroy(ctx, ""))
}

func TestRedisStore_Expiry(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	ctx := context.Background()

	token, err := store.Create(ctx)
	require.NoError(t, err)
	assert.True(t, store.Valid(ctx, token))

	mr.FastForward(2 * time.Minute)

	assert.False(t, store.Valid(ctx, token))
}

func TestRedisStore_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	store := NewRedisStore(client, time.Hour)
	ctx := context.Background()

	token, err := store.Create(ctx)
	require.NoError(t, err)

	mr.Close()

	assert.False(t, store.Valid(ctx, token))
	_, err = store.Create(ctx)
	assert.Error(t, err)
}

func TestCodec_RoundTrip(t *testing.T) {
	codec := NewCodec("test-secret")

	signed := codec.Sign("abc-123")
	token, ok := codec.Verify(signed)

	assert.True(t, ok)
	assert.Equal(t, "abc-123", token)
}

func TestCodec_RejectsTampering(t *testing.T) {
	codec := NewCodec("test-secret")
	signed := codec.Sign("abc-123")

	t.Run("altered token", func(t *testing.T) {
		_, ok := codec.Verify("xyz-999" + signed[len("abc-123"):])
		assert.False(t, ok)
	})

	t.Run("altered signature", func(t *testing.T) {
		_, ok := codec.Verify(signed[:len(signed)-1] + "0")
		// Flipping the final hex digit must invalidate the value unless it
		// already was '0'.
		if signed[len(signed)-1] != '0' {
			assert.False(t, ok)
		}
	})

	t.Run("different secret", func(t *testing.T) {
		other := NewCodec("other-secret")
		_, ok := other.Verify(signed)
		assert.False(t, ok)
	})

	t.Run("malformed values", func(t *testing.T) {
		for _, v := range []string{"", ".", "abc", "abc.", ".def"} {
			_, ok := codec.Verify(v)
			assert.False(t, ok, "value %q", v)
		}
	})
}
