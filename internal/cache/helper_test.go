package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

func withTestRedis(t *testing.T) {
	t.Helper()
	mr := miniredis.RunT(t)
	old := client
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(old) })
}

func TestAsideMissThenHit(t *testing.T) {
	withTestRedis(t)
	ctx := context.Background()

	calls := 0
	var got cachedUser
	fetch := func() error {
		calls++
		got = cachedUser{ID: 7, Username: "alice"}
		return nil
	}

	require.NoError(t, Aside(ctx, UserKey(7), &got, UserTTL, fetch))
	assert.Equal(t, 1, calls)
	assert.Equal(t, "alice", got.Username)

	// Second read is served from the cache; fetch is not called again.
	var again cachedUser
	require.NoError(t, Aside(ctx, UserKey(7), &again, UserTTL, fetch))
	assert.Equal(t, 1, calls)
	assert.Equal(t, got, again)
}

func TestInvalidateUserForcesRefetch(t *testing.T) {
	withTestRedis(t)
	ctx := context.Background()

	calls := 0
	var dest cachedUser
	fetch := func() error {
		calls++
		dest = cachedUser{ID: 3, Username: "bob"}
		return nil
	}

	require.NoError(t, Aside(ctx, UserKey(3), &dest, time.Minute, fetch))
	InvalidateUser(ctx, 3)
	require.NoError(t, Aside(ctx, UserKey(3), &dest, time.Minute, fetch))
	assert.Equal(t, 2, calls)
}

func TestHelpersNoopWithoutRedis(t *testing.T) {
	old := client
	SetClient(nil)
	t.Cleanup(func() { SetClient(old) })

	ctx := context.Background()
	found, err := GetJSON(ctx, "user:1", &cachedUser{})
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, SetJSON(ctx, "user:1", cachedUser{ID: 1}, time.Minute))

	calls := 0
	var dest cachedUser
	require.NoError(t, Aside(ctx, "user:1", &dest, time.Minute, func() error {
		calls++
		return nil
	}))
	assert.Equal(t, 1, calls)
}
