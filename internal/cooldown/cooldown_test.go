package cooldown

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireIntegration(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set; skipping redis integration test")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	ctx := context.Background()
	cd := New(client)

	ok, err := cd.Acquire(ctx, "test-pay", "user-1", time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = cd.Acquire(ctx, "test-pay", "user-1", time.Second)
	require.NoError(t, err)
	assert.False(t, ok)

	// A different id is an independent key.
	ok, err = cd.Acquire(ctx, "test-pay", "user-2", time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
}
