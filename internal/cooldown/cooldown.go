// Package cooldown implements a per-key cooldown over Redis: one SET NX with
// a TTL, no local state.
package cooldown

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cooldown tracks cooldown keys in Redis.
type Cooldown struct {
	client *redis.Client
}

// New returns a Cooldown over the given client.
func New(client *redis.Client) *Cooldown {
	return &Cooldown{client: client}
}

// Acquire returns true when the caller was not on cooldown for
// resource:id and starts a new cooldown of the given duration.
func (c *Cooldown) Acquire(ctx context.Context, resource, id string, d time.Duration) (bool, error) {
	ok, err := c.client.SetNX(ctx, fmt.Sprintf("%s:%s", resource, id), 1, d).Result()
	if err != nil {
		return false, fmt.Errorf("failed to set cooldown key: %w", err)
	}
	return ok, nil
}
