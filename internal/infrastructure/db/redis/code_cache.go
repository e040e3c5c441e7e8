package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/peoplehr/leave-system/internal/core/ports"
)

// compareAndDeleteScript deletes the key only when its value matches the
// submitted code. Running it server-side makes lookup and deletion a single
// atomic step, so two concurrent verifications cannot both consume the code.
// Returns -1 when the key is absent, 0 on value mismatch, 1 when deleted.
var compareAndDeleteScript = redis.NewScript(`
local v = redis.call("GET", KEYS[1])
if v == false then
	return -1
end
if v ~= ARGV[1] then
	return 0
end
redis.call("DEL", KEYS[1])
return 1
`)

// CodeCache holds outstanding password-reset codes in Redis.
// Key format: otp:<email>
type CodeCache struct {
	client *redis.Client
}

// NewCodeCache creates a CodeCache wrapping the given Redis client.
func NewCodeCache(client *redis.Client) *CodeCache {
	return &CodeCache{client: client}
}

// Put stores code under email with the given TTL. SET overwrites any prior
// value and resets the expiry, which is exactly the supersede semantics
// re-issuance needs.
func (c *CodeCache) Put(ctx context.Context, email, code string, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.key(email), code, ttl).Err(); err != nil {
		return fmt.Errorf("store code: %w", err)
	}
	return nil
}

// CompareAndDelete atomically checks the stored code and deletes it on match.
func (c *CodeCache) CompareAndDelete(ctx context.Context, email, submitted string) (ports.CompareAndDeleteResult, error) {
	n, err := compareAndDeleteScript.Run(ctx, c.client, []string{c.key(email)}, submitted).Int()
	if err != nil {
		return ports.CodeMissing, fmt.Errorf("consume code: %w", err)
	}

	switch n {
	case 1:
		return ports.CodeConsumed, nil
	case 0:
		return ports.CodeMismatch, nil
	default:
		return ports.CodeMissing, nil
	}
}

func (c *CodeCache) key(email string) string {
	return "otp:" + email
}
