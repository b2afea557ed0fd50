// Package lease provides a best-effort cross-instance lock on top of Redis.
package lease

import (
	"context"
	"errors"
	"time"

	"foodshare-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only while this holder still owns it.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisLocker struct {
	client *redis.Client
	owner  string
}

func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{client: client, owner: uuid.NewString()}
}

// TryAcquire takes key for ttl. It reports false when another holder has it.
func (l *RedisLocker) TryAcquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, key, l.owner, ttl).Result()
	if err != nil {
		return false, errs.Wrap(err, "acquire lease")
	}
	return ok, nil
}

func (l *RedisLocker) Release(ctx context.Context, key string) error {
	err := releaseScript.Run(ctx, l.client, []string{key}, l.owner).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return errs.Wrap(err, "release lease")
	}
	return nil
}

// LocalLocker always grants the lease; used when Redis is not configured.
type LocalLocker struct{}

func (LocalLocker) TryAcquire(context.Context, string, time.Duration) (bool, error) { return true, nil }
func (LocalLocker) Release(context.Context, string) error                          { return nil }
