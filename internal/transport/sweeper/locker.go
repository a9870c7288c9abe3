package sweeper

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const defaultLockExpiry = 2 * time.Minute

// RedisLocker блокировка на redsync поверх go-redis.
type RedisLocker struct {
	rs     *redsync.Redsync
	expiry time.Duration
}

func NewRedisLocker(client redis.UniversalClient) *RedisLocker {
	return &RedisLocker{
		rs:     redsync.New(goredis.NewPool(client)),
		expiry: defaultLockExpiry,
	}
}

// SetExpiry устанавливает время жизни блокировки. Должно быть больше длительности одной итерации.
func (r *RedisLocker) SetExpiry(expiry time.Duration) *RedisLocker {
	r.expiry = expiry
	return r
}

func (r *RedisLocker) TryLock(ctx context.Context, key string) (func(context.Context) error, bool, error) {
	mutex := r.rs.NewMutex(key, redsync.WithExpiry(r.expiry), redsync.WithTries(1))

	if err := mutex.LockContext(ctx); err != nil {
		var taken *redsync.ErrTaken
		if errors.Is(err, redsync.ErrFailed) || errors.As(err, &taken) ||
			strings.Contains(err.Error(), "lock already taken") {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("lock %s: %w", key, err)
	}

	unlock := func(c context.Context) error {
		ok, err := mutex.UnlockContext(c)
		if err != nil {
			return fmt.Errorf("unlock %s: %w", key, err)
		}
		if !ok {
			return fmt.Errorf("unlock %s: %w", key, redsync.ErrLockAlreadyExpired)
		}
		return nil
	}
	return unlock, true, nil
}
