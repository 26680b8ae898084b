package lock

import (
	"context"
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// RedisLock hands out redsync mutexes so that only one replica runs a search
// on a given workspace at a time.
type RedisLock struct {
	locker *redsync.Redsync
	prefix string
	ttl    time.Duration
}

// NewRedisLock creates a RedisLock on client. Keys are namespaced under
// prefix and expire after ttlSeconds if the holder never releases them.
func NewRedisLock(client *redis.Client, prefix string, ttlSeconds int) (*RedisLock, error) {
	if client == nil {
		return nil, errors.New("lock: nil redis client")
	}
	if ttlSeconds <= 0 {
		return nil, errors.New("lock: ttl must be positive")
	}

	pool := goredis.NewPool(client)
	return &RedisLock{
		locker: redsync.New(pool),
		prefix: prefix,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}, nil
}

// Acquire tries the mutex for key once. A mutex held elsewhere yields i.ErrLockHeld.
func (l *RedisLock) Acquire(ctx context.Context, key string) (func(), error) {
	mutex := l.locker.NewMutex(l.prefix+key+":search_lock",
		redsync.WithExpiry(l.ttl),
		redsync.WithTries(1),
	)

	if err := mutex.TryLockContext(ctx); err != nil {
		var taken *redsync.ErrTaken
		if errors.Is(err, redsync.ErrFailed) || errors.As(err, &taken) {
			return nil, i.ErrLockHeld
		}
		return nil, err
	}

	return func() {
		// The search context may already be done; release on a fresh one.
		unlockCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_, _ = mutex.UnlockContext(unlockCtx)
	}, nil
}
