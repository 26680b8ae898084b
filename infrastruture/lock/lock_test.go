package lock

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beka-birhanu/vinom-pathfinder/service/i"
)

// exercise runs the behaviour every SearchLock must show.
func exercise(t *testing.T, l i.SearchLock) {
	ctx := context.Background()
	key := uuid.NewString()

	release, err := l.Acquire(ctx, key)
	require.NoError(t, err)

	_, err = l.Acquire(ctx, key)
	assert.ErrorIs(t, err, i.ErrLockHeld)

	other, err := l.Acquire(ctx, uuid.NewString())
	require.NoError(t, err, "keys are independent")
	other()

	release()

	again, err := l.Acquire(ctx, key)
	require.NoError(t, err, "released keys can be taken again")
	again()
}

func TestLocalLock(t *testing.T) {
	t.Run("Exclusive per key", func(t *testing.T) {
		exercise(t, NewLocalLock())
	})

	t.Run("Release is idempotent", func(t *testing.T) {
		l := NewLocalLock()
		release, err := l.Acquire(context.Background(), "k")
		require.NoError(t, err)
		release()

		next, err := l.Acquire(context.Background(), "k")
		require.NoError(t, err)
		release()

		_, err = l.Acquire(context.Background(), "k")
		assert.ErrorIs(t, err, i.ErrLockHeld, "stale release must not free the new holder")
		next()
	})

	t.Run("Cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewLocalLock().Acquire(ctx, "k")
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Single winner under contention", func(t *testing.T) {
		l := NewLocalLock()
		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			winners int
		)
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := l.Acquire(context.Background(), "shared"); err == nil {
					mu.Lock()
					winners++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, winners)
	})
}

func TestRedisLock(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr, Password: os.Getenv("REDIS_PASS")})
	defer client.Close()
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("redis unreachable: %v", err)
	}

	l, err := NewRedisLock(client, "test:", 5)
	require.NoError(t, err)
	exercise(t, l)
}

func TestNewRedisLock_Validation(t *testing.T) {
	_, err := NewRedisLock(nil, "p:", 5)
	assert.Error(t, err)

	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	defer client.Close()
	_, err = NewRedisLock(client, "p:", 0)
	assert.Error(t, err)
}
