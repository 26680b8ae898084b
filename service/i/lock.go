package i

import (
	"context"
	"errors"
)

// ErrLockHeld is returned by SearchLock.Acquire when another holder owns the key.
var ErrLockHeld = errors.New("lock is held by another search")

// SearchLock grants exclusive ownership of a key, typically one per workspace.
type SearchLock interface {
	// Acquire takes the lock without waiting. The returned release func must
	// be called exactly once when the holder is done.
	Acquire(ctx context.Context, key string) (release func(), err error)
}
