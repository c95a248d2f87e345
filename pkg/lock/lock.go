// Package lock holds the redis lease that serialises inventory writes across replicas.
package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/yi-nology/tool_inventory/pkg/config"
)

var (
	// ErrTimeout is returned by Acquire when the lease stays taken for the whole wait.
	ErrTimeout = errors.New("write lock: timed out waiting for lease")
	// ErrLost is returned by Release when the lease expired or was taken over first.
	ErrLost = errors.New("write lock: lease lost before release")
)

const (
	defaultKey  = "tool_inventory:write_lock"
	defaultTTL  = 10 * time.Second
	defaultWait = 3 * time.Second

	minBackoff = 25 * time.Millisecond
	maxBackoff = 400 * time.Millisecond
)

// WriteLock is a single redis key holding the token of the current writer.
type WriteLock struct {
	client redis.UniversalClient
	key    string
	ttl    time.Duration
	wait   time.Duration
}

// New builds a WriteLock on client using the lock settings of cfg.
func New(client redis.UniversalClient, cfg config.RedisConfig) *WriteLock {
	l := &WriteLock{client: client, key: cfg.LockKey, ttl: cfg.LockTTL, wait: cfg.LockTimeout}
	if l.key == "" {
		l.key = defaultKey
	}
	if l.ttl <= 0 {
		l.ttl = defaultTTL
	}
	if l.wait <= 0 {
		l.wait = defaultWait
	}
	return l
}

// Key is the redis key the lease lives under.
func (l *WriteLock) Key() string { return l.key }

// Acquire polls SETNX with capped exponential backoff and returns the token
// that must be handed back to Release.
func (l *WriteLock) Acquire(ctx context.Context) (string, error) {
	token := uuid.NewString()
	ctx, cancel := context.WithTimeout(ctx, l.wait)
	defer cancel()

	backoff := minBackoff
	for {
		ok, err := l.client.SetNX(ctx, l.key, token, l.ttl).Result()
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			return "", ErrTimeout
		case err != nil:
			return "", fmt.Errorf("write lock setnx %s: %w", l.key, err)
		case ok:
			return token, nil
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return "", ErrTimeout
			}
			return "", ctx.Err()
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, maxBackoff)
	}
}

// compareAndDelete removes KEYS[1] only while it still holds ARGV[1].
var compareAndDelete = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// Release drops the lease if token still owns it.
func (l *WriteLock) Release(ctx context.Context, token string) error {
	n, err := compareAndDelete.Run(ctx, l.client, []string{l.key}, token).Int()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("write lock release %s: %w", l.key, err)
	}
	if n == 0 {
		return ErrLost
	}
	return nil
}
