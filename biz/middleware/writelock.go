package middleware

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/yi-nology/tool_inventory/pkg/errno"
)

// ErrBusy is returned when the write lock cannot be acquired in time.
var ErrBusy = errno.New(503, "Service busy, please retry later")

// WriteLocker is the distributed lock guarding mutating routes.
type WriteLocker interface {
	Acquire(ctx context.Context) (string, error)
	Release(ctx context.Context, lockID string) error
}

// WriteLock returns middleware serialising requests through l. A nil locker
// yields no middleware so requests pass straight through.
func WriteLock(l WriteLocker) []app.HandlerFunc {
	if l == nil {
		return nil
	}
	return []app.HandlerFunc{func(ctx context.Context, c *app.RequestContext) {
		lockID, err := l.Acquire(ctx)
		if err != nil {
			hlog.CtxWarnf(ctx, "[WriteLock] failed to acquire lock: %v", err)
			_ = c.Error(ErrBusy)
			c.Abort()
			return
		}
		defer func() {
			if releaseErr := l.Release(ctx, lockID); releaseErr != nil {
				hlog.CtxWarnf(ctx, "[WriteLock] failed to release lock: %v", releaseErr)
			}
		}()
		c.Next(ctx)
	}}
}
