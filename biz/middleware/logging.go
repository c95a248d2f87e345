package middleware

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// Logging writes one access line per request: client, caller, route, status, latency.
// Rejected requests are logged at warn together with the error that ended them.
func Logging() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		start := time.Now()
		c.Next(ctx)

		user := string(c.GetHeader(UserHeader))
		if user == "" {
			user = "-"
		}
		status := c.Response.StatusCode()
		line := "[%s] user=%s %s %s %d %v"
		args := []any{c.ClientIP(), user, c.Request.Method(), c.Request.URI().Path(), status, time.Since(start)}

		switch last := c.Errors.Last(); {
		case status >= 400 && status < 500 && last != nil:
			hlog.CtxWarnf(ctx, line+" err=%v", append(args, last.Err)...)
		default:
			hlog.CtxInfof(ctx, line, args...)
		}
	}
}
