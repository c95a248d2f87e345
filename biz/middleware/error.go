package middleware

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/yi-nology/tool_inventory/pkg/common"
	"github.com/yi-nology/tool_inventory/pkg/errno"
)

// ErrorHandler renders the last error attached to the request as
// {code, msg, error} with the HTTP status carried by the error (500 when none).
// Server errors are logged in full and answered with their public message only.
func ErrorHandler() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		c.Next(ctx)

		last := c.Errors.Last()
		if last == nil {
			return
		}
		e := errno.Ensure(last.Err)
		detail := last.Err.Error()
		if e.Code >= 500 {
			hlog.CtxErrorf(ctx, "%s %s: %v", c.Request.Method(), c.Request.URI().Path(), last.Err)
			detail = e.Msg
		}
		c.JSON(e.Code, common.CommonResponse{
			Code:  e.Code,
			Msg:   e.Msg,
			Error: detail,
		})
	}
}
