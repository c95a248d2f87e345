package middleware

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/yi-nology/tool_inventory/pkg/common"
)

// Recovery turns a panicking handler into a 500 {code, msg, error} response.
func Recovery() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			hlog.CtxErrorf(ctx, "panic in %s %s (user=%s): %v\n%s",
				c.Request.Method(), c.Request.URI().Path(), c.GetHeader(UserHeader), r, debug.Stack())
			c.AbortWithStatusJSON(consts.StatusInternalServerError, common.CommonResponse{
				Code:  consts.StatusInternalServerError,
				Msg:   "Internal server error",
				Error: fmt.Sprint(r),
			})
		}()
		c.Next(ctx)
	}
}
