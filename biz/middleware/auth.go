package middleware

import (
	"context"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/yi-nology/tool_inventory/pkg/common"
	"github.com/yi-nology/tool_inventory/pkg/errno"
)

// UserHeader carries the id of the calling user.
const UserHeader = "X-User-Id"

var (
	ErrAuthenticationRequired = errno.Unauthorized("Authentication required")
	ErrNotToolManager         = errno.Unauthorized("User is not a tool manager")
)

// ToolManagerChecker reports whether a user may modify the inventory.
type ToolManagerChecker interface {
	IsToolManager(ctx context.Context, userID string) bool
}

// RequireAuth rejects requests without an X-User-Id header with 401 and
// stores the user id in the context otherwise.
func RequireAuth() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		userID := strings.TrimSpace(string(c.GetHeader(UserHeader)))
		if userID == "" {
			_ = c.Error(ErrAuthenticationRequired)
			c.Abort()
			return
		}
		c.Next(common.ContextWithUserID(ctx, userID))
	}
}

// RequireToolManager rejects callers that do not hold the tool manager role with 401.
// It must run after RequireAuth.
func RequireToolManager(checker ToolManagerChecker) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		userID, ok := common.GetUserID(ctx)
		if !ok {
			_ = c.Error(ErrAuthenticationRequired)
			c.Abort()
			return
		}
		if !checker.IsToolManager(ctx, userID) {
			_ = c.Error(ErrNotToolManager)
			c.Abort()
			return
		}
		c.Next(ctx)
	}
}
