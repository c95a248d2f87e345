package service

import (
	"context"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/yi-nology/tool_inventory/pkg/identity"
)

// RoleLookup resolves roles. FindRole returns nil when no role has the name.
type RoleLookup interface {
	FindRole(ctx context.Context, name string) (*identity.Role, error)
	GetRole(ctx context.Context, roleID string) (*identity.Role, error)
}

// UserLookup resolves users.
type UserLookup interface {
	GetUser(ctx context.Context, userID string) (*identity.User, error)
}

// Authorizer decides whether a user may modify the inventory.
type Authorizer struct {
	roles    RoleLookup
	users    UserLookup
	roleName string
}

func NewAuthorizer(roles RoleLookup, users UserLookup, toolManagerRole string) *Authorizer {
	return &Authorizer{roles: roles, users: users, roleName: toolManagerRole}
}

// IsToolManager reports whether the user holds the tool manager role, either
// directly or because the tool manager role is a sub-role of the user's role.
// Lookup failures count as false.
func (a *Authorizer) IsToolManager(ctx context.Context, userID string) bool {
	manager, err := a.roles.FindRole(ctx, a.roleName)
	if err != nil {
		hlog.CtxWarnf(ctx, "[authz] find role %q: %v", a.roleName, err)
		return false
	}
	if manager == nil {
		return false
	}

	user, err := a.users.GetUser(ctx, userID)
	if err != nil {
		hlog.CtxWarnf(ctx, "[authz] get user %q: %v", userID, err)
		return false
	}
	if user == nil || user.Role == "" {
		return false
	}
	if user.Role == manager.ID {
		return true
	}

	role, err := a.roles.GetRole(ctx, user.Role)
	if err != nil {
		hlog.CtxWarnf(ctx, "[authz] get role %q: %v", user.Role, err)
		return false
	}
	return role != nil && role.HasSubRole(manager.ID)
}
