package service

import (
	"context"
	"fmt"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/yi-nology/tool_inventory/pkg/identity"
)

// RoleManager can create roles and nest them.
type RoleManager interface {
	RoleLookup
	CreateRole(ctx context.Context, name string) (*identity.Role, error)
	AddSubRoleToRole(ctx context.Context, roleID, subRoleID string) error
}

// EnsureToolManagerRole makes sure managerName exists and is a sub-role of adminName.
// The admin role must already exist.
func EnsureToolManagerRole(ctx context.Context, roles RoleManager, adminName, managerName string) (*identity.Role, error) {
	admin, err := roles.FindRole(ctx, adminName)
	if err != nil {
		return nil, fmt.Errorf("find role %q: %w", adminName, err)
	}
	if admin == nil {
		return nil, fmt.Errorf("role %q does not exist", adminName)
	}

	manager, err := roles.FindRole(ctx, managerName)
	if err != nil {
		return nil, fmt.Errorf("find role %q: %w", managerName, err)
	}
	if manager == nil {
		manager, err = roles.CreateRole(ctx, managerName)
		if err != nil {
			return nil, fmt.Errorf("create role %q: %w", managerName, err)
		}
		hlog.Infof("[bootstrap] created role %s (%s)", managerName, manager.ID)
	}

	if !admin.HasSubRole(manager.ID) {
		if err := roles.AddSubRoleToRole(ctx, admin.ID, manager.ID); err != nil {
			return nil, fmt.Errorf("add %q under %q: %w", managerName, adminName, err)
		}
		hlog.Infof("[bootstrap] linked role %s under %s", managerName, adminName)
	}
	return manager, nil
}
