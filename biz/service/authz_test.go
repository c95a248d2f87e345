package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yi-nology/tool_inventory/pkg/identity"
)

type fakeRoles struct {
	roles   map[string]*identity.Role
	findErr error
	getErr  error
	created []string
	linked  [][2]string
	linkErr error
}

func (f *fakeRoles) FindRole(_ context.Context, name string) (*identity.Role, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, r := range f.roles {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRoles) GetRole(_ context.Context, id string) (*identity.Role, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	r, ok := f.roles[id]
	if !ok {
		return nil, errors.New("role not found")
	}
	return r, nil
}

func (f *fakeRoles) CreateRole(_ context.Context, name string) (*identity.Role, error) {
	r := &identity.Role{ID: name + "-id", Name: name}
	f.roles[r.ID] = r
	f.created = append(f.created, name)
	return r, nil
}

func (f *fakeRoles) AddSubRoleToRole(_ context.Context, roleID, subRoleID string) error {
	if f.linkErr != nil {
		return f.linkErr
	}
	r := f.roles[roleID]
	r.SubRoles = append(r.SubRoles, subRoleID)
	f.linked = append(f.linked, [2]string{roleID, subRoleID})
	return nil
}

type fakeUsers map[string]*identity.User

func (f fakeUsers) GetUser(_ context.Context, id string) (*identity.User, error) {
	u, ok := f[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	return u, nil
}

func newDirectory() (*fakeRoles, fakeUsers) {
	roles := &fakeRoles{roles: map[string]*identity.Role{
		"tm":    {ID: "tm", Name: "toolsmanagers"},
		"admin": {ID: "admin", Name: "administrators", SubRoles: []string{"tm"}},
		"dev":   {ID: "dev", Name: "developers"},
	}}
	users := fakeUsers{
		"manager": {ID: "manager", Role: "tm"},
		"boss":    {ID: "boss", Role: "admin"},
		"dev":     {ID: "dev", Role: "dev"},
		"nobody":  {ID: "nobody"},
	}
	return roles, users
}

func TestAuthorizer_IsToolManager(t *testing.T) {
	ctx := context.Background()

	t.Run("Hierarchy", func(t *testing.T) {
		roles, users := newDirectory()
		a := NewAuthorizer(roles, users, "toolsmanagers")

		require.True(t, a.IsToolManager(ctx, "manager"))
		require.True(t, a.IsToolManager(ctx, "boss"))
		require.False(t, a.IsToolManager(ctx, "dev"))
		require.False(t, a.IsToolManager(ctx, "nobody"))
		require.False(t, a.IsToolManager(ctx, "ghost"))
	})

	t.Run("MissingManagerRole", func(t *testing.T) {
		roles, users := newDirectory()
		delete(roles.roles, "tm")
		a := NewAuthorizer(roles, users, "toolsmanagers")
		require.False(t, a.IsToolManager(ctx, "boss"))
	})

	t.Run("LookupErrorsDeny", func(t *testing.T) {
		roles, users := newDirectory()
		roles.findErr = errors.New("directory down")
		require.False(t, NewAuthorizer(roles, users, "toolsmanagers").IsToolManager(ctx, "manager"))

		roles, users = newDirectory()
		roles.getErr = errors.New("directory down")
		a := NewAuthorizer(roles, users, "toolsmanagers")
		require.True(t, a.IsToolManager(ctx, "manager"))
		require.False(t, a.IsToolManager(ctx, "boss"))
	})
}

func TestEnsureToolManagerRole(t *testing.T) {
	ctx := context.Background()

	t.Run("AlreadyLinked", func(t *testing.T) {
		roles, _ := newDirectory()
		role, err := EnsureToolManagerRole(ctx, roles, "administrators", "toolsmanagers")
		require.NoError(t, err)
		require.Equal(t, "tm", role.ID)
		require.Empty(t, roles.created)
		require.Empty(t, roles.linked)
	})

	t.Run("CreatesAndLinks", func(t *testing.T) {
		roles, _ := newDirectory()
		delete(roles.roles, "tm")
		roles.roles["admin"].SubRoles = nil

		role, err := EnsureToolManagerRole(ctx, roles, "administrators", "toolsmanagers")
		require.NoError(t, err)
		require.Equal(t, []string{"toolsmanagers"}, roles.created)
		require.Equal(t, [][2]string{{"admin", role.ID}}, roles.linked)

		_, err = EnsureToolManagerRole(ctx, roles, "administrators", "toolsmanagers")
		require.NoError(t, err)
		require.Len(t, roles.linked, 1)
	})

	t.Run("AdminRoleRequired", func(t *testing.T) {
		roles, _ := newDirectory()
		delete(roles.roles, "admin")
		_, err := EnsureToolManagerRole(ctx, roles, "administrators", "toolsmanagers")
		require.Error(t, err)
	})

	t.Run("LinkFailure", func(t *testing.T) {
		roles, _ := newDirectory()
		roles.roles["admin"].SubRoles = nil
		roles.linkErr = errors.New("forbidden")
		_, err := EnsureToolManagerRole(ctx, roles, "administrators", "toolsmanagers")
		require.ErrorIs(t, err, roles.linkErr)
	})
}
