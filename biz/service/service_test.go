package service

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yi-nology/tool_inventory/biz/dal/db"
	"github.com/yi-nology/tool_inventory/biz/model/api"
	"github.com/yi-nology/tool_inventory/pkg/errno"
	"github.com/yi-nology/tool_inventory/pkg/storage"
	"gorm.io/gorm"
)

func setupService(t *testing.T, store storage.Storage) (*Service, *gorm.DB) {
	t.Helper()
	conn := db.SetupTestDB(t)
	t.Cleanup(func() { db.CleanupTestDB(t, conn) })
	return NewService(conn, store), conn
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, status, errno.StatusOf(err), "unexpected error %v", err)
}

func strPtr(s string) *string { return &s }

func TestToolService(t *testing.T) {
	svc, _ := setupService(t, nil)
	ctx := context.Background()

	tool, err := svc.Tools.CreateTool(ctx, &api.CreateToolRequest{Name: "tool1", Vendor: "acme"})
	require.NoError(t, err)
	require.NotEmpty(t, tool.ToolID)
	require.Equal(t, "tool1", tool.Name)

	t.Run("DuplicateName", func(t *testing.T) {
		_, err := svc.Tools.CreateTool(ctx, &api.CreateToolRequest{Name: "tool1"})
		requireStatus(t, err, http.StatusConflict)
	})

	t.Run("Get", func(t *testing.T) {
		got, err := svc.Tools.GetTool(ctx, tool.ToolID)
		require.NoError(t, err)
		require.Equal(t, tool, got)

		_, err = svc.Tools.GetTool(ctx, "missing")
		requireStatus(t, err, http.StatusNotFound)
	})

	t.Run("UpdateOmittedFieldsUntouched", func(t *testing.T) {
		got, err := svc.Tools.UpdateToolInformations(ctx, &api.UpdateToolRequest{ToolID: tool.ToolID})
		require.NoError(t, err)
		require.Equal(t, "acme", got.Vendor)

		got, err = svc.Tools.UpdateToolInformations(ctx, &api.UpdateToolRequest{ToolID: tool.ToolID, Vendor: strPtr("globex")})
		require.NoError(t, err)
		require.Equal(t, "globex", got.Vendor)
		require.Equal(t, "tool1", got.Name)

		_, err = svc.Tools.UpdateToolInformations(ctx, &api.UpdateToolRequest{ToolID: "missing"})
		requireStatus(t, err, http.StatusNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		other, err := svc.Tools.CreateTool(ctx, &api.CreateToolRequest{Name: "doomed"})
		require.NoError(t, err)

		res, err := svc.Tools.DeleteTool(ctx, other.ToolID)
		require.NoError(t, err)
		require.Equal(t, other.ToolID, res.ID)

		_, err = svc.Tools.GetTool(ctx, other.ToolID)
		requireStatus(t, err, http.StatusNotFound)
		_, err = svc.Tools.DeleteTool(ctx, other.ToolID)
		requireStatus(t, err, http.StatusNotFound)
	})
}

func TestVersionServices(t *testing.T) {
	svc, _ := setupService(t, nil)
	ctx := context.Background()

	tool, err := svc.Tools.CreateTool(ctx, &api.CreateToolRequest{Name: "compiler"})
	require.NoError(t, err)

	t.Run("ToolVersionNeedsTool", func(t *testing.T) {
		_, err := svc.ToolVersions.CreateToolVersion(ctx, &api.CreateToolVersionRequest{ToolID: "missing", Version: "1.0"})
		requireStatus(t, err, http.StatusConflict)
	})

	t.Run("ToolVersionPairIsUnique", func(t *testing.T) {
		v, err := svc.ToolVersions.CreateToolVersion(ctx, &api.CreateToolVersionRequest{ToolID: tool.ToolID, Version: "1.0", Location: "/opt/c"})
		require.NoError(t, err)
		require.False(t, v.CreationDate.IsZero())

		_, err = svc.ToolVersions.CreateToolVersion(ctx, &api.CreateToolVersionRequest{ToolID: tool.ToolID, Version: "1.0"})
		requireStatus(t, err, http.StatusConflict)

		updated, err := svc.ToolVersions.UpdateToolVersionInformations(ctx, &api.UpdateToolVersionRequest{
			ToolVersionID: v.ToolVersionID,
			Informations:  strPtr("stable"),
		})
		require.NoError(t, err)
		require.Equal(t, "/opt/c", updated.Location)
		require.Equal(t, "stable", updated.Informations)
	})

	t.Run("ModuleNeedsTool", func(t *testing.T) {
		_, err := svc.Modules.CreateModule(ctx, &api.CreateModuleRequest{Name: "orphan", ToolID: "missing"})
		requireStatus(t, err, http.StatusNotFound)
	})

	t.Run("ModuleVersionNeedsModule", func(t *testing.T) {
		_, err := svc.ModuleVersions.CreateModuleVersion(ctx, &api.CreateModuleVersionRequest{ModuleID: "missing", Version: "1"})
		requireStatus(t, err, http.StatusNotFound)
	})

	t.Run("ModuleVersions", func(t *testing.T) {
		mod, err := svc.Modules.CreateModule(ctx, &api.CreateModuleRequest{Name: "linker", ToolID: tool.ToolID})
		require.NoError(t, err)
		_, err = svc.Modules.CreateModule(ctx, &api.CreateModuleRequest{Name: "linker", ToolID: tool.ToolID})
		requireStatus(t, err, http.StatusConflict)

		mv, err := svc.ModuleVersions.CreateModuleVersion(ctx, &api.CreateModuleVersionRequest{ModuleID: mod.ModuleID, Version: "2"})
		require.NoError(t, err)
		_, err = svc.ModuleVersions.CreateModuleVersion(ctx, &api.CreateModuleVersionRequest{ModuleID: mod.ModuleID, Version: "2"})
		requireStatus(t, err, http.StatusConflict)

		page, err := svc.ModuleVersions.GetModuleVersions(ctx, mod.ModuleID, 1, 10)
		require.NoError(t, err)
		require.Len(t, page.ModuleVersions, 1)
		require.Equal(t, mv.ModuleVersionID, page.ModuleVersions[0].ModuleVersionID)

		modules, err := svc.Modules.GetModules(ctx, tool.ToolID, 1, 10)
		require.NoError(t, err)
		require.Len(t, modules.Modules, 1)
	})
}

func TestPagination(t *testing.T) {
	svc, _ := setupService(t, nil)
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		_, err := svc.Environments.CreateEnvironment(ctx, &api.CreateEnvironmentRequest{Name: fmt.Sprintf("env-%02d", i)})
		require.NoError(t, err)
	}

	page, err := svc.Environments.GetEnvironments(ctx, 1, 10)
	require.NoError(t, err)
	require.EqualValues(t, 2, page.PageCount)
	require.Len(t, page.Environments, 10)
	require.Equal(t, "env-00", page.Environments[0].Name)

	page, err = svc.Environments.GetEnvironments(ctx, 2, 10)
	require.NoError(t, err)
	require.Len(t, page.Environments, 10)
	require.Equal(t, "env-10", page.Environments[0].Name)

	page, err = svc.Environments.GetEnvironments(ctx, 3, 7)
	require.NoError(t, err)
	require.EqualValues(t, 3, page.PageCount)
	require.Len(t, page.Environments, 6)

	for _, tc := range []struct {
		name          string
		page, perPage int
	}{
		{"PastLastPage", 3, 10},
		{"ZeroPage", 0, 10},
		{"NegativePage", -1, 10},
		{"ZeroPerPage", 1, 0},
		{"HugePage", 1<<62 + 1, 4},
		{"HugeBoth", math.MaxInt, math.MaxInt},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Environments.GetEnvironments(ctx, tc.page, tc.perPage)
			requireStatus(t, err, http.StatusBadRequest)
		})
	}

	t.Run("EmptyCollection", func(t *testing.T) {
		_, err := svc.Tools.GetTools(ctx, 1, 10)
		requireStatus(t, err, http.StatusBadRequest)
	})
}

func TestEnvironmentMembership(t *testing.T) {
	svc, _ := setupService(t, nil)
	ctx := context.Background()

	tool, err := svc.Tools.CreateTool(ctx, &api.CreateToolRequest{Name: "tool1"})
	require.NoError(t, err)
	tv, err := svc.ToolVersions.CreateToolVersion(ctx, &api.CreateToolVersionRequest{ToolID: tool.ToolID, Version: "1.0"})
	require.NoError(t, err)
	mod, err := svc.Modules.CreateModule(ctx, &api.CreateModuleRequest{Name: "mod1", ToolID: tool.ToolID})
	require.NoError(t, err)
	mv, err := svc.ModuleVersions.CreateModuleVersion(ctx, &api.CreateModuleVersionRequest{ModuleID: mod.ModuleID, Version: "1"})
	require.NoError(t, err)

	env, err := svc.Environments.CreateEnvironment(ctx, &api.CreateEnvironmentRequest{Name: "prod"})
	require.NoError(t, err)
	require.Empty(t, env.Tools)
	require.Empty(t, env.Modules)

	_, err = svc.Environments.CreateEnvironment(ctx, &api.CreateEnvironmentRequest{Name: "prod"})
	requireStatus(t, err, http.StatusConflict)

	t.Run("AddToolVersion", func(t *testing.T) {
		got, err := svc.Environments.AddToolVersion(ctx, env.EnvironmentID, tv.ToolVersionID)
		require.NoError(t, err)
		require.Equal(t, []string{tv.ToolVersionID}, got.Tools)

		_, err = svc.Environments.AddToolVersion(ctx, env.EnvironmentID, tv.ToolVersionID)
		requireStatus(t, err, http.StatusBadRequest)

		_, err = svc.Environments.AddToolVersion(ctx, "missing", tv.ToolVersionID)
		requireStatus(t, err, http.StatusNotFound)
		_, err = svc.Environments.AddToolVersion(ctx, env.EnvironmentID, "missing")
		requireStatus(t, err, http.StatusNotFound)
		_, err = svc.Environments.RemoveToolVersion(ctx, env.EnvironmentID, "missing")
		requireStatus(t, err, http.StatusNotFound)

		unchanged, err := svc.Environments.GetEnvironment(ctx, env.EnvironmentID)
		require.NoError(t, err)
		require.Equal(t, []string{tv.ToolVersionID}, unchanged.Tools)
		require.Empty(t, unchanged.Modules)
	})

	t.Run("AddModuleVersion", func(t *testing.T) {
		got, err := svc.Environments.AddModuleVersion(ctx, env.EnvironmentID, mv.ModuleVersionID)
		require.NoError(t, err)
		require.Equal(t, []string{mv.ModuleVersionID}, got.Modules)
		require.Equal(t, []string{tv.ToolVersionID}, got.Tools)

		_, err = svc.Environments.AddModuleVersion(ctx, env.EnvironmentID, mv.ModuleVersionID)
		requireStatus(t, err, http.StatusBadRequest)

		_, err = svc.Environments.AddModuleVersion(ctx, env.EnvironmentID, "missing")
		requireStatus(t, err, http.StatusNotFound)
		_, err = svc.Environments.RemoveModuleVersion(ctx, "missing", mv.ModuleVersionID)
		requireStatus(t, err, http.StatusNotFound)

		unchanged, err := svc.Environments.GetEnvironment(ctx, env.EnvironmentID)
		require.NoError(t, err)
		require.Equal(t, []string{mv.ModuleVersionID}, unchanged.Modules)
		require.Equal(t, []string{tv.ToolVersionID}, unchanged.Tools)
	})

	t.Run("FindByName", func(t *testing.T) {
		got, err := svc.Environments.FindEnvironmentByName(ctx, "prod")
		require.NoError(t, err)
		require.Equal(t, env.EnvironmentID, got.EnvironmentID)
		require.Equal(t, []string{tv.ToolVersionID}, got.Tools)

		_, err = svc.Environments.FindEnvironmentByName(ctx, "staging")
		requireStatus(t, err, http.StatusNotFound)
	})

	t.Run("Remove", func(t *testing.T) {
		got, err := svc.Environments.RemoveToolVersion(ctx, env.EnvironmentID, tv.ToolVersionID)
		require.NoError(t, err)
		require.Empty(t, got.Tools)
		require.Equal(t, []string{mv.ModuleVersionID}, got.Modules)

		_, err = svc.Environments.RemoveToolVersion(ctx, env.EnvironmentID, tv.ToolVersionID)
		requireStatus(t, err, http.StatusBadRequest)

		got, err = svc.Environments.RemoveModuleVersion(ctx, env.EnvironmentID, mv.ModuleVersionID)
		require.NoError(t, err)
		require.Empty(t, got.Modules)

		_, err = svc.Environments.RemoveModuleVersion(ctx, env.EnvironmentID, mv.ModuleVersionID)
		requireStatus(t, err, http.StatusBadRequest)
	})

	t.Run("UpdateAndDelete", func(t *testing.T) {
		got, err := svc.Environments.UpdateEnvironment(ctx, &api.UpdateEnvironmentRequest{
			EnvironmentID: env.EnvironmentID,
			Informations:  strPtr("production cluster"),
		})
		require.NoError(t, err)
		require.Equal(t, "production cluster", got.Informations)

		res, err := svc.Environments.DeleteEnvironment(ctx, env.EnvironmentID)
		require.NoError(t, err)
		require.Equal(t, env.EnvironmentID, res.ID)

		_, err = svc.Environments.GetEnvironment(ctx, env.EnvironmentID)
		requireStatus(t, err, http.StatusNotFound)
	})
}
