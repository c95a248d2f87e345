package service

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yi-nology/tool_inventory/biz/dal/db"
	"github.com/yi-nology/tool_inventory/biz/model/api"
	"github.com/yi-nology/tool_inventory/pkg/storage"
	"gopkg.in/yaml.v3"
)

func seedEnvironment(t *testing.T, svc *Service) (*api.Environment, *api.ToolVersion, *api.ModuleVersion) {
	t.Helper()
	ctx := context.Background()

	tool, err := svc.Tools.CreateTool(ctx, &api.CreateToolRequest{Name: "gcc"})
	require.NoError(t, err)
	tv, err := svc.ToolVersions.CreateToolVersion(ctx, &api.CreateToolVersionRequest{ToolID: tool.ToolID, Version: "13.2", Location: "/opt/gcc/13.2"})
	require.NoError(t, err)
	mod, err := svc.Modules.CreateModule(ctx, &api.CreateModuleRequest{Name: "libstdc++", ToolID: tool.ToolID})
	require.NoError(t, err)
	mv, err := svc.ModuleVersions.CreateModuleVersion(ctx, &api.CreateModuleVersionRequest{ModuleID: mod.ModuleID, Version: "6.0.32"})
	require.NoError(t, err)

	env, err := svc.Environments.CreateEnvironment(ctx, &api.CreateEnvironmentRequest{Name: "build", Informations: "ci runners"})
	require.NoError(t, err)
	_, err = svc.Environments.AddToolVersion(ctx, env.EnvironmentID, tv.ToolVersionID)
	require.NoError(t, err)
	env, err = svc.Environments.AddModuleVersion(ctx, env.EnvironmentID, mv.ModuleVersionID)
	require.NoError(t, err)
	return env, tv, mv
}

func TestManifestService_Export(t *testing.T) {
	svc, _ := setupService(t, nil)
	ctx := context.Background()
	env, tv, mv := seedEnvironment(t, svc)

	manifest, err := svc.Manifests.ExportEnvironment(ctx, env.EnvironmentID)
	require.NoError(t, err)
	require.Equal(t, "build", manifest.Name)
	require.Equal(t, []api.ManifestEntry{{ID: tv.ToolVersionID, Name: "gcc", Version: "13.2", Location: "/opt/gcc/13.2"}}, manifest.Tools)
	require.Equal(t, []api.ManifestEntry{{ID: mv.ModuleVersionID, Name: "libstdc++", Version: "6.0.32"}}, manifest.Modules)
	require.Nil(t, manifest.Missing)

	t.Run("ReportsMissingReferences", func(t *testing.T) {
		_, err := svc.ToolVersions.DeleteToolVersion(ctx, tv.ToolVersionID)
		require.NoError(t, err)

		manifest, err := svc.Manifests.ExportEnvironment(ctx, env.EnvironmentID)
		require.NoError(t, err)
		require.Empty(t, manifest.Tools)
		require.NotNil(t, manifest.Missing)
		require.Equal(t, []string{tv.ToolVersionID}, manifest.Missing.Tools)
	})

	t.Run("UnknownEnvironment", func(t *testing.T) {
		_, err := svc.Manifests.ExportEnvironment(ctx, "missing")
		requireStatus(t, err, http.StatusNotFound)
	})
}

func TestManifestService_Publish(t *testing.T) {
	store, err := storage.New(storage.Config{Type: "local", Local: storage.LocalConfig{BasePath: t.TempDir()}})
	require.NoError(t, err)
	svc, _ := setupService(t, store)
	ctx := context.Background()
	env, _, _ := seedEnvironment(t, svc)

	svc.Manifests.now = func() time.Time { return time.Unix(1700000000, 42) }

	res, err := svc.Manifests.PublishEnvironment(ctx, env.EnvironmentID)
	require.NoError(t, err)
	require.Equal(t, "environments/build/1700000000.yaml", res.Key)
	require.Equal(t, "/manifests/environments/build/1700000000.yaml", res.URL)

	again, err := svc.Manifests.PublishEnvironment(ctx, env.EnvironmentID)
	require.NoError(t, err)
	require.NotEqual(t, res.Key, again.Key)

	r, err := svc.Manifests.OpenPublished(ctx, res.Key)
	require.NoError(t, err)
	defer r.Close()
	raw, err := io.ReadAll(r)
	require.NoError(t, err)

	var decoded api.EnvironmentManifest
	require.NoError(t, yaml.Unmarshal(raw, &decoded))
	require.Equal(t, "build", decoded.Name)
	require.Len(t, decoded.Tools, 1)
	require.Len(t, decoded.Modules, 1)

	_, err = svc.Manifests.OpenPublished(ctx, "environments/build/0.yaml")
	requireStatus(t, err, http.StatusNotFound)
	_, err = svc.Manifests.OpenPublished(ctx, "config.yaml")
	requireStatus(t, err, http.StatusNotFound)

	_, err = svc.Manifests.OpenPublished(ctx, "environments/../x.yaml")
	requireStatus(t, err, http.StatusNotFound)
}

func TestManifestService_PublishRejectsUnsafeName(t *testing.T) {
	store, err := storage.New(storage.Config{Type: "local", Local: storage.LocalConfig{BasePath: t.TempDir()}})
	require.NoError(t, err)
	svc, _ := setupService(t, store)
	ctx := context.Background()

	env, err := svc.Environments.CreateEnvironment(ctx, &api.CreateEnvironmentRequest{Name: "../escape"})
	require.NoError(t, err)
	_, err = svc.Manifests.PublishEnvironment(ctx, env.EnvironmentID)
	requireStatus(t, err, http.StatusBadRequest)
}

func TestManifestService_PublishWithoutStorage(t *testing.T) {
	conn := db.SetupTestDB(t)
	defer db.CleanupTestDB(t, conn)
	svc := NewService(conn, nil)

	_, err := svc.Manifests.PublishEnvironment(context.Background(), "any")
	require.ErrorIs(t, err, ErrStorageUnavailable)
}
