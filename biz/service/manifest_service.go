package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/yi-nology/tool_inventory/biz/model/api"
	"github.com/yi-nology/tool_inventory/pkg/errno"
	"github.com/yi-nology/tool_inventory/pkg/storage"
	"github.com/yi-nology/tool_inventory/pkg/validator"
	"gopkg.in/yaml.v3"
)

const (
	manifestContentType = "application/x-yaml"
	manifestPrefix      = "environments"
)

var (
	// ErrStorageUnavailable is returned when no storage backend is configured.
	ErrStorageUnavailable = errno.Internal("Manifest storage is not configured")
	ErrManifestNotFound   = errno.NotFound("Manifest not found")
	ErrUnpublishableName  = errno.BadRequest("Environment name cannot be used as a storage key")
)

// ManifestService resolves environments into manifests and publishes them.
type ManifestService struct {
	logic        *Logic
	environments *EnvironmentService
	store        storage.Storage
	now          func() time.Time
}

func NewManifestService(l *Logic, environments *EnvironmentService, store storage.Storage) *ManifestService {
	return &ManifestService{logic: l, environments: environments, store: store, now: time.Now}
}

// ExportEnvironment resolves the environment's tool and module version ids into
// name, version and location entries. Ids whose records are gone are listed under Missing.
func (s *ManifestService) ExportEnvironment(ctx context.Context, environmentID string) (*api.EnvironmentManifest, error) {
	env, err := s.environments.GetEnvironment(ctx, environmentID)
	if err != nil {
		return nil, err
	}

	manifest := &api.EnvironmentManifest{
		Name:         env.Name,
		Informations: env.Informations,
		Tools:        []api.ManifestEntry{},
		Modules:      []api.ManifestEntry{},
	}
	missing := &api.ManifestMissing{}

	tools, err := s.resolveTools(ctx, env.Tools)
	if err != nil {
		return nil, err
	}
	for _, id := range env.Tools {
		if entry, ok := tools[id]; ok {
			manifest.Tools = append(manifest.Tools, entry)
		} else {
			missing.Tools = append(missing.Tools, id)
		}
	}

	modules, err := s.resolveModules(ctx, env.Modules)
	if err != nil {
		return nil, err
	}
	for _, id := range env.Modules {
		if entry, ok := modules[id]; ok {
			manifest.Modules = append(manifest.Modules, entry)
		} else {
			missing.Modules = append(missing.Modules, id)
		}
	}

	if len(missing.Tools) > 0 || len(missing.Modules) > 0 {
		manifest.Missing = missing
	}
	return manifest, nil
}

// RenderEnvironment returns the environment manifest encoded as YAML.
func (s *ManifestService) RenderEnvironment(ctx context.Context, environmentID string) ([]byte, error) {
	manifest, err := s.ExportEnvironment(ctx, environmentID)
	if err != nil {
		return nil, err
	}
	return encodeManifest(manifest)
}

// PublishEnvironment writes the manifest to storage under
// environments/<name>/<unix seconds>.yaml and returns where it landed.
func (s *ManifestService) PublishEnvironment(ctx context.Context, environmentID string) (*api.PublishResult, error) {
	if s.store == nil {
		return nil, ErrStorageUnavailable
	}
	manifest, err := s.ExportEnvironment(ctx, environmentID)
	if err != nil {
		return nil, err
	}
	if !validator.ValidateKeySegment(manifest.Name) {
		return nil, ErrUnpublishableName
	}
	data, err := encodeManifest(manifest)
	if err != nil {
		return nil, err
	}

	now := s.now()
	key := path.Join(manifestPrefix, manifest.Name, fmt.Sprintf("%d.yaml", now.Unix()))
	taken, err := s.store.ObjectExists(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("check manifest: %w", err)
	}
	if taken {
		key = path.Join(manifestPrefix, manifest.Name, fmt.Sprintf("%d-%09d.yaml", now.Unix(), now.Nanosecond()))
	}

	if err := s.store.PutObject(ctx, key, bytes.NewReader(data), manifestContentType, int64(len(data))); err != nil {
		return nil, fmt.Errorf("store manifest: %w", err)
	}
	url, err := s.store.GenerateURL(ctx, key)
	if err != nil {
		if delErr := s.store.DeleteObject(ctx, key); delErr != nil {
			hlog.CtxWarnf(ctx, "[manifest] remove %s: %v", key, delErr)
		}
		return nil, fmt.Errorf("manifest url: %w", err)
	}
	hlog.CtxInfof(ctx, "[manifest] published environment %s to %s (%s)", manifest.Name, key, s.store.Type())
	return &api.PublishResult{Key: key, URL: url}, nil
}

// OpenPublished streams a previously published manifest. The caller closes the reader.
func (s *ManifestService) OpenPublished(ctx context.Context, key string) (io.ReadCloser, error) {
	if s.store == nil {
		return nil, ErrStorageUnavailable
	}
	if !strings.HasPrefix(key, manifestPrefix+"/") || !strings.HasSuffix(key, ".yaml") {
		return nil, ErrManifestNotFound
	}
	r, err := s.store.GetObject(ctx, key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
			return nil, ErrManifestNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *ManifestService) resolveTools(ctx context.Context, ids []string) (map[string]api.ManifestEntry, error) {
	versions, err := s.logic.toolVersionDAO.ListByKeys(ctx, s.logic.db, ids)
	if err != nil {
		return nil, err
	}
	parentIDs := make([]string, 0, len(versions))
	for _, v := range versions {
		parentIDs = append(parentIDs, v.ToolID)
	}
	tools, err := s.logic.toolDAO.ListByKeys(ctx, s.logic.db, parentIDs)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(tools))
	for _, t := range tools {
		names[t.ToolID] = t.Name
	}

	entries := make(map[string]api.ManifestEntry, len(versions))
	for _, v := range versions {
		entries[v.ToolVersionID] = api.ManifestEntry{
			ID:       v.ToolVersionID,
			Name:     names[v.ToolID],
			Version:  v.Version,
			Location: v.Location,
		}
	}
	return entries, nil
}

func (s *ManifestService) resolveModules(ctx context.Context, ids []string) (map[string]api.ManifestEntry, error) {
	versions, err := s.logic.moduleVersionDAO.ListByKeys(ctx, s.logic.db, ids)
	if err != nil {
		return nil, err
	}
	parentIDs := make([]string, 0, len(versions))
	for _, v := range versions {
		parentIDs = append(parentIDs, v.ModuleID)
	}
	modules, err := s.logic.moduleDAO.ListByKeys(ctx, s.logic.db, parentIDs)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(modules))
	for _, m := range modules {
		names[m.ModuleID] = m.Name
	}

	entries := make(map[string]api.ManifestEntry, len(versions))
	for _, v := range versions {
		entries[v.ModuleVersionID] = api.ManifestEntry{
			ID:       v.ModuleVersionID,
			Name:     names[v.ModuleID],
			Version:  v.Version,
			Location: v.Location,
		}
	}
	return entries, nil
}

func encodeManifest(manifest *api.EnvironmentManifest) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(manifest); err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	return buf.Bytes(), nil
}
