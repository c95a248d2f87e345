package handler

import (
	"context"
	"io"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/yi-nology/tool_inventory/biz/model/api"
)

const yamlContentType = "application/x-yaml; charset=utf-8"

// ExportEnvironment renders the resolved environment as a YAML manifest.
func (h *Handler) ExportEnvironment(ctx context.Context, c *app.RequestContext) {
	var req api.EnvironmentRequest
	if !bind(c, &req, func() string { return req.EnvironmentID }) {
		return
	}
	data, err := h.svc.Manifests.RenderEnvironment(ctx, req.EnvironmentID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.Data(consts.StatusOK, yamlContentType, data)
}

func (h *Handler) PublishEnvironment(ctx context.Context, c *app.RequestContext) {
	var req api.EnvironmentRequest
	if !bind(c, &req, func() string { return req.EnvironmentID }) {
		return
	}
	res, err := h.svc.Manifests.PublishEnvironment(ctx, req.EnvironmentID)
	respond(c, consts.StatusCreated, "Environment published", res, err)
}

// GetPublishedManifest streams a manifest stored by PublishEnvironment.
func (h *Handler) GetPublishedManifest(ctx context.Context, c *app.RequestContext) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	r, err := h.svc.Manifests.OpenPublished(ctx, key)
	if err != nil {
		_ = c.Error(err)
		return
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.Data(consts.StatusOK, yamlContentType, data)
}
