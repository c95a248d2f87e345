package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/yi-nology/tool_inventory/biz/model/api"
)

func (h *Handler) CreateToolVersion(ctx context.Context, c *app.RequestContext) {
	var req api.CreateToolVersionRequest
	if !bind(c, &req, func() string { return req.ToolID }, func() string { return req.Version }) {
		return
	}
	version, err := h.svc.ToolVersions.CreateToolVersion(ctx, &req)
	respond(c, consts.StatusCreated, "Tool version created", version, err)
}

func (h *Handler) DeleteToolVersion(ctx context.Context, c *app.RequestContext) {
	var req api.ToolVersionRequest
	if !bind(c, &req, func() string { return req.ToolVersionID }) {
		return
	}
	res, err := h.svc.ToolVersions.DeleteToolVersion(ctx, req.ToolVersionID)
	respond(c, consts.StatusCreated, "Tool version deleted", res, err)
}

func (h *Handler) UpdateToolVersionInformations(ctx context.Context, c *app.RequestContext) {
	var req api.UpdateToolVersionRequest
	if !bind(c, &req, func() string { return req.ToolVersionID }) {
		return
	}
	version, err := h.svc.ToolVersions.UpdateToolVersionInformations(ctx, &req)
	respond(c, consts.StatusOK, "Tool version updated", version, err)
}

func (h *Handler) GetToolVersion(ctx context.Context, c *app.RequestContext) {
	var req api.ToolVersionRequest
	if !bind(c, &req, func() string { return req.ToolVersionID }) {
		return
	}
	version, err := h.svc.ToolVersions.GetToolVersion(ctx, req.ToolVersionID)
	respond(c, consts.StatusOK, "", version, err)
}

// GetToolVersions pages through tool versions, optionally restricted to one tool.
func (h *Handler) GetToolVersions(ctx context.Context, c *app.RequestContext) {
	var req api.ToolVersionPageRequest
	if !bind(c, &req, given(&req.Page), given(&req.PerPage)) {
		return
	}
	page, err := h.svc.ToolVersions.GetToolVersions(ctx, req.ToolID, req.Page, req.PerPage)
	respond(c, consts.StatusOK, "", page, err)
}
