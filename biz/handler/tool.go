package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/yi-nology/tool_inventory/biz/model/api"
)

func (h *Handler) CreateTool(ctx context.Context, c *app.RequestContext) {
	var req api.CreateToolRequest
	if !bind(c, &req, func() string { return req.Name }) {
		return
	}
	tool, err := h.svc.Tools.CreateTool(ctx, &req)
	respond(c, consts.StatusCreated, "Tool created", tool, err)
}

func (h *Handler) DeleteTool(ctx context.Context, c *app.RequestContext) {
	var req api.ToolRequest
	if !bind(c, &req, func() string { return req.ToolID }) {
		return
	}
	res, err := h.svc.Tools.DeleteTool(ctx, req.ToolID)
	respond(c, consts.StatusCreated, "Tool deleted", res, err)
}

func (h *Handler) UpdateToolInformations(ctx context.Context, c *app.RequestContext) {
	var req api.UpdateToolRequest
	if !bind(c, &req, func() string { return req.ToolID }) {
		return
	}
	tool, err := h.svc.Tools.UpdateToolInformations(ctx, &req)
	respond(c, consts.StatusOK, "Tool updated", tool, err)
}

func (h *Handler) GetTool(ctx context.Context, c *app.RequestContext) {
	var req api.ToolRequest
	if !bind(c, &req, func() string { return req.ToolID }) {
		return
	}
	tool, err := h.svc.Tools.GetTool(ctx, req.ToolID)
	respond(c, consts.StatusOK, "", tool, err)
}

func (h *Handler) GetTools(ctx context.Context, c *app.RequestContext) {
	var req api.PageRequest
	if !bind(c, &req, given(&req.Page), given(&req.PerPage)) {
		return
	}
	page, err := h.svc.Tools.GetTools(ctx, req.Page, req.PerPage)
	respond(c, consts.StatusOK, "", page, err)
}
