package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/yi-nology/tool_inventory/biz/model/api"
)

func (h *Handler) CreateModule(ctx context.Context, c *app.RequestContext) {
	var req api.CreateModuleRequest
	if !bind(c, &req, func() string { return req.Name }, func() string { return req.ToolID }) {
		return
	}
	module, err := h.svc.Modules.CreateModule(ctx, &req)
	respond(c, consts.StatusCreated, "Module created", module, err)
}

func (h *Handler) DeleteModule(ctx context.Context, c *app.RequestContext) {
	var req api.ModuleRequest
	if !bind(c, &req, func() string { return req.ModuleID }) {
		return
	}
	res, err := h.svc.Modules.DeleteModule(ctx, req.ModuleID)
	respond(c, consts.StatusCreated, "Module deleted", res, err)
}

func (h *Handler) UpdateModuleInformations(ctx context.Context, c *app.RequestContext) {
	var req api.UpdateModuleRequest
	if !bind(c, &req, func() string { return req.ModuleID }) {
		return
	}
	module, err := h.svc.Modules.UpdateModuleInformations(ctx, &req)
	respond(c, consts.StatusOK, "Module updated", module, err)
}

func (h *Handler) GetModule(ctx context.Context, c *app.RequestContext) {
	var req api.ModuleRequest
	if !bind(c, &req, func() string { return req.ModuleID }) {
		return
	}
	module, err := h.svc.Modules.GetModule(ctx, req.ModuleID)
	respond(c, consts.StatusOK, "", module, err)
}

func (h *Handler) GetModules(ctx context.Context, c *app.RequestContext) {
	var req api.ModulePageRequest
	if !bind(c, &req, given(&req.Page), given(&req.PerPage)) {
		return
	}
	page, err := h.svc.Modules.GetModules(ctx, req.ToolID, req.Page, req.PerPage)
	respond(c, consts.StatusOK, "", page, err)
}
