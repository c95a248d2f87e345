package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/yi-nology/tool_inventory/biz/model/api"
)

func (h *Handler) CreateModuleVersion(ctx context.Context, c *app.RequestContext) {
	var req api.CreateModuleVersionRequest
	if !bind(c, &req, func() string { return req.ModuleID }, func() string { return req.Version }) {
		return
	}
	version, err := h.svc.ModuleVersions.CreateModuleVersion(ctx, &req)
	respond(c, consts.StatusCreated, "Module version created", version, err)
}

func (h *Handler) DeleteModuleVersion(ctx context.Context, c *app.RequestContext) {
	var req api.ModuleVersionRequest
	if !bind(c, &req, func() string { return req.ModuleVersionID }) {
		return
	}
	res, err := h.svc.ModuleVersions.DeleteModuleVersion(ctx, req.ModuleVersionID)
	respond(c, consts.StatusCreated, "Module version deleted", res, err)
}

func (h *Handler) UpdateModuleVersionInformations(ctx context.Context, c *app.RequestContext) {
	var req api.UpdateModuleVersionRequest
	if !bind(c, &req, func() string { return req.ModuleVersionID }) {
		return
	}
	version, err := h.svc.ModuleVersions.UpdateModuleVersionInformations(ctx, &req)
	respond(c, consts.StatusOK, "Module version updated", version, err)
}

func (h *Handler) GetModuleVersion(ctx context.Context, c *app.RequestContext) {
	var req api.ModuleVersionRequest
	if !bind(c, &req, func() string { return req.ModuleVersionID }) {
		return
	}
	version, err := h.svc.ModuleVersions.GetModuleVersion(ctx, req.ModuleVersionID)
	respond(c, consts.StatusOK, "", version, err)
}

func (h *Handler) GetModuleVersions(ctx context.Context, c *app.RequestContext) {
	var req api.ModuleVersionPageRequest
	if !bind(c, &req, given(&req.Page), given(&req.PerPage)) {
		return
	}
	page, err := h.svc.ModuleVersions.GetModuleVersions(ctx, req.ModuleID, req.Page, req.PerPage)
	respond(c, consts.StatusOK, "", page, err)
}
