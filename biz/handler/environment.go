package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/yi-nology/tool_inventory/biz/model/api"
)

func (h *Handler) CreateEnvironment(ctx context.Context, c *app.RequestContext) {
	var req api.CreateEnvironmentRequest
	if !bind(c, &req, func() string { return req.Name }) {
		return
	}
	env, err := h.svc.Environments.CreateEnvironment(ctx, &req)
	respond(c, consts.StatusCreated, "Environment created", env, err)
}

func (h *Handler) DeleteEnvironment(ctx context.Context, c *app.RequestContext) {
	var req api.EnvironmentRequest
	if !bind(c, &req, func() string { return req.EnvironmentID }) {
		return
	}
	res, err := h.svc.Environments.DeleteEnvironment(ctx, req.EnvironmentID)
	respond(c, consts.StatusCreated, "Environment deleted", res, err)
}

func (h *Handler) UpdateEnvironmentInformations(ctx context.Context, c *app.RequestContext) {
	var req api.UpdateEnvironmentRequest
	if !bind(c, &req, func() string { return req.EnvironmentID }) {
		return
	}
	env, err := h.svc.Environments.UpdateEnvironment(ctx, &req)
	respond(c, consts.StatusOK, "Environment updated", env, err)
}

func (h *Handler) GetEnvironment(ctx context.Context, c *app.RequestContext) {
	var req api.EnvironmentRequest
	if !bind(c, &req, func() string { return req.EnvironmentID }) {
		return
	}
	env, err := h.svc.Environments.GetEnvironment(ctx, req.EnvironmentID)
	respond(c, consts.StatusOK, "", env, err)
}

func (h *Handler) GetEnvironmentByName(ctx context.Context, c *app.RequestContext) {
	var req api.EnvironmentByNameRequest
	if !bind(c, &req, func() string { return req.Name }) {
		return
	}
	env, err := h.svc.Environments.FindEnvironmentByName(ctx, req.Name)
	respond(c, consts.StatusOK, "", env, err)
}

func (h *Handler) GetEnvironments(ctx context.Context, c *app.RequestContext) {
	var req api.PageRequest
	if !bind(c, &req, given(&req.Page), given(&req.PerPage)) {
		return
	}
	page, err := h.svc.Environments.GetEnvironments(ctx, req.Page, req.PerPage)
	respond(c, consts.StatusOK, "", page, err)
}

func (h *Handler) AddToolVersionToEnvironment(ctx context.Context, c *app.RequestContext) {
	var req api.EnvironmentToolVersionRequest
	if !bind(c, &req, func() string { return req.EnvironmentID }, func() string { return req.ToolVersionID }) {
		return
	}
	env, err := h.svc.Environments.AddToolVersion(ctx, req.EnvironmentID, req.ToolVersionID)
	respond(c, consts.StatusOK, "Tool version added to environment", env, err)
}

func (h *Handler) RemoveToolVersionFromEnvironment(ctx context.Context, c *app.RequestContext) {
	var req api.EnvironmentToolVersionRequest
	if !bind(c, &req, func() string { return req.EnvironmentID }, func() string { return req.ToolVersionID }) {
		return
	}
	env, err := h.svc.Environments.RemoveToolVersion(ctx, req.EnvironmentID, req.ToolVersionID)
	respond(c, consts.StatusOK, "Tool version removed from environment", env, err)
}

func (h *Handler) AddModuleVersionToEnvironment(ctx context.Context, c *app.RequestContext) {
	var req api.EnvironmentModuleVersionRequest
	if !bind(c, &req, func() string { return req.EnvironmentID }, func() string { return req.ModuleVersionID }) {
		return
	}
	env, err := h.svc.Environments.AddModuleVersion(ctx, req.EnvironmentID, req.ModuleVersionID)
	respond(c, consts.StatusOK, "Module version added to environment", env, err)
}

func (h *Handler) RemoveModuleVersionFromEnvironment(ctx context.Context, c *app.RequestContext) {
	var req api.EnvironmentModuleVersionRequest
	if !bind(c, &req, func() string { return req.EnvironmentID }, func() string { return req.ModuleVersionID }) {
		return
	}
	env, err := h.svc.Environments.RemoveModuleVersion(ctx, req.EnvironmentID, req.ModuleVersionID)
	respond(c, consts.StatusOK, "Module version removed from environment", env, err)
}
