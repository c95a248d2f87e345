package middleware

import (
	"context"
	"strconv"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/yi-nology/tool_inventory/pkg/config"
)

const corsMaxAge = 600

// corsHeaders are the response headers CORS sets, resolved once from config.
type corsHeaders struct {
	origin, methods, headers, credentials string
}

func resolveCORS(cfg *config.CORSConfig) corsHeaders {
	h := corsHeaders{
		origin:      "*",
		methods:     strings.Join([]string{consts.MethodGet, consts.MethodPost, consts.MethodPut, consts.MethodDelete, consts.MethodOptions}, ","),
		headers:     strings.Join([]string{"Content-Type", UserHeader}, ","),
		credentials: "false",
	}
	if cfg == nil {
		return h
	}
	if cfg.AllowOrigin != "" {
		h.origin = cfg.AllowOrigin
	}
	if cfg.AllowMethods != "" {
		h.methods = cfg.AllowMethods
	}
	if cfg.AllowHeaders != "" {
		h.headers = cfg.AllowHeaders
	}
	h.credentials = strconv.FormatBool(cfg.AllowCredentials)
	return h
}

// CORS answers preflight requests with 204 and decorates every other response.
func CORS(cfg *config.CORSConfig) app.HandlerFunc {
	h := resolveCORS(cfg)
	maxAge := strconv.Itoa(corsMaxAge)

	return func(ctx context.Context, c *app.RequestContext) {
		c.Response.Header.Set("Access-Control-Allow-Origin", h.origin)
		c.Response.Header.Set("Access-Control-Allow-Credentials", h.credentials)
		if h.origin != "*" {
			c.Response.Header.Set("Vary", "Origin")
		}

		if string(c.Request.Method()) == consts.MethodOptions {
			c.Response.Header.Set("Access-Control-Allow-Methods", h.methods)
			c.Response.Header.Set("Access-Control-Allow-Headers", h.headers)
			c.Response.Header.Set("Access-Control-Max-Age", maxAge)
			c.AbortWithStatus(consts.StatusNoContent)
			return
		}

		c.Next(ctx)
	}
}
