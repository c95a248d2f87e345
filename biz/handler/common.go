package handler

import (
	"context"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/yi-nology/tool_inventory/biz/model/api"
	"github.com/yi-nology/tool_inventory/biz/service"
	"github.com/yi-nology/tool_inventory/pkg/errno"
)

// Handler exposes the inventory services over HTTP.
type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Ping answers liveness probes.
func Ping(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, utils.H{"message": "pong"})
}

// bind reads req from the query string and JSON body and checks that every
// required value is non-blank. Failures are recorded as 400 "Bad arguments".
func bind(c *app.RequestContext, req any, required ...func() string) bool {
	if err := c.BindAndValidate(req); err != nil {
		_ = c.Error(errno.ErrBadArguments)
		return false
	}
	for _, value := range required {
		if strings.TrimSpace(value()) == "" {
			_ = c.Error(errno.ErrBadArguments)
			return false
		}
	}
	return true
}

// given treats a zero number as missing input for bind.
func given(n *int) func() string {
	return func() string {
		if *n == 0 {
			return ""
		}
		return "set"
	}
}

// respond renders data with status, wrapped as {message, data} when message is set.
// A non-nil err is forwarded to the error middleware instead.
func respond(c *app.RequestContext, status int, message string, data any, err error) {
	if err != nil {
		_ = c.Error(err)
		return
	}
	if message == "" {
		c.JSON(status, data)
		return
	}
	c.JSON(status, api.MessageResponse{Message: message, Data: data})
}
