// Package identity is a client for the external role and user services.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/yi-nology/tool_inventory/pkg/config"
)

// Role is a named role. SubRoles holds the ids of roles nested under it.
type Role struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	SubRoles []string `json:"subRoles"`
}

// HasSubRole reports whether roleID is listed among the sub-roles.
func (r *Role) HasSubRole(roleID string) bool {
	for _, id := range r.SubRoles {
		if id == roleID {
			return true
		}
	}
	return false
}

// User is a user record. Role holds the id of the user's role.
type User struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// StatusError is returned when the identity service answers with an unexpected status.
type StatusError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("identity %s %s: status %d: %s", e.Method, e.Path, e.Status, e.Body)
}

// Client talks to the role and user services over HTTP.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *client.Client
}

// New creates a Client from configuration.
func New(cfg config.IdentityConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("identity base url must be configured")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	c, err := client.NewClient(client.WithDialTimeout(timeout))
	if err != nil {
		return nil, fmt.Errorf("create identity http client: %w", err)
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: timeout,
		http:    c,
	}, nil
}

// FindRole returns the role with the given name, or nil when none exists.
func (c *Client) FindRole(ctx context.Context, name string) (*Role, error) {
	var role Role
	found, err := c.do(ctx, consts.MethodGet, "/roles?name="+url.QueryEscape(name), nil, &role)
	if err != nil || !found {
		return nil, err
	}
	return &role, nil
}

// GetRole returns the role with the given id.
func (c *Client) GetRole(ctx context.Context, roleID string) (*Role, error) {
	var role Role
	path := "/roles/" + url.PathEscape(roleID)
	found, err := c.do(ctx, consts.MethodGet, path, nil, &role)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &StatusError{Method: consts.MethodGet, Path: path, Status: consts.StatusNotFound}
	}
	return &role, nil
}

// CreateRole creates a role with no sub-roles.
func (c *Client) CreateRole(ctx context.Context, name string) (*Role, error) {
	var role Role
	found, err := c.do(ctx, consts.MethodPost, "/roles", map[string]string{"name": name}, &role)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &StatusError{Method: consts.MethodPost, Path: "/roles", Status: consts.StatusNotFound}
	}
	return &role, nil
}

// AddSubRoleToRole nests subRoleID under roleID.
func (c *Client) AddSubRoleToRole(ctx context.Context, roleID, subRoleID string) error {
	path := "/roles/" + url.PathEscape(roleID) + "/subRoles"
	found, err := c.do(ctx, consts.MethodPost, path, map[string]string{"roleId": subRoleID}, nil)
	if err != nil {
		return err
	}
	if !found {
		return &StatusError{Method: consts.MethodPost, Path: path, Status: consts.StatusNotFound}
	}
	return nil
}

// GetUser returns the user with the given id.
func (c *Client) GetUser(ctx context.Context, userID string) (*User, error) {
	var user User
	path := "/users/" + url.PathEscape(userID)
	found, err := c.do(ctx, consts.MethodGet, path, nil, &user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &StatusError{Method: consts.MethodGet, Path: path, Status: consts.StatusNotFound}
	}
	return &user, nil
}

// do sends one request and decodes a 2xx body into out. A 404 yields found=false.
func (c *Client) do(ctx context.Context, method, path string, body, out any) (bool, error) {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(method)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return false, fmt.Errorf("encode identity request: %w", err)
		}
		req.Header.SetContentTypeBytes([]byte("application/json"))
		req.SetBody(payload)
	}

	if err := c.http.DoTimeout(ctx, req, resp, c.timeout); err != nil {
		return false, fmt.Errorf("identity %s %s: %w", method, path, err)
	}

	status := resp.StatusCode()
	switch {
	case status == consts.StatusNotFound:
		return false, nil
	case status < 200 || status >= 300:
		return false, &StatusError{Method: method, Path: path, Status: status, Body: string(resp.Body())}
	}
	if out != nil && len(resp.Body()) > 0 {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return false, fmt.Errorf("decode identity response: %w", err)
		}
	}
	return true, nil
}
