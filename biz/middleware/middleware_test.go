package middleware

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/stretchr/testify/require"
	"github.com/yi-nology/tool_inventory/pkg/common"
	appconfig "github.com/yi-nology/tool_inventory/pkg/config"
	"github.com/yi-nology/tool_inventory/pkg/errno"
)

type managers map[string]bool

func (m managers) IsToolManager(_ context.Context, userID string) bool { return m[userID] }

type stubLock struct {
	acquireErr error
	released   []string
}

func (l *stubLock) Acquire(context.Context) (string, error) {
	if l.acquireErr != nil {
		return "", l.acquireErr
	}
	return "token", nil
}

func (l *stubLock) Release(_ context.Context, token string) error {
	l.released = append(l.released, token)
	return nil
}

func newEngine(handlers ...app.HandlerFunc) *route.Engine {
	r := route.NewEngine(config.NewOptions(nil))
	r.Use(Recovery(), Logging(), CORS(nil), ErrorHandler())
	r.GET("/echo", append(handlers, func(ctx context.Context, c *app.RequestContext) {
		user, _ := common.GetUserID(ctx)
		c.String(http.StatusOK, user)
	})...)
	r.OPTIONS("/echo", func(ctx context.Context, c *app.RequestContext) { c.Status(http.StatusOK) })
	r.GET("/fail", func(_ context.Context, c *app.RequestContext) {
		_ = c.Error(errors.New("dial tcp 10.0.0.5:5432: password authentication failed"))
	})
	r.GET("/missing", func(_ context.Context, c *app.RequestContext) {
		_ = c.Error(errno.NotFound("Tool not found"))
	})
	r.GET("/panic", func(context.Context, *app.RequestContext) { panic("boom") })
	return r
}

func TestCORS(t *testing.T) {
	r := newEngine()

	w := ut.PerformRequest(r, http.MethodOptions, "/echo", nil)
	resp := w.Result()
	require.Equal(t, http.StatusNoContent, resp.StatusCode())
	require.Equal(t, "*", string(resp.Header.Peek("Access-Control-Allow-Origin")))
	require.Contains(t, string(resp.Header.Peek("Access-Control-Allow-Headers")), UserHeader)
	require.NotEmpty(t, resp.Header.Peek("Access-Control-Max-Age"))

	h := resolveCORS(&appconfig.CORSConfig{AllowOrigin: "https://inventory.example", AllowCredentials: true})
	require.Equal(t, "https://inventory.example", h.origin)
	require.Equal(t, "true", h.credentials)
	require.Contains(t, h.methods, http.MethodDelete)
}

func TestRequireAuth(t *testing.T) {
	r := newEngine(RequireAuth())

	w := ut.PerformRequest(r, http.MethodGet, "/echo", nil)
	require.Equal(t, http.StatusUnauthorized, w.Result().StatusCode())
	require.Contains(t, string(w.Result().Body()), "Authentication required")

	w = ut.PerformRequest(r, http.MethodGet, "/echo", nil, ut.Header{Key: UserHeader, Value: " alice "})
	require.Equal(t, http.StatusOK, w.Result().StatusCode())
	require.Equal(t, "alice", string(w.Result().Body()))
}

func TestRequireToolManager(t *testing.T) {
	r := newEngine(RequireAuth(), RequireToolManager(managers{"alice": true}))

	w := ut.PerformRequest(r, http.MethodGet, "/echo", nil, ut.Header{Key: UserHeader, Value: "bob"})
	require.Equal(t, http.StatusUnauthorized, w.Result().StatusCode())

	w = ut.PerformRequest(r, http.MethodGet, "/echo", nil, ut.Header{Key: UserHeader, Value: "alice"})
	require.Equal(t, http.StatusOK, w.Result().StatusCode())
}

func TestWriteLock(t *testing.T) {
	require.Nil(t, WriteLock(nil))

	l := &stubLock{}
	r := newEngine(WriteLock(l)...)
	w := ut.PerformRequest(r, http.MethodGet, "/echo", nil)
	require.Equal(t, http.StatusOK, w.Result().StatusCode())
	require.Equal(t, []string{"token"}, l.released)

	l.acquireErr = errors.New("timed out")
	w = ut.PerformRequest(r, http.MethodGet, "/echo", nil)
	require.Equal(t, http.StatusServiceUnavailable, w.Result().StatusCode())
	require.Len(t, l.released, 1)
}

func TestErrorHandler(t *testing.T) {
	r := newEngine()

	w := ut.PerformRequest(r, http.MethodGet, "/fail", nil)
	require.Equal(t, http.StatusInternalServerError, w.Result().StatusCode())
	body := string(w.Result().Body())
	require.NotContains(t, body, "password")
	require.Contains(t, body, "Internal server error")

	w = ut.PerformRequest(r, http.MethodGet, "/missing", nil)
	require.Equal(t, http.StatusNotFound, w.Result().StatusCode())
	require.Contains(t, string(w.Result().Body()), "Tool not found")
}

func TestRecovery(t *testing.T) {
	w := ut.PerformRequest(newEngine(), http.MethodGet, "/panic", nil)
	require.Equal(t, http.StatusInternalServerError, w.Result().StatusCode())
}
