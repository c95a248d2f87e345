package common

import "context"

// CommonResponse is the error envelope rendered by the HTTP layer.
type CommonResponse struct {
	Code  int    `json:"code"`
	Msg   string `json:"msg,omitempty"`
	Error string `json:"error,omitempty"`
}

type contextKey string

const userIDKey contextKey = "user_id"

// ContextWithUserID stores the caller's user id into context.
func ContextWithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// GetUserID retrieves the caller's user id from context.
func GetUserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
