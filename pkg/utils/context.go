package utils

import (
	"context"
)

type contextKey string

const (
	UserKey      contextKey = "user"
	RequestIDKey contextKey = "request_id"
)

// CurrentUser is the authenticated user attached to the request context.
type CurrentUser struct {
	ID      int64
	Name    string
	Email   string
	Address string
	Role    string
}

func SetUserContext(ctx context.Context, user CurrentUser) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

func GetUserFromContext(ctx context.Context) (CurrentUser, bool) {
	user, ok := ctx.Value(UserKey).(CurrentUser)
	return user, ok
}

func SetRequestIDContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(RequestIDKey).(string)
	return requestID, ok
}
