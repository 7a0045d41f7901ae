package http

import "context"

type contextKey string

const (
	userIDKey    contextKey = "user-id"
	requestIDKey contextKey = "request-id"
)

// WithUserID stores the verified caller identity on the context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the verified caller identity, or "" when the
// request carried none.
func UserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey).(string)
	return userID
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
