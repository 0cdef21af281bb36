package auth

import "context"

// contextKey is a private type for context keys so values set here cannot
// collide with keys from other packages.
type contextKey string

// userIDContextKey is the key under which the middleware stores the
// authenticated user's ID.
const userIDContextKey contextKey = "auth_user_id"

// ContextWithUserID returns a child context carrying the authenticated
// user's ID.
func ContextWithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

// UserIDFromContext retrieves the user ID set by the middleware. The
// second return value is false if no authenticated user is attached.
func UserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(userIDContextKey).(int)
	return userID, ok
}
