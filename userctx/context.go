package userctx

import "context"

// Context key type
type contextKey string

const currentUserKey contextKey = "current_user"

// CurrentUser carries the authenticated session identity through a request.
type CurrentUser struct {
	ID       int64
	Username string
	Role     string
}

// SetCurrentUser adds the session identity to the request context
func SetCurrentUser(ctx context.Context, user CurrentUser) context.Context {
	return context.WithValue(ctx, currentUserKey, user)
}

// GetCurrentUser retrieves the session identity from the request context
func GetCurrentUser(ctx context.Context) (CurrentUser, bool) {
	user, ok := ctx.Value(currentUserKey).(CurrentUser)
	return user, ok
}

// UserID returns the current account ID, or nil for anonymous requests.
func UserID(ctx context.Context) *int64 {
	user, ok := GetCurrentUser(ctx)
	if !ok {
		return nil
	}
	return &user.ID
}

// Role returns the current account role, or "" for anonymous requests
func Role(ctx context.Context) string {
	user, ok := GetCurrentUser(ctx)
	if !ok {
		return ""
	}
	return user.Role
}
