package domain

import "context"

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
)

// UserIDFromContext extracts the authenticated user id.
// Works with both Gin context (c.Set) and standard context.WithValue.
func UserIDFromContext(ctx context.Context) (string, bool) {
	if id, ok := ctx.Value(string(KeyUserID)).(string); ok && id != "" {
		return id, true
	}
	if id, ok := ctx.Value(KeyUserID).(string); ok && id != "" {
		return id, true
	}
	return "", false
}
