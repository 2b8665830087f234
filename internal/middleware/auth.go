package middleware

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/housepoints/internal/auth"
	"github.com/mmynk/housepoints/internal/models"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// UserIDKey is the context key for the session user's ID.
	UserIDKey contextKey = "user_id"
	// RoleKey is the context key for the session user's role.
	RoleKey contextKey = "role"
)

// GetUserID extracts the session user ID from the context.
// Returns empty string if not found.
func GetUserID(ctx context.Context) string {
	userID, _ := ctx.Value(UserIDKey).(string)
	return userID
}

// GetRole extracts the session user's role from the context.
func GetRole(ctx context.Context) models.Role {
	role, _ := ctx.Value(RoleKey).(models.Role)
	return role
}

// Gate decides whether the current session may enter a view.
type Gate interface {
	Authorize(view auth.View) (models.User, error)
}

// RequireView returns an interceptor that checks the session against the
// view each procedure belongs to before the handler runs. Procedures missing
// from views pass through. The session user, when there is one, is added to
// the context.
//
// Nobody logged in maps to CodeUnauthenticated; a role outside the view's
// policy maps to CodePermissionDenied and leaves the session alone.
func RequireView(gate Gate, views map[string]auth.View) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			view, ok := views[req.Spec().Procedure]
			if !ok {
				return next(ctx, req)
			}

			user, err := gate.Authorize(view)
			switch {
			case errors.Is(err, auth.ErrLoginRequired):
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			case errors.Is(err, auth.ErrAccessDenied):
				return nil, connect.NewError(connect.CodePermissionDenied, err)
			case err != nil:
				return nil, connect.NewError(connect.CodeInternal, err)
			}

			if user.ID != "" {
				ctx = context.WithValue(ctx, UserIDKey, user.ID)
				ctx = context.WithValue(ctx, RoleKey, user.Role)
			}
			return next(ctx, req)
		}
	}
}
