package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/housepoints/internal/models"
)

// SessionSource reports who is logged in, or nil.
type SessionSource interface {
	Session() *models.User
}

// LoggingInterceptor returns a Connect interceptor that logs every RPC with
// its procedure, the session user after the call, the duration and the
// resulting code. Client-side failures log at WARN, internal ones at ERROR.
func LoggingInterceptor(sessions SessionSource) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			attrs := []any{
				"procedure", req.Spec().Procedure,
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if sessions != nil {
				if u := sessions.Session(); u != nil {
					attrs = append(attrs, "user_id", u.ID, "role", u.Role)
				}
			}

			if err == nil {
				slog.InfoContext(ctx, "RPC ok", attrs...)
				return resp, nil
			}

			var connectErr *connect.Error
			if errors.As(err, &connectErr) && connectErr.Code() != connect.CodeInternal {
				attrs = append(attrs, "code", connectErr.Code(), "error", connectErr.Message())
				slog.WarnContext(ctx, "RPC error", attrs...)
			} else {
				attrs = append(attrs, "error", err)
				slog.ErrorContext(ctx, "RPC error", attrs...)
			}
			return resp, err
		}
	}
}
