package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/housepoints/internal/app"
	"github.com/mmynk/housepoints/internal/auth"
	"github.com/mmynk/housepoints/internal/validate"
)

// toConnectError maps application errors to Connect codes. Anything not
// recognized is an internal error.
func toConnectError(err error) error {
	if err == nil {
		return nil
	}
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return err
	}
	return connect.NewError(codeFor(err), err)
}

func codeFor(err error) connect.Code {
	switch {
	case validate.Is(err), errors.Is(err, app.ErrInappropriateReason):
		return connect.CodeInvalidArgument
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrLoginRequired):
		return connect.CodeUnauthenticated
	case errors.Is(err, auth.ErrRoleNotPermitted), errors.Is(err, auth.ErrAccessDenied):
		return connect.CodePermissionDenied
	case errors.Is(err, app.ErrHouseExists),
		errors.Is(err, app.ErrCategoryExists),
		errors.Is(err, app.ErrUserExists):
		return connect.CodeAlreadyExists
	case errors.Is(err, app.ErrHouseNotFound),
		errors.Is(err, app.ErrCategoryNotFound),
		errors.Is(err, app.ErrUserNotFound),
		errors.Is(err, app.ErrEventNotFound):
		return connect.CodeNotFound
	case errors.Is(err, app.ErrConfirmationRequired),
		errors.Is(err, app.ErrSelfDelete),
		errors.Is(err, app.ErrNoHouses):
		return connect.CodeFailedPrecondition
	case errors.Is(err, app.ErrSubmissionInProgress):
		return connect.CodeAborted
	default:
		return connect.CodeInternal
	}
}
