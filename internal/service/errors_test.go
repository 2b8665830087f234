package service

import (
	"errors"
	"fmt"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/housepoints/internal/app"
	"github.com/mmynk/housepoints/internal/auth"
	"github.com/mmynk/housepoints/internal/validate"
)

func TestToConnectError(t *testing.T) {
	tests := []struct {
		err  error
		want connect.Code
	}{
		{validate.New(validate.ErrInvalidInput), connect.CodeInvalidArgument},
		{app.ErrInappropriateReason, connect.CodeInvalidArgument},
		{auth.ErrInvalidCredentials, connect.CodeUnauthenticated},
		{auth.ErrLoginRequired, connect.CodeUnauthenticated},
		{auth.ErrRoleNotPermitted, connect.CodePermissionDenied},
		{auth.ErrAccessDenied, connect.CodePermissionDenied},
		{app.ErrHouseExists, connect.CodeAlreadyExists},
		{app.ErrUserExists, connect.CodeAlreadyExists},
		{app.ErrEventNotFound, connect.CodeNotFound},
		{app.ErrConfirmationRequired, connect.CodeFailedPrecondition},
		{app.ErrSelfDelete, connect.CodeFailedPrecondition},
		{app.ErrNoHouses, connect.CodeFailedPrecondition},
		{app.ErrSubmissionInProgress, connect.CodeAborted},
		{fmt.Errorf("failed to save school_houses: %w", errors.New("disk full")), connect.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			var connectErr *connect.Error
			if !errors.As(toConnectError(tt.err), &connectErr) {
				t.Fatal("expected connect.Error")
			}
			if connectErr.Code() != tt.want {
				t.Errorf("code = %v, want %v", connectErr.Code(), tt.want)
			}
		})
	}

	if toConnectError(nil) != nil {
		t.Error("nil should map to nil")
	}
}
