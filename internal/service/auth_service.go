package service

import (
	"context"
	"log/slog"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/housepoints/internal/app"
	"github.com/mmynk/housepoints/internal/auth"
)

// AuthService implements login, logout and the per-view gate.
type AuthService struct {
	app *app.App
}

// NewAuthService creates an AuthService over the application context.
func NewAuthService(a *app.App) *AuthService {
	return &AuthService{app: a}
}

// NewAuthServiceHandler builds an HTTP handler serving every AuthService
// procedure, and returns the path to mount it on.
func NewAuthServiceHandler(svc *AuthService, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	mux.Handle(AuthServiceLoginProcedure, connect.NewUnaryHandler(AuthServiceLoginProcedure, svc.Login, opts...))
	mux.Handle(AuthServiceLogoutProcedure, connect.NewUnaryHandler(AuthServiceLogoutProcedure, svc.Logout, opts...))
	mux.Handle(AuthServiceGetSessionProcedure, connect.NewUnaryHandler(AuthServiceGetSessionProcedure, svc.GetSession, opts...))
	mux.Handle(AuthServiceEnterViewProcedure, connect.NewUnaryHandler(AuthServiceEnterViewProcedure, svc.EnterView, opts...))
	return "/" + AuthServiceName + "/", mux
}

// Login authenticates a user from the gate of the requested view.
func (s *AuthService) Login(ctx context.Context, req *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error) {
	slog.Info("Login request", "email", auth.NormalizeEmail(req.Msg.Email), "view", req.Msg.View)

	view, err := auth.ParseView(req.Msg.View)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	user, err := s.app.Login(ctx, req.Msg.Email, req.Msg.Password, view)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&LoginResponse{User: user}), nil
}

// Logout ends the session.
func (s *AuthService) Logout(ctx context.Context, req *connect.Request[LogoutRequest]) (*connect.Response[LogoutResponse], error) {
	if err := s.app.Logout(ctx); err != nil {
		slog.Error("Logout failed", "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&LogoutResponse{}), nil
}

// GetSession returns the logged-in user, or null.
func (s *AuthService) GetSession(ctx context.Context, req *connect.Request[GetSessionRequest]) (*connect.Response[GetSessionResponse], error) {
	return connect.NewResponse(&GetSessionResponse{User: s.app.Session()}), nil
}

// EnterView reports whether the session may render a view. A denied role
// gets an explicit decision; the session is never changed.
func (s *AuthService) EnterView(ctx context.Context, req *connect.Request[EnterViewRequest]) (*connect.Response[EnterViewResponse], error) {
	view, err := auth.ParseView(req.Msg.View)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	decision, user := s.app.EnterView(view)
	resp := &EnterViewResponse{
		View:     string(view),
		Title:    view.Title(),
		Decision: decision.String(),
		User:     user,
	}
	if policy, gated := view.Policy(); gated {
		resp.AllowedRoles = policy.Roles()
	}

	slog.Debug("EnterView", "view", view, "decision", decision)
	return connect.NewResponse(resp), nil
}
