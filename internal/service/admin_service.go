package service

import (
	"context"
	"log/slog"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/housepoints/internal/app"
	"github.com/mmynk/housepoints/internal/middleware"
)

// AdminService implements directory and configuration management.
type AdminService struct {
	app *app.App
}

// NewAdminService creates an AdminService over the application context.
func NewAdminService(a *app.App) *AdminService {
	return &AdminService{app: a}
}

// NewAdminServiceHandler builds an HTTP handler serving every AdminService
// procedure, and returns the path to mount it on.
func NewAdminServiceHandler(svc *AdminService, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	mux.Handle(AdminServiceListUsersProcedure, connect.NewUnaryHandler(AdminServiceListUsersProcedure, svc.ListUsers, opts...))
	mux.Handle(AdminServiceCreateUserProcedure, connect.NewUnaryHandler(AdminServiceCreateUserProcedure, svc.CreateUser, opts...))
	mux.Handle(AdminServiceDeleteUserProcedure, connect.NewUnaryHandler(AdminServiceDeleteUserProcedure, svc.DeleteUser, opts...))
	mux.Handle(AdminServiceCreateHouseProcedure, connect.NewUnaryHandler(AdminServiceCreateHouseProcedure, svc.CreateHouse, opts...))
	mux.Handle(AdminServiceDeleteHouseProcedure, connect.NewUnaryHandler(AdminServiceDeleteHouseProcedure, svc.DeleteHouse, opts...))
	mux.Handle(AdminServiceCreateCategoryProcedure, connect.NewUnaryHandler(AdminServiceCreateCategoryProcedure, svc.CreateCategory, opts...))
	mux.Handle(AdminServiceDeleteCategoryProcedure, connect.NewUnaryHandler(AdminServiceDeleteCategoryProcedure, svc.DeleteCategory, opts...))
	return "/" + AdminServiceName + "/", mux
}

// ListUsers returns the staff directory without passwords.
func (s *AdminService) ListUsers(ctx context.Context, req *connect.Request[ListUsersRequest]) (*connect.Response[ListUsersResponse], error) {
	users, err := s.app.Users()
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ListUsersResponse{Users: users}), nil
}

// CreateUser registers a staff member.
func (s *AdminService) CreateUser(ctx context.Context, req *connect.Request[CreateUserRequest]) (*connect.Response[CreateUserResponse], error) {
	slog.Info("CreateUser request received", "role", req.Msg.Role, "by", middleware.GetUserID(ctx))

	user, err := s.app.CreateUser(ctx, req.Msg.UserInput)
	if err != nil {
		slog.Warn("CreateUser failed", "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&CreateUserResponse{User: user}), nil
}

// DeleteUser removes a staff member other than the caller.
func (s *AdminService) DeleteUser(ctx context.Context, req *connect.Request[DeleteUserRequest]) (*connect.Response[DeleteUserResponse], error) {
	slog.Info("DeleteUser request received", "user_id", req.Msg.UserID, "confirm", req.Msg.Confirm, "by", middleware.GetUserID(ctx))

	if err := s.app.DeleteUser(ctx, req.Msg.UserID, req.Msg.Confirm); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&DeleteUserResponse{}), nil
}

// CreateHouse adds a house.
func (s *AdminService) CreateHouse(ctx context.Context, req *connect.Request[CreateHouseRequest]) (*connect.Response[CreateHouseResponse], error) {
	slog.Info("CreateHouse request received", "name", req.Msg.Name)

	house, err := s.app.CreateHouse(ctx, req.Msg.HouseInput)
	if err != nil {
		slog.Warn("CreateHouse failed", "name", req.Msg.Name, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&CreateHouseResponse{House: house}), nil
}

// DeleteHouse removes a house; its events remain in the log.
func (s *AdminService) DeleteHouse(ctx context.Context, req *connect.Request[DeleteHouseRequest]) (*connect.Response[DeleteHouseResponse], error) {
	slog.Info("DeleteHouse request received", "house_id", req.Msg.HouseID, "confirm", req.Msg.Confirm)

	if err := s.app.DeleteHouse(ctx, req.Msg.HouseID, req.Msg.Confirm); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&DeleteHouseResponse{}), nil
}

// CreateCategory adds a scoring shortcut.
func (s *AdminService) CreateCategory(ctx context.Context, req *connect.Request[CreateCategoryRequest]) (*connect.Response[CreateCategoryResponse], error) {
	slog.Info("CreateCategory request received", "label", req.Msg.Label, "default_points", req.Msg.DefaultPoints)

	category, err := s.app.CreateCategory(ctx, req.Msg.CategoryInput)
	if err != nil {
		slog.Warn("CreateCategory failed", "label", req.Msg.Label, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&CreateCategoryResponse{Category: category}), nil
}

// DeleteCategory removes a scoring shortcut.
func (s *AdminService) DeleteCategory(ctx context.Context, req *connect.Request[DeleteCategoryRequest]) (*connect.Response[DeleteCategoryResponse], error) {
	slog.Info("DeleteCategory request received", "category_id", req.Msg.CategoryID, "confirm", req.Msg.Confirm)

	if err := s.app.DeleteCategory(ctx, req.Msg.CategoryID, req.Msg.Confirm); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&DeleteCategoryResponse{}), nil
}
