package service

import (
	"context"
	"log/slog"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/housepoints/internal/app"
	"github.com/mmynk/housepoints/internal/middleware"
)

// ScoringService implements point entry for staff.
type ScoringService struct {
	app *app.App
}

// NewScoringService creates a ScoringService over the application context.
func NewScoringService(a *app.App) *ScoringService {
	return &ScoringService{app: a}
}

// NewScoringServiceHandler builds an HTTP handler serving every
// ScoringService procedure, and returns the path to mount it on.
func NewScoringServiceHandler(svc *ScoringService, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	mux.Handle(ScoringServiceSubmitPointsProcedure, connect.NewUnaryHandler(ScoringServiceSubmitPointsProcedure, svc.SubmitPoints, opts...))
	mux.Handle(ScoringServiceListHousesProcedure, connect.NewUnaryHandler(ScoringServiceListHousesProcedure, svc.ListHouses, opts...))
	mux.Handle(ScoringServiceListCategoriesProcedure, connect.NewUnaryHandler(ScoringServiceListCategoriesProcedure, svc.ListCategories, opts...))
	mux.Handle(ScoringServiceApplyCategoryProcedure, connect.NewUnaryHandler(ScoringServiceApplyCategoryProcedure, svc.ApplyCategory, opts...))
	return "/" + ScoringServiceName + "/", mux
}

// SubmitPoints records a point event for the logged-in user.
func (s *ScoringService) SubmitPoints(ctx context.Context, req *connect.Request[SubmitPointsRequest]) (*connect.Response[SubmitPointsResponse], error) {
	slog.Info("SubmitPoints request received",
		"house_id", req.Msg.HouseID,
		"points", req.Msg.Points,
		"user_id", middleware.GetUserID(ctx),
		"role", middleware.GetRole(ctx),
	)

	event, err := s.app.SubmitPoints(ctx, req.Msg.PointInput)
	if err != nil {
		slog.Warn("SubmitPoints failed", "house_id", req.Msg.HouseID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&SubmitPointsResponse{Event: event}), nil
}

// ListHouses returns the houses to score against.
func (s *ScoringService) ListHouses(ctx context.Context, req *connect.Request[ListHousesRequest]) (*connect.Response[ListHousesResponse], error) {
	return connect.NewResponse(&ListHousesResponse{Houses: s.app.Houses()}), nil
}

// ListCategories returns the scoring shortcuts.
func (s *ScoringService) ListCategories(ctx context.Context, req *connect.Request[ListCategoriesRequest]) (*connect.Response[ListCategoriesResponse], error) {
	return connect.NewResponse(&ListCategoriesResponse{Categories: s.app.Categories()}), nil
}

// ApplyCategory returns a scoring form pre-filled from a category.
func (s *ScoringService) ApplyCategory(ctx context.Context, req *connect.Request[ApplyCategoryRequest]) (*connect.Response[ApplyCategoryResponse], error) {
	draft, err := s.app.ApplyCategory(req.Msg.CategoryID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ApplyCategoryResponse{Draft: draft}), nil
}
