package service

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/housepoints/internal/app"
)

// DashboardService serves the public scoreboard.
type DashboardService struct {
	app *app.App
}

// NewDashboardService creates a DashboardService over the application context.
func NewDashboardService(a *app.App) *DashboardService {
	return &DashboardService{app: a}
}

// NewDashboardServiceHandler builds an HTTP handler serving every
// DashboardService procedure, and returns the path to mount it on.
func NewDashboardServiceHandler(svc *DashboardService, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	mux.Handle(DashboardServiceGetDashboardProcedure, connect.NewUnaryHandler(DashboardServiceGetDashboardProcedure, svc.GetDashboard, opts...))
	return "/" + DashboardServiceName + "/", mux
}

// GetDashboard returns standings, progression, recent activity and summaries.
func (s *DashboardService) GetDashboard(ctx context.Context, req *connect.Request[GetDashboardRequest]) (*connect.Response[GetDashboardResponse], error) {
	return connect.NewResponse(&GetDashboardResponse{Dashboard: s.app.Dashboard()}), nil
}
