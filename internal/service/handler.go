package service

import (
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/housepoints/internal/app"
	"github.com/mmynk/housepoints/internal/metrics"
	"github.com/mmynk/housepoints/internal/middleware"
)

// Route is a service mount point.
type Route struct {
	Path    string
	Handler http.Handler
}

// Routes builds every service over a, sharing one interceptor chain: logging,
// metrics, tracing, then the view gate.
func Routes(a *app.App, m *metrics.Metrics) []Route {
	opts := []connect.HandlerOption{
		WithJSON(),
		connect.WithInterceptors(
			middleware.LoggingInterceptor(a),
			middleware.MetricsInterceptor(m),
			middleware.TracingInterceptor(),
			middleware.RequireView(a, ProcedureViews()),
		),
	}

	var routes []Route
	add := func(path string, h http.Handler) {
		routes = append(routes, Route{Path: path, Handler: h})
	}
	add(NewAuthServiceHandler(NewAuthService(a), opts...))
	add(NewScoringServiceHandler(NewScoringService(a), opts...))
	add(NewAuditServiceHandler(NewAuditService(a), opts...))
	add(NewAdminServiceHandler(NewAdminService(a), opts...))
	add(NewDashboardServiceHandler(NewDashboardService(a), opts...))
	return routes
}
