package service

import (
	"context"
	"log/slog"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/housepoints/internal/app"
	"github.com/mmynk/housepoints/internal/middleware"
)

// AuditService implements the transparency log.
type AuditService struct {
	app *app.App
}

// NewAuditService creates an AuditService over the application context.
func NewAuditService(a *app.App) *AuditService {
	return &AuditService{app: a}
}

// NewAuditServiceHandler builds an HTTP handler serving every AuditService
// procedure, and returns the path to mount it on.
func NewAuditServiceHandler(svc *AuditService, opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	mux.Handle(AuditServiceListEventsProcedure, connect.NewUnaryHandler(AuditServiceListEventsProcedure, svc.ListEvents, opts...))
	mux.Handle(AuditServiceDeleteEventProcedure, connect.NewUnaryHandler(AuditServiceDeleteEventProcedure, svc.DeleteEvent, opts...))
	return "/" + AuditServiceName + "/", mux
}

// ListEvents returns the newest-first log narrowed by house and search text.
func (s *AuditService) ListEvents(ctx context.Context, req *connect.Request[ListEventsRequest]) (*connect.Response[ListEventsResponse], error) {
	entries, err := s.app.AuditLog(req.Msg.Filter)
	if err != nil {
		return nil, toConnectError(err)
	}

	slog.Info("ListEvents successful", "house_id", req.Msg.HouseID, "count", len(entries))
	return connect.NewResponse(&ListEventsResponse{Entries: entries}), nil
}

// DeleteEvent removes a point event. The request must set confirm.
func (s *AuditService) DeleteEvent(ctx context.Context, req *connect.Request[DeleteEventRequest]) (*connect.Response[DeleteEventResponse], error) {
	slog.Info("DeleteEvent request received", "event_id", req.Msg.EventID, "confirm", req.Msg.Confirm, "user_id", middleware.GetUserID(ctx))

	if err := s.app.DeleteEvent(ctx, req.Msg.EventID, req.Msg.Confirm); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&DeleteEventResponse{}), nil
}
