package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/housepoints/internal/auth"
	"github.com/mmynk/housepoints/internal/metrics"
	"github.com/mmynk/housepoints/internal/models"
)

const (
	gatedProcedure  = "/test.v1.TestService/Gated"
	publicProcedure = "/test.v1.TestService/Public"
)

type fakeGate struct {
	user *models.User
}

func (g *fakeGate) Authorize(view auth.View) (models.User, error) {
	switch auth.Check(g.user, view) {
	case auth.LoginRequired:
		return models.User{}, auth.ErrLoginRequired
	case auth.AccessDenied:
		return *g.user, auth.ErrAccessDenied
	}
	if g.user == nil {
		return models.User{}, nil
	}
	return *g.user, nil
}

func (g *fakeGate) Session() *models.User {
	return g.user
}

// setupTestServer mounts two empty procedures behind the interceptors.
// seen receives the user ID the handler observed in its context.
func setupTestServer(t *testing.T, gate *fakeGate, m *metrics.Metrics) (gated, public *connect.Client[emptypb.Empty, emptypb.Empty], seen *string) {
	t.Helper()
	seen = new(string)

	handle := func(ctx context.Context, _ *connect.Request[emptypb.Empty]) (*connect.Response[emptypb.Empty], error) {
		*seen = GetUserID(ctx)
		return connect.NewResponse(&emptypb.Empty{}), nil
	}
	interceptors := connect.WithInterceptors(
		LoggingInterceptor(gate),
		MetricsInterceptor(m),
		TracingInterceptor(),
		RequireView(gate, map[string]auth.View{gatedProcedure: auth.ViewSettings}),
	)

	mux := http.NewServeMux()
	mux.Handle(gatedProcedure, connect.NewUnaryHandler(gatedProcedure, handle, interceptors))
	mux.Handle(publicProcedure, connect.NewUnaryHandler(publicProcedure, handle, interceptors))
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	gated = connect.NewClient[emptypb.Empty, emptypb.Empty](http.DefaultClient, server.URL+gatedProcedure)
	public = connect.NewClient[emptypb.Empty, emptypb.Empty](http.DefaultClient, server.URL+publicProcedure)
	return gated, public, seen
}

func TestRequireView(t *testing.T) {
	tests := []struct {
		name     string
		user     *models.User
		wantCode connect.Code
		wantSeen string
	}{
		{"logged out", nil, connect.CodeUnauthenticated, ""},
		{"inspector denied", &models.User{ID: "i1", Role: models.RoleInspector}, connect.CodePermissionDenied, ""},
		{"coordinator admitted", &models.User{ID: "c1", Role: models.RoleCoordinator}, 0, "c1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := &fakeGate{user: tt.user}
			gated, _, seen := setupTestServer(t, gate, nil)

			_, err := gated.CallUnary(context.Background(), connect.NewRequest(&emptypb.Empty{}))
			if tt.wantCode == 0 {
				if err != nil {
					t.Fatalf("expected success, got %v", err)
				}
			} else {
				var connectErr *connect.Error
				if !errors.As(err, &connectErr) {
					t.Fatalf("expected connect.Error, got %T", err)
				}
				if connectErr.Code() != tt.wantCode {
					t.Errorf("expected %v, got %v", tt.wantCode, connectErr.Code())
				}
			}
			if *seen != tt.wantSeen {
				t.Errorf("handler saw user %q, want %q", *seen, tt.wantSeen)
			}
			if tt.user != nil && gate.Session() == nil {
				t.Error("gate must not clear the session")
			}
		})
	}
}

func TestRequireView_PublicProcedure(t *testing.T) {
	_, public, _ := setupTestServer(t, &fakeGate{}, nil)

	if _, err := public.CallUnary(context.Background(), connect.NewRequest(&emptypb.Empty{})); err != nil {
		t.Fatalf("public procedure should not require login: %v", err)
	}
}

func TestMetricsInterceptor(t *testing.T) {
	reg := prometheus.NewRegistry()
	gated, public, _ := setupTestServer(t, &fakeGate{}, metrics.New(reg))

	public.CallUnary(context.Background(), connect.NewRequest(&emptypb.Empty{}))
	gated.CallUnary(context.Background(), connect.NewRequest(&emptypb.Empty{}))

	n, err := testutil.GatherAndCount(reg, "housepoints_rpc_duration_seconds")
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 series (ok and unauthenticated), got %d", n)
	}
}

func TestCodeOf(t *testing.T) {
	if got := codeOf(nil); got != "ok" {
		t.Errorf("codeOf(nil) = %q", got)
	}
	if got := codeOf(connect.NewError(connect.CodeNotFound, errors.New("x"))); got != "not_found" {
		t.Errorf("codeOf(not found) = %q", got)
	}
	if got := codeOf(errors.New("plain")); got != "unknown" {
		t.Errorf("codeOf(plain) = %q", got)
	}
}
