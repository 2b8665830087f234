package metrics

import (
	"math"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPointEvent(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.PointEvent("st", 10)
	m.PointEvent("st", 5)
	m.PointEvent("st", -3)

	if got := testutil.ToFloat64(m.pointEvents.WithLabelValues("st", "credit")); got != 2 {
		t.Errorf("credit events = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.pointEvents.WithLabelValues("st", "debit")); got != 1 {
		t.Errorf("debit events = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.pointsAwarded.WithLabelValues("st", "credit")); got != 15 {
		t.Errorf("credit points = %v, want 15", got)
	}
	if got := testutil.ToFloat64(m.pointsAwarded.WithLabelValues("st", "debit")); got != 3 {
		t.Errorf("debit points = %v, want 3", got)
	}
}

func TestPointEvent_Extremes(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.PointEvent("sf", math.MinInt)
	m.PointEvent("sf", math.MaxInt)

	if got := testutil.ToFloat64(m.pointsAwarded.WithLabelValues("sf", "debit")); got != -float64(math.MinInt) {
		t.Errorf("debit points = %v, want %v", got, -float64(math.MinInt))
	}
	if got := testutil.ToFloat64(m.pointsAwarded.WithLabelValues("sf", "credit")); got != float64(math.MaxInt) {
		t.Errorf("credit points = %v, want %v", got, float64(math.MaxInt))
	}
}

func TestCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Login("success")
	m.Login("invalid_credentials")
	m.Login("invalid_credentials")
	m.AdvisoryCall("validate", "error")
	m.ObserveRPC("/housepoints.v1.AuthService/Login", "ok", 25*time.Millisecond)

	if got := testutil.ToFloat64(m.logins.WithLabelValues("invalid_credentials")); got != 2 {
		t.Errorf("failed logins = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.advisoryCalls.WithLabelValues("validate", "error")); got != 1 {
		t.Errorf("advisory errors = %v, want 1", got)
	}
	if n := testutil.CollectAndCount(m.rpcDuration); n != 1 {
		t.Errorf("rpc duration series = %d, want 1", n)
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.PointEvent("st", 1)
	m.Login("success")
	m.AdvisoryCall("summarize", "ok")
	m.ObserveRPC("x", "ok", time.Second)
}
