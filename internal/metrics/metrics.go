// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "housepoints"

// Metrics groups the application collectors. A nil *Metrics is valid and
// records nothing, which keeps tests free of registry plumbing.
type Metrics struct {
	pointEvents   *prometheus.CounterVec
	pointsAwarded *prometheus.CounterVec
	logins        *prometheus.CounterVec
	advisoryCalls *prometheus.CounterVec
	rpcDuration   *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		pointEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "point_events_total",
			Help:      "Point events recorded, by house and kind (credit or debit).",
		}, []string{"house", "kind"}),
		pointsAwarded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "points_absolute_total",
			Help:      "Absolute points recorded, by house and kind.",
		}, []string{"house", "kind"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_attempts_total",
			Help:      "Login attempts by outcome.",
		}, []string{"outcome"}),
		advisoryCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "advisory_calls_total",
			Help:      "Calls to the text generation service, by call and outcome.",
		}, []string{"call", "outcome"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC handling latency, by procedure and code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure", "code"}),
	}

	reg.MustRegister(m.pointEvents, m.pointsAwarded, m.logins, m.advisoryCalls, m.rpcDuration)
	return m
}

// PointEvent counts a recorded event.
func (m *Metrics) PointEvent(houseID string, points int) {
	if m == nil {
		return
	}
	// Negate as a float: -math.MinInt overflows int.
	kind, v := "credit", float64(points)
	if v < 0 {
		kind, v = "debit", -v
	}
	m.pointEvents.WithLabelValues(houseID, kind).Inc()
	m.pointsAwarded.WithLabelValues(houseID, kind).Add(v)
}

// Login counts a login attempt. Outcome is e.g. "success", "invalid_credentials".
func (m *Metrics) Login(outcome string) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(outcome).Inc()
}

// AdvisoryCall counts a call to the text generation service.
func (m *Metrics) AdvisoryCall(call, outcome string) {
	if m == nil {
		return
	}
	m.advisoryCalls.WithLabelValues(call, outcome).Inc()
}

// ObserveRPC records how long a procedure took.
func (m *Metrics) ObserveRPC(procedure, code string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.rpcDuration.WithLabelValues(procedure, code).Observe(elapsed.Seconds())
}
