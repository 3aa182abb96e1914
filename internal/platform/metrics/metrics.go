package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
// All methods are safe to call on a nil receiver so callers can run without metrics.
type Metrics struct {
	ScaTransitions      *prometheus.CounterVec
	RedirectOutcomes    *prometheus.CounterVec
	LoginFailures       *prometheus.CounterVec
	UpstreamDuration    *prometheus.HistogramVec
	UpstreamErrors      *prometheus.CounterVec
	BreakerState        *prometheus.GaugeVec
	ConsentDataDuration *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		ScaTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "oba_sca_transitions_total",
			Help: "SCA status reached per flow and operation",
		}, []string{"flow", "operation", "status"}),
		RedirectOutcomes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "oba_redirect_outcomes_total",
			Help: "TPP redirect decisions per flow (ok or nok)",
		}, []string{"flow", "outcome"}),
		LoginFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "oba_login_failures_total",
			Help: "Failed PSU logins per flow, split by whether attempts remain",
		}, []string{"flow", "outcome"}),
		UpstreamDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "oba_upstream_request_duration_seconds",
			Help:    "Latency of calls to ledgers and CMS",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method"}),
		UpstreamErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "oba_upstream_errors_total",
			Help: "Failed calls to ledgers and CMS by status",
		}, []string{"service", "status"}),
		BreakerState: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "oba_circuit_open",
			Help: "1 while the named circuit breaker is open",
		}, []string{"name"}),
		ConsentDataDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "oba_consent_data_duration_ms",
			Help:    "Latency of ASPSP consent data store operations in milliseconds",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 25, 50, 100},
		}, []string{"backend", "op"}),
	}
}

func (m *Metrics) IncScaTransition(flow, operation, status string) {
	if m == nil {
		return
	}
	m.ScaTransitions.WithLabelValues(flow, operation, status).Inc()
}

func (m *Metrics) IncRedirectOutcome(flow string, ok bool) {
	if m == nil {
		return
	}
	outcome := "nok"
	if ok {
		outcome = "ok"
	}
	m.RedirectOutcomes.WithLabelValues(flow, outcome).Inc()
}

func (m *Metrics) IncLoginFailure(flow string, exhausted bool) {
	if m == nil {
		return
	}
	outcome := "retry"
	if exhausted {
		outcome = "exhausted"
	}
	m.LoginFailures.WithLabelValues(flow, outcome).Inc()
}

func (m *Metrics) ObserveUpstream(service, method string, start time.Time) {
	if m == nil {
		return
	}
	m.UpstreamDuration.WithLabelValues(service, method).Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncUpstreamError(service, status string) {
	if m == nil {
		return
	}
	m.UpstreamErrors.WithLabelValues(service, status).Inc()
}

func (m *Metrics) SetBreakerOpen(name string, open bool) {
	if m == nil {
		return
	}
	v := 0.0
	if open {
		v = 1
	}
	m.BreakerState.WithLabelValues(name).Set(v)
}

func (m *Metrics) ObserveConsentData(backend, op string, start time.Time) {
	if m == nil {
		return
	}
	m.ConsentDataDuration.WithLabelValues(backend, op).Observe(float64(time.Since(start).Microseconds()) / 1000.0)
}
