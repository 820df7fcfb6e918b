// Package metrics instruments the client's HTTP traffic with Prometheus
// collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "litmus_client"

// Metrics holds the collectors for outgoing control-plane requests.
type Metrics struct {
	InFlight prometheus.Gauge
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg. A nil reg means
// prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		InFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "in_flight_requests",
			Help:      "Requests currently waiting on the control plane.",
		}),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Requests sent to the control plane, by status code and method.",
		}, []string{"code", "method"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Round-trip latency of control-plane requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"code", "method"}),
	}

	for _, c := range []prometheus.Collector{m.InFlight, m.Requests, m.Duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// RoundTripper wraps next so every request is counted and timed.
// A nil next means http.DefaultTransport. The result forwards
// CloseIdleConnections to next.
func (m *Metrics) RoundTripper(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &instrumented{
		RoundTripper: promhttp.InstrumentRoundTripperInFlight(m.InFlight,
			promhttp.InstrumentRoundTripperCounter(m.Requests,
				promhttp.InstrumentRoundTripperDuration(m.Duration, next),
			),
		),
		next: next,
	}
}

type instrumented struct {
	http.RoundTripper
	next http.RoundTripper
}

func (t *instrumented) CloseIdleConnections() {
	if c, ok := t.next.(interface{ CloseIdleConnections() }); ok {
		c.CloseIdleConnections()
	}
}
