package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

const namespace = "hony"

// Redirect outcomes.
const (
	OutcomeRedirect = "redirect"
	OutcomeNoResult = "no_result"
	OutcomeError    = "error"
)

type Metrics struct {
	redirects        *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
}

var Module = fx.Module("metrics",
	fx.Provide(
		NewRegistry,
		New,
	),
)

// NewRegistry returns a registry preloaded with the runtime collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		redirects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "redirects_total",
			Help:      "Handled redirect requests by route and outcome.",
		}, []string{"route", "outcome"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Latency of Tumblr API calls by endpoint and status code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint", "code"}),
	}
	reg.MustRegister(m.redirects, m.upstreamDuration)
	return m
}

func (m *Metrics) CountRedirect(route, outcome string) {
	m.redirects.WithLabelValues(route, outcome).Inc()
}

// ObserveUpstream records one upstream call. code is 0 when no response came back.
func (m *Metrics) ObserveUpstream(endpoint string, code int, took time.Duration) {
	m.upstreamDuration.WithLabelValues(endpoint, strconv.Itoa(code)).Observe(took.Seconds())
}
