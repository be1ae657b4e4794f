package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Latency buckets in milliseconds. Verification is pure text
	// scanning, so the interesting range is sub-second.
	latencyBuckets = []float64{
		1, 2, 5,
		10, 25, 50,
		100, 250, 500,
		1000, 2500,
	}

	VerificationTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustscope_verifications_total",
			Help: "Total number of verification runs by decision",
		},
		[]string{"decision"},
	)

	VerificationLatency = promauto.With(registerer).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "trustscope_verification_latency_ms",
			Help:    "Verification pipeline latency in milliseconds",
			Buckets: latencyBuckets,
		},
	)

	FindingsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustscope_findings_total",
			Help: "Total findings reported by detectors",
		},
		[]string{"category", "severity"},
	)

	HTTPRequestTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustscope_http_requests_total",
			Help: "Total HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	HTTPPanicTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustscope_http_panics_total",
			Help: "Total panics recovered during HTTP request handling",
		},
		[]string{"path"},
	)

	HTTPRequestLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trustscope_http_latency_ms",
			Help:    "HTTP request latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"method", "path"},
	)
)

func init() {
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
}

// Registry exposes the private registry for the metrics endpoint.
func Registry() *prometheus.Registry {
	return registry
}
