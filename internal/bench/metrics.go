package bench

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals // Prometheus metrics
var (
	// IterationsTotal tracks measured iterations by service, chain and result.
	IterationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signbench_iterations_total",
			Help: "Total number of measured benchmark iterations",
		},
		[]string{"service", "chain", "result"},
	)

	// SignLatencyMS tracks provider-reported signing latency.
	SignLatencyMS = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "signbench_sign_latency_ms",
			Help:    "Provider-reported signing API latency in milliseconds",
			Buckets: []float64{10, 25, 50, 100, 200, 350, 500, 750, 1000, 2000, 5000},
		},
		[]string{"service", "chain"},
	)

	// VerificationFailuresTotal tracks signatures that failed post-hoc verification.
	VerificationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signbench_verification_failures_total",
			Help: "Total number of measured iterations whose signature failed verification",
		},
		[]string{"service", "chain"},
	)

	// ChainRunDurationSeconds tracks wall time of a full chain run.
	ChainRunDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "signbench_chain_run_duration_seconds",
			Help:    "Wall-clock duration of one (service, chain) benchmark run",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		},
		[]string{"service", "chain"},
	)

	// ServiceInitFailuresTotal tracks services dropped from a batch.
	ServiceInitFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "signbench_service_init_failures_total",
		Help: "Total number of services whose initialization failed",
	})
)
