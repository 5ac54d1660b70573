package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals // Prometheus metrics
var (
	CacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "signbench_verify_cache_hits_total",
		Help: "Total number of verification cache hits",
	})

	CacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "signbench_verify_cache_misses_total",
		Help: "Total number of verification cache misses",
	})

	CacheSetsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "signbench_verify_cache_sets_total",
		Help: "Total number of verification cache sets",
	})

	CacheDeletesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "signbench_verify_cache_deletes_total",
		Help: "Total number of verification cache deletes",
	})
)
