package verify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// VerificationsTotal tracks signature verifications by chain and verdict.
	VerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signbench_verifications_total",
			Help: "Total number of signature verifications",
		},
		[]string{"chain", "verdict"},
	)
)
