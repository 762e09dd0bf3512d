// Package metrics exposes Prometheus collectors for the verification core.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SolverChecks counts decision-backend calls by outcome status.
	SolverChecks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "meetsched",
		Subsystem: "solver",
		Name:      "checks_total",
		Help:      "Decision backend calls by outcome status.",
	}, []string{"status"})

	// SolverDuration tracks decision-backend solving time.
	SolverDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "meetsched",
		Subsystem: "solver",
		Name:      "check_duration_seconds",
		Help:      "Decision backend solving time.",
		Buckets:   prometheus.DefBuckets,
	})

	// Violations counts runtime property violations recorded by the monitor,
	// deduplicated entries excluded.
	Violations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "meetsched",
		Subsystem: "monitor",
		Name:      "violations_total",
		Help:      "Runtime property violations by property and severity.",
	}, []string{"property", "severity"})
)
