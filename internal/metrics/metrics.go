package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Counts completed service operations per entity and operation.
	OperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notes_api_operations_total",
			Help: "Total number of completed service operations",
		},
		[]string{"entity", "operation"},
	)

	// Counts point lookups, updates and deletes that targeted a missing record.
	NotFoundTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notes_api_not_found_total",
			Help: "Total number of operations that targeted a missing record",
		},
		[]string{"entity", "operation"},
	)
)

func Init() {
	prometheus.MustRegister(OperationsTotal)
	prometheus.MustRegister(NotFoundTotal)
}
