// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Store metrics track the state and behavior of the persistence layer
var (
	// EntityRowsTotal tracks the current number of rows per entity table
	EntityRowsTotal = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "entity_rows_total",
			Help: "Current number of rows per entity table",
		},
		[]string{"entity"},
	)

	// SeedRowsInsertedTotal counts bootstrap rows inserted by the seed loader
	SeedRowsInsertedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seed_rows_inserted_total",
			Help: "Bootstrap rows inserted by the seed loader",
		},
		[]string{"entity"},
	)

	// SeedSkippedTotal counts seed phases skipped because rows already existed
	SeedSkippedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seed_skipped_total",
			Help: "Seed phases skipped because the table already had rows",
		},
		[]string{"entity"},
	)

	// StoreErrorsTotal counts store-level failures surfaced to callers
	StoreErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_errors_total",
			Help: "Store-level failures surfaced to callers",
		},
		[]string{"operation"},
	)
)
