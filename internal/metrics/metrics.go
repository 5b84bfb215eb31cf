// Package metrics defines the Prometheus instruments exported by the
// application. Values are recorded per run and per block lifecycle,
// never per batch, so collection cost stays out of the measured path.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RunsTotal counts flowgraph runs that ran to completion.
	RunsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "flowgridgo_runs_total",
			Help: "Total number of completed flowgraph runs",
		},
	)

	// RunDuration observes the wall-clock duration of each run.
	RunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "flowgridgo_run_duration_seconds",
			Help:    "Flowgraph run duration in seconds",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	// BlocksRunning tracks block goroutines currently executing.
	BlocksRunning = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "flowgridgo_blocks_running",
			Help: "Number of block goroutines currently executing",
		},
	)

	// ItemsProcessed counts items delivered to sinks across all runs.
	ItemsProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "flowgridgo_items_processed_total",
			Help: "Total number of stream items delivered to sinks",
		},
	)
)
