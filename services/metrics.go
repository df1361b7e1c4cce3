package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	stageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pipeline_stage_duration_seconds",
		Help:    "Duration of pipeline stage operations in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"stage", "status"})

	stageTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pipeline_stage_total",
		Help: "Total number of pipeline stage operations",
	}, []string{"stage", "status"})
)

// observeStage records one finished stage operation. Call via defer with a
// pointer to the status string so the final value is captured.
func observeStage(stage string, start time.Time, status *string) {
	stageDuration.WithLabelValues(stage, *status).Observe(time.Since(start).Seconds())
	stageTotal.WithLabelValues(stage, *status).Inc()
}
