// file: internal/metrics/metrics.go
// version: 2.0.0
// guid: 9f8e7d6c-5b4a-3210-9fed-cba876543210

// Package metrics exposes Prometheus counters for metadata operations:
// resolutions, handler probes, reads, and writes.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	operationStarted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "audiotag",
		Name:      "operations_started_total",
		Help:      "Total number of operations started by type",
	}, []string{"type"})
	operationCompleted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "audiotag",
		Name:      "operations_completed_total",
		Help:      "Total number of operations successfully completed by type",
	}, []string{"type"})
	operationFailed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "audiotag",
		Name:      "operations_failed_total",
		Help:      "Total number of operations failed by type",
	}, []string{"type"})
	operationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "audiotag",
		Name:      "operation_duration_seconds",
		Help:      "Histogram of operation durations in seconds by type",
		Buckets:   prometheus.ExponentialBuckets(0.005, 1.6, 10),
	}, []string{"type"})
	probeFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "audiotag",
		Name:      "probe_failures_total",
		Help:      "Total number of handler probes that failed to parse, by handler",
	}, []string{"handler"})
)

// Register initializes metrics with the global Prometheus registry (idempotent)
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(operationStarted, operationCompleted,
			operationFailed, operationDuration, probeFailures)
	})
}

// Operation lifecycle helpers
func OperationStarted(opType string) { operationStarted.WithLabelValues(opType).Inc() }
func OperationCompleted(opType string, d time.Duration) {
	operationCompleted.WithLabelValues(opType).Inc()
	operationDuration.WithLabelValues(opType).Observe(d.Seconds())
}
func OperationFailed(opType string) { operationFailed.WithLabelValues(opType).Inc() }

// ProbeFailed counts a handler probe that did not parse the file.
func ProbeFailed(handler string) { probeFailures.WithLabelValues(handler).Inc() }
