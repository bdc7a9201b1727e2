// Package metrics exposes Prometheus collectors for the wallet service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	operationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "walletpay",
			Name:      "operation_duration_seconds",
			Help:      "Duration of wallet operations in seconds.",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"operation"},
	)

	transactionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "walletpay",
			Name:      "transactions_total",
			Help:      "Total number of completed wallet transactions by operation type.",
		},
		[]string{"operation_type"},
	)

	transactionVolume = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "walletpay",
			Name:      "transaction_volume_total",
			Help:      "Total requested amount of completed transactions by operation type.",
		},
		[]string{"operation_type"},
	)

	errorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "walletpay",
			Name:      "errors_total",
			Help:      "Total number of wallet operation errors by operation and error type.",
		},
		[]string{"operation", "error_type"},
	)
)

// PrometheusCollector implements wallet.MetricsCollector on top of the
// package-level Prometheus collectors.
type PrometheusCollector struct{}

func NewPrometheusCollector() *PrometheusCollector {
	return &PrometheusCollector{}
}

func (c *PrometheusCollector) RecordOperationDuration(operation string, duration time.Duration) {
	operationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (c *PrometheusCollector) RecordTransaction(operationType string, amount float64) {
	transactionsTotal.WithLabelValues(operationType).Inc()
	transactionVolume.WithLabelValues(operationType).Add(amount)
}

func (c *PrometheusCollector) RecordError(operation, errType string) {
	errorsTotal.WithLabelValues(operation, errType).Inc()
}
