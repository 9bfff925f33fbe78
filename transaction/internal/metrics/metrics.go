package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TransactionsReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "riskstream_transaction_received_total",
			Help: "Total number of transactions received, by outcome",
		},
		[]string{"status"},
	)

	TransactionsRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "riskstream_transaction_rejected_total",
			Help: "Total number of transactions rejected by validation",
		},
	)

	PublishDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "riskstream_transaction_publish_duration_seconds",
			Help:    "Duration of message bus publishes in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	PublishErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "riskstream_transaction_publish_errors_total",
			Help: "Total number of failed message bus publishes",
		},
	)

	StoreErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "riskstream_transaction_store_errors_total",
			Help: "Total number of failed transaction store writes",
		},
	)
)
