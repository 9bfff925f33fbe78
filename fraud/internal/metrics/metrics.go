package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MessagesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "riskstream_fraud_messages_total",
			Help: "Total number of consumed messages, by outcome",
		},
		[]string{"outcome"},
	)

	ScoringDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "riskstream_fraud_scoring_duration_seconds",
			Help:    "Duration of scoring service calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	FraudScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "riskstream_fraud_score",
			Help:    "Distribution of fraud scores in the canonical 0-1 range",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		},
	)

	TransactionsFlagged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "riskstream_fraud_flagged_total",
			Help: "Total number of transactions flagged as potentially fraudulent",
		},
	)

	RecorderFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "riskstream_fraud_recorder_failures_total",
			Help: "Total number of failed or dropped relationship records",
		},
	)
)
