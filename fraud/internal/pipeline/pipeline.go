// Package pipeline implements the per-message fraud analysis state machine:
// received -> validated -> scored -> (flagged | clear) -> acknowledged.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/riskstream-systems/riskstream-stack/common/logging"
	"github.com/riskstream-systems/riskstream-stack/common/models"
	"github.com/riskstream-systems/riskstream-stack/fraud/internal/metrics"
	"github.com/riskstream-systems/riskstream-stack/fraud/internal/recorder"
	"github.com/riskstream-systems/riskstream-stack/fraud/internal/scoring"
)

// SuspectedEntity is the entity name recorded for every flagged transaction.
const SuspectedEntity = "suspected-entity"

// Outcome classifies how a delivered message was handled.
type Outcome string

const (
	OutcomeFlagged     Outcome = "flagged"
	OutcomeClear       Outcome = "clear"
	OutcomeMalformed   Outcome = "malformed"
	OutcomeInvalid     Outcome = "invalid"
	OutcomeScoreFailed Outcome = "score_failed"
)

// Scorer scores a transaction for fraud risk.
type Scorer interface {
	Score(ctx context.Context, txn *models.Transaction) (*scoring.Result, error)
}

// FlagSink accepts flags for asynchronous relationship recording.
type FlagSink interface {
	Enqueue(flag recorder.Flag)
}

// Msg is the subset of a delivered bus message the pipeline needs.
type Msg interface {
	Data() []byte
	Ack() error
}

// Pipeline consumes transactions and applies the threshold decision. Every
// failure is terminal for its message only: the message is consumed and the
// loop moves on. No per-message retry, no dead-letter routing.
type Pipeline struct {
	scorer    Scorer
	sink      FlagSink
	threshold float64
}

// New creates a Pipeline with the given threshold in the canonical 0-1 range.
func New(scorer Scorer, sink FlagSink, threshold float64) *Pipeline {
	return &Pipeline{
		scorer:    scorer,
		sink:      sink,
		threshold: threshold,
	}
}

// Handle runs one delivered message through the state machine and
// acknowledges it regardless of outcome, completing the at-least-once
// contract on this side.
func (p *Pipeline) Handle(ctx context.Context, msg Msg) Outcome {
	outcome := p.Process(ctx, msg.Data())
	metrics.MessagesProcessed.WithLabelValues(string(outcome)).Inc()

	if err := msg.Ack(); err != nil {
		slog.Warn("failed to acknowledge message", logging.Error(err))
	}
	return outcome
}

// Process runs the state machine on a raw payload.
func (p *Pipeline) Process(ctx context.Context, data []byte) Outcome {
	// received -> deserialize
	record, err := models.DecodeRecord(data)
	if err != nil {
		slog.Error("discarding malformed message", logging.Error(err))
		return OutcomeMalformed
	}

	// validated: ingress-side validation is not trusted to have survived the bus.
	txn, verr := models.FromRecord(record)
	if verr != nil {
		slog.Error("discarding incomplete transaction", logging.Error(verr))
		return OutcomeInvalid
	}

	slog.Info("processing transaction", logging.TransactionID(txn.ID))

	// scored
	start := time.Now()
	result, err := p.scorer.Score(ctx, txn)
	metrics.ScoringDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		var remoteErr *scoring.RemoteError
		if errors.As(err, &remoteErr) {
			slog.Error("scoring call failed",
				logging.TransactionID(txn.ID),
				slog.Int("remote_status", remoteErr.StatusCode),
				logging.Error(err),
			)
		} else {
			slog.Error("unexpected scoring failure",
				logging.TransactionID(txn.ID),
				logging.Error(err),
			)
		}
		return OutcomeScoreFailed
	}

	metrics.FraudScores.Observe(result.FraudScore)
	slog.Info("transaction scored",
		logging.TransactionID(txn.ID),
		logging.FraudScore(result.FraudScore),
	)

	// decision: equality counts as fraud.
	if result.FraudScore < p.threshold {
		return OutcomeClear
	}

	metrics.TransactionsFlagged.Inc()
	slog.Warn("transaction flagged as potentially fraudulent",
		logging.TransactionID(txn.ID),
		logging.FraudScore(result.FraudScore),
		logging.Threshold(p.threshold),
		slog.String("explanation", result.Explanation),
	)

	// Fire-and-forget: the sink records the relationship off the hot path.
	// A recording failure never changes the outcome already computed here.
	p.sink.Enqueue(recorder.Flag{
		TransactionID: txn.ID,
		RelatedEntity: SuspectedEntity,
	})

	return OutcomeFlagged
}
