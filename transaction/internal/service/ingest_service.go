// Package service implements transaction admission: validate, publish, store.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/riskstream-systems/riskstream-stack/common/logging"
	"github.com/riskstream-systems/riskstream-stack/common/messaging"
	"github.com/riskstream-systems/riskstream-stack/common/models"
	"github.com/riskstream-systems/riskstream-stack/transaction/internal/metrics"
	"github.com/riskstream-systems/riskstream-stack/transaction/internal/storage"
)

// ErrMalformedPayload indicates the request body was not valid JSON.
var ErrMalformedPayload = errors.New("malformed transaction payload")

// IngestService admits transactions into the pipeline. Invalid input is
// rejected before any side effect; valid input is published to the bus and
// then upserted into the store.
type IngestService struct {
	publisher messaging.Publisher
	store     storage.Store
	subject   string
}

// NewIngestService wires the service to a bus publisher and a store.
func NewIngestService(publisher messaging.Publisher, store storage.Store, subject string) *IngestService {
	return &IngestService{
		publisher: publisher,
		store:     store,
		subject:   subject,
	}
}

// Submit validates a raw transaction payload and, if complete, publishes it
// and persists it. It returns the transaction id on success.
//
// The two side effects are not transactional: a publish followed by a failed
// store write leaves the message on the bus. The caller surfaces that as an
// unknown outcome (500) and the client may retry; resubmission with the same
// id is absorbed by the store's upsert.
func (s *IngestService) Submit(ctx context.Context, raw []byte) (string, error) {
	record, err := models.DecodeRecord(raw)
	if err != nil {
		metrics.TransactionsRejected.Inc()
		return "", fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	txn, verr := models.FromRecord(record)
	if verr != nil {
		metrics.TransactionsRejected.Inc()
		slog.Warn("rejected incomplete transaction", logging.Error(verr))
		return "", verr
	}

	start := time.Now()
	if err := s.publisher.Publish(ctx, s.subject, raw); err != nil {
		metrics.PublishErrors.Inc()
		metrics.TransactionsReceived.WithLabelValues("publish_error").Inc()
		return "", fmt.Errorf("publish transaction %s: %w", txn.ID, err)
	}
	metrics.PublishDuration.Observe(time.Since(start).Seconds())

	if err := s.store.Upsert(ctx, txn); err != nil {
		metrics.StoreErrors.Inc()
		metrics.TransactionsReceived.WithLabelValues("store_error").Inc()
		return "", fmt.Errorf("store transaction %s: %w", txn.ID, err)
	}

	metrics.TransactionsReceived.WithLabelValues("accepted").Inc()
	slog.Info("transaction published",
		logging.TransactionID(txn.ID),
		logging.Subject(s.subject),
	)
	return txn.ID, nil
}

// Get returns the stored transaction for id, or storage.ErrNotFound.
func (s *IngestService) Get(ctx context.Context, id string) (*models.Transaction, error) {
	return s.store.Get(ctx, id)
}
