// Package storage provides the transaction key-value store.
package storage

import (
	"context"
	"errors"

	"github.com/riskstream-systems/riskstream-stack/common/models"
)

// ErrNotFound is returned by Get when no transaction exists for the id.
var ErrNotFound = errors.New("transaction not found")

// Store is an idempotent key-value store for transactions, keyed by
// transaction id. Upsert is last-write-wins: resubmission with the same id
// overwrites the previous record.
type Store interface {
	Upsert(ctx context.Context, txn *models.Transaction) error
	Get(ctx context.Context, id string) (*models.Transaction, error)
	Close() error
}
