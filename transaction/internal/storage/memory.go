package storage

import (
	"context"
	"sync"

	"github.com/riskstream-systems/riskstream-stack/common/models"
)

// MemoryStore is an in-memory Store for tests and local development.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]*models.Transaction
	err  error
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]*models.Transaction)}
}

// WithError forces subsequent operations to fail with err.
func (s *MemoryStore) WithError(err error) *MemoryStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
	return s
}

func (s *MemoryStore) Upsert(_ context.Context, txn *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.data[txn.ID] = txn
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.err != nil {
		return nil, s.err
	}
	txn, ok := s.data[id]
	if !ok {
		return nil, ErrNotFound
	}
	return txn, nil
}

func (s *MemoryStore) Close() error {
	return nil
}

// Len reports the number of stored transactions. Used by tests.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
