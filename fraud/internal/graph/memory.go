package graph

import (
	"context"
	"sync"
)

// MemoryClient is an in-memory Client used to test recorder logic without a
// running graph database.
type MemoryClient struct {
	mu           sync.Mutex
	writes       []ExecutedQuery
	err          error
	connectivity error
}

// ExecutedQuery captures a Cypher statement and its parameters.
type ExecutedQuery struct {
	Query  string
	Params map[string]any
}

// NewMemoryClient creates an empty in-memory client.
func NewMemoryClient() *MemoryClient {
	return &MemoryClient{}
}

// WithError configures the client to fail subsequent writes with err.
func (m *MemoryClient) WithError(err error) *MemoryClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	return m
}

func (m *MemoryClient) ExecuteWrite(_ context.Context, cypher string, params map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}

	cloned := make(map[string]any, len(params))
	for k, v := range params {
		cloned[k] = v
	}
	m.writes = append(m.writes, ExecutedQuery{Query: cypher, Params: cloned})
	return nil
}

func (m *MemoryClient) VerifyConnectivity(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connectivity
}

func (m *MemoryClient) Close(context.Context) error {
	return nil
}

// Writes returns a snapshot of executed write queries.
func (m *MemoryClient) Writes() []ExecutedQuery {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ExecutedQuery(nil), m.writes...)
}
