// Package recorder persists transaction-entity relationships in the graph
// store when a transaction is flagged.
package recorder

import (
	"context"
	"fmt"

	"github.com/riskstream-systems/riskstream-stack/fraud/internal/graph"
)

// createRelationship adds a transaction vertex, an entity vertex, and a
// directed RELATED edge. Deliberately CREATE rather than MERGE: no existence
// check happens, so redelivered messages produce duplicate vertices/edges.
const createRelationship = `
CREATE (t:Transaction {id: $transactionId})
CREATE (e:Entity {name: $relatedEntity})
CREATE (t)-[:RELATED]->(e)`

// Recorder writes relationship edges to the graph store.
type Recorder struct {
	client graph.Client
}

// New creates a Recorder backed by the given graph client.
func New(client graph.Client) *Recorder {
	return &Recorder{client: client}
}

// Record stores a relationship between a transaction and a related entity.
// Failures surface to the caller; the pipeline decides isolation.
func (r *Recorder) Record(ctx context.Context, transactionID, relatedEntity string) error {
	err := r.client.ExecuteWrite(ctx, createRelationship, map[string]any{
		"transactionId": transactionID,
		"relatedEntity": relatedEntity,
	})
	if err != nil {
		return fmt.Errorf("record relationship for transaction %s: %w", transactionID, err)
	}
	return nil
}
