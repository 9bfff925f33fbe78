package recorder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskstream-systems/riskstream-stack/fraud/internal/graph"
)

func TestRecordWritesRelationship(t *testing.T) {
	client := graph.NewMemoryClient()
	rec := New(client)

	err := rec.Record(context.Background(), "tx1", "suspected-entity")
	require.NoError(t, err)

	writes := client.Writes()
	require.Len(t, writes, 1)
	assert.Contains(t, writes[0].Query, "CREATE (t:Transaction")
	assert.Contains(t, writes[0].Query, "RELATED")
	assert.Equal(t, "tx1", writes[0].Params["transactionId"])
	assert.Equal(t, "suspected-entity", writes[0].Params["relatedEntity"])
}

func TestRecordDuplicatesOnRedelivery(t *testing.T) {
	client := graph.NewMemoryClient()
	rec := New(client)
	ctx := context.Background()

	require.NoError(t, rec.Record(ctx, "tx1", "suspected-entity"))
	require.NoError(t, rec.Record(ctx, "tx1", "suspected-entity"))

	// No upsert semantics: the same pair recorded twice creates two edges.
	assert.Len(t, client.Writes(), 2)
}

func TestRecordSurfacesFailure(t *testing.T) {
	client := graph.NewMemoryClient().WithError(errors.New("graph down"))
	rec := New(client)

	err := rec.Record(context.Background(), "tx1", "suspected-entity")
	assert.Error(t, err)
}

func TestFlagSinkRecordsAsynchronously(t *testing.T) {
	client := graph.NewMemoryClient()
	sink := NewFlagSink(New(client), 16, time.Second)

	sink.Enqueue(Flag{TransactionID: "tx9", RelatedEntity: "suspected-entity"})
	sink.Close()

	writes := client.Writes()
	require.Len(t, writes, 1)
	assert.Equal(t, "tx9", writes[0].Params["transactionId"])
}

func TestFlagSinkEnqueueAfterCloseDoesNotPanic(t *testing.T) {
	client := graph.NewMemoryClient()
	sink := NewFlagSink(New(client), 16, time.Second)
	sink.Close()

	// The consumer can still be mid-message when shutdown closes the sink;
	// a late flag must be dropped, not panic the process.
	sink.Enqueue(Flag{TransactionID: "late", RelatedEntity: "suspected-entity"})
	sink.Close()

	assert.Empty(t, client.Writes())
}

func TestFlagSinkConcurrentEnqueueDuringClose(t *testing.T) {
	client := graph.NewMemoryClient()
	sink := NewFlagSink(New(client), 1, time.Second)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			sink.Enqueue(Flag{TransactionID: "tx", RelatedEntity: "suspected-entity"})
		}
	}()

	sink.Close()
	<-done
}

func TestFlagSinkSwallowsRecorderFailure(t *testing.T) {
	client := graph.NewMemoryClient().WithError(errors.New("graph down"))
	sink := NewFlagSink(New(client), 16, time.Second)

	// Enqueue never blocks or fails even when every record fails.
	sink.Enqueue(Flag{TransactionID: "tx1", RelatedEntity: "suspected-entity"})
	sink.Enqueue(Flag{TransactionID: "tx2", RelatedEntity: "suspected-entity"})
	sink.Close()

	assert.Empty(t, client.Writes())
}
