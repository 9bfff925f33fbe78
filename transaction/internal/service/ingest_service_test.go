package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskstream-systems/riskstream-stack/common/models"
	"github.com/riskstream-systems/riskstream-stack/transaction/internal/storage"
)

// fakePublisher records publishes and can be forced to fail.
type fakePublisher struct {
	mu        sync.Mutex
	published []publishedMsg
	err       error
}

type publishedMsg struct {
	subject string
	data    []byte
}

func (p *fakePublisher) Publish(_ context.Context, subject string, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, publishedMsg{subject: subject, data: data})
	return nil
}

func (p *fakePublisher) Close() error { return nil }

func (p *fakePublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.published)
}

func TestSubmitValidTransaction(t *testing.T) {
	pub := &fakePublisher{}
	store := storage.NewMemoryStore()
	svc := NewIngestService(pub, store, "transactions.created")

	raw := []byte(`{"id":"tx123","amount":750,"timestamp":"2024-01-01T00:00:00Z"}`)
	id, err := svc.Submit(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "tx123", id)

	require.Equal(t, 1, pub.count())
	assert.Equal(t, "transactions.created", pub.published[0].subject)
	assert.Equal(t, raw, pub.published[0].data)

	stored, err := store.Get(context.Background(), "tx123")
	require.NoError(t, err)
	assert.Equal(t, 750.0, stored.Amount)
}

func TestSubmitInvalidHasNoSideEffects(t *testing.T) {
	pub := &fakePublisher{}
	store := storage.NewMemoryStore()
	svc := NewIngestService(pub, store, "transactions.created")

	_, err := svc.Submit(context.Background(), []byte(`{"amount":100,"timestamp":"2024-01-01T00:00:00Z"}`))

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"id"}, verr.Missing)
	assert.Zero(t, pub.count(), "invalid input must not be published")
	assert.Zero(t, store.Len(), "invalid input must not be stored")
}

func TestSubmitMalformedPayload(t *testing.T) {
	pub := &fakePublisher{}
	svc := NewIngestService(pub, storage.NewMemoryStore(), "transactions.created")

	_, err := svc.Submit(context.Background(), []byte(`{not json`))
	assert.ErrorIs(t, err, ErrMalformedPayload)
	assert.Zero(t, pub.count())
}

func TestSubmitPublishFailure(t *testing.T) {
	pub := &fakePublisher{err: errors.New("bus down")}
	store := storage.NewMemoryStore()
	svc := NewIngestService(pub, store, "transactions.created")

	_, err := svc.Submit(context.Background(), []byte(`{"id":"tx1","amount":5,"timestamp":"2024-01-01T00:00:00Z"}`))
	require.Error(t, err)
	assert.Zero(t, store.Len(), "store write must not happen after failed publish")
}

func TestSubmitStoreFailure(t *testing.T) {
	pub := &fakePublisher{}
	store := storage.NewMemoryStore().WithError(errors.New("store down"))
	svc := NewIngestService(pub, store, "transactions.created")

	_, err := svc.Submit(context.Background(), []byte(`{"id":"tx1","amount":5,"timestamp":"2024-01-01T00:00:00Z"}`))
	require.Error(t, err)
	// The message was already published; partial completion is an accepted
	// outcome surfaced to the client as an unknown result.
	assert.Equal(t, 1, pub.count())
}

func TestSubmitResubmissionOverwrites(t *testing.T) {
	pub := &fakePublisher{}
	store := storage.NewMemoryStore()
	svc := NewIngestService(pub, store, "transactions.created")
	ctx := context.Background()

	_, err := svc.Submit(ctx, []byte(`{"id":"tx9","amount":1,"timestamp":"2024-01-01T00:00:00Z"}`))
	require.NoError(t, err)
	_, err = svc.Submit(ctx, []byte(`{"id":"tx9","amount":2,"timestamp":"2024-01-02T00:00:00Z"}`))
	require.NoError(t, err)

	stored, err := store.Get(ctx, "tx9")
	require.NoError(t, err)
	assert.Equal(t, 2.0, stored.Amount)
	assert.Equal(t, 1, store.Len())
}
