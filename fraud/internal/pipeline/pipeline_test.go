package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskstream-systems/riskstream-stack/common/models"
	"github.com/riskstream-systems/riskstream-stack/fraud/internal/graph"
	"github.com/riskstream-systems/riskstream-stack/fraud/internal/recorder"
	"github.com/riskstream-systems/riskstream-stack/fraud/internal/scoring"
)

type stubScorer struct {
	score float64
	err   error
	calls int
}

func (s *stubScorer) Score(_ context.Context, _ *models.Transaction) (*scoring.Result, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &scoring.Result{FraudScore: s.score}, nil
}

type captureSink struct {
	mu    sync.Mutex
	flags []recorder.Flag
}

func (s *captureSink) Enqueue(flag recorder.Flag) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags = append(s.flags, flag)
}

func (s *captureSink) all() []recorder.Flag {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]recorder.Flag(nil), s.flags...)
}

type fakeMsg struct {
	data  []byte
	acked bool
}

func (m *fakeMsg) Data() []byte { return m.data }
func (m *fakeMsg) Ack() error   { m.acked = true; return nil }

const validPayload = `{"id":"tx1","amount":500,"timestamp":"2024-01-01T00:00:00Z"}`

func TestHighScoreFlagsTransaction(t *testing.T) {
	sink := &captureSink{}
	p := New(&stubScorer{score: 0.9}, sink, 0.8)

	outcome := p.Process(context.Background(), []byte(validPayload))
	assert.Equal(t, OutcomeFlagged, outcome)

	flags := sink.all()
	require.Len(t, flags, 1)
	assert.Equal(t, "tx1", flags[0].TransactionID)
	assert.Equal(t, "suspected-entity", flags[0].RelatedEntity)
}

func TestLowScoreStaysClear(t *testing.T) {
	sink := &captureSink{}
	p := New(&stubScorer{score: 0.2}, sink, 0.8)

	outcome := p.Process(context.Background(), []byte(validPayload))
	assert.Equal(t, OutcomeClear, outcome)
	assert.Empty(t, sink.all(), "recorder must not be invoked below threshold")
}

func TestThresholdEqualityCountsAsFraud(t *testing.T) {
	sink := &captureSink{}
	p := New(&stubScorer{score: 0.8}, sink, 0.8)

	outcome := p.Process(context.Background(), []byte(validPayload))
	assert.Equal(t, OutcomeFlagged, outcome)
	assert.Len(t, sink.all(), 1)
}

func TestMalformedMessageIsTerminal(t *testing.T) {
	scorer := &stubScorer{score: 0.9}
	p := New(scorer, &captureSink{}, 0.8)

	outcome := p.Process(context.Background(), []byte(`{not json`))
	assert.Equal(t, OutcomeMalformed, outcome)
	assert.Zero(t, scorer.calls, "malformed payloads are never scored")
}

func TestIncompleteTransactionIsTerminal(t *testing.T) {
	scorer := &stubScorer{score: 0.9}
	p := New(scorer, &captureSink{}, 0.8)

	outcome := p.Process(context.Background(), []byte(`{"amount":100,"timestamp":"2024-01-01T00:00:00Z"}`))
	assert.Equal(t, OutcomeInvalid, outcome)
	assert.Zero(t, scorer.calls)
}

func TestScoringFailureDoesNotStopConsumption(t *testing.T) {
	sink := &captureSink{}
	scorer := &stubScorer{err: &scoring.RemoteError{Err: context.DeadlineExceeded}}
	p := New(scorer, sink, 0.8)
	ctx := context.Background()

	// A timed-out scoring call is terminal for its message only; the next
	// message is processed normally.
	outcome := p.Process(ctx, []byte(validPayload))
	assert.Equal(t, OutcomeScoreFailed, outcome)
	assert.Empty(t, sink.all())

	scorer.err = nil
	scorer.score = 0.95
	outcome = p.Process(ctx, []byte(`{"id":"tx2","amount":10,"timestamp":"2024-01-01T00:00:00Z"}`))
	assert.Equal(t, OutcomeFlagged, outcome)
	require.Len(t, sink.all(), 1)
	assert.Equal(t, "tx2", sink.all()[0].TransactionID)
}

func TestHandleAcksRegardlessOfOutcome(t *testing.T) {
	p := New(&stubScorer{err: &scoring.RemoteError{StatusCode: 502}}, &captureSink{}, 0.8)

	msgs := []*fakeMsg{
		{data: []byte(validPayload)},
		{data: []byte(`{broken`)},
		{data: []byte(`{"amount":1,"timestamp":"2024-01-01T00:00:00Z"}`)},
	}
	for _, msg := range msgs {
		p.Handle(context.Background(), msg)
		assert.True(t, msg.acked, "every message is consumed exactly once per delivery")
	}
}

func TestEndToEndWithRealSinkFailureIsolation(t *testing.T) {
	// A failing graph store must not change the flagged outcome.
	client := graph.NewMemoryClient().WithError(errors.New("graph down"))
	sink := recorder.NewFlagSink(recorder.New(client), 4, time.Second)
	p := New(&stubScorer{score: 0.99}, sink, 0.8)

	outcome := p.Process(context.Background(), []byte(validPayload))
	assert.Equal(t, OutcomeFlagged, outcome)

	sink.Close()
}
