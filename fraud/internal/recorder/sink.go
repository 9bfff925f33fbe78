package recorder

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/riskstream-systems/riskstream-stack/common/logging"
	"github.com/riskstream-systems/riskstream-stack/fraud/internal/metrics"
)

// Flag is a high-risk detection handed to the sink for recording.
type Flag struct {
	TransactionID string
	RelatedEntity string
}

// FlagSink is the detached task that records flags asynchronously. The
// pipeline enqueues and moves on; recording failures are captured into the
// log and a failure counter, never propagated back to the scoring decision.
type FlagSink struct {
	recorder *Recorder
	flags    chan Flag
	wg       sync.WaitGroup
	timeout  time.Duration

	mu     sync.Mutex
	closed bool
}

// NewFlagSink starts the sink's background worker. buffer bounds the number
// of pending flags; timeout bounds each graph write.
func NewFlagSink(recorder *Recorder, buffer int, timeout time.Duration) *FlagSink {
	if buffer <= 0 {
		buffer = 1024
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	s := &FlagSink{
		recorder: recorder,
		flags:    make(chan Flag, buffer),
		timeout:  timeout,
	}

	s.wg.Add(1)
	go s.run()

	return s
}

// Enqueue hands a flag to the sink without waiting for the write. If the
// buffer is full the flag is dropped and counted; the scoring outcome is
// already decided and must not stall on graph backpressure.
//
// Safe to call concurrently with Close: a flag arriving during shutdown is
// dropped like a full-buffer flag. The consumer may still be finishing a
// message when the deferred Close runs, so the send must never hit a closed
// channel.
func (s *FlagSink) Enqueue(flag Flag) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		metrics.RecorderFailures.Inc()
		slog.Warn("flag sink closed, dropping relationship record",
			logging.TransactionID(flag.TransactionID),
			logging.Entity(flag.RelatedEntity),
		)
		return
	}

	select {
	case s.flags <- flag:
	default:
		metrics.RecorderFailures.Inc()
		slog.Warn("flag sink full, dropping relationship record",
			logging.TransactionID(flag.TransactionID),
			logging.Entity(flag.RelatedEntity),
		)
	}
}

func (s *FlagSink) run() {
	defer s.wg.Done()

	for flag := range s.flags {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		err := s.recorder.Record(ctx, flag.TransactionID, flag.RelatedEntity)
		cancel()

		if err != nil {
			metrics.RecorderFailures.Inc()
			slog.Error("failed to record relationship",
				logging.TransactionID(flag.TransactionID),
				logging.Entity(flag.RelatedEntity),
				logging.Error(err),
			)
			continue
		}

		slog.Info("relationship recorded",
			logging.TransactionID(flag.TransactionID),
			logging.Entity(flag.RelatedEntity),
		)
	}
}

// Close stops accepting flags and waits for pending records to drain.
func (s *FlagSink) Close() {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.flags)
	}
	s.mu.Unlock()
	s.wg.Wait()
}
