package search

import (
	"fmt"

	pserrors "github.com/parseek/parseek/internal/errors"
)

// PublishSink is the shared channel through which workers publish partial
// results to the orchestrator. Publish must be safe for concurrent use;
// each publication is one atomic enqueue of a complete PartialResult.
// The discipline is exactly one publish per worker, consumed by one drain.
type PublishSink interface {
	// Publish enqueues one complete partial result.
	Publish(p PartialResult) error

	// Drain removes exactly expected results from the sink. It must only
	// be called after all workers have been joined; a short sink means a
	// worker terminated without publishing, which is a fatal
	// "incomplete worker set" condition, not something to paper over.
	Drain(expected int) ([]PartialResult, error)
}

// chanSink is the in-memory sink backing both execution backends: workers
// (threads mode) or per-child reader goroutines (processes mode) enqueue
// into a buffered channel sized for the full worker set.
type chanSink struct {
	ch chan PartialResult
}

func newChanSink(capacity int) *chanSink {
	return &chanSink{ch: make(chan PartialResult, capacity)}
}

// Publish implements PublishSink. The buffer holds one slot per worker, so
// a correct caller never blocks; a full sink means a worker published twice.
func (s *chanSink) Publish(p PartialResult) error {
	select {
	case s.ch <- p:
		return nil
	default:
		return pserrors.New(pserrors.ErrCodeSinkOverflow,
			fmt.Sprintf("sink full: more than %d publications", cap(s.ch)), nil)
	}
}

// Drain implements PublishSink.
func (s *chanSink) Drain(expected int) ([]PartialResult, error) {
	out := make([]PartialResult, 0, expected)
	for i := 0; i < expected; i++ {
		select {
		case p := <-s.ch:
			out = append(out, p)
		default:
			return nil, pserrors.WorkerLostError(len(out), expected)
		}
	}
	return out, nil
}
