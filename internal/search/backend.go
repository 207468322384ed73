package search

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	pserrors "github.com/parseek/parseek/internal/errors"
)

// Backend runs one search's worker set under a concrete concurrency model.
// Implementations own worker spawn/join and the sink plumbing; the engine
// only sees the joined, drained partial results. Both implementations must
// yield identical partial sets for identical inputs.
type Backend interface {
	// Name returns the backend's mode name (BackendThreads or BackendProcesses).
	Name() string

	// Run spawns one worker per chunk, joins them all, and drains exactly
	// len(chunks) partial results from the sink. A worker that terminates
	// without publishing makes the whole run fail rather than returning a
	// silently truncated partial set.
	Run(ctx context.Context, chunks [][]string, keywords []string) ([]PartialResult, error)
}

// NewBackend returns the backend for the given mode name.
func NewBackend(mode string) (Backend, error) {
	switch mode {
	case BackendThreads:
		return &GoroutineBackend{}, nil
	case BackendProcesses:
		return NewProcessBackend()
	default:
		return nil, pserrors.New(pserrors.ErrCodeUnknownBackend,
			fmt.Sprintf("unknown concurrency mode %q (want %q or %q)",
				mode, BackendThreads, BackendProcesses), nil)
	}
}

// GoroutineBackend fans workers out as goroutines sharing the process
// address space. Each worker accumulates into its own private map; the
// buffered-channel sink is the only synchronized state.
type GoroutineBackend struct{}

// Name implements Backend.
func (b *GoroutineBackend) Name() string { return BackendThreads }

// Run implements Backend.
func (b *GoroutineBackend) Run(ctx context.Context, chunks [][]string, keywords []string) ([]PartialResult, error) {
	sink := newChanSink(len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	for _, chunk := range chunks {
		chunk := chunk
		g.Go(func() error {
			return sink.Publish(RunWorker(gctx, chunk, keywords))
		})
	}

	// Join all workers before touching the sink.
	if err := g.Wait(); err != nil {
		return nil, pserrors.Wrap(pserrors.ErrCodeWorkerAborted, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, pserrors.New(pserrors.ErrCodeWorkerAborted, "search cancelled", err)
	}

	return sink.Drain(len(chunks))
}
