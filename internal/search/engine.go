package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	pserrors "github.com/parseek/parseek/internal/errors"
)

// Engine orchestrates one search: validate, chunk, fan out under the
// configured backend, drain the sink, merge, and time the concurrent phase.
type Engine struct {
	backend Backend
}

// Options configure one Execute invocation.
type Options struct {
	// Workers is the number of execution units to spawn. Must be positive.
	Workers int
}

// NewEngine creates an engine bound to one execution backend.
func NewEngine(backend Backend) (*Engine, error) {
	if backend == nil {
		return nil, pserrors.New(pserrors.ErrCodeInternal, "nil backend", nil)
	}
	return &Engine{backend: backend}, nil
}

// Execute runs one parallel keyword search over files.
//
// Invalid configuration (non-positive worker count, empty keyword set) is
// rejected before any worker spawns. The reported Elapsed covers worker
// spawn through merge, exclusive of validation and chunking setup. An
// execution unit that terminates without publishing fails the whole search
// with an incomplete-worker-set error instead of returning a truncated
// report.
func (e *Engine) Execute(ctx context.Context, files []string, keywords []string, opts Options) (*Report, error) {
	if opts.Workers <= 0 {
		return nil, pserrors.New(pserrors.ErrCodeInvalidWorkers,
			fmt.Sprintf("worker count must be positive, got %d", opts.Workers), nil)
	}
	if len(keywords) == 0 {
		return nil, pserrors.New(pserrors.ErrCodeEmptyKeywords,
			"keyword set must not be empty", nil)
	}

	chunks := Split(files, opts.Workers)

	slog.Debug("search_started",
		slog.String("mode", e.backend.Name()),
		slog.Int("workers", opts.Workers),
		slog.Int("files", len(files)),
		slog.Int("keywords", len(keywords)))

	start := time.Now()

	partials, err := e.backend.Run(ctx, chunks, keywords)
	if err != nil {
		slog.Error("search_failed",
			slog.String("mode", e.backend.Name()),
			slog.String("error", err.Error()))
		return nil, err
	}

	results := Merge(partials, keywords)
	elapsed := time.Since(start)

	report := &Report{
		Results: results,
		Workers: opts.Workers,
		Mode:    e.backend.Name(),
		Elapsed: elapsed,
	}
	for _, p := range partials {
		report.FilesScanned += p.FilesScanned
		report.FilesSkipped += p.FilesSkipped
	}

	slog.Info("search_complete",
		slog.String("mode", report.Mode),
		slog.Int("workers", report.Workers),
		slog.Int("files_scanned", report.FilesScanned),
		slog.Int("files_skipped", report.FilesSkipped),
		slog.Duration("elapsed", report.Elapsed))

	return report, nil
}
