package search

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/sync/errgroup"

	pserrors "github.com/parseek/parseek/internal/errors"
)

// ProcessBackend runs each worker as an isolated child process. Nothing is
// shared between workers: the job goes out as one JSON document on the
// child's stdin and the partial result comes back as one JSON document on
// its stdout. Identical inputs must still produce the same canonical
// report as the threads backend.
type ProcessBackend struct {
	// Command is the argv used to start one worker child. Defaults to
	// re-executing the current binary with the hidden __worker command.
	Command []string

	// Env entries appended to each child's environment.
	Env []string
}

// NewProcessBackend creates a ProcessBackend that re-executes the current
// binary as its worker children.
func NewProcessBackend() (*ProcessBackend, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, pserrors.New(pserrors.ErrCodeWorkerSpawn,
			"cannot resolve own executable for worker spawn", err)
	}
	return &ProcessBackend{Command: []string{exe, WorkerCommandName}}, nil
}

// Name implements Backend.
func (b *ProcessBackend) Name() string { return BackendProcesses }

// Run implements Backend.
func (b *ProcessBackend) Run(ctx context.Context, chunks [][]string, keywords []string) ([]PartialResult, error) {
	if len(b.Command) == 0 {
		return nil, pserrors.New(pserrors.ErrCodeWorkerSpawn, "empty worker command", nil)
	}

	sink := newChanSink(len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	for _, chunk := range chunks {
		chunk := chunk
		g.Go(func() error {
			return b.runChild(gctx, chunk, keywords, sink)
		})
	}

	// Join every child (and its reader) before draining.
	joinErr := g.Wait()

	partials, drainErr := sink.Drain(len(chunks))
	if drainErr != nil {
		if joinErr != nil {
			// The short drain and the child failure are the same event;
			// keep the child's error as the cause.
			return nil, pserrors.New(pserrors.ErrCodeWorkerLost,
				fmt.Sprintf("incomplete worker set: %v", joinErr), joinErr)
		}
		return nil, drainErr
	}
	if joinErr != nil {
		return nil, pserrors.Wrap(pserrors.ErrCodeWorkerAborted, joinErr)
	}

	return partials, nil
}

// runChild spawns one worker child, feeds it its job, and publishes the
// decoded reply to the sink.
func (b *ProcessBackend) runChild(ctx context.Context, chunk []string, keywords []string, sink PublishSink) error {
	cmd := exec.CommandContext(ctx, b.Command[0], b.Command[1:]...)
	cmd.Env = append(os.Environ(), b.Env...)
	// Child logs pass straight through.
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return pserrors.New(pserrors.ErrCodeWorkerSpawn,
			fmt.Sprintf("worker stdin pipe: %v", err), err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return pserrors.New(pserrors.ErrCodeWorkerSpawn,
			fmt.Sprintf("worker stdout pipe: %v", err), err)
	}

	if err := cmd.Start(); err != nil {
		return pserrors.New(pserrors.ErrCodeWorkerSpawn,
			fmt.Sprintf("start worker %q: %v", b.Command[0], err), err)
	}

	job := WorkerJob{Files: chunk, Keywords: keywords}
	if err := json.NewEncoder(stdin).Encode(job); err != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return pserrors.New(pserrors.ErrCodeWorkerSpawn,
			fmt.Sprintf("send job to worker: %v", err), err)
	}
	_ = stdin.Close()

	var reply WorkerReply
	decErr := json.NewDecoder(stdout).Decode(&reply)
	waitErr := cmd.Wait()

	if decErr != nil {
		return pserrors.New(pserrors.ErrCodeWorkerReply,
			fmt.Sprintf("read worker reply: %v", decErr), decErr)
	}
	if waitErr != nil {
		return pserrors.New(pserrors.ErrCodeWorkerAborted,
			fmt.Sprintf("worker exited: %v", waitErr), waitErr)
	}
	if reply.Error != "" {
		return pserrors.New(pserrors.ErrCodeWorkerReply, reply.Error, nil)
	}

	if reply.Partial.Matches == nil {
		reply.Partial.Matches = make(map[string][]string)
	}
	return sink.Publish(reply.Partial)
}
