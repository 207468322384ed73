package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// WorkerCommandName is the hidden CLI subcommand that turns the parseek
// binary into a one-shot worker child for the processes backend.
const WorkerCommandName = "__worker"

// WorkerJob is the unit of work sent to a worker child on stdin:
// one chunk plus the keyword set, fully self-contained.
type WorkerJob struct {
	Files    []string `json:"files"`
	Keywords []string `json:"keywords"`
}

// WorkerReply carries one complete PartialResult back on stdout.
// Error is set only when the job itself was malformed; per-file read
// failures stay inside the worker and surface as skip counts.
type WorkerReply struct {
	Partial PartialResult `json:"partial"`
	Error   string        `json:"error,omitempty"`
}

// ServeWorker reads one job from r, runs it, and writes one reply to w.
// It is the entry point of the hidden __worker subcommand. Exactly one
// JSON document crosses each pipe, so the parent can treat a missing or
// truncated reply as a crashed worker.
func ServeWorker(ctx context.Context, r io.Reader, w io.Writer) error {
	var job WorkerJob
	if err := json.NewDecoder(r).Decode(&job); err != nil {
		// Answer even a malformed job so the parent can tell a bad
		// request apart from a crashed worker.
		_ = json.NewEncoder(w).Encode(WorkerReply{
			Error: fmt.Sprintf("decode job: %v", err),
		})
		return err
	}

	partial := RunWorker(ctx, job.Files, job.Keywords)
	return json.NewEncoder(w).Encode(WorkerReply{Partial: partial})
}
