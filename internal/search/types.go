// Package search implements the parallel fan-out/merge keyword search engine.
//
// A search partitions the input file list round-robin among a fixed number
// of workers, runs every worker under one of two execution backends
// (goroutines or isolated child processes), collects the per-worker partial
// results through a shared sink, and merges them into one canonical,
// deterministic report. Both backends produce bit-identical reports for the
// same input.
package search

import "time"

// Backend names accepted by NewBackend.
const (
	// BackendThreads runs workers as goroutines in one address space.
	BackendThreads = "threads"
	// BackendProcesses runs workers as isolated child processes.
	BackendProcesses = "processes"
)

// PartialResult is one worker's keyword → matching-files mapping, plus scan
// accounting. It is owned exclusively by its worker until published to the
// sink, and is fully self-contained so it can cross a process boundary.
type PartialResult struct {
	// Matches maps each keyword (original casing) to the files in this
	// worker's chunk that contain it. Unordered.
	Matches map[string][]string `json:"matches"`

	// FilesScanned counts files read successfully.
	FilesScanned int `json:"files_scanned"`

	// FilesSkipped counts files that could not be read and were excluded.
	FilesSkipped int `json:"files_skipped"`
}

// Report is the canonical outcome of one search invocation.
// Results is deduplicated and sorted per keyword; two runs over the same
// input produce identical Reports regardless of backend or worker count.
type Report struct {
	// Results maps every requested keyword to the sorted, deduplicated
	// list of files containing it. Keywords with no matches map to an
	// empty (non-nil) list.
	Results map[string][]string `json:"results"`

	FilesScanned int `json:"files_scanned"`
	FilesSkipped int `json:"files_skipped"`

	Workers int    `json:"workers"`
	Mode    string `json:"mode"`

	// Elapsed is the wall-clock duration of the concurrent phase:
	// spawn through merge, exclusive of setup.
	Elapsed time.Duration `json:"elapsed_ns"`
}
