package search

import (
	"context"
	"log/slog"
)

// RunWorker scans every file in chunk and accumulates matches into a
// privately owned PartialResult. No state is shared with other workers;
// the result is handed to the caller for exactly one sink publication.
//
// Unreadable files are logged and counted as skipped, never fatal.
// Cancellation stops picking up new files but lets the in-flight read
// complete, so a published partial is always internally consistent.
func RunWorker(ctx context.Context, chunk []string, keywords []string) PartialResult {
	scanner := NewFileScanner()
	partial := PartialResult{
		Matches: make(map[string][]string, len(keywords)),
	}

	for _, path := range chunk {
		if ctx != nil && ctx.Err() != nil {
			break
		}

		present, err := scanner.Scan(path, keywords)
		if err != nil {
			slog.Warn("file scan failed, skipping",
				slog.String("path", path),
				slog.String("error", err.Error()))
			partial.FilesSkipped++
			continue
		}

		partial.FilesScanned++
		for _, kw := range keywords {
			if present[kw] {
				partial.Matches[kw] = append(partial.Matches[kw], path)
			}
		}
	}

	return partial
}
