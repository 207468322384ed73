package search

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunWorker_AccumulatesMatchesPerKeyword(t *testing.T) {
	// Given: a chunk where one file matches both keywords and one neither
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "alpha and beta here")
	b := writeFile(t, dir, "b.txt", "nothing to see")

	// When: running the worker
	partial := RunWorker(context.Background(), []string{a, b}, []string{"alpha", "beta"})

	// Then: only the matching file appears, under both keywords
	assert.Equal(t, 2, partial.FilesScanned)
	assert.Equal(t, 0, partial.FilesSkipped)
	assert.Equal(t, []string{a}, partial.Matches["alpha"])
	assert.Equal(t, []string{a}, partial.Matches["beta"])
}

func TestRunWorker_SkipsUnreadableFileAndContinues(t *testing.T) {
	// Given: a missing file ahead of a readable one in the same chunk
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.txt")
	readable := writeFile(t, dir, "ok.txt", "contains the k word: keyword")

	// When: running the worker
	partial := RunWorker(context.Background(), []string{missing, readable}, []string{"keyword"})

	// Then: the failure is recovered, the readable file still matches
	assert.Equal(t, 1, partial.FilesScanned)
	assert.Equal(t, 1, partial.FilesSkipped)
	assert.Equal(t, []string{readable}, partial.Matches["keyword"])
}

func TestRunWorker_EmptyChunkYieldsEmptyPartial(t *testing.T) {
	partial := RunWorker(context.Background(), nil, []string{"x"})

	assert.Equal(t, 0, partial.FilesScanned)
	assert.Equal(t, 0, partial.FilesSkipped)
	assert.Empty(t, partial.Matches)
	assert.NotNil(t, partial.Matches)
}

func TestRunWorker_CancelledContextStopsNewScans(t *testing.T) {
	// Given: an already-cancelled context
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "alpha")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// When: running the worker
	partial := RunWorker(ctx, []string{a}, []string{"alpha"})

	// Then: no files were picked up
	assert.Equal(t, 0, partial.FilesScanned)
}
