package search

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pserrors "github.com/parseek/parseek/internal/errors"
)

// TestHelperWorkerProcess is not a real test: the process backend tests
// re-execute this test binary as their worker children, the same way the
// production backend re-executes the parseek binary.
func TestHelperWorkerProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		t.Skip("helper process entry point")
	}
	if os.Getenv("PARSEEK_HELPER_CRASH") == "1" {
		// Simulate a worker dying before publishing.
		os.Exit(3)
	}
	if err := ServeWorker(context.Background(), os.Stdin, os.Stdout); err != nil {
		os.Exit(1)
	}
	os.Exit(0)
}

// helperBackend returns a ProcessBackend whose children are this test
// binary running TestHelperWorkerProcess.
func helperBackend(extraEnv ...string) *ProcessBackend {
	return &ProcessBackend{
		Command: []string{os.Args[0], "-test.run=TestHelperWorkerProcess", "--"},
		Env:     append([]string{"GO_WANT_HELPER_PROCESS=1"}, extraEnv...),
	}
}

func TestProcessBackend_SingleWorkerRoundTrip(t *testing.T) {
	// Given: one chunk with a matching file
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "alpha content")

	// When: running through a worker child
	partials, err := helperBackend().Run(context.Background(),
		[][]string{{a}}, []string{"alpha"})

	// Then: the partial crossed the process boundary intact
	require.NoError(t, err)
	require.Len(t, partials, 1)
	assert.Equal(t, []string{a}, partials[0].Matches["alpha"])
	assert.Equal(t, 1, partials[0].FilesScanned)
}

func TestProcessBackend_CrossModelEquivalence(t *testing.T) {
	// Given: the same file list and keywords for both backends
	dir := t.TempDir()
	files := []string{
		writeFile(t, dir, "a.txt", "alpha"),
		writeFile(t, dir, "b.txt", "alpha and beta"),
		writeFile(t, dir, "c.txt", "neither"),
		writeFile(t, dir, "d.txt", "BETA uppercase"),
	}
	keywords := []string{"alpha", "beta"}

	threadsEngine, err := NewEngine(&GoroutineBackend{})
	require.NoError(t, err)
	processEngine, err := NewEngine(helperBackend())
	require.NoError(t, err)

	// When: executing under both concurrency models
	threadsReport, err := threadsEngine.Execute(context.Background(), files, keywords, Options{Workers: 2})
	require.NoError(t, err)
	processReport, err := processEngine.Execute(context.Background(), files, keywords, Options{Workers: 2})
	require.NoError(t, err)

	// Then: the canonical results are identical
	assert.Equal(t, threadsReport.Results, processReport.Results)
	assert.Equal(t, threadsReport.FilesScanned, processReport.FilesScanned)
}

func TestProcessBackend_CrashedWorkerFailsWholeSearch(t *testing.T) {
	// Given: children that exit before publishing
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "alpha")
	engine, err := NewEngine(helperBackend("PARSEEK_HELPER_CRASH=1"))
	require.NoError(t, err)

	// When: executing
	_, err = engine.Execute(context.Background(), []string{a}, []string{"alpha"}, Options{Workers: 2})

	// Then: the search surfaces a hard worker-set failure instead of a
	// truncated report
	require.Error(t, err)
	assert.Equal(t, pserrors.ErrCodeWorkerLost, pserrors.GetCode(err))
}

func TestProcessBackend_UnspawnableCommand(t *testing.T) {
	backend := &ProcessBackend{Command: []string{"/nonexistent/parseek-worker"}}

	_, err := backend.Run(context.Background(), [][]string{{"f"}}, []string{"x"})

	require.Error(t, err)
	assert.Equal(t, pserrors.ErrCodeWorkerLost, pserrors.GetCode(err))
}

func TestServeWorker_MalformedJobStillReplies(t *testing.T) {
	// Given: garbage on stdin
	var out bytes.Buffer

	// When: serving
	err := ServeWorker(context.Background(), strings.NewReader("not json"), &out)

	// Then: the error is reported on the pipe so the parent can tell a
	// bad request from a crashed worker
	require.Error(t, err)
	assert.Contains(t, out.String(), "decode job")
}
