package search

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileScanner_CaseInsensitiveContainment(t *testing.T) {
	// Given: a file with mixed-case content
	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "Some ALPHA text mentioning Beta once")
	scanner := NewFileScanner()

	// When: scanning with mixed-case keywords
	present, err := scanner.Scan(path, []string{"alpha", "BETA", "gamma"})

	// Then: matching is case-insensitive and keys keep the original casing
	require.NoError(t, err)
	assert.True(t, present["alpha"])
	assert.True(t, present["BETA"])
	assert.False(t, present["gamma"])
}

func TestFileScanner_SubstringMatch(t *testing.T) {
	// "thread" matches inside "multithreading"
	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "multithreading is fun")
	scanner := NewFileScanner()

	present, err := scanner.Scan(path, []string{"thread"})

	require.NoError(t, err)
	assert.True(t, present["thread"])
}

func TestFileScanner_MissingFileReturnsError(t *testing.T) {
	scanner := NewFileScanner()

	present, err := scanner.Scan(filepath.Join(t.TempDir(), "missing.txt"), []string{"x"})

	require.Error(t, err)
	assert.Nil(t, present)
}
