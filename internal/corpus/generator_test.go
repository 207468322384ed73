package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pserrors "github.com/parseek/parseek/internal/errors"
)

func TestGenerate_ProducesRequestedFiles(t *testing.T) {
	dir := t.TempDir()

	paths, err := Generate(Options{Dir: dir, Files: 5, Seed: 42})

	require.NoError(t, err)
	require.Len(t, paths, 5)
	assert.Equal(t, filepath.Join(dir, "file_000.txt"), paths[0])
	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestGenerate_SameSeedSameCorpus(t *testing.T) {
	// Given: two directories generated from the same seed
	opts := Options{Files: 8, Seed: 1234, Keywords: []string{"alpha", "beta"}}
	dirA := t.TempDir()
	dirB := t.TempDir()

	optsA, optsB := opts, opts
	optsA.Dir = dirA
	optsB.Dir = dirB

	pathsA, err := Generate(optsA)
	require.NoError(t, err)
	pathsB, err := Generate(optsB)
	require.NoError(t, err)

	// Then: the corpora are byte-identical file for file
	require.Len(t, pathsB, len(pathsA))
	for i := range pathsA {
		a, err := os.ReadFile(pathsA[i])
		require.NoError(t, err)
		b, err := os.ReadFile(pathsB[i])
		require.NoError(t, err)
		assert.Equal(t, string(a), string(b))
	}
}

func TestGenerate_DifferentSeedDifferentCorpus(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()

	pathsA, err := Generate(Options{Dir: dirA, Files: 3, Seed: 1})
	require.NoError(t, err)
	pathsB, err := Generate(Options{Dir: dirB, Files: 3, Seed: 2})
	require.NoError(t, err)

	a, err := os.ReadFile(pathsA[0])
	require.NoError(t, err)
	b, err := os.ReadFile(pathsB[0])
	require.NoError(t, err)
	assert.NotEqual(t, string(a), string(b))
}

func TestGenerate_RejectsBadOptions(t *testing.T) {
	_, err := Generate(Options{Dir: "", Files: 1})
	assert.Error(t, err)

	_, err = Generate(Options{Dir: t.TempDir(), Files: -1})
	assert.Error(t, err)
}

func TestGenerate_LockedDirRejected(t *testing.T) {
	// Given: another generator holding the corpus lock
	dir := t.TempDir()
	held := flock.New(filepath.Join(dir, lockFileName))
	locked, err := held.TryLock()
	require.NoError(t, err)
	require.True(t, locked)
	defer func() { _ = held.Unlock() }()

	// When: generating into the same directory
	_, err = Generate(Options{Dir: dir, Files: 1, Seed: 0})

	// Then: generation refuses rather than interleaving output
	require.Error(t, err)
	assert.Equal(t, pserrors.ErrCodeCorpusLocked, pserrors.GetCode(err))
}

func TestGenerate_ZeroFiles(t *testing.T) {
	paths, err := Generate(Options{Dir: t.TempDir(), Files: 0})

	require.NoError(t, err)
	assert.Empty(t, paths)
}
