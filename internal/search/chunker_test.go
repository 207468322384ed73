package search

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_RoundRobinAssignment(t *testing.T) {
	// Given: six files and two workers
	files := []string{"a", "b", "c", "d", "e", "f"}

	// When: splitting
	chunks := Split(files, 2)

	// Then: file i lands in chunk i mod 2
	require.Len(t, chunks, 2)
	assert.Equal(t, []string{"a", "c", "e"}, chunks[0])
	assert.Equal(t, []string{"b", "d", "f"}, chunks[1])
}

func TestSplit_MoreWorkersThanFiles(t *testing.T) {
	// Given: two files and five workers
	files := []string{"a", "b"}

	// When: splitting
	chunks := Split(files, 5)

	// Then: surplus chunks are empty
	require.Len(t, chunks, 5)
	assert.Equal(t, []string{"a"}, chunks[0])
	assert.Equal(t, []string{"b"}, chunks[1])
	for i := 2; i < 5; i++ {
		assert.Empty(t, chunks[i])
	}
}

func TestSplit_EmptyFileList(t *testing.T) {
	// When: splitting an empty list
	chunks := Split(nil, 3)

	// Then: every chunk exists and is empty
	require.Len(t, chunks, 3)
	for _, c := range chunks {
		assert.Empty(t, c)
	}
}

func TestSplit_NonPositiveWorkerCount(t *testing.T) {
	assert.Nil(t, Split([]string{"a"}, 0))
	assert.Nil(t, Split([]string{"a"}, -1))
}

func TestSplit_PartitionProperty(t *testing.T) {
	// The union of all chunks equals the input exactly: no overlap,
	// no omission, for a spread of sizes and worker counts.
	for _, n := range []int{0, 1, 2, 7, 100} {
		for _, workers := range []int{1, 2, 3, 8, 101} {
			t.Run(fmt.Sprintf("files=%d/workers=%d", n, workers), func(t *testing.T) {
				files := make([]string, n)
				for i := range files {
					files[i] = fmt.Sprintf("file_%03d", i)
				}

				chunks := Split(files, workers)
				require.Len(t, chunks, workers)

				var union []string
				for _, c := range chunks {
					union = append(union, c...)
				}
				sort.Strings(union)

				expected := append([]string(nil), files...)
				sort.Strings(expected)
				assert.Equal(t, expected, union)
			})
		}
	}
}
