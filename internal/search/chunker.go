package search

// Split partitions files into workerCount chunks by round-robin assignment:
// the file at index i goes to chunk i mod workerCount. Interleaving keeps
// load balanced even when file sizes vary. The chunks partition the input
// exactly: no overlap, no omission. When workerCount exceeds the number of
// files, the surplus chunks are empty.
func Split(files []string, workerCount int) [][]string {
	if workerCount <= 0 {
		return nil
	}

	chunks := make([][]string, workerCount)
	for i, f := range files {
		idx := i % workerCount
		chunks[idx] = append(chunks[idx], f)
	}
	return chunks
}
